package core

import (
	"context"

	"github.com/ib-77/sendchain/pkg/rop/invoke"
	"github.com/ib-77/sendchain/pkg/rop/pairs"
)

type OptionKey string

const (
	PairOptionKey OptionKey = "pair_options"
	SendOptionKey OptionKey = "send_options"
)

type PairOptions struct {
	AllowExtraPositions bool
}

type SendOptions struct {
	PointerFallback bool
}

func WithPairOptions(ctx context.Context, allowExtraPositions bool) context.Context {
	return context.WithValue(ctx, PairOptionKey, PairOptions{AllowExtraPositions: allowExtraPositions})
}

func WithSendOptions(ctx context.Context, pointerFallback bool) context.Context {
	return context.WithValue(ctx, SendOptionKey, SendOptions{PointerFallback: pointerFallback})
}

func AllowExtraPositions(ctx context.Context, defaultAllow bool) bool {
	options, ok := ctx.Value(PairOptionKey).(PairOptions)
	if ok {
		return options.AllowExtraPositions
	}
	return defaultAllow
}

func IsPointerFallbackEnabled(ctx context.Context, defaultFallback bool) bool {
	options, ok := ctx.Value(SendOptionKey).(SendOptions)
	if ok {
		return options.PointerFallback
	}
	return defaultFallback
}

// PairOptionsFrom translates the context options into pairs.Option values.
func PairOptionsFrom(ctx context.Context) []pairs.Option {
	if AllowExtraPositions(ctx, false) {
		return []pairs.Option{pairs.WithExtraPositions()}
	}
	return nil
}

// SendOptionsFrom translates the context options into invoke.Option values.
func SendOptionsFrom(ctx context.Context) []invoke.Option {
	if !IsPointerFallbackEnabled(ctx, true) {
		return []invoke.Option{invoke.WithoutPointerFallback()}
	}
	return nil
}
