package solo

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ib-77/sendchain/pkg/rop"
	"github.com/ib-77/sendchain/pkg/rop/core"
	"github.com/ib-77/sendchain/pkg/rop/pairs"
)

// ToMap runs pairs.ToMap on a successful input.
func ToMap[E any, K comparable, V any](ctx context.Context,
	input rop.Result[[]E],
	transform func(E) (K, V)) rop.Result[map[K]V] {

	if !input.IsSuccess() {
		return passOn[[]E, map[K]V](input)
	}
	if err := ctx.Err(); err != nil {
		return rop.Cancel[map[K]V](err)
	}

	log := zerolog.Ctx(ctx)
	m, err := pairs.ToMap(input.Result(), transform)
	if err != nil {
		log.Warn().Err(err).Str("op", "to_map").Msg("mapping failed")
		return rop.Fail[map[K]V](err)
	}

	log.Debug().Str("op", "to_map").Int("size", len(input.Result())).Int("keys", len(m)).Msg("mapped")
	return rop.Success(m)
}

// ToMapAny runs pairs.ToMapAny on a successful input, honoring the pair
// options stored in ctx by core.WithPairOptions.
func ToMapAny[E any](ctx context.Context,
	input rop.Result[[]E],
	transform func(E) any) rop.Result[map[any]any] {

	if !input.IsSuccess() {
		return passOn[[]E, map[any]any](input)
	}
	if err := ctx.Err(); err != nil {
		return rop.Cancel[map[any]any](err)
	}

	log := zerolog.Ctx(ctx)
	m, err := pairs.ToMapAny(input.Result(), transform, core.PairOptionsFrom(ctx)...)
	if err != nil {
		log.Warn().Err(err).Str("op", "to_map_any").Msg("mapping failed")
		return rop.Fail[map[any]any](err)
	}

	log.Debug().Str("op", "to_map_any").Int("size", len(input.Result())).Int("keys", len(m)).Msg("mapped")
	return rop.Success(m)
}
