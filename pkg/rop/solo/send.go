package solo

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/ib-77/sendchain/pkg/rop"
	"github.com/ib-77/sendchain/pkg/rop/core"
	"github.com/ib-77/sendchain/pkg/rop/invoke"
)

// Send runs invoke.Chain on a successful input. Failures and cancellations
// pass through untouched; a done ctx turns into a Cancel.
func Send[T any](ctx context.Context, input rop.Result[T], names ...string) rop.Result[any] {
	if !input.IsSuccess() {
		return passOn[T, any](input)
	}
	if err := ctx.Err(); err != nil {
		return rop.Cancel[any](err)
	}

	log := zerolog.Ctx(ctx)
	log.Debug().Str("op", "send").Strs("names", names).Msg("invoking chain")

	out, err := invoke.ChainWith(input.Result(), names, core.SendOptionsFrom(ctx)...)
	if err != nil {
		logAborted(log, "send", err)
		return rop.Fail[any](err)
	}
	return rop.Success(out)
}

// SendAs is Send with the final value asserted to Out.
func SendAs[In, Out any](ctx context.Context, input rop.Result[In], names ...string) rop.Result[Out] {
	return Try(ctx, Send(ctx, input, names...), func(_ context.Context, v any) (Out, error) {
		return invoke.ChainAs[Out](v)
	})
}

// SendWith dispatches names through d, typically an *invoke.Registry,
// instead of reflection.
func SendWith[T any](ctx context.Context, input rop.Result[T], d rop.Dispatcher[T], names ...string) rop.Result[T] {
	if !input.IsSuccess() {
		return input
	}
	if err := ctx.Err(); err != nil {
		return rop.Cancel[T](err)
	}
	if rop.IsNil(d) {
		return rop.Fail[T](rop.Precondition("dispatcher is required"))
	}

	log := zerolog.Ctx(ctx)
	log.Debug().Str("op", "send_with").Strs("names", names).Msg("invoking chain")

	out, err := d.Chain(input.Result(), names...)
	if err != nil {
		logAborted(log, "send_with", err)
		return rop.Fail[T](err)
	}
	return rop.Success(out)
}

// logAborted records a failed chain together with the errors joined by the
// failing operation.
func logAborted(log *zerolog.Logger, op string, err error) {
	cause := err
	var stepErr *invoke.StepError
	if errors.As(err, &stepErr) {
		cause = stepErr.Err
	}
	log.Warn().Err(err).Str("op", op).Errs("causes", rop.GetErrors(cause)).Msg("chain aborted")
}
