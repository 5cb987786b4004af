package chain

import (
	"context"

	"github.com/ib-77/sendchain/pkg/rop"
	"github.com/ib-77/sendchain/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result rop.Result[T]
}

// Start creates a new chain from a rop.Result
func Start[T any](ctx context.Context, result rop.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, rop.Success(value))
}

// Result returns the underlying rop.Result
func (c *Chain[T]) Result() rop.Result[T] {
	return c.result
}

// Get returns the chain outcome as a plain (value, error) pair
func (c *Chain[T]) Get() (T, error) {
	return c.result.Get()
}

// Then chains a function that returns rop.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) rop.Result[U]) *Chain[U] {
	return Start(c.ctx, solo.Switch(c.ctx, c.result, onSuccess))
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return Start(c.ctx, solo.Try(c.ctx, c.result, tryOnSuccess))
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return Start(c.ctx, solo.Map(c.ctx, c.result, onSuccess))
}

// Send invokes the named methods on the current value, one after another
func Send[T any](c *Chain[T], names ...string) *Chain[any] {
	return Start(c.ctx, solo.Send(c.ctx, c.result, names...))
}

// SendAs is Send with the final value asserted to U
func SendAs[T, U any](c *Chain[T], names ...string) *Chain[U] {
	return Start(c.ctx, solo.SendAs[T, U](c.ctx, c.result, names...))
}

// SendWith invokes the named operations of d on the current value
func (c *Chain[T]) SendWith(d rop.Dispatcher[T], names ...string) *Chain[T] {
	return Start(c.ctx, solo.SendWith(c.ctx, c.result, d, names...))
}

// ToMap turns every element of the current slice into a key/value pair
func ToMap[E any, K comparable, V any](c *Chain[[]E], transform func(E) (K, V)) *Chain[map[K]V] {
	return Start(c.ctx, solo.ToMap(c.ctx, c.result, transform))
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return Start(c.ctx, solo.Tee(c.ctx, c.result,
		func(ctx context.Context, result rop.Result[T]) {
			onSuccess(ctx, result.Result())
		}))
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U, onCancel func(context.Context, error) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure, onCancel)
}
