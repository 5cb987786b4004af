package chain

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/sendchain/pkg/rop"
)

func TestStartAndFromValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Start(ctx, rop.Success(10)).Result()
	assert.True(t, out.IsSuccess())
	assert.Equal(t, 10, out.Result())

	v, err := FromValue(ctx, 7).Get()
	assert.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestSteps_ShortCircuit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	inputs := map[string]rop.Result[int]{
		"failure": rop.Fail[int](errors.New("boom")),
		"cancel":  rop.Cancel[int](context.Canceled),
	}
	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			called := false

			then := Then(Start(ctx, in), func(context.Context, int) rop.Result[string] {
				called = true
				return rop.Success("x")
			}).Result()
			try := ThenTry(Start(ctx, in), func(context.Context, int) (string, error) {
				called = true
				return "x", nil
			}).Result()
			mapped := Map(Start(ctx, in), func(context.Context, int) string {
				called = true
				return "x"
			}).Result()
			ensured := Start(ctx, in).Ensure(func(context.Context, int) { called = true }).Result()

			assert.False(t, called)
			for _, r := range []rop.Result[string]{then, try, mapped} {
				assert.Equal(t, in.IsCancel(), r.IsCancel())
				assert.Equal(t, in.Err(), r.Err())
			}
			assert.Equal(t, in.Err(), ensured.Err())
		})
	}
}

func TestSteps_SuccessPath(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sideEffect := 0
	c := FromValue(ctx, 3).Ensure(func(_ context.Context, v int) { sideEffect = v })
	s := Map(c, func(_ context.Context, v int) string { return strconv.Itoa(v * 2) })
	n := ThenTry(s, func(_ context.Context, v string) (int, error) { return strconv.Atoi(v + "0") })
	out := Then(n, func(_ context.Context, v int) rop.Result[int] { return rop.Success(v + 1) })

	v, err := out.Get()
	assert.NoError(t, err)
	assert.Equal(t, 61, v)
	assert.Equal(t, 3, sideEffect)

	_, err = ThenTry(s, func(_ context.Context, v string) (int, error) { return strconv.Atoi(v + "x") }).Get()
	assert.Error(t, err)
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	label := func(c *Chain[int]) string {
		return Finally(c,
			func(context.Context, int) string { return "ok" },
			func(context.Context, error) string { return "fail" },
			func(context.Context, error) string { return "cancel" },
		)
	}

	assert.Equal(t, "ok", label(FromValue(ctx, 2)))
	assert.Equal(t, "fail", label(Start(ctx, rop.Fail[int](errors.New("e")))))
	assert.Equal(t, "cancel", label(Start(ctx, rop.Cancel[int](errors.New("c")))))
}
