package chain

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/sendchain/pkg/rop"
	"github.com/ib-77/sendchain/pkg/rop/invoke"
)

func TestSend_ThreadsValueThroughMethods(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	at := time.Date(2024, 3, 9, 10, 30, 0, 0, time.UTC)
	out := Send(FromValue(ctx, at), "UTC", "Month").Result()
	require.True(t, out.IsSuccess(), "err: %v", out.Err())
	assert.Equal(t, time.March, out.Result())

	year, err := SendAs[time.Time, int](FromValue(ctx, at), "Year").Get()
	require.NoError(t, err)
	assert.Equal(t, 2024, year)
}

func TestSend_StopsTheRailwayOnUnknownName(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	called := false
	res := Map(Send(FromValue(ctx, time.Second), "Minutes", "nonexistentOp"),
		func(_ context.Context, v any) string {
			called = true
			return "unreachable"
		}).Result()

	assert.False(t, called)
	assert.True(t, res.IsFailure())
	assert.ErrorIs(t, res.Err(), rop.ErrMethodNotFound)
}

func TestSendWith_UsesRegistry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ops := invoke.NewRegistry[int]().
		MustRegister("inc", func(n int) int { return n + 1 }).
		MustRegister("square", func(n int) int { return n * n })

	got, err := FromValue(ctx, 2).SendWith(ops, "inc", "square").Get()
	require.NoError(t, err)
	assert.Equal(t, 9, got)

	_, err = FromValue(ctx, 2).SendWith(ops, "cube").Get()
	assert.ErrorIs(t, err, rop.ErrMethodNotFound)
}

func TestToMap_BuildsMapFromSlice(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	squares, err := ToMap(FromValue(ctx, []int{1, 2, 3}), func(x int) (string, int) {
		return strconv.Itoa(x), x * x
	}).Get()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"1": 1, "2": 4, "3": 9}, squares)

	boom := errors.New("boom")
	_, err = ToMap(Start(ctx, rop.Fail[[]int](boom)), func(x int) (int, int) { return x, x }).Get()
	assert.ErrorIs(t, err, boom)
}

func TestSendThenToMap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fields := SendAs[time.Duration, string](FromValue(ctx, 90*time.Minute), "String")
	lengths := ThenTry(fields, func(_ context.Context, s string) ([]string, error) {
		return []string{s, s[:2]}, nil
	})
	got, err := ToMap(lengths, func(s string) (string, int) { return s, len(s) }).Get()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"1h30m0s": 7, "1h": 2}, got)
}
