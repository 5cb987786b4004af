package rop

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultStates(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")

	s := Success(1)
	assert.True(t, s.IsSuccess())
	assert.False(t, s.IsFailure())
	assert.NotEqual(t, s.Id(), Success(1).Id())
	assert.False(t, s.CreatedAt().IsZero())

	f := Fail[int](boom)
	assert.True(t, f.IsFailure())
	assert.False(t, f.IsCancel())

	c := Cancel[int](context.Canceled)
	assert.True(t, c.IsCancel())
	assert.False(t, c.IsFailure())

	assert.True(t, Result[int]{}.IsEmpty())

	moved := CancelFrom[int, string](c)
	assert.True(t, moved.IsCancel())
	assert.Equal(t, c.Id(), moved.Id())
}

func TestFromTryAndGet(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")

	v, err := FromTry(5, nil).Get()
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	r := FromTry(5, boom)
	assert.True(t, r.IsFailure())
	v, err = r.Get()
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, v)

	assert.True(t, FromTry(0, fmt.Errorf("wrapped: %w", context.DeadlineExceeded)).IsCancel())
}

func TestGetErrorsAndIsNil(t *testing.T) {
	t.Parallel()
	a, b := errors.New("a"), errors.New("b")

	assert.Empty(t, GetErrors(nil))
	assert.Equal(t, []error{a}, GetErrors(a))
	assert.Equal(t, []error{a, b}, GetErrors(errors.Join(a, b)))

	var p *int
	var s []int
	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(p))
	assert.True(t, IsNil(s))
	assert.False(t, IsNil(0))
	assert.False(t, IsNil(""))
}

func TestErrorTaxonomy(t *testing.T) {
	t.Parallel()

	notFound := error(&MethodNotFoundError{Name: "Frob", Type: reflect.TypeFor[int](), Step: 2, Reason: "takes 1 arguments"})
	assert.ErrorIs(t, notFound, ErrMethodNotFound)
	assert.NotErrorIs(t, notFound, ErrTypeMismatch)
	assert.Equal(t, `method not found: "Frob" on int at step 2: takes 1 arguments`, notFound.Error())

	nilRecv := &MethodNotFoundError{Name: "Frob"}
	assert.Contains(t, nilRecv.Error(), "on <nil>")

	mismatch := error(&TypeMismatchError{Index: 3, Value: []int{1, 2, 3}, Reason: "has 3 positions, want 2"})
	assert.ErrorIs(t, mismatch, ErrTypeMismatch)
	assert.Equal(t, "type mismatch: element 3: has 3 positions, want 2: [1 2 3]", mismatch.Error())

	pre := Precondition("transform %s", "missing")
	assert.ErrorIs(t, pre, ErrPreconditionViolation)
	assert.Equal(t, "precondition violation: transform missing", pre.Error())

	assert.Equal(t, "<nil>", DumpValue(nil))
}
