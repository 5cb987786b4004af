package rop

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/davecgh/go-spew/spew"
)

var (
	ErrPreconditionViolation = errors.New("precondition violation")
	ErrMethodNotFound        = errors.New("method not found")
	ErrTypeMismatch          = errors.New("type mismatch")
)

// valueDumper renders offending values on a single line, one level deep.
var valueDumper = spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                2,
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// MethodNotFoundError reports an operation name that could not be resolved
// to a zero-argument operation on the accumulator at the given step.
type MethodNotFoundError struct {
	Name   string
	Type   reflect.Type
	Step   int
	Reason string
}

func (e *MethodNotFoundError) Error() string {
	typeName := "<nil>"
	if e.Type != nil {
		typeName = e.Type.String()
	}
	msg := fmt.Sprintf("%s: %q on %s at step %d", ErrMethodNotFound, e.Name, typeName, e.Step)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *MethodNotFoundError) Is(target error) bool {
	return target == ErrMethodNotFound
}

// TypeMismatchError reports a value whose shape does not match what the
// caller promised, e.g. a transform result that is not a key/value pair.
type TypeMismatchError struct {
	Index  int
	Value  any
	Reason string
}

func (e *TypeMismatchError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s: %s", ErrTypeMismatch, e.Reason, DumpValue(e.Value))
	}
	return fmt.Sprintf("%s: element %d: %s: %s", ErrTypeMismatch, e.Index, e.Reason, DumpValue(e.Value))
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// Precondition wraps ErrPreconditionViolation with a message.
func Precondition(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrPreconditionViolation, fmt.Sprintf(format, args...))
}

// DumpValue renders v compactly for error messages.
func DumpValue(v any) string {
	if v == nil {
		return "<nil>"
	}
	return valueDumper.Sprintf("%v", v)
}
