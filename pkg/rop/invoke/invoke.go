package invoke

import (
	"fmt"
	"reflect"

	"github.com/ib-77/sendchain/pkg/rop"
)

var errorType = reflect.TypeFor[error]()

type config struct {
	pointerFallback bool
}

// Option tunes how operation names are resolved.
type Option func(*config)

func defaultConfig() config {
	return config{pointerFallback: true}
}

// WithoutPointerFallback restricts resolution to the value's own method set.
// By default a non-pointer accumulator also resolves pointer-receiver
// methods, invoked on a copy.
func WithoutPointerFallback() Option {
	return func(c *config) {
		c.pointerFallback = false
	}
}

// StepError wraps an error returned by an operation of the form
// func() (T, error).
type StepError struct {
	Name string
	Step int
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Step, e.Name, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Chain calls the named zero-argument methods one after another, starting on
// value and feeding each result into the next call. With no names, value is
// returned unchanged.
func Chain(value any, names ...string) (any, error) {
	return ChainWith(value, names)
}

// ChainWith is Chain with resolution options.
func ChainWith(value any, names []string, opts ...Option) (any, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	acc := value
	for step, name := range names {
		m, err := resolve(acc, name, step, cfg)
		if err != nil {
			return nil, err
		}

		next, err := call(m, name, step)
		if err != nil {
			return nil, err
		}
		acc = next
	}
	return acc, nil
}

// ChainAs runs Chain and asserts the final value to T.
func ChainAs[T any](value any, names ...string) (T, error) {
	var zero T

	out, err := Chain(value, names...)
	if err != nil {
		return zero, err
	}

	if out == nil && nilable(reflect.TypeFor[T]()) {
		return zero, nil
	}

	t, ok := out.(T)
	if !ok {
		return zero, &rop.TypeMismatchError{
			Index:  -1,
			Value:  out,
			Reason: fmt.Sprintf("final value is %T, not %s", out, reflect.TypeFor[T]()),
		}
	}
	return t, nil
}

// Methods is a reflection-backed dispatcher for chains whose every step
// returns T.
type Methods[T any] struct{}

func (Methods[T]) Chain(value T, names ...string) (T, error) {
	return ChainAs[T](value, names...)
}

// CanInvoke reports whether name resolves to an operation Chain could call
// on value.
func CanInvoke(value any, name string) bool {
	_, err := resolve(value, name, 0, defaultConfig())
	return err == nil
}

func resolve(acc any, name string, step int, cfg config) (reflect.Value, error) {
	if acc == nil {
		return reflect.Value{}, &rop.MethodNotFoundError{Name: name, Step: step, Reason: "nil receiver"}
	}

	v := reflect.ValueOf(acc)
	m := v.MethodByName(name)
	if !m.IsValid() && cfg.pointerFallback && v.Kind() != reflect.Ptr {
		p := reflect.New(v.Type())
		p.Elem().Set(v)
		m = p.MethodByName(name)
	}

	if !m.IsValid() {
		reason := ""
		if v.Kind() == reflect.Ptr && v.IsNil() {
			reason = "nil receiver"
		}
		return reflect.Value{}, &rop.MethodNotFoundError{Name: name, Type: v.Type(), Step: step, Reason: reason}
	}

	// value methods promoted to a nil pointer dereference it on call
	if v.Kind() == reflect.Ptr && v.IsNil() {
		if _, onValue := v.Type().Elem().MethodByName(name); onValue {
			return reflect.Value{}, &rop.MethodNotFoundError{Name: name, Type: v.Type(), Step: step, Reason: "nil receiver"}
		}
	}

	if reason := checkShape(m.Type()); reason != "" {
		return reflect.Value{}, &rop.MethodNotFoundError{Name: name, Type: v.Type(), Step: step, Reason: reason}
	}
	return m, nil
}

// checkShape accepts func() T, func() (T, error) and variadic-only methods.
func checkShape(t reflect.Type) string {
	switch {
	case t.NumIn() == 1 && t.IsVariadic():
	case t.NumIn() != 0:
		return fmt.Sprintf("takes %d arguments", t.NumIn())
	}

	switch t.NumOut() {
	case 1:
		return ""
	case 2:
		if t.Out(1) == errorType {
			return ""
		}
		return fmt.Sprintf("second result is %s, not error", t.Out(1))
	case 0:
		return "returns no value"
	default:
		return fmt.Sprintf("returns %d values", t.NumOut())
	}
}

func call(m reflect.Value, name string, step int) (any, error) {
	out := m.Call(nil)

	if len(out) == 2 && !out[1].IsNil() {
		return nil, &StepError{Name: name, Step: step, Err: out[1].Interface().(error)}
	}

	if out[0].Kind() == reflect.Interface && out[0].IsNil() {
		return nil, nil
	}
	return out[0].Interface(), nil
}

func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}
	return false
}
