package invoke

import (
	"errors"
	"maps"
	"reflect"
	"slices"
	"sync"

	"github.com/ib-77/sendchain/pkg/rop"
)

// Registry is an explicit dispatch table of named operations on T.
// It is safe for concurrent use.
type Registry[T any] struct {
	mu  sync.RWMutex
	ops map[string]func(T) (T, error)
}

func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{ops: make(map[string]func(T) (T, error))}
}

var errNilReceiver = errors.New("nil receiver")

// RegistryFor builds a Registry from the exported methods of T shaped
// func() T or func() (T, error). T may be a struct, a pointer or an
// interface type. A nil receiver fails with ErrMethodNotFound unless the
// method is declared on the pointer type.
func RegistryFor[T any]() *Registry[T] {
	r := NewRegistry[T]()
	t := reflect.TypeFor[T]()

	// interface method types carry no receiver; concrete ones do
	mt := t
	receiverArgs := 0
	switch t.Kind() {
	case reflect.Interface:
	case reflect.Pointer:
		receiverArgs = 1
	default:
		mt = reflect.PointerTo(t)
		receiverArgs = 1
	}

	for i := 0; i < mt.NumMethod(); i++ {
		method := mt.Method(i)
		ft := method.Type
		if ft.NumIn() != receiverArgs {
			continue
		}
		if !(ft.NumOut() == 1 && ft.Out(0) == t) &&
			!(ft.NumOut() == 2 && ft.Out(0) == t && ft.Out(1) == errorType) {
			continue
		}

		name := method.Name
		nilSafe := nilSafeMethod(t, name)
		r.ops[name] = func(v T) (T, error) {
			var zero T
			if !nilSafe && rop.IsNil(v) {
				return zero, errNilReceiver
			}

			var rv reflect.Value
			switch t.Kind() {
			case reflect.Interface:
				rv = reflect.ValueOf(&v).Elem()
			case reflect.Pointer:
				rv = reflect.ValueOf(v)
			default:
				rv = reflect.ValueOf(&v)
			}

			out := rv.MethodByName(name).Call(nil)
			if len(out) == 2 && !out[1].IsNil() {
				return zero, out[1].Interface().(error)
			}
			res, _ := out[0].Interface().(T)
			return res, nil
		}
	}
	return r
}

// nilSafeMethod reports whether a nil T can be passed to method name
// without panicking: never for interfaces, only for methods declared on the
// pointer type itself for pointers, always for other kinds.
func nilSafeMethod(t reflect.Type, name string) bool {
	switch t.Kind() {
	case reflect.Interface:
		return false
	case reflect.Pointer:
		_, onValue := t.Elem().MethodByName(name)
		return !onValue
	}
	return true
}

func (r *Registry[T]) Register(name string, op func(T) T) error {
	if op == nil {
		return rop.Precondition("operation %q is nil", name)
	}
	return r.RegisterTry(name, func(v T) (T, error) {
		return op(v), nil
	})
}

// RegisterTry adds a fallible operation. Empty names, nil operations and
// duplicate names are rejected.
func (r *Registry[T]) RegisterTry(name string, op func(T) (T, error)) error {
	if name == "" {
		return rop.Precondition("operation name is empty")
	}
	if op == nil {
		return rop.Precondition("operation %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ops == nil {
		r.ops = make(map[string]func(T) (T, error))
	}
	if _, ok := r.ops[name]; ok {
		return rop.Precondition("operation %q already registered", name)
	}
	r.ops[name] = op
	return nil
}

// MustRegister is Register for package-level tables; it panics on error.
func (r *Registry[T]) MustRegister(name string, op func(T) T) *Registry[T] {
	if err := r.Register(name, op); err != nil {
		panic(err)
	}
	return r
}

func (r *Registry[T]) Lookup(name string) (func(T) (T, error), bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	op, ok := r.ops[name]
	return op, ok
}

// Names returns the registered operation names in sorted order.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.ops))
}

func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ops)
}

// Chain applies the named operations to value in order. An unknown name
// aborts the chain with a *rop.MethodNotFoundError.
func (r *Registry[T]) Chain(value T, names ...string) (T, error) {
	var zero T

	acc := value
	for step, name := range names {
		op, ok := r.Lookup(name)
		if !ok {
			return zero, &rop.MethodNotFoundError{
				Name:   name,
				Type:   reflect.TypeFor[T](),
				Step:   step,
				Reason: "not registered",
			}
		}

		next, err := op(acc)
		if errors.Is(err, errNilReceiver) {
			return zero, &rop.MethodNotFoundError{
				Name:   name,
				Type:   reflect.TypeFor[T](),
				Step:   step,
				Reason: "nil receiver",
			}
		}
		if err != nil {
			return zero, &StepError{Name: name, Step: step, Err: err}
		}
		acc = next
	}
	return acc, nil
}
