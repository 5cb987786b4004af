package pairs

import (
	"fmt"
	"reflect"

	"github.com/ib-77/sendchain/pkg/rop"
)

// KeyValuer is a transform result that knows its own key and value.
type KeyValuer interface {
	KV() (key, value any)
}

type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

func Of[K comparable, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{Key: key, Value: value}
}

func (p Pair[K, V]) KV() (any, any) {
	return p.Key, p.Value
}

type config struct {
	extraPositions bool
}

// Option tunes how transform results are destructured.
type Option func(*config)

// WithExtraPositions accepts slices and arrays longer than two and ignores
// every position after the second. Without it such results are rejected.
func WithExtraPositions() Option {
	return func(c *config) {
		c.extraPositions = true
	}
}

// ToMapAny builds a map from transform results that are only known at run
// time: a Pair, any KeyValuer, or a slice or array whose first two positions
// hold the key and the value. Anything else fails with rop.ErrTypeMismatch
// and no map is returned.
func ToMapAny[E any](seq []E, transform func(E) any, opts ...Option) (map[any]any, error) {
	if transform == nil {
		return nil, errNoTransform()
	}

	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	m := make(map[any]any, len(seq))
	for i, e := range seq {
		k, v, err := split(i, transform(e), cfg)
		if err != nil {
			return nil, err
		}
		m[k] = v
	}
	return m, nil
}

// Split destructures a single pair-shaped value into key and value.
func Split(result any, opts ...Option) (key, value any, err error) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return split(-1, result, cfg)
}

func split(index int, result any, cfg config) (any, any, error) {
	mismatch := func(reason string) (any, any, error) {
		return nil, nil, &rop.TypeMismatchError{Index: index, Value: result, Reason: reason}
	}

	if rop.IsNil(result) {
		return mismatch("transform returned nil")
	}

	var key, value any
	switch r := result.(type) {
	case KeyValuer:
		key, value = r.KV()
	default:
		rv := reflect.ValueOf(result)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return mismatch(fmt.Sprintf("%T is not a pair", result))
		}

		n := rv.Len()
		if n < 2 || (n > 2 && !cfg.extraPositions) {
			return mismatch(fmt.Sprintf("has %d positions, want 2", n))
		}
		key, value = rv.Index(0).Interface(), rv.Index(1).Interface()
	}

	if key != nil && !reflect.ValueOf(key).Comparable() {
		return mismatch(fmt.Sprintf("key of type %T is not hashable", key))
	}
	return key, value, nil
}
