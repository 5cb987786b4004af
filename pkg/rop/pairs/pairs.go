package pairs

import (
	"iter"

	"github.com/ib-77/sendchain/pkg/rop"
)

// ToMap builds a map by calling transform once per element of seq, in order.
// A later element overwrites an earlier one with the same key.
func ToMap[E any, K comparable, V any](seq []E, transform func(E) (K, V)) (map[K]V, error) {
	if transform == nil {
		return nil, errNoTransform()
	}

	m := make(map[K]V, len(seq))
	for _, e := range seq {
		k, v := transform(e)
		m[k] = v
	}
	return m, nil
}

// ToMapSeq is ToMap over an iterator. A nil seq is treated as empty.
func ToMapSeq[E any, K comparable, V any](seq iter.Seq[E], transform func(E) (K, V)) (map[K]V, error) {
	if transform == nil {
		return nil, errNoTransform()
	}

	m := make(map[K]V)
	if seq == nil {
		return m, nil
	}
	for e := range seq {
		k, v := transform(e)
		m[k] = v
	}
	return m, nil
}

// ToMapSeq2 is ToMap over a two-value iterator such as maps.All or slices.All.
func ToMapSeq2[A, B any, K comparable, V any](seq iter.Seq2[A, B], transform func(A, B) (K, V)) (map[K]V, error) {
	if transform == nil {
		return nil, errNoTransform()
	}

	m := make(map[K]V)
	if seq == nil {
		return m, nil
	}
	for a, b := range seq {
		k, v := transform(a, b)
		m[k] = v
	}
	return m, nil
}

func errNoTransform() error {
	return rop.Precondition("transform function is required")
}
