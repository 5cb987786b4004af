// Package pairs builds maps from sequences by turning every element into a
// key/value pair.
//
// ToMap, ToMapSeq and ToMapSeq2 take a typed transform returning (K, V).
// ToMapAny takes a transform whose result is destructured at run time and
// rejects anything that is not exactly a pair unless WithExtraPositions is
// given. All variants return rop.ErrPreconditionViolation when the transform
// is nil, and keep the last value written for a duplicate key.
package pairs
