// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T], including railway versions of the invoke and pairs helpers.
//
// Highlights:
// - Succeed/Fail/Cancel: construct Result[T]
// - Switch/Map/Try: move from Result[In] to Result[Out]
// - Tee: side effects on success
// - Finally: reduce to a concrete value via success/error/cancel handlers
// - Send/SendAs/SendWith: thread a successful value through named operations
// - ToMap/ToMapAny: build a map from a successful slice
//
// Steps are traced at debug level through the zerolog logger attached to the
// context, if any.
package solo
