// Package chain provides a fluent wrapper around Result[T]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then/ThenTry/Map: move to a new value via a function
// - Send/SendAs: call named methods on the value, one after another
// - SendWith: call named operations from an invoke.Registry
// - ToMap: build a map from a slice via a pair-returning transform
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
