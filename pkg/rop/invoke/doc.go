// Package invoke threads a value through a sequence of named zero-argument
// operations.
//
// Chain resolves names against the exported methods of the current value
// with reflection; Registry does the same against an explicit, typed table
// of operations. Both stop at the first name that cannot be resolved and
// report it as rop.ErrMethodNotFound.
//
// Key operations:
// - Chain/ChainWith: reflection dispatch, result as any
// - ChainAs: reflection dispatch with a typed result
// - CanInvoke: check a name without calling it
// - Methods: Chain as a typed rop.Dispatcher
// - Registry: Register/RegisterTry/Lookup/Names/Chain
// - RegistryFor: registry populated from T's own methods
package invoke
