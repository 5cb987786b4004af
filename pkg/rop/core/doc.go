// Package core carries helper configuration through context.Context so the
// railway packages (solo, chain) can be tuned without changing their
// signatures: pair destructuring strictness and pointer-receiver fallback.
package core
