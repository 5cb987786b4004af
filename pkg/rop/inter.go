package rop

import "time"

type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithCancel is the read side of a Result
type WithCancel[T any] interface {
	ResultProvider[T]
	// Err returns the error if operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// IsCancel returns true if the operation was cancelled
	IsCancel() bool
}

// Dispatcher threads a value through named operations on T
type Dispatcher[T any] interface {
	Chain(value T, names ...string) (T, error)
}

var _ WithCancel[int] = Result[int]{}
