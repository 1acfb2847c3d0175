package core

import (
	"errors"
	"fmt"
)

// Sentinel classes. Concrete errors returned by any numdom package wrap
// one of these via %w so callers can branch with errors.Is regardless of
// which package raised the error.
var (
	// ErrDimensionIncompatible is the sentinel behind every DimensionError.
	ErrDimensionIncompatible = errors.New("core: dimension incompatible")

	// ErrLength is the sentinel behind every LengthError (space-dimension overflow).
	ErrLength = errors.New("core: length error")

	// ErrInvalidArgument is the sentinel behind every InvalidArgumentError.
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrRuntime is the sentinel behind every RuntimeError (internal consistency failure).
	ErrRuntime = errors.New("core: runtime error")

	// ErrAbandoned is returned when an abandon callback or context cancellation
	// unwinds a long-running operation.
	ErrAbandoned = errors.New("core: operation abandoned")
)

// DimensionError reports that two objects participating in an operation
// have incompatible space dimensions.
type DimensionError struct {
	Method   string
	LHSDim   int
	RHSDim   int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: dimension incompatible (%d vs %d)", e.Method, e.LHSDim, e.RHSDim)
}

// Unwrap lets errors.Is(err, ErrDimensionIncompatible) succeed.
func (e *DimensionError) Unwrap() error { return ErrDimensionIncompatible }

// NewDimensionError builds a DimensionError. Callers should construct it
// at the point the mismatch is detected, before any mutation is committed.
func NewDimensionError(method string, lhsDim, rhsDim int) error {
	return &DimensionError{Method: method, LHSDim: lhsDim, RHSDim: rhsDim}
}

// LengthError reports that a requested space dimension exceeds the
// platform-defined maximum.
type LengthError struct {
	Method string
	Reason string
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s: length error: %s", e.Method, e.Reason)
}

func (e *LengthError) Unwrap() error { return ErrLength }

// NewLengthError builds a LengthError.
func NewLengthError(method, reason string) error {
	return &LengthError{Method: method, Reason: reason}
}

// InvalidArgumentError reports a disallowed argument combination: a
// NOT_EQUAL relation symbol, a zero divisor, a strict inequality offered
// to a topologically-closed domain, a generator system with no point, and
// similar documented preconditions.
type InvalidArgumentError struct {
	Method string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: invalid argument: %s", e.Method, e.Reason)
}

func (e *InvalidArgumentError) Unwrap() error { return ErrInvalidArgument }

// NewInvalidArgumentError builds an InvalidArgumentError.
func NewInvalidArgumentError(method, reason string) error {
	return &InvalidArgumentError{Method: method, Reason: reason}
}

// RuntimeError reports an internal consistency failure: a path the
// implementation believes unreachable given its own invariants. Such a
// path is only reachable through a broken invariant; an implementation is
// permitted to panic instead, but numdom always returns it so library
// consumers never see their process aborted.
type RuntimeError struct {
	Method string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s: internal consistency failure", e.Method)
}

func (e *RuntimeError) Unwrap() error { return ErrRuntime }

// NewRuntimeError builds a RuntimeError.
func NewRuntimeError(method string) error {
	return &RuntimeError{Method: method}
}

// AbandonedError reports that an operation was unwound by context
// cancellation or an explicit abandon callback before it could commit.
type AbandonedError struct {
	Method string
	Cause  error
}

func (e *AbandonedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: abandoned: %v", e.Method, e.Cause)
	}
	return fmt.Sprintf("%s: abandoned", e.Method)
}

func (e *AbandonedError) Unwrap() error { return ErrAbandoned }

// NewAbandonedError builds an AbandonedError.
func NewAbandonedError(method string, cause error) error {
	return &AbandonedError{Method: method, Cause: cause}
}
