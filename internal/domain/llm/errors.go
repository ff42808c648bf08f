package llm

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed provider call. The kinds are produced by the
// provider adapter, never derived from error text inside the domain layer.
type ErrorKind string

const (
	// KindOverflow means the provider rejected the call because the
	// transcript exceeded its context window.
	KindOverflow ErrorKind = "overflow"
	// KindGeneric covers every other failure: network, auth, malformed
	// provider responses.
	KindGeneric ErrorKind = "generic"
)

// CallError wraps a provider failure with its classification.
type CallError struct {
	Kind ErrorKind
	Err  error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("llm call failed (%s): %v", e.Kind, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// NewCallError builds a tagged provider error.
func NewCallError(kind ErrorKind, err error) *CallError {
	return &CallError{Kind: kind, Err: err}
}

// KindOf extracts the classification from an error chain. Untagged errors
// are treated as generic failures.
func KindOf(err error) ErrorKind {
	var callErr *CallError
	if errors.As(err, &callErr) {
		return callErr.Kind
	}
	return KindGeneric
}
