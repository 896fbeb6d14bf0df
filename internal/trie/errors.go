package trie

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument wraps every argument-validation failure: empty key or
// query, negative tolerance, a wildcard in a stored key, and similar
// caller-side mistakes. Use errors.Is(err, ErrInvalidArgument) to detect it.
var ErrInvalidArgument = errors.New("trie: invalid argument")

// ErrNotFound is returned by Remove when the exact key is absent. Get
// reports an absent key with ok=false and a nil error, and searches return
// an empty result sequence instead of this error.
var ErrNotFound = errors.New("trie: not found")

// InvariantViolation reports a broken structural invariant of the trie. It
// is a programmer error: the operation that hits it panics rather than
// returning, and nothing in this package recovers from it.
type InvariantViolation struct {
	msg string
}

func (e *InvariantViolation) Error() string {
	return "trie: invariant violation: " + e.msg
}

func invariantViolation(format string, args ...any) error {
	return &InvariantViolation{msg: fmt.Sprintf(format, args...)}
}

func panicInvariant(format string, args ...any) {
	panic(invariantViolation(format, args...))
}

func invalidArgf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidArgument)
}
