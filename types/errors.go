package types

import (
	"errors"
	"fmt"
)

// ErrNotFound reports an operation on an ID that is absent from its
// collection. It is always surfaced to the caller, never swallowed.
var ErrNotFound = errors.New("not found")

// ErrReferenceNotFound reports a create or update whose foreign key does
// not resolve to an existing record.
var ErrReferenceNotFound = errors.New("referenced entity not found")

// PersistenceError reports a failed durable write. The in-memory change
// has already been applied when this is returned; callers can warn the
// user or retry the save without losing the operation's result.
type PersistenceError struct {
	Slot string
	Op   string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure on slot %q during %s: %v", e.Slot, e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
