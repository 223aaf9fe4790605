package selector

import (
	"errors"
	"fmt"
)

// ErrIDOutOfRange indicates an id filter outside 1..catalog size.
var ErrIDOutOfRange = errors.New("id out of range")

// IDRangeError provides context for an out of range id.
type IDRangeError struct {
	ID  int
	Max int
}

// Error implements the error interface.
func (e *IDRangeError) Error() string {
	return fmt.Sprintf("no quote with id %d (valid ids are 1 to %d)", e.ID, e.Max)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *IDRangeError) Unwrap() error {
	return ErrIDOutOfRange
}

// IsIDOutOfRange checks if an error is an out of range id error.
func IsIDOutOfRange(err error) bool {
	return errors.Is(err, ErrIDOutOfRange)
}
