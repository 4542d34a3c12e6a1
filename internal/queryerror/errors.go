// Package queryerror defines the error types surfaced by the ledger query layer.
package queryerror

import (
	"errors"
	"fmt"
)

// NotFoundError reports that a name or key failed to resolve in one of the
// reference tables (accounts, categories, payees, securities).
type NotFoundError struct {
	Entity string
	Name   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.Name)
}

// UnimplementedError reports an operation that is deliberately not supported.
type UnimplementedError struct {
	Op string
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("%s is not implemented", e.Op)
}

// CycleError reports a category whose parent chain never reaches a root.
// The source schema does not guard against this, so resolution must.
type CycleError struct {
	Key int64
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("category %d has a cyclic parent chain", e.Key)
}

// MalformedRowError reports a fetched row that violates an invariant,
// such as a split referencing a category key missing from the tag table.
type MalformedRowError struct {
	Table  string
	Reason string
	Err    error
}

func (e *MalformedRowError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed row in %s: %s: %v", e.Table, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed row in %s: %s", e.Table, e.Reason)
}

func (e *MalformedRowError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
