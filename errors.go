package networth

import (
	"fmt"
	"strings"
)

// This file defines the failure kinds returned by registry and store
// operations. Every mutation validates first and returns one of these typed
// errors before any state is touched, so callers can branch on the kind with
// errors.As and report the offending id or date to the user.

// NotFoundError reports a reference to an unknown id or date.
type NotFoundError struct {
	Kind string // "category", "item" or "snapshot"
	ID   string // the offending id, or the date for snapshots
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// DuplicateDateError reports an attempt to add a second snapshot on a date.
type DuplicateDateError struct {
	Date Date
}

func (e DuplicateDateError) Error() string {
	return fmt.Sprintf("a snapshot already exists on %s", e.Date)
}

// DuplicateNameError reports a category name collision. Name uniqueness is
// advisory: the error is returned on creation, but a loaded document with
// duplicate names is still accepted.
type DuplicateNameError struct {
	Name string
}

func (e DuplicateNameError) Error() string {
	return fmt.Sprintf("a category named %q already exists", e.Name)
}

// InUseError reports a deletion blocked by live references.
type InUseError struct {
	Kind string   // what was being deleted
	ID   string   // its id
	Refs []string // ids of the entities still referencing it
}

func (e InUseError) Error() string {
	return fmt.Sprintf("cannot delete %s %q: still referenced by %s", e.Kind, e.ID, strings.Join(e.Refs, ", "))
}

// ImmutableFieldError reports an update to a field that is frozen once the
// item has recorded balances.
type ImmutableFieldError struct {
	ItemID string
	Field  string
}

func (e ImmutableFieldError) Error() string {
	return fmt.Sprintf("cannot change %s of item %q: it has recorded balances", e.Field, e.ItemID)
}

// ConflictError reports a merge that would silently lose data.
type ConflictError struct {
	KeepID string
	DropID string
	Dates  []Date // dates where both items have a balance
	Reason string // set when the conflict is not date-based
}

func (e ConflictError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("cannot merge %q into %q: %s", e.DropID, e.KeepID, e.Reason)
	}
	days := make([]string, len(e.Dates))
	for i, d := range e.Dates {
		days[i] = d.String()
	}
	return fmt.Sprintf("cannot merge %q into %q: both have a balance on %s", e.DropID, e.KeepID, strings.Join(days, ", "))
}

// LoadError reports every integrity violation found in a document, not just
// the first, so a hand-edited file can be fixed in one pass.
type LoadError struct {
	Violations []error
}

func (e LoadError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Error()
	}
	return fmt.Sprintf("document failed %d integrity check(s):\n  %s", len(e.Violations), strings.Join(msgs, "\n  "))
}

// Unwrap exposes the individual violations to errors.Is and errors.As.
func (e LoadError) Unwrap() []error { return e.Violations }

// loadError returns nil when there are no violations.
func loadError(violations []error) error {
	if len(violations) == 0 {
		return nil
	}
	return LoadError{Violations: violations}
}
