// Package errs defines the typed failures surfaced by the controllers.
package errs

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ErrInvalidDate marks a date or timestamp string that failed to parse
// against its expected layout.
var ErrInvalidDate = errors.New("invalid date")

// InvalidValueError reports a lookup that matched no row.
type InvalidValueError struct {
	Fields []string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value: %v", e.Fields)
}

// ForeignKeyError reports an insert/update rejected by a foreign-key
// constraint. Message carries the driver text verbatim.
type ForeignKeyError struct {
	Message string
}

func (e *ForeignKeyError) Error() string {
	return fmt.Sprintf("invalid foreign key: %s", e.Message)
}

// NullValuesError reports required request fields that were missing or
// unparseable at the binding layer.
type NullValuesError struct {
	Fields []string
}

func (e *NullValuesError) Error() string {
	return fmt.Sprintf("these fields must be filled: %v", e.Fields)
}

// MissingReferenceError reports a dangling foreign key discovered while
// resolving a related entity's display name.
type MissingReferenceError struct {
	Entity string
	ID     int32
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("%s %d referenced but not found", e.Entity, e.ID)
}

// InternalError wraps an unexpected database/driver failure. The process
// stays alive; the cause is logged by the caller.
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string { return "internal error: " + e.Err.Error() }
func (e *InternalError) Unwrap() error { return e.Err }

// NotFound builds the canonical lookup-by-id failure.
func NotFound() error {
	return &InvalidValueError{Fields: []string{"Id"}}
}

// IsNotFound reports whether err is a missing-row failure.
func IsNotFound(err error) bool {
	var iv *InvalidValueError
	return errors.As(err, &iv)
}

// FromDB maps a gorm/driver error to the taxonomy. Record-not-found becomes
// InvalidValueError{Id}; foreign-key violations (mysql 1451/1452, postgres
// 23503, sqlite constraint text) become ForeignKeyError; anything else is an
// InternalError.
func FromDB(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound()
	}
	msg := err.Error()
	lower := strings.ToLower(msg)
	if strings.Contains(lower, "foreign key") || strings.Contains(lower, "1452") || strings.Contains(lower, "23503") {
		return &ForeignKeyError{Message: msg}
	}
	return &InternalError{Err: err}
}
