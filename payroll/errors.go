/*
errors.go - Centralized error types for the payroll domain

PURPOSE:
  All domain error types in one place for consistency and discoverability.
  Callers match on the sentinels with errors.Is, or extract context with
  errors.As on the structured variants.

ERROR CATEGORIES:
  1. Validation errors - a numeric parameter or required reference failed
     a business constraint (invalid rate)
  2. Uniqueness errors - an add targeted a name already registered
  3. Aggregate errors  - a query that needs at least one entry ran on an
     empty registry

USAGE:
  if errors.Is(err, payroll.ErrDuplicateWorkType) {
      // name collision, registry unchanged
  }

  var dup *payroll.DuplicateWorkTypeError
  if errors.As(err, &dup) {
      fmt.Println(dup.Name)
  }

SEE ALSO:
  - department.go: Raises these errors
  - console/menu.go: Classifies them for display
*/
package payroll

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidRate is returned when a numeric parameter (base pay, bonus
	// percent) or a required reference (name, policy) fails validation.
	ErrInvalidRate = errors.New("invalid rate")

	// ErrDuplicateWorkType is returned when an add operation targets a
	// work type name that is already registered.
	ErrDuplicateWorkType = errors.New("duplicate work type")

	// ErrEmptyWorkList is returned when an aggregate query is attempted
	// with zero registered work types.
	ErrEmptyWorkList = errors.New("work list is empty")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidRateError explains which constraint was violated.
type InvalidRateError struct {
	Reason string
}

func (e *InvalidRateError) Error() string {
	return fmt.Sprintf("invalid rate: %s", e.Reason)
}

func (e *InvalidRateError) Unwrap() error {
	return ErrInvalidRate
}

// DuplicateWorkTypeError names the colliding work type.
type DuplicateWorkTypeError struct {
	Name string
}

func (e *DuplicateWorkTypeError) Error() string {
	return fmt.Sprintf("duplicate work type: work type '%s' already exists", e.Name)
}

func (e *DuplicateWorkTypeError) Unwrap() error {
	return ErrDuplicateWorkType
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsDomainError returns true if the error belongs to the payroll taxonomy.
// The menu loop uses this to distinguish expected domain failures from
// genuinely unexpected ones.
func IsDomainError(err error) bool {
	return errors.Is(err, ErrInvalidRate) ||
		errors.Is(err, ErrDuplicateWorkType) ||
		errors.Is(err, ErrEmptyWorkList)
}
