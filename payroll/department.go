/*
department.go - The work type registry

PURPOSE:
  Department is the single mutation and query surface for work types.
  It validates user input, constructs entities, and persists them
  through a narrow Store interface so the backing collection can be an
  in-memory slice or an in-memory SQLite database interchangeably.

INVARIANTS:
  - Work type names are pairwise distinct (case-sensitive exact match).
  - Insertion order is preserved; listings and averages iterate in the
    order entries were added.
  - A failed add performs no mutation.

LONG NAMES:
  A name over 50 runes triggers a warning log. The add still proceeds;
  length is advisory, not a constraint.

EXAMPLE:
  dept := payroll.NewDepartment(store.NewMemory(), logger)
  err := dept.AddWorkType(ctx, "сварка", decimal.NewFromInt(500), decimal.NewFromInt(10))

SEE ALSO:
  - worktype.go: Entity construction and validation
  - store/memory.go, store/sqlite/sqlite.go: Store implementations
*/
package payroll

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// nameWarnLength is the advisory upper bound on work type name length.
const nameWarnLength = 50

// =============================================================================
// STORE INTERFACE
// =============================================================================

// Store persists work type records in insertion order.
type Store interface {
	// Append adds a record. Returns ErrDuplicateWorkType (possibly
	// wrapped) if a record with the same name already exists.
	Append(ctx context.Context, r Record) error

	// List returns all records in insertion order.
	List(ctx context.Context) ([]Record, error)

	// Exists reports whether a record with the given name is present.
	Exists(ctx context.Context, name string) (bool, error)
}

// =============================================================================
// DEPARTMENT
// =============================================================================

// Department is the payroll work type registry.
type Department struct {
	store Store
	log   zerolog.Logger
}

// NewDepartment creates a registry over the given store.
func NewDepartment(store Store, log zerolog.Logger) *Department {
	return &Department{store: store, log: log}
}

// AddWorkType validates the inputs, constructs a work type, and appends
// it to the registry. A zero bonusPercent selects the NoBonus policy.
func (d *Department) AddWorkType(ctx context.Context, name string, basePay, bonusPercent decimal.Decimal) error {
	if len([]rune(name)) > nameWarnLength {
		d.log.Warn().Str("name", name).Msg("Предупреждение: название типа работ очень длинное")
	}

	exists, err := d.store.Exists(ctx, name)
	if err != nil {
		return fmt.Errorf("checking for existing work type: %w", err)
	}
	if exists {
		return &DuplicateWorkTypeError{Name: name}
	}

	policy, err := PolicyForPercent(bonusPercent)
	if err != nil {
		return err
	}

	// Construction revalidates name and base pay bounds.
	if _, err := NewWorkType(name, basePay, policy); err != nil {
		return err
	}

	record := Record{
		ID:           uuid.NewString(),
		Name:         name,
		BasePay:      basePay,
		BonusPercent: bonusPercent,
	}
	if err := d.store.Append(ctx, record); err != nil {
		return err
	}
	return nil
}

// AveragePay returns the arithmetic mean of all final pays.
// Returns ErrEmptyWorkList when no work types are registered.
func (d *Department) AveragePay(ctx context.Context) (decimal.Decimal, error) {
	records, err := d.store.List(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("loading work types: %w", err)
	}
	if len(records) == 0 {
		return decimal.Zero, fmt.Errorf("cannot calculate average: %w", ErrEmptyWorkList)
	}

	sum := decimal.Zero
	for _, r := range records {
		wt, err := FromRecord(r)
		if err != nil {
			return decimal.Zero, fmt.Errorf("rebuilding work type '%s': %w", r.Name, err)
		}
		sum = sum.Add(wt.FinalPay())
	}
	return sum.Div(decimal.NewFromInt(int64(len(records)))), nil
}

// Listing is one row of the registry view.
type Listing struct {
	Name     string
	BasePay  decimal.Decimal
	FinalPay decimal.Decimal
}

// ListAll returns every work type in insertion order.
// Returns ErrEmptyWorkList when no work types are registered, so the
// caller can render the empty state explicitly.
func (d *Department) ListAll(ctx context.Context) ([]Listing, error) {
	records, err := d.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading work types: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyWorkList
	}

	listings := make([]Listing, 0, len(records))
	for _, r := range records {
		wt, err := FromRecord(r)
		if err != nil {
			return nil, fmt.Errorf("rebuilding work type '%s': %w", r.Name, err)
		}
		listings = append(listings, Listing{
			Name:     wt.Name(),
			BasePay:  wt.BasePay(),
			FinalPay: wt.FinalPay(),
		})
	}
	return listings, nil
}
