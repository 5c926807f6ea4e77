/*
worktype.go - The WorkType entity and its storable form

PURPOSE:
  A WorkType is an immutable named pay category: a unique name, a base
  pay amount, and exactly one bonus policy. Final pay is computed on
  demand through the policy; since both the entity and the policy are
  immutable, this is equivalent to caching it.

TWO REPRESENTATIONS:
  WorkType - the live entity with a polymorphic policy attached.
  Record   - the flat storable form (id, name, base pay, bonus percent)
             that Store implementations persist.

  FromRecord rebuilds the entity from its record, reconstructing the
  policy from the stored percentage.

VALIDATION:
  NewWorkType rejects (with ErrInvalidRate):
  - empty name
  - base pay <= 0
  - base pay > 1,000,000
  - nil policy

SEE ALSO:
  - bonus.go: Policy variants
  - department.go: The only place entities are created from user input
*/
package payroll

import (
	"github.com/shopspring/decimal"
)

// MaxBasePay is the upper bound for a work type's base pay.
var MaxBasePay = decimal.NewFromInt(1_000_000)

// =============================================================================
// RECORD - Flat storable form
// =============================================================================

// Record is the persisted shape of a work type.
type Record struct {
	ID           string
	Name         string
	BasePay      decimal.Decimal
	BonusPercent decimal.Decimal
}

// =============================================================================
// WORK TYPE ENTITY
// =============================================================================

// WorkType is an immutable pay category. Construct via NewWorkType.
type WorkType struct {
	name    string
	basePay decimal.Decimal
	policy  BonusPolicy
}

// NewWorkType validates the inputs and builds the entity.
func NewWorkType(name string, basePay decimal.Decimal, policy BonusPolicy) (*WorkType, error) {
	if name == "" {
		return nil, &InvalidRateError{Reason: "work type name must not be empty"}
	}
	if !basePay.IsPositive() {
		return nil, &InvalidRateError{Reason: "base pay must be > 0"}
	}
	if basePay.GreaterThan(MaxBasePay) {
		return nil, &InvalidRateError{Reason: "base pay cannot exceed 1,000,000"}
	}
	if policy == nil {
		return nil, &InvalidRateError{Reason: "bonus policy must not be nil"}
	}
	return &WorkType{name: name, basePay: basePay, policy: policy}, nil
}

// FromRecord rebuilds the entity from its stored form.
func FromRecord(r Record) (*WorkType, error) {
	policy, err := PolicyForPercent(r.BonusPercent)
	if err != nil {
		return nil, err
	}
	return NewWorkType(r.Name, r.BasePay, policy)
}

// Name returns the unique work type name.
func (w *WorkType) Name() string {
	return w.name
}

// BasePay returns the unmodified pay amount.
func (w *WorkType) BasePay() decimal.Decimal {
	return w.basePay
}

// FinalPay returns the base pay with the bonus policy applied.
func (w *WorkType) FinalPay() decimal.Decimal {
	return w.policy.ComputePay(w.basePay)
}
