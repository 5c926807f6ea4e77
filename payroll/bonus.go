/*
bonus.go - Bonus policy variants

PURPOSE:
  A work type's final pay is its base pay run through a bonus policy.
  Two policies exist:

  NoBonus:
    - Identity: final pay equals base pay
    - No parameters, nothing to validate

  PercentageBonus:
    - final pay = base pay * (1 + percent/100)
    - percent constrained to [0, 100]

SELECTION RULE:
  PolicyForPercent treats an exactly-zero percent as NoBonus rather than
  PercentageBonus(0). The two are behaviorally identical; zero simply
  means "no bonus was requested".

PRECISION:
  All arithmetic uses decimal.Decimal. percent=100 doubles the base pay
  exactly, percent=0 returns it bit-for-bit.

SEE ALSO:
  - worktype.go: Entities own exactly one policy
  - department.go: Builds policies from user-supplied percentages
*/
package payroll

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// POLICY CONTRACT
// =============================================================================

// BonusPolicy computes final pay from base pay.
type BonusPolicy interface {
	ComputePay(basePay decimal.Decimal) decimal.Decimal
}

// MaxBonusPercent is the upper bound for a percentage bonus.
var MaxBonusPercent = decimal.NewFromInt(100)

var percentDivisor = decimal.NewFromInt(100)

// =============================================================================
// NO BONUS
// =============================================================================

// NoBonus leaves the base pay unchanged.
type NoBonus struct{}

func (NoBonus) ComputePay(basePay decimal.Decimal) decimal.Decimal {
	return basePay
}

// =============================================================================
// PERCENTAGE BONUS
// =============================================================================

// PercentageBonus adds a fixed percentage on top of the base pay.
type PercentageBonus struct {
	percent decimal.Decimal
}

// NewPercentageBonus validates the percentage and builds the policy.
func NewPercentageBonus(percent decimal.Decimal) (PercentageBonus, error) {
	if percent.IsNegative() {
		return PercentageBonus{}, &InvalidRateError{Reason: "bonus percent must be >= 0"}
	}
	if percent.GreaterThan(MaxBonusPercent) {
		return PercentageBonus{}, &InvalidRateError{Reason: "bonus percent cannot exceed 100%"}
	}
	return PercentageBonus{percent: percent}, nil
}

// Percent returns the configured bonus percentage.
func (p PercentageBonus) Percent() decimal.Decimal {
	return p.percent
}

func (p PercentageBonus) ComputePay(basePay decimal.Decimal) decimal.Decimal {
	factor := decimal.NewFromInt(1).Add(p.percent.Div(percentDivisor))
	return basePay.Mul(factor)
}

// =============================================================================
// SELECTION
// =============================================================================

// PolicyForPercent picks the policy for a user-supplied bonus percentage:
// exactly zero selects NoBonus, anything else a validated PercentageBonus.
func PolicyForPercent(percent decimal.Decimal) (BonusPolicy, error) {
	if percent.IsZero() {
		return NoBonus{}, nil
	}
	policy, err := NewPercentageBonus(percent)
	if err != nil {
		return nil, err
	}
	return policy, nil
}
