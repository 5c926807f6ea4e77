package payroll_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/payroll-registry/payroll"
)

// =============================================================================
// CONSTRUCTION VALIDATION
// =============================================================================

func TestNewWorkType_ValidInputs(t *testing.T) {
	wt, err := payroll.NewWorkType("сварка", pay(500), payroll.NoBonus{})
	require.NoError(t, err)

	assert.Equal(t, "сварка", wt.Name())
	assert.True(t, wt.BasePay().Equal(pay(500)))
	assert.True(t, wt.FinalPay().Equal(pay(500)))
}

func TestNewWorkType_RejectsInvalidInputs(t *testing.T) {
	cases := []struct {
		name    string
		wtName  string
		basePay float64
		policy  payroll.BonusPolicy
	}{
		{"empty name", "", 10, payroll.NoBonus{}},
		{"zero base pay", "x", 0, payroll.NoBonus{}},
		{"negative base pay", "x", -5, payroll.NoBonus{}},
		{"base pay above limit", "x", 1_000_001, payroll.NoBonus{}},
		{"nil policy", "x", 10, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := payroll.NewWorkType(tc.wtName, pay(tc.basePay), tc.policy)
			assert.ErrorIs(t, err, payroll.ErrInvalidRate)
		})
	}
}

func TestNewWorkType_AcceptsBasePayAtLimit(t *testing.T) {
	// 1,000,000 is inside the bound, not above it.
	wt, err := payroll.NewWorkType("x", pay(1_000_000), payroll.NoBonus{})
	require.NoError(t, err)
	assert.True(t, wt.BasePay().Equal(pay(1_000_000)))
}

// =============================================================================
// FINAL PAY THROUGH THE POLICY
// =============================================================================

func TestWorkType_FinalPayUsesPolicy(t *testing.T) {
	// GIVEN: A work type with a 50% bonus
	// WHEN: Reading final pay
	// THEN: 200 base becomes 300

	policy, err := payroll.NewPercentageBonus(pay(50))
	require.NoError(t, err)

	wt, err := payroll.NewWorkType("монтаж", pay(200), policy)
	require.NoError(t, err)

	assert.True(t, wt.FinalPay().Equal(pay(300)))
	assert.True(t, wt.BasePay().Equal(pay(200)), "base pay stays unmodified")
}

// =============================================================================
// RECORD ROUND-TRIP
// =============================================================================

func TestFromRecord_RebuildsEntity(t *testing.T) {
	wt, err := payroll.FromRecord(payroll.Record{
		ID:           "rec-1",
		Name:         "покраска",
		BasePay:      pay(100),
		BonusPercent: pay(10),
	})
	require.NoError(t, err)

	assert.Equal(t, "покраска", wt.Name())
	assert.True(t, wt.FinalPay().Equal(pay(110)))
}

func TestFromRecord_ZeroPercentMeansNoBonus(t *testing.T) {
	wt, err := payroll.FromRecord(payroll.Record{
		ID:      "rec-2",
		Name:    "уборка",
		BasePay: pay(75.5),
	})
	require.NoError(t, err)

	assert.True(t, wt.FinalPay().Equal(pay(75.5)))
}

func TestFromRecord_PropagatesValidation(t *testing.T) {
	_, err := payroll.FromRecord(payroll.Record{
		ID:      "rec-3",
		Name:    "",
		BasePay: pay(10),
	})
	assert.ErrorIs(t, err, payroll.ErrInvalidRate)
}
