package store_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/payroll-registry/payroll"
	"github.com/warp/payroll-registry/store"
)

func record(id, name string, basePay float64) payroll.Record {
	return payroll.Record{
		ID:      id,
		Name:    name,
		BasePay: decimal.NewFromFloat(basePay),
	}
}

func TestMemory_AppendAndList_InsertionOrder(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()

	require.NoError(t, st.Append(ctx, record("1", "сварка", 500)))
	require.NoError(t, st.Append(ctx, record("2", "монтаж", 300)))
	require.NoError(t, st.Append(ctx, record("3", "уборка", 100)))

	records, err := st.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "сварка", records[0].Name)
	assert.Equal(t, "монтаж", records[1].Name)
	assert.Equal(t, "уборка", records[2].Name)
}

func TestMemory_Append_DuplicateName_Rejected(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()

	require.NoError(t, st.Append(ctx, record("1", "сварка", 500)))

	err := st.Append(ctx, record("2", "сварка", 700))
	assert.ErrorIs(t, err, payroll.ErrDuplicateWorkType)

	records, err := st.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestMemory_Exists(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()

	require.NoError(t, st.Append(ctx, record("1", "сварка", 500)))

	ok, err := st.Exists(ctx, "сварка")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = st.Exists(ctx, "монтаж")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemory_List_ReturnsCopy(t *testing.T) {
	// Mutating the returned slice must not affect the store.
	st := store.NewMemory()
	ctx := context.Background()

	require.NoError(t, st.Append(ctx, record("1", "сварка", 500)))

	records, err := st.List(ctx)
	require.NoError(t, err)
	records[0].Name = "mutated"

	records2, err := st.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "сварка", records2[0].Name)
}
