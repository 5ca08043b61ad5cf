package expense_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/dailyhub/internal/expense"
	"github.com/MrJamesThe3rd/dailyhub/internal/storage"
)

func newService(t *testing.T) *expense.Service {
	t.Helper()

	backend, err := storage.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })

	svc, err := expense.NewService(context.Background(), backend)
	require.NoError(t, err)
	t.Cleanup(func() { svc.Close() })

	return svc
}

func TestService_Add(t *testing.T) {
	type testCase struct {
		name    string
		params  expense.CreateParams
		wantErr error
		check   func(t *testing.T, e expense.Expense)
	}

	tests := []testCase{
		{
			name: "Success",
			params: expense.CreateParams{
				Date:        "2025-01-15",
				Description: "Coffee",
				Amount:      5.50,
				Category:    "Food",
			},
			check: func(t *testing.T, e expense.Expense) {
				assert.NotEmpty(t, e.ID)
				assert.Equal(t, "Coffee", e.Description)
				assert.Equal(t, expense.MethodManual, e.Method)
				assert.False(t, e.CreatedAt.IsZero())
			},
		},
		{
			name: "DefaultsApplied",
			params: expense.CreateParams{
				Description: "Snack",
				Amount:      2,
			},
			check: func(t *testing.T, e expense.Expense) {
				assert.Equal(t, expense.DefaultCategory, e.Category)
				assert.NotEmpty(t, e.Date)
			},
		},
		{
			name:    "ZeroAmount",
			params:  expense.CreateParams{Description: "Free", Amount: 0},
			wantErr: expense.ErrInvalidAmount,
		},
		{
			name:    "NegativeAmount",
			params:  expense.CreateParams{Description: "Refund", Amount: -3},
			wantErr: expense.ErrInvalidAmount,
		},
		{
			name:    "EmptyDescription",
			params:  expense.CreateParams{Amount: 1},
			wantErr: expense.ErrEmptyDescription,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(t)

			got, err := svc.Add(tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestService_AddAssignsUniqueIDs(t *testing.T) {
	svc := newService(t)

	seen := make(map[string]struct{})

	for i := 0; i < 50; i++ {
		e, err := svc.Add(expense.CreateParams{Description: "x", Amount: 1})
		require.NoError(t, err)

		_, dup := seen[e.ID]
		require.False(t, dup)
		seen[e.ID] = struct{}{}
	}
}

func TestService_AddBatchDefaultsToCSV(t *testing.T) {
	svc := newService(t)

	got, err := svc.AddBatch([]expense.CreateParams{
		{Date: "2025-01-15", Description: "Coffee", Amount: 5.50},
		{Date: "2025-01-16", Description: "Lunch", Amount: 12},
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, expense.MethodCSV, got[0].Method)

	// Batch order is preserved ahead of older records.
	recs := svc.List()
	require.Len(t, recs, 2)
	assert.Equal(t, "Coffee", recs[0].Description)
}

func TestService_Update(t *testing.T) {
	svc := newService(t)

	e, err := svc.Add(expense.CreateParams{Description: "Coffee", Amount: 5})
	require.NoError(t, err)

	amount := 7.25
	category := "Drinks"
	require.NoError(t, svc.Update(e.ID, expense.Patch{Amount: &amount, Category: &category}))

	got, err := svc.Get(e.ID)
	require.NoError(t, err)
	assert.Equal(t, 7.25, got.Amount)
	assert.Equal(t, "Drinks", got.Category)
	assert.Equal(t, "Coffee", got.Description)

	assert.ErrorIs(t, svc.Update("missing", expense.Patch{}), expense.ErrNotFound)

	bad := -1.0
	assert.ErrorIs(t, svc.Update(e.ID, expense.Patch{Amount: &bad}), expense.ErrInvalidAmount)
}

func TestService_DeleteIsIdempotent(t *testing.T) {
	svc := newService(t)

	e, err := svc.Add(expense.CreateParams{Description: "Coffee", Amount: 5})
	require.NoError(t, err)

	svc.Delete(e.ID)
	svc.Delete(e.ID)

	assert.Empty(t, svc.List())
}

func TestService_Totals(t *testing.T) {
	svc := newService(t)

	assert.Zero(t, svc.Total())

	add := func(date, desc, cat string, amount float64) {
		_, err := svc.Add(expense.CreateParams{Date: date, Description: desc, Category: cat, Amount: amount})
		require.NoError(t, err)
	}

	add("2025-01-15", "Coffee", "Food", 5.50)
	add("2025-01-20", "Lunch", "Food", 12)
	add("2025-02-01", "Bus", "Transport", 2.50)

	assert.InDelta(t, 20.0, svc.Total(), 1e-9)

	byCat := svc.TotalByCategory()
	assert.InDelta(t, 17.5, byCat["Food"], 1e-9)
	assert.InDelta(t, 2.5, byCat["Transport"], 1e-9)

	byMonth := svc.TotalByMonth()
	assert.InDelta(t, 17.5, byMonth["2025-01"], 1e-9)
	assert.InDelta(t, 2.5, byMonth["2025-02"], 1e-9)
}

func TestService_PersistsAcrossReload(t *testing.T) {
	backend, err := storage.OpenMemory()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()

	svc, err := expense.NewService(ctx, backend)
	require.NoError(t, err)

	_, err = svc.Add(expense.CreateParams{Description: "Coffee", Amount: 5.5})
	require.NoError(t, err)
	require.NoError(t, svc.Close())

	reloaded, err := expense.NewService(ctx, backend)
	require.NoError(t, err)
	defer reloaded.Close()

	recs := reloaded.List()
	require.Len(t, recs, 1)
	assert.Equal(t, "Coffee", recs[0].Description)
}
