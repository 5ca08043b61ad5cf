package budget_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/dailyhub/internal/budget"
	"github.com/MrJamesThe3rd/dailyhub/internal/expense"
	"github.com/MrJamesThe3rd/dailyhub/internal/storage"
)

func newServices(t *testing.T) (*budget.Service, *expense.Service, *storage.Store) {
	t.Helper()

	backend, err := storage.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })

	ctx := context.Background()

	expenses, err := expense.NewService(ctx, backend)
	require.NoError(t, err)
	t.Cleanup(func() { expenses.Close() })

	budgets, err := budget.NewService(ctx, backend, expenses)
	require.NoError(t, err)
	t.Cleanup(func() { budgets.Close() })

	return budgets, expenses, backend
}

func addExpense(t *testing.T, svc *expense.Service, date, category string, amount float64) {
	t.Helper()

	_, err := svc.Add(expense.CreateParams{
		Date:        date,
		Description: "test",
		Category:    category,
		Amount:      amount,
	})
	require.NoError(t, err)
}

func TestService_AddValidation(t *testing.T) {
	budgets, _, _ := newServices(t)

	_, err := budgets.Add(budget.CreateParams{Limit: 100})
	assert.ErrorIs(t, err, budget.ErrEmptyCategory)

	_, err = budgets.Add(budget.CreateParams{Category: "Food", Limit: 0})
	assert.ErrorIs(t, err, budget.ErrInvalidLimit)

	_, err = budgets.Add(budget.CreateParams{Category: "Food", Limit: 100, Period: "yearly"})
	assert.ErrorIs(t, err, budget.ErrInvalidPeriod)

	b, err := budgets.Add(budget.CreateParams{Category: "Food", Limit: 100})
	require.NoError(t, err)
	assert.Equal(t, budget.PeriodMonthly, b.Period)
	assert.Equal(t, budget.DefaultColor, b.Color)
}

func TestService_CategorySpendingWindows(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)

	type testCase struct {
		name   string
		period budget.Period
		want   float64
	}

	budgets, expenses, _ := newServices(t)

	addExpense(t, expenses, "2025-06-15", "Food", 10) // today
	addExpense(t, expenses, "2025-06-10", "Food", 20) // this week, this month
	addExpense(t, expenses, "2025-06-02", "Food", 40) // this month only
	addExpense(t, expenses, "2025-05-20", "Food", 80) // previous month
	addExpense(t, expenses, "2025-06-15", "Transport", 5)

	tests := []testCase{
		{name: "Daily", period: budget.PeriodDaily, want: 10},
		{name: "Weekly", period: budget.PeriodWeekly, want: 30},
		{name: "Monthly", period: budget.PeriodMonthly, want: 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := budgets.CategorySpending("Food", tt.period, now)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestService_CategorySpendingIsCaseInsensitive(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)

	budgets, expenses, _ := newServices(t)

	addExpense(t, expenses, "2025-06-10", "food", 25)
	addExpense(t, expenses, "2025-06-11", "FOOD", 25)

	got := budgets.CategorySpending("Food", budget.PeriodMonthly, now)
	assert.InDelta(t, 50, got, 1e-9)
}

func TestService_StatusesEndToEnd(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)

	budgets, expenses, _ := newServices(t)

	_, err := budgets.Add(budget.CreateParams{Category: "Food", Limit: 100, Period: budget.PeriodMonthly})
	require.NoError(t, err)

	addExpense(t, expenses, "2025-06-10", "Food", 60)

	statuses := budgets.Statuses(now)
	require.Len(t, statuses, 1)
	assert.InDelta(t, 60, statuses[0].Spent, 1e-9)
	assert.InDelta(t, 60, statuses[0].Percentage, 1e-9)
	assert.InDelta(t, 40, statuses[0].Remaining, 1e-9)
	assert.Equal(t, budget.StatusGood, statuses[0].Status)

	// A second expense pushes spending past the limit: percentage is
	// clamped but the status reflects the raw ratio.
	addExpense(t, expenses, "2025-06-12", "Food", 50)

	statuses = budgets.Statuses(now)
	require.Len(t, statuses, 1)
	assert.InDelta(t, 110, statuses[0].Spent, 1e-9)
	assert.InDelta(t, 100, statuses[0].Percentage, 1e-9)
	assert.Equal(t, budget.StatusExceeded, statuses[0].Status)
}

func TestService_StatusThresholds(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)

	budgets, expenses, _ := newServices(t)

	_, err := budgets.Add(budget.CreateParams{Category: "Food", Limit: 100})
	require.NoError(t, err)

	addExpense(t, expenses, "2025-06-10", "Food", 80)

	statuses := budgets.Statuses(now)
	require.Len(t, statuses, 1)
	assert.Equal(t, budget.StatusWarning, statuses[0].Status)

	addExpense(t, expenses, "2025-06-11", "Food", 20)

	statuses = budgets.Statuses(now)
	assert.Equal(t, budget.StatusExceeded, statuses[0].Status)
	assert.InDelta(t, 100, statuses[0].Percentage, 1e-9)
}

func TestService_ZeroLimitFromLegacyDataIsGuarded(t *testing.T) {
	backend, err := storage.OpenMemory()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()

	// A zero limit cannot be created through the API, but old persisted
	// data may still carry one.
	legacy := `[{"id":"b1","category":"Food","limit":0,"period":"monthly","color":"#fff","createdAt":"2025-01-01T00:00:00Z"}]`
	require.NoError(t, backend.Save(ctx, "budgets", []byte(legacy)))

	expenses, err := expense.NewService(ctx, backend)
	require.NoError(t, err)
	defer expenses.Close()

	budgets, err := budget.NewService(ctx, backend, expenses)
	require.NoError(t, err)
	defer budgets.Close()

	addExpense(t, expenses, time.Now().Format(expense.DateLayout), "Food", 50)

	statuses := budgets.Statuses(time.Now())
	require.Len(t, statuses, 1)
	assert.Zero(t, statuses[0].Percentage)
	assert.Equal(t, budget.StatusGood, statuses[0].Status)
}

func TestService_Totals(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)

	budgets, expenses, _ := newServices(t)

	_, err := budgets.Add(budget.CreateParams{Category: "Food", Limit: 100})
	require.NoError(t, err)
	_, err = budgets.Add(budget.CreateParams{Category: "Transport", Limit: 50})
	require.NoError(t, err)

	addExpense(t, expenses, "2025-06-10", "Food", 30)
	addExpense(t, expenses, "2025-06-10", "Fun", 99) // not budgeted
	addExpense(t, expenses, "2025-05-10", "Food", 99) // previous month

	assert.InDelta(t, 150, budgets.TotalLimit(), 1e-9)
	assert.InDelta(t, 30, budgets.TotalSpent(now), 1e-9)
	assert.InDelta(t, 120, budgets.TotalRemaining(now), 1e-9)
}
