package budget

import (
	"context"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/dailyhub/internal/expense"
	"github.com/MrJamesThe3rd/dailyhub/internal/feature"
)

const storageKey = "budgets"

// ExpenseSource yields the expense list budget views are computed
// against. Satisfied by *expense.Service.
type ExpenseSource interface {
	List() []expense.Expense
}

// Service owns the budget list. Spending is never stored: it is
// recomputed from the expense source on every status call.
type Service struct {
	store    *feature.Store[Budget]
	expenses ExpenseSource
	now      func() time.Time
}

func NewService(ctx context.Context, backend feature.Backend, expenses ExpenseSource) (*Service, error) {
	store, err := feature.New[Budget](ctx, backend, storageKey)
	if err != nil {
		return nil, err
	}

	return &Service{store: store, expenses: expenses, now: time.Now}, nil
}

type CreateParams struct {
	Category string
	Limit    float64
	Period   Period
	Color    string
}

func (s *Service) Add(params CreateParams) (Budget, error) {
	if params.Category == "" {
		return Budget{}, ErrEmptyCategory
	}

	if params.Limit <= 0 {
		return Budget{}, ErrInvalidLimit
	}

	period := params.Period
	if period == "" {
		period = PeriodMonthly
	}

	if !period.valid() {
		return Budget{}, ErrInvalidPeriod
	}

	color := params.Color
	if color == "" {
		color = DefaultColor
	}

	return s.store.Add(Budget{
		ID:        feature.NewID(),
		Category:  params.Category,
		Limit:     params.Limit,
		Period:    period,
		Color:     color,
		CreatedAt: s.now(),
	}), nil
}

type Patch struct {
	Category *string
	Limit    *float64
	Period   *Period
	Color    *string
}

func (s *Service) Update(id string, patch Patch) error {
	if patch.Limit != nil && *patch.Limit <= 0 {
		return ErrInvalidLimit
	}

	if patch.Period != nil && !patch.Period.valid() {
		return ErrInvalidPeriod
	}

	if patch.Category != nil && *patch.Category == "" {
		return ErrEmptyCategory
	}

	ok := s.store.Update(id, func(b Budget) Budget {
		if patch.Category != nil {
			b.Category = *patch.Category
		}
		if patch.Limit != nil {
			b.Limit = *patch.Limit
		}
		if patch.Period != nil {
			b.Period = *patch.Period
		}
		if patch.Color != nil {
			b.Color = *patch.Color
		}

		return b
	})
	if !ok {
		return ErrNotFound
	}

	return nil
}

func (s *Service) Delete(id string) {
	s.store.Remove(id)
}

func (s *Service) Get(id string) (Budget, error) {
	b, ok := s.store.Get(id)
	if !ok {
		return Budget{}, ErrNotFound
	}

	return b, nil
}

func (s *Service) List() []Budget {
	return s.store.All()
}

// Status classifies how far spending has progressed against a limit.
type Status string

const (
	StatusGood     Status = "good"
	StatusWarning  Status = "warning"
	StatusExceeded Status = "exceeded"
)

// BudgetStatus is a budget joined with its recomputed spending.
type BudgetStatus struct {
	Budget
	Spent      float64 `json:"spent"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
	Status     Status  `json:"status"`
}

// CategorySpending sums expenses whose category matches
// case-insensitively and whose date falls inside the period window
// ending at now.
func (s *Service) CategorySpending(category string, period Period, now time.Time) float64 {
	start := period.windowStart(now)

	var sum float64

	for _, e := range s.expenses.List() {
		if !strings.EqualFold(e.Category, category) {
			continue
		}

		day, ok := e.Day()
		if !ok {
			continue
		}

		if !day.Before(start) {
			sum += e.Amount
		}
	}

	return sum
}

// Statuses recomputes spending for every budget. Percentage is clamped
// to [0,100]; status uses the raw ratio, so spending at exactly the
// limit reads exceeded.
func (s *Service) Statuses(now time.Time) []BudgetStatus {
	budgets := s.store.All()
	out := make([]BudgetStatus, 0, len(budgets))

	for _, b := range budgets {
		spent := s.CategorySpending(b.Category, b.Period, now)

		var raw float64
		if b.Limit > 0 {
			raw = spent / b.Limit * 100
		}

		status := StatusGood

		switch {
		case raw >= 100:
			status = StatusExceeded
		case raw >= 80:
			status = StatusWarning
		}

		out = append(out, BudgetStatus{
			Budget:     b,
			Spent:      spent,
			Remaining:  b.Limit - spent,
			Percentage: min(raw, 100),
			Status:     status,
		})
	}

	return out
}

// TotalLimit sums every budget's limit.
func (s *Service) TotalLimit() float64 {
	var sum float64
	for _, b := range s.store.All() {
		sum += b.Limit
	}

	return sum
}

// TotalSpent sums this month's expenses across budgeted categories.
func (s *Service) TotalSpent(now time.Time) float64 {
	budgeted := make(map[string]struct{})
	for _, b := range s.store.All() {
		budgeted[strings.ToLower(b.Category)] = struct{}{}
	}

	start := PeriodMonthly.windowStart(now)

	var sum float64

	for _, e := range s.expenses.List() {
		if _, ok := budgeted[strings.ToLower(e.Category)]; !ok {
			continue
		}

		day, ok := e.Day()
		if !ok {
			continue
		}

		if !day.Before(start) {
			sum += e.Amount
		}
	}

	return sum
}

// TotalRemaining is the total limit minus this month's spending.
func (s *Service) TotalRemaining(now time.Time) float64 {
	return s.TotalLimit() - s.TotalSpent(now)
}

func (s *Service) Flush(ctx context.Context) error {
	return s.store.Flush(ctx)
}

func (s *Service) Close() error {
	return s.store.Close()
}
