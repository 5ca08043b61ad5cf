package expense

import (
	"context"
	"time"

	"github.com/MrJamesThe3rd/dailyhub/internal/feature"
)

const storageKey = "expenses"

// Service owns the expense list and its derived views.
type Service struct {
	store *feature.Store[Expense]
	now   func() time.Time
}

func NewService(ctx context.Context, backend feature.Backend) (*Service, error) {
	store, err := feature.New[Expense](ctx, backend, storageKey)
	if err != nil {
		return nil, err
	}

	return &Service{store: store, now: time.Now}, nil
}

type CreateParams struct {
	Date        string
	Description string
	Amount      float64
	Category    string
	Method      Method
	Notes       string
}

func (p CreateParams) validate() error {
	if p.Amount <= 0 {
		return ErrInvalidAmount
	}

	if p.Description == "" {
		return ErrEmptyDescription
	}

	return nil
}

// Add validates params, fills defaults and prepends a new expense.
func (s *Service) Add(params CreateParams) (Expense, error) {
	if err := params.validate(); err != nil {
		return Expense{}, err
	}

	return s.store.Add(s.build(params, MethodManual)), nil
}

// AddBatch imports many expenses with a single persistence write.
// Unspecified methods default to csv, matching the import path.
func (s *Service) AddBatch(params []CreateParams) ([]Expense, error) {
	recs := make([]Expense, 0, len(params))

	for _, p := range params {
		if err := p.validate(); err != nil {
			return nil, err
		}

		recs = append(recs, s.build(p, MethodCSV))
	}

	return s.store.AddBatch(recs), nil
}

func (s *Service) build(p CreateParams, defaultMethod Method) Expense {
	now := s.now()

	date := p.Date
	if date == "" {
		date = now.Format(DateLayout)
	}

	category := p.Category
	if category == "" {
		category = DefaultCategory
	}

	method := p.Method
	if method == "" {
		method = defaultMethod
	}

	return Expense{
		ID:          feature.NewID(),
		Date:        date,
		Description: p.Description,
		Amount:      p.Amount,
		Category:    category,
		Method:      method,
		Notes:       p.Notes,
		CreatedAt:   now,
	}
}

// Patch carries the fields an update may change; nil fields are kept.
type Patch struct {
	Date        *string
	Description *string
	Amount      *float64
	Category    *string
	Notes       *string
}

func (s *Service) Update(id string, patch Patch) error {
	if patch.Amount != nil && *patch.Amount <= 0 {
		return ErrInvalidAmount
	}

	if patch.Description != nil && *patch.Description == "" {
		return ErrEmptyDescription
	}

	ok := s.store.Update(id, func(e Expense) Expense {
		if patch.Date != nil {
			e.Date = *patch.Date
		}
		if patch.Description != nil {
			e.Description = *patch.Description
		}
		if patch.Amount != nil {
			e.Amount = *patch.Amount
		}
		if patch.Category != nil {
			e.Category = *patch.Category
		}
		if patch.Notes != nil {
			e.Notes = *patch.Notes
		}

		return e
	})
	if !ok {
		return ErrNotFound
	}

	return nil
}

// Delete removes the expense; deleting an absent id is a no-op.
func (s *Service) Delete(id string) {
	s.store.Remove(id)
}

func (s *Service) Get(id string) (Expense, error) {
	e, ok := s.store.Get(id)
	if !ok {
		return Expense{}, ErrNotFound
	}

	return e, nil
}

// List returns every expense, newest first.
func (s *Service) List() []Expense {
	return s.store.All()
}

// Clear empties the expense list.
func (s *Service) Clear() {
	s.store.Clear()
}

// Total sums every expense amount; 0 for an empty list.
func (s *Service) Total() float64 {
	var sum float64
	for _, e := range s.store.All() {
		sum += e.Amount
	}

	return sum
}

// TotalByCategory groups amounts by the category label as stored
// (case-sensitive, untrimmed).
func (s *Service) TotalByCategory() map[string]float64 {
	totals := make(map[string]float64)
	for _, e := range s.store.All() {
		totals[e.Category] += e.Amount
	}

	return totals
}

// TotalByMonth groups amounts by the YYYY-MM prefix of the date.
func (s *Service) TotalByMonth() map[string]float64 {
	totals := make(map[string]float64)

	for _, e := range s.store.All() {
		if len(e.Date) < 7 {
			continue
		}

		totals[e.Date[:7]] += e.Amount
	}

	return totals
}

func (s *Service) Flush(ctx context.Context) error {
	return s.store.Flush(ctx)
}

func (s *Service) Close() error {
	return s.store.Close()
}
