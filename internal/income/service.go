package income

import (
	"context"
	"time"

	"github.com/MrJamesThe3rd/dailyhub/internal/feature"
)

const storageKey = "incomes"

type Service struct {
	store *feature.Store[Income]
	now   func() time.Time
}

func NewService(ctx context.Context, backend feature.Backend) (*Service, error) {
	store, err := feature.New[Income](ctx, backend, storageKey)
	if err != nil {
		return nil, err
	}

	return &Service{store: store, now: time.Now}, nil
}

type CreateParams struct {
	Date        string
	Description string
	Amount      float64
	Notes       string
}

func (s *Service) Add(params CreateParams) (Income, error) {
	if params.Amount <= 0 {
		return Income{}, ErrInvalidAmount
	}

	if params.Description == "" {
		return Income{}, ErrEmptyDescription
	}

	now := s.now()

	date := params.Date
	if date == "" {
		date = now.Format(DateLayout)
	}

	return s.store.Add(Income{
		ID:          feature.NewID(),
		Date:        date,
		Description: params.Description,
		Amount:      params.Amount,
		Notes:       params.Notes,
		CreatedAt:   now,
	}), nil
}

type Patch struct {
	Date        *string
	Description *string
	Amount      *float64
	Notes       *string
}

func (s *Service) Update(id string, patch Patch) error {
	if patch.Amount != nil && *patch.Amount <= 0 {
		return ErrInvalidAmount
	}

	if patch.Description != nil && *patch.Description == "" {
		return ErrEmptyDescription
	}

	ok := s.store.Update(id, func(i Income) Income {
		if patch.Date != nil {
			i.Date = *patch.Date
		}
		if patch.Description != nil {
			i.Description = *patch.Description
		}
		if patch.Amount != nil {
			i.Amount = *patch.Amount
		}
		if patch.Notes != nil {
			i.Notes = *patch.Notes
		}

		return i
	})
	if !ok {
		return ErrNotFound
	}

	return nil
}

func (s *Service) Delete(id string) {
	s.store.Remove(id)
}

func (s *Service) Get(id string) (Income, error) {
	i, ok := s.store.Get(id)
	if !ok {
		return Income{}, ErrNotFound
	}

	return i, nil
}

func (s *Service) List() []Income {
	return s.store.All()
}

func (s *Service) Clear() {
	s.store.Clear()
}

// Total sums every income amount; 0 for an empty list.
func (s *Service) Total() float64 {
	var sum float64
	for _, i := range s.store.All() {
		sum += i.Amount
	}

	return sum
}

// TotalByMonth groups amounts by the YYYY-MM prefix of the date.
func (s *Service) TotalByMonth() map[string]float64 {
	totals := make(map[string]float64)

	for _, i := range s.store.All() {
		if len(i.Date) < 7 {
			continue
		}

		totals[i.Date[:7]] += i.Amount
	}

	return totals
}

func (s *Service) Flush(ctx context.Context) error {
	return s.store.Flush(ctx)
}

func (s *Service) Close() error {
	return s.store.Close()
}
