package quotemock

import (
	"context"
	"errors"
	"sync"

	domain "aquaria-partner-portal/internal/domain/quote"
)

var (
	_ domain.Repository     = (*Repo)(nil)
	_ domain.EventPublisher = (*Publisher)(nil)
)

var errUnimplemented = errors.New("quotemock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, q *domain.Quote) error
	UpdateFn         func(ctx context.Context, id string, p domain.Patch) (*domain.Quote, error)
	GetByIDFn        func(ctx context.Context, id string) (*domain.Quote, error)
	GetByNumberFn    func(ctx context.Context, number string) (*domain.Quote, error)
	ListForPartnerFn func(ctx context.Context, partnerID string) ([]domain.Quote, error)
	DeleteFn         func(ctx context.Context, id string) error
}

func (m *Repo) Create(ctx context.Context, q *domain.Quote) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, q)
	}
	return nil
}

func (m *Repo) Update(ctx context.Context, id string, p domain.Patch) (*domain.Quote, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, p)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByID(ctx context.Context, id string) (*domain.Quote, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByNumber(ctx context.Context, number string) (*domain.Quote, error) {
	if m.GetByNumberFn != nil {
		return m.GetByNumberFn(ctx, number)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListForPartner(ctx context.Context, partnerID string) ([]domain.Quote, error) {
	if m.ListForPartnerFn != nil {
		return m.ListForPartnerFn(ctx, partnerID)
	}
	return nil, errUnimplemented
}

func (m *Repo) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// Publisher records published events and returns Err.
type Publisher struct {
	mu     sync.Mutex
	Err    error
	Events []domain.Event
}

func (p *Publisher) Publish(_ context.Context, e domain.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Events = append(p.Events, e)
	return p.Err
}

func (p *Publisher) Published() []domain.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.Event, len(p.Events))
	copy(out, p.Events)
	return out
}
