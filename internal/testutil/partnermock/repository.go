package partnermock

import (
	"context"
	"errors"

	domain "aquaria-partner-portal/internal/domain/partner"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("partnermock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
// Writes default to a no-op; reads default to errUnimplemented.
type Repo struct {
	CreateFn       func(ctx context.Context, p *domain.Partner) error
	GetByIDFn      func(ctx context.Context, id string) (*domain.Partner, error)
	GetByCodeFn    func(ctx context.Context, code string) (*domain.Partner, error)
	ExistsByCodeFn func(ctx context.Context, code string) (bool, error)
	ListAllFn      func(ctx context.Context) ([]domain.Partner, error)
	UpdateFn       func(ctx context.Context, id string, p domain.Patch) (*domain.Partner, error)
}

func (m *Repo) Create(ctx context.Context, p *domain.Partner) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id string) (*domain.Partner, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByCode(ctx context.Context, code string) (*domain.Partner, error) {
	if m.GetByCodeFn != nil {
		return m.GetByCodeFn(ctx, code)
	}
	return nil, errUnimplemented
}

func (m *Repo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	if m.ExistsByCodeFn != nil {
		return m.ExistsByCodeFn(ctx, code)
	}
	return false, errUnimplemented
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Partner, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) Update(ctx context.Context, id string, p domain.Patch) (*domain.Partner, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, p)
	}
	return nil, errUnimplemented
}
