package uowmock

import (
	"context"
	"errors"

	"aquaria-partner-portal/internal/domain/partner"
	"aquaria-partner-portal/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn        func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinPartnerTxFn func(ctx context.Context, code string, fn func(r uow.Repos, p *partner.Partner) error) error
}

// Convenience fluent setters
func New() *UoW { return &UoW{} }
func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}
func (m *UoW) WithWithinPartnerTx(fn func(context.Context, string, func(uow.Repos, *partner.Partner) error) error) *UoW {
	m.WithinPartnerTxFn = fn
	return m
}
func (m *UoW) Reset() { *m = UoW{} }

// Passthrough runs every transaction body directly against repos.
// WithinPartnerTx loads the partner with repos.Partners.GetByCode.
func Passthrough(repos uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(_ context.Context, fn func(uow.Repos) error) error { return fn(repos) },
		WithinPartnerTxFn: func(ctx context.Context, code string, fn func(uow.Repos, *partner.Partner) error) error {
			p, err := repos.Partners.GetByCode(ctx, code)
			if err != nil {
				return err
			}
			return fn(repos, p)
		},
	}
}

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}
func (m *UoW) WithinPartnerTx(ctx context.Context, code string, fn func(r uow.Repos, p *partner.Partner) error) error {
	if m.WithinPartnerTxFn != nil {
		return m.WithinPartnerTxFn(ctx, code, fn)
	}
	return errUnimplemented
}
