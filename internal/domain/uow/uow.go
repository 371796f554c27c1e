package uow

import (
	"context"

	"aquaria-partner-portal/internal/domain/partner"
	"aquaria-partner-portal/internal/domain/quote"
)

// Repos are bound to one transaction.
type Repos struct {
	Partners partner.Repository
	Quotes   quote.Repository
}

type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinPartnerTx locks the partner row by code, then passes it in.
	WithinPartnerTx(ctx context.Context, code string, fn func(r Repos, p *partner.Partner) error) error
}
