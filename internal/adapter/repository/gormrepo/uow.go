package gormrepo

import (
	"context"

	"gorm.io/gorm"

	"aquaria-partner-portal/internal/domain/partner"
	"aquaria-partner-portal/internal/domain/uow"
)

var (
	_ partner.Repository = (*PartnerRepository)(nil)
	_ uow.UnitOfWork     = (*GormUoW)(nil)
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func bind(tx *gorm.DB) (uow.Repos, *PartnerRepository) {
	partners := &PartnerRepository{db: tx}
	return uow.Repos{Partners: partners, Quotes: &QuoteRepository{db: tx}}, partners
}

// WithinTx commits when fn returns nil. Errors from fn are returned unchanged.
func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	var fnErr error
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r, _ := bind(tx)
		fnErr = fn(r)
		return fnErr
	})
	if fnErr != nil {
		return fnErr
	}
	return translate(err)
}

func (u *GormUoW) WithinPartnerTx(ctx context.Context, code string, fn func(r uow.Repos, p *partner.Partner) error) error {
	var fnErr error
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r, partners := bind(tx)
		// lock the partner row up-front so permission checks hold until commit
		p, err := partners.getByCodeForUpdate(ctx, code)
		if err != nil {
			fnErr = err
			return err
		}
		fnErr = fn(r, p)
		return fnErr
	})
	if fnErr != nil {
		return fnErr
	}
	return translate(err)
}
