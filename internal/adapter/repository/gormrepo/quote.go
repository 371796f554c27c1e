package gormrepo

import (
	"context"

	"gorm.io/gorm"

	"aquaria-partner-portal/internal/domain/apperr"
	"aquaria-partner-portal/internal/domain/quote"
)

var _ quote.Repository = (*QuoteRepository)(nil)

type QuoteRepository struct{ db *gorm.DB }

func NewQuoteRepository(db *gorm.DB) *QuoteRepository { return &QuoteRepository{db: db} }

func (r *QuoteRepository) Create(ctx context.Context, q *quote.Quote) error {
	return translate(r.db.WithContext(ctx).Create(q).Error)
}

func (r *QuoteRepository) Update(ctx context.Context, id string, p quote.Patch) (*quote.Quote, error) {
	if cols := p.Columns(); len(cols) > 0 {
		err := r.db.WithContext(ctx).Model(&quote.Quote{}).Where("id = ?", id).Updates(cols).Error
		if err != nil {
			return nil, translate(err)
		}
	}
	return r.GetByID(ctx, id)
}

func (r *QuoteRepository) GetByID(ctx context.Context, id string) (*quote.Quote, error) {
	var out quote.Quote
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

func (r *QuoteRepository) GetByNumber(ctx context.Context, number string) (*quote.Quote, error) {
	var out quote.Quote
	if err := r.db.WithContext(ctx).Where("quote_number = ?", number).First(&out).Error; err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

func (r *QuoteRepository) ListForPartner(ctx context.Context, partnerID string) ([]quote.Quote, error) {
	var out []quote.Quote
	err := r.db.WithContext(ctx).
		Where("partner_id = ?", partnerID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (r *QuoteRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&quote.Quote{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
