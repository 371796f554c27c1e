package gormrepo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"aquaria-partner-portal/internal/domain/partner"
)

type PartnerRepository struct{ db *gorm.DB }

func NewPartnerRepository(db *gorm.DB) *PartnerRepository { return &PartnerRepository{db: db} }

func (r *PartnerRepository) Create(ctx context.Context, p *partner.Partner) error {
	return translate(r.db.WithContext(ctx).Create(p).Error)
}

func (r *PartnerRepository) GetByID(ctx context.Context, id string) (*partner.Partner, error) {
	var out partner.Partner
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

func (r *PartnerRepository) GetByCode(ctx context.Context, code string) (*partner.Partner, error) {
	var out partner.Partner
	if err := r.db.WithContext(ctx).Where("partner_code = ?", code).First(&out).Error; err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

// getByCodeForUpdate row-locks the partner for the rest of the transaction.
// SQLite has no FOR UPDATE; its writer lock already serializes.
func (r *PartnerRepository) getByCodeForUpdate(ctx context.Context, code string) (*partner.Partner, error) {
	q := r.db.WithContext(ctx)
	if q.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out partner.Partner
	if err := q.Where("partner_code = ?", code).First(&out).Error; err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

func (r *PartnerRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&partner.Partner{}).Where("partner_code = ?", code).Count(&n).Error
	if err != nil {
		return false, translate(err)
	}
	return n > 0, nil
}

func (r *PartnerRepository) ListAll(ctx context.Context) ([]partner.Partner, error) {
	var out []partner.Partner
	err := r.db.WithContext(ctx).Order("company_name ASC, partner_code ASC").Find(&out).Error
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (r *PartnerRepository) Update(ctx context.Context, id string, p partner.Patch) (*partner.Partner, error) {
	if cols := p.Columns(); len(cols) > 0 {
		err := r.db.WithContext(ctx).Model(&partner.Partner{}).Where("id = ?", id).Updates(cols).Error
		if err != nil {
			return nil, translate(err)
		}
	}
	return r.GetByID(ctx, id)
}
