package partner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"gorm.io/datatypes"

	"aquaria-partner-portal/internal/domain/apperr"
	"aquaria-partner-portal/internal/domain/auth"
	"aquaria-partner-portal/internal/domain/catalog"
	"aquaria-partner-portal/internal/domain/feature"
	domain "aquaria-partner-portal/internal/domain/partner"
	"aquaria-partner-portal/internal/domain/pricing"
	"aquaria-partner-portal/internal/domain/uow"
)

// suggestAttempts bounds how many generated codes SuggestCode tries.
const suggestAttempts = 5

type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
	log  *slog.Logger
	intn func(n int) int
}

func NewUsecase(r domain.Repository, tx uow.UnitOfWork, log *slog.Logger) *Usecase {
	if log == nil {
		log = slog.Default()
	}
	return &Usecase{repo: r, uow: tx, log: log, intn: rand.IntN}
}

// Create inserts a partner. The existence check is advisory; the store's
// unique index on partner_code decides and surfaces as apperr.ErrDuplicateCode.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*domain.Partner, error) {
	company := strings.TrimSpace(in.CompanyName)
	if company == "" {
		return nil, apperr.Invalid("company_name", "is required")
	}
	code := domain.NormalizeCode(in.PartnerCode)
	if code == "" {
		code = domain.GenerateCode(company, u.intn)
	}
	if !domain.ValidCode(code) {
		return nil, apperr.Invalid("partner_code", "must contain only uppercase letters, numbers and underscores")
	}
	if err := in.FeatureConfig.Validate(); err != nil {
		return nil, err
	}
	if err := in.PricingOverrides.Validate(); err != nil {
		return nil, err
	}

	p := &domain.Partner{
		PartnerCode:     code,
		CompanyName:     company,
		ContactName:     in.ContactName,
		ContactEmail:    in.ContactEmail,
		ContactPhone:    in.ContactPhone,
		LogoURL:         in.LogoURL,
		PrimaryColor:    in.PrimaryColor,
		AccentColor:     in.AccentColor,
		DisplayAddress:  in.DisplayAddress,
		DisplayPhone:    in.DisplayPhone,
		DisplayEmail:    in.DisplayEmail,
		DisplayWebsite:  in.DisplayWebsite,
		IsActive:        boolOr(in.IsActive, true),
		CanCreateQuotes: boolOr(in.CanCreateQuotes, true),
		CanEditPricing:  boolOr(in.CanEditPricing, false),
		Notes:           in.Notes,
	}
	var err error
	if p.FeatureConfig, err = encode(in.FeatureConfig); err != nil {
		return nil, err
	}
	if p.PricingOverrides, err = encode(in.PricingOverrides); err != nil {
		return nil, err
	}

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		exists, err := r.Partners.ExistsByCode(ctx, code)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: %s", apperr.ErrDuplicateCode, code)
		}
		return r.Partners.Create(ctx, p)
	})
	if err != nil {
		if !errors.Is(err, apperr.ErrDuplicateCode) {
			u.log.ErrorContext(ctx, "create partner failed", "partner_code", code, "err", err)
		}
		return nil, err
	}
	u.log.InfoContext(ctx, "partner created", "partner_code", code, "partner_id", p.ID)
	return p, nil
}

// SuggestCode generates codes for companyName until one is not taken.
func (u *Usecase) SuggestCode(ctx context.Context, companyName string) (string, error) {
	company := strings.TrimSpace(companyName)
	if company == "" {
		return "", apperr.Invalid("company_name", "is required")
	}
	for i := 0; i < suggestAttempts; i++ {
		code := domain.GenerateCode(company, u.intn)
		exists, err := u.repo.ExistsByCode(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w: no free code for %q", apperr.ErrDuplicateCode, company)
}

func (u *Usecase) GetByCode(ctx context.Context, code string) (*domain.Partner, error) {
	return u.repo.GetByCode(ctx, domain.NormalizeCode(code))
}

// List returns partners ordered by company name, narrowed by f.
func (u *Usecase) List(ctx context.Context, f ListFilter) ([]domain.Partner, error) {
	status := strings.ToLower(strings.TrimSpace(f.Status))
	switch status {
	case "", StatusAll, StatusActive, StatusInactive:
	default:
		return nil, apperr.Invalid("status", "must be one of all, active, inactive")
	}
	all, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]domain.Partner, 0, len(all))
	for _, p := range all {
		if status == StatusActive && !p.IsActive || status == StatusInactive && p.IsActive {
			continue
		}
		if q != "" && !matches(p, q) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func matches(p domain.Partner, q string) bool {
	fields := []string{p.CompanyName, p.PartnerCode, deref(p.ContactEmail), deref(p.ContactName)}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func (u *Usecase) Stats(ctx context.Context) (Stats, error) {
	all, err := u.repo.ListAll(ctx)
	if err != nil {
		return Stats{}, err
	}
	s := Stats{Total: len(all)}
	for _, p := range all {
		if p.IsActive {
			s.Active++
		} else {
			s.Inactive++
		}
		if p.CanCreateQuotes {
			s.CanCreateQuotes++
		}
		if p.CanEditPricing {
			s.CanEditPricing++
		}
	}
	return s, nil
}

// UpdateSettings patches profile and branding. Access flags and notes are super admin only.
func (u *Usecase) UpdateSettings(ctx context.Context, actor auth.Principal, code string, in SettingsInput) (*domain.Partner, error) {
	code = domain.NormalizeCode(code)
	if !actor.CanAccessPartner(code) {
		return nil, apperr.ErrForbidden
	}
	patch := in.patch()
	if patch.Privileged() && !actor.IsSuperAdmin() {
		return nil, fmt.Errorf("%w: access settings are managed by the vendor", apperr.ErrForbidden)
	}
	if patch.CompanyName != nil {
		name := strings.TrimSpace(*patch.CompanyName)
		if name == "" {
			return nil, apperr.Invalid("company_name", "must not be blank")
		}
		patch.CompanyName = &name
	}
	if patch.Empty() {
		return nil, apperr.Invalid("", "nothing to update")
	}
	return u.update(ctx, code, patch)
}

func (u *Usecase) UpdateFeatures(ctx context.Context, actor auth.Principal, code string, p *feature.Partial) (*domain.Partner, error) {
	code = domain.NormalizeCode(code)
	if !actor.CanAccessPartner(code) {
		return nil, apperr.ErrForbidden
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	raw, err := encode(p)
	if err != nil {
		return nil, err
	}
	return u.update(ctx, code, domain.Patch{FeatureConfig: &raw})
}

// UpdatePricing stores price overrides. Partner users need can_edit_pricing.
func (u *Usecase) UpdatePricing(ctx context.Context, actor auth.Principal, code string, o *catalog.PriceOverrides) (*domain.Partner, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	raw, err := encode(o)
	if err != nil {
		return nil, err
	}
	return u.updatePricing(ctx, actor, code, raw)
}

// ResetPricing clears stored overrides so every leaf falls back to the default table.
func (u *Usecase) ResetPricing(ctx context.Context, actor auth.Principal, code string) (*domain.Partner, error) {
	return u.updatePricing(ctx, actor, code, nil)
}

func (u *Usecase) updatePricing(ctx context.Context, actor auth.Principal, code string, raw datatypes.JSON) (*domain.Partner, error) {
	code = domain.NormalizeCode(code)
	if !actor.CanAccessPartner(code) {
		return nil, apperr.ErrForbidden
	}
	var out *domain.Partner
	err := u.uow.WithinPartnerTx(ctx, code, func(r uow.Repos, p *domain.Partner) error {
		if !actor.IsSuperAdmin() && !p.CanEditPricing {
			return fmt.Errorf("%w: pricing edits are not enabled for %s", apperr.ErrForbidden, code)
		}
		updated, err := r.Partners.Update(ctx, p.ID, domain.Patch{PricingOverrides: &raw})
		if err != nil {
			return err
		}
		out = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.log.InfoContext(ctx, "partner pricing updated", "partner_code", code, "reset", len(raw) == 0)
	return out, nil
}

// Calculator resolves the public calculator of an active partner.
func (u *Usecase) Calculator(ctx context.Context, code string) (*CalculatorDTO, error) {
	p, err := u.repo.GetByCode(ctx, domain.NormalizeCode(code))
	if err != nil {
		return nil, err
	}
	if !p.IsActive {
		return nil, apperr.ErrNotFound
	}
	eff, err := p.Effective()
	if err != nil {
		return nil, err
	}
	return &CalculatorDTO{Branding: p.Branding(), Catalog: pricing.Offer(eff.Features, eff.Prices)}, nil
}

// Portal returns the stored partner with its effective configuration.
func (u *Usecase) Portal(ctx context.Context, actor auth.Principal, code string) (*PortalDTO, error) {
	code = domain.NormalizeCode(code)
	if !actor.CanAccessPartner(code) {
		return nil, apperr.ErrForbidden
	}
	p, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	eff, err := p.Effective()
	if err != nil {
		return nil, err
	}
	return &PortalDTO{
		Partner:  p,
		Features: eff.Features,
		Prices:   eff.Prices,
		Defaults: catalog.Default(),
		Catalog:  pricing.Offer(eff.Features, eff.Prices),
	}, nil
}

func (u *Usecase) update(ctx context.Context, code string, patch domain.Patch) (*domain.Partner, error) {
	p, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	out, err := u.repo.Update(ctx, p.ID, patch)
	if err != nil {
		u.log.ErrorContext(ctx, "update partner failed", "partner_code", code, "err", err)
		return nil, err
	}
	return out, nil
}

// encode marshals an optional document; nil becomes an empty (NULL) column.
func encode[T any](v *T) (datatypes.JSON, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return datatypes.JSON(b), nil
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
