package partner

import (
	"aquaria-partner-portal/internal/domain/catalog"
	"aquaria-partner-portal/internal/domain/feature"
	"aquaria-partner-portal/internal/domain/pricing"
)

// Effective is a partner's stored configuration merged over the defaults.
type Effective struct {
	Features feature.Config
	Prices   catalog.PriceTable
}

// Effective resolves the stored feature and pricing columns. Price overrides
// only apply while CanEditPricing is set.
func (p *Partner) Effective() (Effective, error) {
	f, err := feature.ResolveJSON(p.FeatureConfig)
	if err != nil {
		return Effective{}, err
	}
	prices, err := pricing.ResolvePricesJSON(p.PricingOverrides, p.CanEditPricing)
	if err != nil {
		return Effective{}, err
	}
	return Effective{Features: f, Prices: prices}, nil
}

// DefaultEffective applies when a quote has no partner.
func DefaultEffective() Effective {
	return Effective{Features: feature.Default(), Prices: catalog.Default()}
}

// Branding is the public face of a partner calculator.
type Branding struct {
	PartnerCode    string  `json:"partner_code"`
	CompanyName    string  `json:"company_name"`
	LogoURL        *string `json:"logo_url"`
	PrimaryColor   *string `json:"primary_color"`
	AccentColor    *string `json:"accent_color"`
	DisplayAddress *string `json:"display_address"`
	DisplayPhone   *string `json:"display_phone"`
	DisplayEmail   *string `json:"display_email"`
	DisplayWebsite *string `json:"display_website"`
}

func (p *Partner) Branding() Branding {
	return Branding{
		PartnerCode:    p.PartnerCode,
		CompanyName:    p.CompanyName,
		LogoURL:        p.LogoURL,
		PrimaryColor:   p.PrimaryColor,
		AccentColor:    p.AccentColor,
		DisplayAddress: p.DisplayAddress,
		DisplayPhone:   p.DisplayPhone,
		DisplayEmail:   p.DisplayEmail,
		DisplayWebsite: p.DisplayWebsite,
	}
}
