package partner

import (
	"aquaria-partner-portal/internal/domain/catalog"
	"aquaria-partner-portal/internal/domain/feature"
	domain "aquaria-partner-portal/internal/domain/partner"
	"aquaria-partner-portal/internal/domain/pricing"
)

type CreateInput struct {
	CompanyName string
	// PartnerCode is generated from CompanyName when blank.
	PartnerCode string

	ContactName    *string
	ContactEmail   *string
	ContactPhone   *string
	LogoURL        *string
	PrimaryColor   *string
	AccentColor    *string
	DisplayAddress *string
	DisplayPhone   *string
	DisplayEmail   *string
	DisplayWebsite *string

	FeatureConfig    *feature.Partial
	PricingOverrides *catalog.PriceOverrides

	IsActive        *bool
	CanCreateQuotes *bool
	CanEditPricing  *bool
	Notes           *string
}

// SettingsInput carries profile, branding and (super admin only) access fields.
type SettingsInput struct {
	CompanyName    *string
	ContactName    *string
	ContactEmail   *string
	ContactPhone   *string
	LogoURL        *string
	PrimaryColor   *string
	AccentColor    *string
	DisplayAddress *string
	DisplayPhone   *string
	DisplayEmail   *string
	DisplayWebsite *string

	IsActive        *bool
	CanCreateQuotes *bool
	CanEditPricing  *bool
	Notes           *string
}

func (in SettingsInput) patch() domain.Patch {
	return domain.Patch{
		CompanyName:     in.CompanyName,
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
		IsActive:        in.IsActive,
		CanCreateQuotes: in.CanCreateQuotes,
		CanEditPricing:  in.CanEditPricing,
		Notes:           in.Notes,
	}
}

const (
	StatusAll      = "all"
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type ListFilter struct {
	Status string
	// Query matches company name, code, contact email or contact name, case-insensitively.
	Query string
}

type Stats struct {
	Total           int `json:"total"`
	Active          int `json:"active"`
	Inactive        int `json:"inactive"`
	CanCreateQuotes int `json:"can_create_quotes"`
	CanEditPricing  int `json:"can_edit_pricing"`
}

// CalculatorDTO is what the public calculator of a partner needs.
type CalculatorDTO struct {
	Branding domain.Branding `json:"branding"`
	Catalog  pricing.Catalog `json:"catalog"`
}

// PortalDTO is the partner admin view: stored record plus what it resolves to.
type PortalDTO struct {
	Partner  *domain.Partner    `json:"partner"`
	Features feature.Config     `json:"features"`
	Prices   catalog.PriceTable `json:"prices"`
	Defaults catalog.PriceTable `json:"defaults"`
	Catalog  pricing.Catalog    `json:"catalog"`
}
