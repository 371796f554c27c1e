package partner

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Partner is a reseller tenant. PartnerCode never changes after creation.
type Partner struct {
	ID          string `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	PartnerCode string `gorm:"column:partner_code;size:32;not null;uniqueIndex:ux_partners_partner_code" json:"partner_code"`
	CompanyName string `gorm:"column:company_name;size:255;not null;index:idx_partners_company_name" json:"company_name"`

	ContactName  *string `gorm:"column:contact_name;size:255" json:"contact_name"`
	ContactEmail *string `gorm:"column:contact_email;size:255" json:"contact_email"`
	ContactPhone *string `gorm:"column:contact_phone;size:64" json:"contact_phone"`

	LogoURL        *string `gorm:"column:logo_url;type:text" json:"logo_url"`
	PrimaryColor   *string `gorm:"column:primary_color;size:16" json:"primary_color"`
	AccentColor    *string `gorm:"column:accent_color;size:16" json:"accent_color"`
	DisplayAddress *string `gorm:"column:display_address;size:255" json:"display_address"`
	DisplayPhone   *string `gorm:"column:display_phone;size:64" json:"display_phone"`
	DisplayEmail   *string `gorm:"column:display_email;size:255" json:"display_email"`
	DisplayWebsite *string `gorm:"column:display_website;size:255" json:"display_website"`

	PricingOverrides datatypes.JSON `gorm:"column:pricing_overrides" json:"pricing_overrides"`
	FeatureConfig    datatypes.JSON `gorm:"column:feature_config" json:"feature_config"`

	IsActive        bool    `gorm:"column:is_active;not null" json:"is_active"`
	CanCreateQuotes bool    `gorm:"column:can_create_quotes;not null" json:"can_create_quotes"`
	CanEditPricing  bool    `gorm:"column:can_edit_pricing;not null" json:"can_edit_pricing"`
	Notes           *string `gorm:"column:notes;type:text" json:"notes"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Partner) TableName() string { return "partners" }

func (p *Partner) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Patch lists updatable partner fields; nil leaves a column untouched.
// A non-nil JSON patch holding no bytes clears the column.
type Patch struct {
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

	PricingOverrides *datatypes.JSON
	FeatureConfig    *datatypes.JSON

	IsActive        *bool
	CanCreateQuotes *bool
	CanEditPricing  *bool
	Notes           *string
}

func (p Patch) Columns() map[string]any {
	cols := map[string]any{}
	str := func(col string, v *string) {
		if v != nil {
			cols[col] = *v
		}
	}
	flag := func(col string, v *bool) {
		if v != nil {
			cols[col] = *v
		}
	}
	doc := func(col string, v *datatypes.JSON) {
		if v == nil {
			return
		}
		if len(*v) == 0 {
			cols[col] = nil
			return
		}
		cols[col] = *v
	}

	str("company_name", p.CompanyName)
	str("contact_name", p.ContactName)
	str("contact_email", p.ContactEmail)
	str("contact_phone", p.ContactPhone)
	str("logo_url", p.LogoURL)
	str("primary_color", p.PrimaryColor)
	str("accent_color", p.AccentColor)
	str("display_address", p.DisplayAddress)
	str("display_phone", p.DisplayPhone)
	str("display_email", p.DisplayEmail)
	str("display_website", p.DisplayWebsite)
	doc("pricing_overrides", p.PricingOverrides)
	doc("feature_config", p.FeatureConfig)
	flag("is_active", p.IsActive)
	flag("can_create_quotes", p.CanCreateQuotes)
	flag("can_edit_pricing", p.CanEditPricing)
	str("notes", p.Notes)
	return cols
}

func (p Patch) Empty() bool { return len(p.Columns()) == 0 }

// Privileged reports whether p touches fields only a super admin may change.
func (p Patch) Privileged() bool {
	return p.IsActive != nil || p.CanCreateQuotes != nil || p.CanEditPricing != nil || p.Notes != nil
}
