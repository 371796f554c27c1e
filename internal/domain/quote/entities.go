package quote

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Quote struct {
	ID          string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	QuoteNumber string    `gorm:"column:quote_number;size:32;not null;uniqueIndex:ux_quotes_quote_number" json:"quote_number"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime;index:idx_quotes_partner_created,priority:2" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	CustomerCompany *string `gorm:"column:customer_company;size:255" json:"customer_company"`
	CustomerName    string  `gorm:"column:customer_name;size:255;not null" json:"customer_name"`
	CustomerEmail   *string `gorm:"column:customer_email;size:255" json:"customer_email"`
	CustomerPhone   *string `gorm:"column:customer_phone;size:64" json:"customer_phone"`
	ServiceStreet   string  `gorm:"column:service_street;size:255" json:"service_street"`
	ServiceCity     string  `gorm:"column:service_city;size:128" json:"service_city"`
	ServiceState    string  `gorm:"column:service_state;size:64" json:"service_state"`
	ServiceZip      string  `gorm:"column:service_zip;size:16" json:"service_zip"`
	PONumber        *string `gorm:"column:po_number;size:64" json:"po_number"`

	PartnerID      *string `gorm:"column:partner_id;type:char(36);index:idx_quotes_partner_created,priority:1" json:"partner_id"`
	PartnerName    *string `gorm:"column:partner_name;size:255" json:"partner_name"`
	PartnerLogoURL *string `gorm:"column:partner_logo_url;type:text" json:"partner_logo_url"`

	QuoteConfig    datatypes.JSON `gorm:"column:quote_config;not null" json:"quote_config"`
	PartnerPricing datatypes.JSON `gorm:"column:partner_pricing" json:"partner_pricing"`

	OriginalTotal  *float64 `gorm:"column:original_total;type:decimal(12,2)" json:"original_total"`
	DiscountAmount float64  `gorm:"column:discount_amount;type:decimal(12,2);not null;default:0" json:"discount_amount"`
	FinalTotal     float64  `gorm:"column:final_total;type:decimal(12,2);not null" json:"final_total"`

	Status     Status     `gorm:"column:status;size:16;not null;default:'draft'" json:"status"`
	Notes      *string    `gorm:"column:notes;type:text" json:"notes"`
	SentCount  int        `gorm:"column:sent_count;not null;default:0" json:"sent_count"`
	LastSentAt *time.Time `gorm:"column:last_sent_at" json:"last_sent_at"`
}

func (Quote) TableName() string { return "quotes" }

func (q *Quote) BeforeCreate(*gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	if q.Status == "" {
		q.Status = StatusDraft
	}
	return nil
}

// Patch lists the mutable quote fields. Nil means "leave unchanged".
// The frozen configuration and totals are deliberately absent.
type Patch struct {
	Status          *Status
	CustomerCompany *string
	CustomerName    *string
	CustomerEmail   *string
	CustomerPhone   *string
	PONumber        *string
	Notes           *string
	SentCount       *int
	LastSentAt      *time.Time
}

// Columns returns the patch as a column map for a partial update.
func (p Patch) Columns() map[string]any {
	cols := map[string]any{}
	if p.Status != nil {
		cols["status"] = *p.Status
	}
	if p.CustomerCompany != nil {
		cols["customer_company"] = *p.CustomerCompany
	}
	if p.CustomerName != nil {
		cols["customer_name"] = *p.CustomerName
	}
	if p.CustomerEmail != nil {
		cols["customer_email"] = *p.CustomerEmail
	}
	if p.CustomerPhone != nil {
		cols["customer_phone"] = *p.CustomerPhone
	}
	if p.PONumber != nil {
		cols["po_number"] = *p.PONumber
	}
	if p.Notes != nil {
		cols["notes"] = *p.Notes
	}
	if p.SentCount != nil {
		cols["sent_count"] = *p.SentCount
	}
	if p.LastSentAt != nil {
		cols["last_sent_at"] = *p.LastSentAt
	}
	return cols
}

func (p Patch) Empty() bool { return len(p.Columns()) == 0 }
