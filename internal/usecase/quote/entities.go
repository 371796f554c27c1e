package quote

import (
	"context"
	"time"

	"aquaria-partner-portal/internal/domain/pricing"
	domain "aquaria-partner-portal/internal/domain/quote"
)

type PriceInput struct {
	// PartnerCode selects the partner configuration; blank prices against the defaults.
	PartnerCode string
	Config      domain.Config
	Discount    float64
}

type PriceDTO struct {
	PartnerCode string         `json:"partner_code,omitempty"`
	ShowPricing bool           `json:"show_pricing"`
	Result      pricing.Result `json:"result"`
}

type CreateInput struct {
	PartnerCode string

	CustomerCompany *string
	CustomerName    string
	CustomerEmail   *string
	CustomerPhone   *string
	ServiceStreet   string
	ServiceCity     string
	ServiceState    string
	ServiceZip      string
	PONumber        *string

	Config   domain.Config
	Discount float64
	Notes    *string
}

// UpdateInput carries the mutable quote fields. The configuration is frozen.
type UpdateInput struct {
	Status          *domain.Status
	CustomerCompany *string
	CustomerName    *string
	CustomerEmail   *string
	CustomerPhone   *string
	PONumber        *string
	Notes           *string
}

type Stats struct {
	Total      int     `json:"total"`
	TotalValue float64 `json:"total_value"`
	Draft      int     `json:"draft"`
	Sent       int     `json:"sent"`
	Accepted   int     `json:"accepted"`
	Ordered    int     `json:"ordered"`
}

// Metrics receives quote pricing and lifecycle observations.
type Metrics interface {
	ObservePricing(partner, result string, d time.Duration)
	QuoteSaved(partner string, amount float64)
	StatusChanged(from, to domain.Status)
}

type nopMetrics struct{}

func (nopMetrics) ObservePricing(string, string, time.Duration) {}
func (nopMetrics) QuoteSaved(string, float64)                   {}
func (nopMetrics) StatusChanged(domain.Status, domain.Status)   {}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, domain.Event) error { return nil }
