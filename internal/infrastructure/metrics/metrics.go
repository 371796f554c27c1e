package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"aquaria-partner-portal/internal/domain/quote"
)

// QuoteMetrics holds the calculator and quote lifecycle series.
type QuoteMetrics struct {
	PricedTotal       *prometheus.CounterVec
	ComputeDuration   *prometheus.HistogramVec
	SavedTotal        *prometheus.CounterVec
	SavedAmountTotal  *prometheus.CounterVec
	StatusTransitions *prometheus.CounterVec
}

// NewQuoteMetrics registers the series on reg.
func NewQuoteMetrics(reg prometheus.Registerer) *QuoteMetrics {
	f := promauto.With(reg)
	return &QuoteMetrics{
		PricedTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quotes_priced_total",
				Help: "Price computations by partner and outcome",
			},
			[]string{"partner", "result"},
		),
		ComputeDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pricing_compute_seconds",
				Help:    "Time spent computing a quote price",
				Buckets: []float64{.0001, .0005, .001, .005, .01, .05},
			},
			[]string{"partner"},
		),
		SavedTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quotes_saved_total",
				Help: "Saved quotes by partner",
			},
			[]string{"partner"},
		),
		SavedAmountTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quotes_saved_amount_total",
				Help: "Sum of final totals of saved quotes",
			},
			[]string{"partner"},
		),
		StatusTransitions: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quote_status_transitions_total",
				Help: "Quote status changes",
			},
			[]string{"from", "to"},
		),
	}
}

func partnerLabel(code string) string {
	if code == "" {
		return "default"
	}
	return code
}

func (m *QuoteMetrics) ObservePricing(partner, result string, d time.Duration) {
	p := partnerLabel(partner)
	m.PricedTotal.WithLabelValues(p, result).Inc()
	m.ComputeDuration.WithLabelValues(p).Observe(d.Seconds())
}

func (m *QuoteMetrics) QuoteSaved(partner string, amount float64) {
	p := partnerLabel(partner)
	m.SavedTotal.WithLabelValues(p).Inc()
	if amount > 0 {
		m.SavedAmountTotal.WithLabelValues(p).Add(amount)
	}
}

func (m *QuoteMetrics) StatusChanged(from, to quote.Status) {
	m.StatusTransitions.WithLabelValues(string(from), string(to)).Inc()
}
