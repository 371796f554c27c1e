package quote

import (
	"context"
	"time"
)

type EventType string

const (
	EventCreated       EventType = "quote.created"
	EventStatusChanged EventType = "quote.status_changed"
	EventResent        EventType = "quote.resent"
)

type Event struct {
	Type        EventType `json:"type"`
	QuoteID     string    `json:"quote_id"`
	QuoteNumber string    `json:"quote_number"`
	PartnerID   string    `json:"partner_id,omitempty"`
	Status      Status    `json:"status"`
	PrevStatus  Status    `json:"prev_status,omitempty"`
	FinalTotal  float64   `json:"final_total"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// NewEvent snapshots q for publishing.
func NewEvent(t EventType, q *Quote, prev Status, at time.Time) Event {
	e := Event{
		Type:        t,
		QuoteID:     q.ID,
		QuoteNumber: q.QuoteNumber,
		Status:      q.Status,
		PrevStatus:  prev,
		FinalTotal:  q.FinalTotal,
		OccurredAt:  at.UTC(),
	}
	if q.PartnerID != nil {
		e.PartnerID = *q.PartnerID
	}
	return e
}

type EventPublisher interface {
	Publish(ctx context.Context, e Event) error
}
