package quote

import "context"

type Repository interface {
	Create(ctx context.Context, q *Quote) error
	// Update applies p and returns the stored quote.
	Update(ctx context.Context, id string, p Patch) (*Quote, error)
	GetByID(ctx context.Context, id string) (*Quote, error)
	GetByNumber(ctx context.Context, number string) (*Quote, error)
	// ListForPartner orders by creation time, newest first.
	ListForPartner(ctx context.Context, partnerID string) ([]Quote, error)
	Delete(ctx context.Context, id string) error
}
