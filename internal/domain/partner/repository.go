package partner

import "context"

type Repository interface {
	Create(ctx context.Context, p *Partner) error
	GetByID(ctx context.Context, id string) (*Partner, error)
	GetByCode(ctx context.Context, code string) (*Partner, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	// ListAll orders by company name.
	ListAll(ctx context.Context) ([]Partner, error)
	Update(ctx context.Context, id string, p Patch) (*Partner, error)
}
