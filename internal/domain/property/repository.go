package property

import "context"

// Repository returns (nil, nil) from single-row lookups when nothing matches.
type Repository interface {
	Create(ctx context.Context, property *Property) error
	GetByID(ctx context.Context, id uint) (*Property, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*Property, error)
	GetByName(ctx context.Context, name string) (*Property, error)
	// ListByManager returns the manager's properties, newest first.
	ListByManager(ctx context.Context, managerID uint) ([]*Property, error)
	// ListAll returns every property ordered by name.
	ListAll(ctx context.Context) ([]*Property, error)
	CountTicketsByProperty(ctx context.Context, propertyIDs []uint) (map[uint]int64, error)
}
