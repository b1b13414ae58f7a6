package guest

import "context"

// Repository provides persistence for guests.
type Repository interface {
	Create(ctx context.Context, g *Guest) error
	Get(ctx context.Context, id string) (*Guest, error)
	List(ctx context.Context) ([]Guest, error)
	Delete(ctx context.Context, id string) error
}
