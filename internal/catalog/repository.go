package catalog

import "context"

// Repository resolves restaurant ids to their menu trees.
//
// Implementations must return consistent snapshots. A miss is not an
// error: GetRestaurantByID returns (nil, nil) for an unknown id, and the
// error slot is reserved for infrastructure failures (database, object
// storage).
type Repository interface {
	GetRestaurantByID(ctx context.Context, id string) (*Restaurant, error)
	ListRestaurants(ctx context.Context) ([]*Restaurant, error)
}
