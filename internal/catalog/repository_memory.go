package catalog

import "context"

type InMemoryRepository struct {
	restaurants []*Restaurant
	byID        map[string]*Restaurant
}

func NewInMemoryRepository(restaurants ...*Restaurant) *InMemoryRepository {
	byID := make(map[string]*Restaurant, len(restaurants))
	for _, r := range restaurants {
		byID[r.ID] = r
	}
	return &InMemoryRepository{
		restaurants: restaurants,
		byID:        byID,
	}
}

func (r *InMemoryRepository) GetRestaurantByID(ctx context.Context, id string) (*Restaurant, error) {
	restaurant, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return restaurant, nil
}

func (r *InMemoryRepository) ListRestaurants(ctx context.Context) ([]*Restaurant, error) {
	return r.restaurants, nil
}
