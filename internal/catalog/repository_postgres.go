package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Resolve one restaurant with its full menu tree
// --------------------------------------------------
func (r *PostgresRepository) GetRestaurantByID(ctx context.Context, id string) (*Restaurant, error) {
	query := `
		SELECT id, name
		FROM restaurants
		WHERE id = $1
	`

	var restaurant Restaurant
	err := r.db.QueryRow(ctx, query, id).Scan(&restaurant.ID, &restaurant.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := r.loadMenu(ctx, &restaurant); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// --------------------------------------------------
// List all restaurants (menu trees included)
// --------------------------------------------------
func (r *PostgresRepository) ListRestaurants(ctx context.Context) ([]*Restaurant, error) {
	query := `
		SELECT id, name
		FROM restaurants
		ORDER BY position
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []*Restaurant
	for rows.Next() {
		var restaurant Restaurant
		if err := rows.Scan(&restaurant.ID, &restaurant.Name); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, &restaurant)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, restaurant := range restaurants {
		if err := r.loadMenu(ctx, restaurant); err != nil {
			return nil, err
		}
	}
	return restaurants, nil
}

// --------------------------------------------------
// Menu tree assembly
// --------------------------------------------------
func (r *PostgresRepository) loadMenu(ctx context.Context, restaurant *Restaurant) error {
	categoryQuery := `
		SELECT id, name
		FROM menu_categories
		WHERE restaurant_id = $1
		ORDER BY position
	`

	rows, err := r.db.Query(ctx, categoryQuery, restaurant.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var category MenuCategory
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return err
		}
		restaurant.Categories = append(restaurant.Categories, category)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range restaurant.Categories {
		if err := r.loadItems(ctx, restaurant.ID, &restaurant.Categories[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresRepository) loadItems(ctx context.Context, restaurantID string, category *MenuCategory) error {
	itemQuery := `
		SELECT id, name, description, base_price_cents
		FROM menu_items
		WHERE restaurant_id = $1 AND category_id = $2
		ORDER BY position
	`

	rows, err := r.db.Query(ctx, itemQuery, restaurantID, category.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item MenuItem
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Description,
			&item.BasePriceCents,
		); err != nil {
			return err
		}
		category.Items = append(category.Items, item)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range category.Items {
		if err := r.loadModifierGroups(ctx, restaurantID, &category.Items[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresRepository) loadModifierGroups(ctx context.Context, restaurantID string, item *MenuItem) error {
	groupQuery := `
		SELECT id, name, required, multi_select
		FROM modifier_groups
		WHERE restaurant_id = $1 AND item_id = $2
		ORDER BY position
	`

	rows, err := r.db.Query(ctx, groupQuery, restaurantID, item.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var group ModifierGroup
		if err := rows.Scan(
			&group.ID,
			&group.Name,
			&group.Required,
			&group.MultiSelect,
		); err != nil {
			return err
		}
		item.ModifierGroups = append(item.ModifierGroups, group)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	optionQuery := `
		SELECT id, name, price_cents
		FROM modifier_options
		WHERE restaurant_id = $1 AND item_id = $2 AND group_id = $3
		ORDER BY position
	`

	for i := range item.ModifierGroups {
		group := &item.ModifierGroups[i]

		optRows, err := r.db.Query(ctx, optionQuery, restaurantID, item.ID, group.ID)
		if err != nil {
			return err
		}
		for optRows.Next() {
			var option ModifierOption
			if err := optRows.Scan(&option.ID, &option.Name, &option.PriceCents); err != nil {
				optRows.Close()
				return err
			}
			group.Options = append(group.Options, option)
		}
		err = optRows.Err()
		optRows.Close()
		if err != nil {
			return err
		}
	}
	return nil
}
