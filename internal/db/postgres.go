package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates the catalog tables. Position columns preserve the
// menu's declaration order, which pricing and summaries depend on. All
// prices are stored in integer cents.
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// RESTAURANTS
	// -------------------------------
	restaurantsSQL := `
		CREATE TABLE IF NOT EXISTS restaurants (
			id VARCHAR(100) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			position INT NOT NULL DEFAULT 0
		)
	`
	if _, err := db.Exec(ctx, restaurantsSQL); err != nil {
		return err
	}

	// -------------------------------
	// MENU CATEGORIES
	// -------------------------------
	categoriesSQL := `
		CREATE TABLE IF NOT EXISTS menu_categories (
			restaurant_id VARCHAR(100) NOT NULL REFERENCES restaurants(id),
			id VARCHAR(100) NOT NULL,
			name VARCHAR(255) NOT NULL,
			position INT NOT NULL DEFAULT 0,
			PRIMARY KEY (restaurant_id, id)
		)
	`
	if _, err := db.Exec(ctx, categoriesSQL); err != nil {
		return err
	}

	// -------------------------------
	// MENU ITEMS
	// -------------------------------
	itemsSQL := `
		CREATE TABLE IF NOT EXISTS menu_items (
			restaurant_id VARCHAR(100) NOT NULL,
			category_id VARCHAR(100) NOT NULL,
			id VARCHAR(100) NOT NULL,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			base_price_cents BIGINT NOT NULL,
			position INT NOT NULL DEFAULT 0,
			PRIMARY KEY (restaurant_id, id),
			FOREIGN KEY (restaurant_id, category_id)
				REFERENCES menu_categories(restaurant_id, id)
		)
	`
	if _, err := db.Exec(ctx, itemsSQL); err != nil {
		return err
	}

	// -------------------------------
	// MODIFIER GROUPS & OPTIONS
	// -------------------------------
	groupsSQL := `
		CREATE TABLE IF NOT EXISTS modifier_groups (
			restaurant_id VARCHAR(100) NOT NULL,
			item_id VARCHAR(100) NOT NULL,
			id VARCHAR(100) NOT NULL,
			name VARCHAR(255) NOT NULL,
			required BOOLEAN NOT NULL DEFAULT FALSE,
			multi_select BOOLEAN NOT NULL DEFAULT FALSE,
			position INT NOT NULL DEFAULT 0,
			PRIMARY KEY (restaurant_id, item_id, id),
			FOREIGN KEY (restaurant_id, item_id)
				REFERENCES menu_items(restaurant_id, id)
		)
	`
	if _, err := db.Exec(ctx, groupsSQL); err != nil {
		return err
	}

	optionsSQL := `
		CREATE TABLE IF NOT EXISTS modifier_options (
			restaurant_id VARCHAR(100) NOT NULL,
			item_id VARCHAR(100) NOT NULL,
			group_id VARCHAR(100) NOT NULL,
			id VARCHAR(100) NOT NULL,
			name VARCHAR(255) NOT NULL,
			price_cents BIGINT NOT NULL DEFAULT 0,
			position INT NOT NULL DEFAULT 0,
			PRIMARY KEY (restaurant_id, item_id, group_id, id),
			FOREIGN KEY (restaurant_id, item_id, group_id)
				REFERENCES modifier_groups(restaurant_id, item_id, id)
		)
	`
	if _, err := db.Exec(ctx, optionsSQL); err != nil {
		return err
	}

	log.Println("Schema initialized successfully")
	return nil
}
