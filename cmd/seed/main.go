package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

type dbKeyType struct{}

var dbKey dbKeyType

func newDBURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "db-url",
		Usage:    "Database connection string",
		Required: true,
		EnvVars:  []string{"DATABASE_URL"},
	}
}

func initDB(c *cli.Context) error {
	db, err := sql.Open("pgx", c.String("db-url"))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	c.Context = context.WithValue(c.Context, dbKey, db)
	return nil
}

func closeDB(c *cli.Context) error {
	if db, ok := c.Context.Value(dbKey).(*sql.DB); ok && db != nil {
		return db.Close()
	}
	return nil
}

func dbFrom(c *cli.Context) *sql.DB {
	db, _ := c.Context.Value(dbKey).(*sql.DB)
	return db
}

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "seed",
		Usage: "Seed demo catalog and historical transaction data",
		Commands: []*cli.Command{
			{
				Name:   "catalog",
				Usage:  "Insert the demo categories and products",
				Flags:  []cli.Flag{newDBURLFlag()},
				Before: initDB,
				After:  closeDB,
				Action: seedCatalog,
			},
			{
				Name:  "transactions",
				Usage: "Generate historical OUT/IN transactions for every product",
				Flags: []cli.Flag{
					newDBURLFlag(),
					&cli.IntFlag{
						Name:  "days",
						Usage: "How many days of history to generate",
						Value: 90,
					},
					&cli.Int64Flag{
						Name:  "rand-seed",
						Usage: "Seed for the demand generator (0 = time-based)",
						Value: 0,
					},
				},
				Before: initDB,
				After:  closeDB,
				Action: seedTransactions,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func seedCatalog(c *cli.Context) error {
	db := dbFrom(c)
	ctx := c.Context

	for _, cat := range demoCategories {
		if _, err := db.ExecContext(ctx, `
			INSERT INTO categories (name, color)
			VALUES ($1, $2)
			ON CONFLICT (name) DO NOTHING
		`, cat.name, cat.color); err != nil {
			return fmt.Errorf("failed to insert category %s: %w", cat.name, err)
		}
	}

	for _, p := range demoProducts {
		if _, err := db.ExecContext(ctx, `
			INSERT INTO products (sku, name, category_id, quantity, min_stock, max_stock, created_at, updated_at)
			SELECT $1, $2, c.id, $4, $5, $6, NOW(), NOW()
			FROM categories c WHERE c.name = $3
			ON CONFLICT (sku) DO NOTHING
		`, p.sku, p.name, p.category, p.quantity, p.minStock, p.maxStock); err != nil {
			return fmt.Errorf("failed to insert product %s: %w", p.sku, err)
		}
	}

	log.Printf("Seeded %d categories and %d products", len(demoCategories), len(demoProducts))
	return nil
}

func seedTransactions(c *cli.Context) error {
	db := dbFrom(c)
	ctx := c.Context
	days := c.Int("days")

	rng := rand.New(rand.NewSource(c.Int64("rand-seed")))
	if c.Int64("rand-seed") == 0 {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	rows, err := db.QueryContext(ctx, `
		SELECT p.id, p.quantity, COALESCE(c.name, '')
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		ORDER BY p.id
	`)
	if err != nil {
		return fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	type seedProduct struct {
		id       int64
		quantity int
		category string
	}
	var products []seedProduct
	for rows.Next() {
		var p seedProduct
		if err := rows.Scan(&p.id, &p.quantity, &p.category); err != nil {
			return fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if len(products) == 0 {
		return fmt.Errorf("no products found, run 'seed catalog' first")
	}

	endDate := time.Now().UTC()
	startDate := endDate.AddDate(0, 0, -days)
	count := 0

	for _, product := range products {
		profile, ok := demandProfiles[product.category]
		if !ok {
			profile = defaultProfile
		}

		// Product-specific variation so SKUs in one category differ
		productFactor := 0.5 + rng.Float64()

		for current := startDate; !current.After(endDate); current = current.AddDate(0, 0, 1) {
			base := profile.baseDemand * productFactor
			if wd := current.Weekday(); wd == time.Saturday || wd == time.Sunday {
				base *= profile.weekendFactor
			}

			dailyDemand := 0
			if rng.Float64() >= 0.3 { // 30% of days have no demand
				dailyDemand = int(rng.NormFloat64()*profile.variance + base)
				if dailyDemand < 0 {
					dailyDemand = 0
				}
			}

			// Slight upward drift toward recent days
			daysAgo := int(endDate.Sub(current).Hours() / 24)
			recencyFactor := 1 + float64(days-daysAgo)/300
			dailyDemand = int(float64(dailyDemand) * recencyFactor)

			if dailyDemand == 0 {
				continue
			}

			createdAt := time.Date(current.Year(), current.Month(), current.Day(),
				8+rng.Intn(11), rng.Intn(60), 0, 0, time.UTC)

			if _, err := db.ExecContext(ctx, `
				INSERT INTO transactions (product_id, transaction_type, quantity, reference_type, reason, created_by, created_at)
				VALUES ($1, 'OUT', $2, 'historical_seed', 'Historical demand (seeded)', 'System', $3)
			`, product.id, -dailyDemand, createdAt); err != nil {
				return fmt.Errorf("failed to insert OUT transaction: %w", err)
			}
			count++
		}

		// Restocking roughly every two weeks
		restock := startDate.AddDate(0, 0, 1+rng.Intn(14))
		for !restock.After(endDate) {
			qty := 20 + rng.Intn(81)
			createdAt := time.Date(restock.Year(), restock.Month(), restock.Day(), 9, 0, 0, 0, time.UTC)

			if _, err := db.ExecContext(ctx, `
				INSERT INTO transactions (product_id, transaction_type, quantity, reference_type, reason, created_by, created_at)
				VALUES ($1, 'IN', $2, 'historical_seed', 'Restocking (seeded)', 'System', $3)
			`, product.id, qty, createdAt); err != nil {
				return fmt.Errorf("failed to insert IN transaction: %w", err)
			}
			count++

			restock = restock.AddDate(0, 0, 10+rng.Intn(11))
		}
	}

	log.Printf("Created %d historical transactions for %d products", count, len(products))
	return nil
}
