// internal/repository/postgres/inventory_repository.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/stocklens/wms-backend/internal/domain"
	"github.com/stocklens/wms-backend/internal/repository"
)

type inventoryRepository struct {
	db *DB
}

func NewInventoryRepository(db *DB) repository.InventoryRepository {
	return &inventoryRepository{db: db}
}

const productColumns = `
	p.id, p.sku, p.name,
	COALESCE(p.category_id, 0) AS category_id,
	COALESCE(c.name, '') AS category_name,
	p.quantity, p.min_stock, p.max_stock, p.created_at, p.updated_at
`

func (r *inventoryRepository) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1
	`

	var product domain.Product
	err := r.db.WithRead(ctx, func() error {
		return r.db.GetContext(ctx, &product, query, id)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrProductNotFound
		}
		return nil, fmt.Errorf("error getting product %d: %w", id, err)
	}

	return &product, nil
}

func (r *inventoryRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		ORDER BY p.id
	`

	var products []domain.Product
	err := r.db.WithRead(ctx, func() error {
		return r.db.SelectContext(ctx, &products, query)
	})
	if err != nil {
		return nil, fmt.Errorf("error listing products: %w", err)
	}

	return products, nil
}

func (r *inventoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT id, name, color
		FROM categories
		ORDER BY name
	`

	var categories []domain.Category
	err := r.db.WithRead(ctx, func() error {
		return r.db.SelectContext(ctx, &categories, query)
	})
	if err != nil {
		return nil, fmt.Errorf("error listing categories: %w", err)
	}

	products, err := r.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[int64][]domain.Product, len(categories))
	for _, p := range products {
		byCategory[p.CategoryID] = append(byCategory[p.CategoryID], p)
	}
	for i := range categories {
		categories[i].Products = byCategory[categories[i].ID]
	}

	return categories, nil
}

func (r *inventoryRepository) ListTransactions(ctx context.Context, filter repository.TransactionFilter) ([]domain.Transaction, error) {
	query := `
		SELECT id, product_id, transaction_type, quantity,
		       COALESCE(reference_type, '') AS reference_type,
		       COALESCE(reason, '') AS reason,
		       COALESCE(created_by, '') AS created_by,
		       created_at
		FROM transactions
		WHERE created_at >= $1 AND created_at <= $2
	`

	args := []interface{}{filter.Since, filter.Until}
	var conditions []string
	argCounter := 3

	if filter.ProductID > 0 {
		conditions = append(conditions, fmt.Sprintf("product_id = $%d", argCounter))
		args = append(args, filter.ProductID)
		argCounter++
	}

	if filter.Type != "" {
		conditions = append(conditions, fmt.Sprintf("transaction_type = $%d", argCounter))
		args = append(args, filter.Type)
		argCounter++
	}

	if len(conditions) > 0 {
		query += " AND " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY created_at"

	var transactions []domain.Transaction
	err := r.db.WithRead(ctx, func() error {
		return r.db.SelectContext(ctx, &transactions, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("error listing transactions: %w", err)
	}

	return transactions, nil
}
