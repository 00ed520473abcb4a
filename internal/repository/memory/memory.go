// internal/repository/memory/memory.go
package memory

import (
	"context"
	"sort"

	"github.com/stocklens/wms-backend/internal/domain"
	"github.com/stocklens/wms-backend/internal/repository"
)

// Repository is an in-memory InventoryRepository backed by fixed
// fixtures. It exists for unit tests and local demos; reads are safe
// for concurrent use because the data is never mutated after New.
type Repository struct {
	products     []domain.Product
	categories   []domain.Category
	transactions []domain.Transaction
}

func New(products []domain.Product, categories []domain.Category, transactions []domain.Transaction) *Repository {
	return &Repository{
		products:     products,
		categories:   categories,
		transactions: transactions,
	}
}

func (r *Repository) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (r *Repository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products := make([]domain.Product, len(r.products))
	copy(products, r.products)
	return products, nil
}

func (r *Repository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories := make([]domain.Category, len(r.categories))
	copy(categories, r.categories)

	for i := range categories {
		var members []domain.Product
		for _, p := range r.products {
			if p.CategoryID == categories[i].ID {
				members = append(members, p)
			}
		}
		categories[i].Products = members
	}

	return categories, nil
}

func (r *Repository) ListTransactions(ctx context.Context, filter repository.TransactionFilter) ([]domain.Transaction, error) {
	var matched []domain.Transaction
	for _, t := range r.transactions {
		if filter.ProductID > 0 && t.ProductID != filter.ProductID {
			continue
		}
		if filter.Type != "" && t.Type != filter.Type {
			continue
		}
		if t.CreatedAt.Before(filter.Since) || t.CreatedAt.After(filter.Until) {
			continue
		}
		matched = append(matched, t)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})

	return matched, nil
}
