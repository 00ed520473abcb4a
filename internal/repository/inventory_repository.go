// internal/repository/inventory_repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/stocklens/wms-backend/internal/domain"
)

// ErrProductNotFound is returned when a product id does not exist.
// Bulk consumers skip it instead of aborting.
var ErrProductNotFound = errors.New("product not found")

// TransactionFilter narrows a transaction history read. Zero values
// mean "no constraint" except the time bounds, which are always set by
// the forecasting core.
type TransactionFilter struct {
	ProductID int64  // 0 = all products
	Type      string // "" = all types
	Since     time.Time
	Until     time.Time
}

// InventoryRepository is the read-only persistence collaborator the
// forecasting core depends on.
type InventoryRepository interface {
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]domain.Transaction, error)
}
