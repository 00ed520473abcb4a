package domain

// Stock status labels derived from a product's quantity against its
// configured thresholds.
const (
	StatusOutOfStock = "out_of_stock"
	StatusLowStock   = "low_stock"
	StatusOverstock  = "overstock"
	StatusNormal     = "normal"
)

// StockStatus classifies the product's current on-hand quantity.
func (p Product) StockStatus() string {
	switch {
	case p.Quantity <= 0:
		return StatusOutOfStock
	case p.Quantity <= p.MinStock:
		return StatusLowStock
	case p.Quantity >= p.MaxStock:
		return StatusOverstock
	default:
		return StatusNormal
	}
}
