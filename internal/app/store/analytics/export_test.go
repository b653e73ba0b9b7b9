package analytics

import (
	"context"

	"github.com/dalemusser/lawcrm/internal/app/store/docstore"
)

var (
	ToDecimal = toDecimal
	ToInt64   = toInt64
	ProductID = productID
)

// SetTopProducts swaps the top-products query and returns a restore func.
func SetTopProducts(fn func(context.Context, *docstore.Store) ([]ProductQuantity, error)) func() {
	prev := topProducts
	topProducts = fn
	return func() { topProducts = prev }
}
