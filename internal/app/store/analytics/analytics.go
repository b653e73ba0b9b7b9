// internal/app/store/analytics/analytics.go

// Package analytics computes the CRM summary: customer and order counts,
// total revenue and the best-selling products by quantity.
package analytics

import (
	"context"
	"fmt"

	"github.com/dalemusser/lawcrm/internal/app/store/docstore"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// TopProductsLimit caps Summary.TopProducts.
const TopProductsLimit = 5

// ProductQuantity is the total quantity ordered for one product id.
type ProductQuantity struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// Summary is the analytics snapshot returned by GET /analytics/summary.
type Summary struct {
	Customers   int64             `json:"customers"`
	Orders      int64             `json:"orders"`
	Revenue     float64           `json:"revenue"`
	TopProducts []ProductQuantity `json:"top_products"`
}

// Summarize runs the four summary queries in sequence. The counts and
// revenue are not a consistent snapshot. A failing top-products
// aggregation is logged and yields an empty list.
func Summarize(ctx context.Context, store *docstore.Store, logger *zap.Logger) (Summary, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	customers, err := store.Count(ctx, docstore.Customers, nil)
	if err != nil {
		return Summary{}, err
	}
	orders, err := store.Count(ctx, docstore.Orders, nil)
	if err != nil {
		return Summary{}, err
	}
	revenue, err := Revenue(ctx, store, logger)
	if err != nil {
		return Summary{}, err
	}

	top, err := topProducts(ctx, store)
	if err != nil {
		logger.Warn("top products aggregation failed", zap.Error(err))
		top = []ProductQuantity{}
	}

	return Summary{
		Customers:   customers,
		Orders:      orders,
		Revenue:     revenue,
		TopProducts: top,
	}, nil
}

// Revenue sums the total of every order. Orders without a total count as
// zero; totals that are not numeric are skipped with a warning.
func Revenue(ctx context.Context, store *docstore.Store, logger *zap.Logger) (float64, error) {
	sum := decimal.Zero
	err := store.Scan(ctx, docstore.Orders, nil, bson.M{"total": 1}, func(doc bson.M) error {
		raw, ok := doc["total"]
		if !ok || raw == nil {
			return nil
		}
		d, ok := toDecimal(raw)
		if !ok {
			logger.Warn("skipping order with non-numeric total",
				zap.Any("order_id", doc["_id"]),
				zap.String("type", fmt.Sprintf("%T", raw)))
			return nil
		}
		sum = sum.Add(d)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return sum.InexactFloat64(), nil
}

// topProducts is replaced in tests to force an aggregation failure.
var topProducts = TopProducts

// TopProducts returns up to TopProductsLimit product ids ordered by total
// quantity descending. Ties are returned in no particular order.
func TopProducts(ctx context.Context, store *docstore.Store) ([]ProductQuantity, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$items"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$items.product_id"},
			{Key: "qty", Value: bson.D{{Key: "$sum", Value: "$items.quantity"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "qty", Value: -1}}}},
		{{Key: "$limit", Value: TopProductsLimit}},
	}

	var rows []bson.M
	if err := store.Aggregate(ctx, docstore.Orders, pipeline, &rows); err != nil {
		return nil, err
	}

	out := make([]ProductQuantity, 0, len(rows))
	for _, r := range rows {
		out = append(out, ProductQuantity{
			ProductID: productID(r["_id"]),
			Quantity:  toInt64(r["qty"]),
		})
	}
	return out, nil
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), true
	case float32:
		return decimal.NewFromFloat32(n), true
	case int32:
		return decimal.NewFromInt32(n), true
	case int64:
		return decimal.NewFromInt(n), true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case primitive.Decimal128:
		d, err := decimal.NewFromString(n.String())
		return d, err == nil
	case string:
		d, err := decimal.NewFromString(n)
		return d, err == nil
	}
	return decimal.Zero, false
}

func toInt64(v any) int64 {
	switch n := v.(type) {
	case int32:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	}
	return 0
}

func productID(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case primitive.ObjectID:
		return id.Hex()
	default:
		return fmt.Sprint(id)
	}
}
