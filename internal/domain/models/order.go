// internal/domain/models/order.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// OrderItem is one line of an Order. Price is the unit price captured when
// the order was placed and does not follow later Product price changes.
type OrderItem struct {
	ProductID string  `bson:"product_id" json:"product_id"`
	Quantity  int64   `bson:"quantity" json:"quantity"`
	Price     float64 `bson:"price" json:"price"`
}

// Order is a purchase by a customer. Total is supplied by the caller and is
// not recomputed from Items.
type Order struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CustomerID string             `bson:"customer_id" json:"customer_id"`
	Items      []OrderItem        `bson:"items" json:"items"`
	Total      float64            `bson:"total" json:"total"`
	Status     string             `bson:"status" json:"status"` // pending | paid | completed | cancelled
	Notes      *string            `bson:"notes" json:"notes"`
}

const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// OrderStatuses lists every accepted Order.Status value.
var OrderStatuses = []string{OrderStatusPending, OrderStatusPaid, OrderStatusCompleted, OrderStatusCancelled}
