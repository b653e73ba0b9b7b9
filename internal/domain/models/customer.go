// internal/domain/models/customer.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Customer is a client of the firm (stored in the "customer" collection).
type Customer struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
	Phone   *string            `bson:"phone" json:"phone"`
	Address *string            `bson:"address" json:"address"` // postal address
	Notes   *string            `bson:"notes" json:"notes"`     // internal notes
	Status  string             `bson:"status" json:"status"`   // active | lead | archived
}

// Customer status values.
const (
	CustomerStatusActive   = "active"
	CustomerStatusLead     = "lead"
	CustomerStatusArchived = "archived"
)

// CustomerStatuses lists every accepted Customer.Status value.
var CustomerStatuses = []string{CustomerStatusActive, CustomerStatusLead, CustomerStatusArchived}
