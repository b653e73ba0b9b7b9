// internal/domain/models/product.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product is a sellable legal service such as "Will Writing".
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description *string            `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`       // base price in currency units
	Category    string             `bson:"category" json:"category"` // service | add-on | package
	InStock     bool               `bson:"in_stock" json:"in_stock"`
}

const (
	ProductCategoryService = "service"
	ProductCategoryAddOn   = "add-on"
	ProductCategoryPackage = "package"
)

// ProductCategories lists every accepted Product.Category value.
var ProductCategories = []string{ProductCategoryService, ProductCategoryAddOn, ProductCategoryPackage}
