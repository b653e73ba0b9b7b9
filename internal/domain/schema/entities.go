// internal/domain/schema/entities.go
package schema

import (
	"strings"

	"github.com/dalemusser/lawcrm/internal/domain/models"
)

func oneOf(values []string) string {
	return "oneof=" + strings.Join(values, " ")
}

// Customer validates customer payloads.
var Customer = New[models.Customer]("Customer",
	Field{Name: "name", Kind: String, Required: true, Rule: "min=1", Description: "Full name"},
	Field{Name: "email", Kind: String, Required: true, Rule: "email", Description: "Email address"},
	Field{Name: "phone", Kind: String, Nullable: true, Description: "Phone number"},
	Field{Name: "address", Kind: String, Nullable: true, Description: "Postal address"},
	Field{Name: "notes", Kind: String, Nullable: true, Description: "Internal notes"},
	Field{Name: "status", Kind: String, Default: models.CustomerStatusActive, Rule: oneOf(models.CustomerStatuses), Description: "active | lead | archived"},
)

// Product validates product payloads.
var Product = New[models.Product]("Product",
	Field{Name: "title", Kind: String, Required: true, Description: "Service name (e.g., Will Writing)"},
	Field{Name: "description", Kind: String, Nullable: true, Description: "Service details"},
	Field{Name: "price", Kind: Number, Required: true, Rule: "gte=0", Description: "Base price in currency units"},
	Field{Name: "category", Kind: String, Default: models.ProductCategoryService, Rule: oneOf(models.ProductCategories), Description: "service | add-on | package"},
	Field{Name: "in_stock", Kind: Boolean, Default: true, Description: "Whether available for sale"},
)

// OrderItemFields describe one embedded order line.
var OrderItemFields = []Field{
	{Name: "product_id", Kind: String, Required: true, Description: "Referenced product id"},
	{Name: "quantity", Kind: Integer, Default: int64(1), Rule: "gte=1"},
	{Name: "price", Kind: Number, Required: true, Rule: "gte=0", Description: "Unit price at time of order"},
}

// Order validates order payloads.
var Order = New[models.Order]("Order",
	Field{Name: "customer_id", Kind: String, Required: true, Description: "Referenced customer id"},
	Field{Name: "items", Kind: Array, Default: []any{}, Elem: OrderItemFields},
	Field{Name: "total", Kind: Number, Required: true, Rule: "gte=0"},
	Field{Name: "status", Kind: String, Default: models.OrderStatusPending, Rule: oneOf(models.OrderStatuses), Description: "pending | paid | completed | cancelled"},
	Field{Name: "notes", Kind: String, Nullable: true},
)

// FactFind validates fact-find payloads.
var FactFind = New[models.FactFind]("FactFind",
	Field{Name: "customer_id", Kind: String, Required: true, Description: "Referenced customer id"},
	Field{Name: "responses", Kind: Object, Values: String, Default: map[string]any{}, Description: "Q&A map"},
	Field{Name: "stage", Kind: String, Default: models.FactFindStageNew, Rule: oneOf(models.FactFindStages), Description: "new | in_progress | completed"},
)

// Settings validates the singleton settings document.
var Settings = New[models.Settings]("Settings",
	Field{Name: "company_name", Kind: String, Default: models.DefaultCompanyName},
	Field{Name: "contact_email", Kind: String, Default: models.DefaultContactEmail, Rule: "email"},
	Field{Name: "currency", Kind: String, Default: models.DefaultCurrency},
	Field{Name: "tax_rate", Kind: Number, Default: models.DefaultTaxRate, Rule: "gte=0,lte=1", Description: "Tax rate as decimal, e.g., 0.2 for 20%"},
)

// Describe returns the description of every entity keyed by its API name.
func Describe() map[string]any {
	return map[string]any{
		"customer": Customer.Describe(),
		"product":  Product.Describe(),
		"order":    Order.Describe(),
		"factfind": FactFind.Describe(),
		"settings": Settings.Describe(),
	}
}
