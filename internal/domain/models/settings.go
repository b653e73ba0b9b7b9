// internal/domain/models/settings.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Settings holds firm-wide configuration. The collection is treated as a
// singleton: the first document found is the settings document.
type Settings struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CompanyName  string             `bson:"company_name" json:"company_name"`
	ContactEmail string             `bson:"contact_email" json:"contact_email"`
	Currency     string             `bson:"currency" json:"currency"`
	TaxRate      float64            `bson:"tax_rate" json:"tax_rate"` // decimal, e.g. 0.2 for 20%
}

// Defaults used when no settings document exists yet.
const (
	DefaultCompanyName  = "Your Law Firm"
	DefaultContactEmail = "info@example.com"
	DefaultCurrency     = "USD"
	DefaultTaxRate      = 0.0
)

// DefaultSettings returns the settings document created on first read.
func DefaultSettings() Settings {
	return Settings{
		CompanyName:  DefaultCompanyName,
		ContactEmail: DefaultContactEmail,
		Currency:     DefaultCurrency,
		TaxRate:      DefaultTaxRate,
	}
}
