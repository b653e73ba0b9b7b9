// internal/app/features/documents/entity.go
package documents

import (
	"github.com/dalemusser/lawcrm/internal/app/store/docstore"
	"github.com/dalemusser/lawcrm/internal/app/system/paging"
	"github.com/dalemusser/lawcrm/internal/domain/models"
	"github.com/dalemusser/lawcrm/internal/domain/schema"
)

// Ops selects which endpoints an entity exposes.
type Ops uint8

const (
	OpCreate Ops = 1 << iota // POST /
	OpList                   // GET /
	OpGet                    // GET /{id}
	OpUpdate                 // PUT /{id}
	OpDelete                 // DELETE /{id}
)

// Has reports whether every op in want is enabled.
func (o Ops) Has(want Ops) bool {
	return o&want == want
}

// Entity binds a collection to the schema and record type stored in it.
type Entity[T any] struct {
	Label      string // lower-case name used in client messages
	Collection docstore.Collection
	Schema     *schema.Schema[T]
	ListLimit  int64
	// Filters are query parameters applied as exact-match list filters
	// when non-empty.
	Filters []string
	Ops     Ops
}

var (
	Customers = Entity[models.Customer]{
		Label:      "customer",
		Collection: docstore.Customers,
		Schema:     schema.Customer,
		ListLimit:  paging.CustomersLimit,
		Ops:        OpCreate | OpList | OpGet | OpUpdate | OpDelete,
	}

	Products = Entity[models.Product]{
		Label:      "product",
		Collection: docstore.Products,
		Schema:     schema.Product,
		ListLimit:  paging.DefaultLimit,
		Ops:        OpCreate | OpList | OpUpdate,
	}

	Orders = Entity[models.Order]{
		Label:      "order",
		Collection: docstore.Orders,
		Schema:     schema.Order,
		ListLimit:  paging.DefaultLimit,
		Ops:        OpCreate | OpList | OpGet,
	}

	FactFinds = Entity[models.FactFind]{
		Label:      "factfind",
		Collection: docstore.FactFinds,
		Schema:     schema.FactFind,
		ListLimit:  paging.DefaultLimit,
		Filters:    []string{"customer_id"},
		Ops:        OpCreate | OpList,
	}
)
