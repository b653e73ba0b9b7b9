// internal/app/store/docstore/collections.go
package docstore

// Collection names one of the five document collections. The set is closed:
// values can only come from the package-level variables below.
type Collection struct {
	name string
}

var (
	Customers = Collection{name: "customer"}
	Products  = Collection{name: "product"}
	Orders    = Collection{name: "order"}
	FactFinds = Collection{name: "factfind"}
	Settings  = Collection{name: "settings"}
)

// Name returns the MongoDB collection name.
func (c Collection) Name() string {
	return c.name
}

func (c Collection) String() string {
	return c.name
}

// valid reports whether c is one of the declared collections (the zero
// value is not).
func (c Collection) valid() bool {
	return c.name != ""
}

// All returns every collection in a stable order.
func All() []Collection {
	return []Collection{Customers, Products, Orders, FactFinds, Settings}
}
