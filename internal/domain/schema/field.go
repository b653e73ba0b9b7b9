// internal/domain/schema/field.go
package schema

// Kind is the JSON type a field accepts.
type Kind int

const (
	String Kind = iota
	Number
	Integer
	Boolean
	Array
	Object
)

// String returns the JSON-schema type name for k.
func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Number:
		return "number"
	case Integer:
		return "integer"
	case Boolean:
		return "boolean"
	case Array:
		return "array"
	case Object:
		return "object"
	}
	return "unknown"
}

// Field describes one property of an entity.
//
// Rule is a go-playground/validator tag (e.g. "email", "gte=0,lte=1",
// "oneof=active lead archived") applied to present, non-null values.
// Default is a literal applied on full validation when the field is absent.
type Field struct {
	Name        string
	Kind        Kind
	Required    bool
	Nullable    bool
	Default     any
	Rule        string
	Description string

	// Elem describes the objects held by an Array field.
	Elem []Field
	// Values is the kind of every value held by an Object field.
	Values Kind
}

// hasDefault reports whether f carries a literal default.
func (f Field) hasDefault() bool {
	return f.Default != nil
}

// defaultValue returns a fresh copy of f.Default so callers never share
// slices or maps between records.
func (f Field) defaultValue() any {
	switch d := f.Default.(type) {
	case []any:
		return append([]any{}, d...)
	case map[string]any:
		out := make(map[string]any, len(d))
		for k, v := range d {
			out[k] = v
		}
		return out
	default:
		return d
	}
}
