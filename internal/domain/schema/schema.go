// internal/domain/schema/schema.go

// Package schema holds the declarative shape and validation rules of every
// entity the CRM stores. A Schema validates an untyped JSON record and yields
// a typed, defaulted record, or a ValidationError listing every violation.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/go-playground/validator/v10"
)

// rules is shared; validator.Validate is safe for concurrent use.
var rules = validator.New()

// Schema binds a set of field descriptors to the record type T they produce.
type Schema[T any] struct {
	Title  string
	Fields []Field
}

// New returns a schema for T.
func New[T any](title string, fields ...Field) *Schema[T] {
	return &Schema[T]{Title: title, Fields: fields}
}

// Field returns the descriptor named name.
func (s *Schema[T]) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Validate checks raw against the full schema. Required fields must be
// present, absent optional fields receive their literal default, and unknown
// fields are ignored. Values are never coerced across types.
func (s *Schema[T]) Validate(raw map[string]any) (T, error) {
	var rec T
	verr := &ValidationError{}
	norm := checkObject(s.Fields, raw, "", verr)
	if !verr.empty() {
		return rec, verr
	}
	if err := decodeInto(norm, &rec); err != nil {
		return rec, fmt.Errorf("schema %s: %w", s.Title, err)
	}
	return rec, nil
}

// ValidatePartial checks an update payload. Every field is optional, each
// present field must satisfy its full-schema rule, and unknown fields are
// rejected. No defaults are applied. The returned map holds normalized
// values ready for a $set.
func (s *Schema[T]) ValidatePartial(raw map[string]any) (map[string]any, error) {
	verr := &ValidationError{}
	out := make(map[string]any, len(raw))
	for _, k := range sortedKeys(raw) {
		f, ok := s.Field(k)
		if !ok {
			verr.add(k, "Unknown field")
			continue
		}
		if v, ok := checkValue(f, raw[k], k, verr); ok {
			out[k] = v
		}
	}
	if !verr.empty() {
		return nil, verr
	}
	return out, nil
}

// DecodeObject reads a single JSON object from r; trailing data is an
// error. Numbers are kept as json.Number so integer and float fields can be
// told apart.
func DecodeObject(r io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ValidationError{Errors: []FieldError{{Field: "body", Message: "Request body is required"}}}
		}
		return nil, &ValidationError{Errors: []FieldError{{Field: "body", Message: "Malformed JSON body"}}}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, &ValidationError{Errors: []FieldError{{Field: "body", Message: "Malformed JSON body"}}}
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, &ValidationError{Errors: []FieldError{{Field: "body", Message: "Request body must be a JSON object"}}}
	}
	return m, nil
}

/* ------------------------------ checking ------------------------------ */

func checkObject(fields []Field, raw map[string]any, prefix string, verr *ValidationError) map[string]any {
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		path := prefix + f.Name
		v, present := raw[f.Name]
		if !present {
			switch {
			case f.Required:
				verr.add(path, "This field is required")
			case f.hasDefault():
				out[f.Name] = f.defaultValue()
			case f.Nullable:
				out[f.Name] = nil
			}
			continue
		}
		if cv, ok := checkValue(f, v, path, verr); ok {
			out[f.Name] = cv
		}
	}
	return out
}

func checkValue(f Field, v any, path string, verr *ValidationError) (any, bool) {
	if v == nil {
		if f.Nullable {
			return nil, true
		}
		verr.add(path, "Must not be null")
		return nil, false
	}

	var out any
	switch f.Kind {
	case String:
		s, ok := v.(string)
		if !ok {
			verr.add(path, "Must be a string")
			return nil, false
		}
		out = s
	case Number:
		n, ok := asNumber(v)
		if !ok {
			verr.add(path, "Must be a number")
			return nil, false
		}
		out = n
	case Integer:
		n, ok := asInteger(v)
		if !ok {
			verr.add(path, "Must be an integer")
			return nil, false
		}
		out = n
	case Boolean:
		b, ok := v.(bool)
		if !ok {
			verr.add(path, "Must be a boolean")
			return nil, false
		}
		out = b
	case Array:
		items, ok := v.([]any)
		if !ok {
			verr.add(path, "Must be an array")
			return nil, false
		}
		list, ok := checkArray(f, items, path, verr)
		if !ok {
			return nil, false
		}
		out = list
	case Object:
		m, ok := v.(map[string]any)
		if !ok {
			verr.add(path, "Must be an object")
			return nil, false
		}
		norm := make(map[string]any, len(m))
		valid := true
		for _, k := range sortedKeys(m) {
			cv, ok := checkValue(Field{Name: k, Kind: f.Values}, m[k], path+"."+k, verr)
			if !ok {
				valid = false
				continue
			}
			norm[k] = cv
		}
		if !valid {
			return nil, false
		}
		out = norm
	default:
		verr.add(path, "Unsupported field type")
		return nil, false
	}

	if f.Rule != "" {
		if err := rules.Var(out, f.Rule); err != nil {
			var ves validator.ValidationErrors
			if errors.As(err, &ves) && len(ves) > 0 {
				verr.add(path, ruleMessage(ves[0]))
			} else {
				verr.add(path, "Invalid value")
			}
			return nil, false
		}
	}
	return out, true
}

func checkArray(f Field, items []any, path string, verr *ValidationError) ([]any, bool) {
	list := make([]any, 0, len(items))
	valid := true
	for i, it := range items {
		p := fmt.Sprintf("%s[%d]", path, i)
		if len(f.Elem) == 0 {
			list = append(list, it)
			continue
		}
		obj, ok := it.(map[string]any)
		if !ok {
			verr.add(p, "Must be an object")
			valid = false
			continue
		}
		before := len(verr.Errors)
		norm := checkObject(f.Elem, obj, p+".", verr)
		if len(verr.Errors) > before {
			valid = false
			continue
		}
		list = append(list, norm)
	}
	return list, valid
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func asInteger(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return integral(f)
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		return integral(n)
	}
	return 0, false
}

// integral reports whether f is a whole number in int64 range. MaxInt64
// rounds up to 2^63 as a float64, so that bound is exclusive.
func integral(f float64) (int64, bool) {
	if f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

func decodeInto(norm map[string]any, dst any) error {
	b, err := json.Marshal(norm)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
