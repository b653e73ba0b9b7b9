// internal/domain/schema/describe.go
package schema

import (
	"strconv"
	"strings"
)

// Constraints are the value rules of a field, decoded from its Rule tag.
type Constraints struct {
	Enum      []string
	Minimum   *float64
	Maximum   *float64
	MinLength *int
	Email     bool
}

// Constraints parses f.Rule.
func (f Field) Constraints() Constraints {
	var c Constraints
	if f.Rule == "" {
		return c
	}
	for _, part := range strings.Split(f.Rule, ",") {
		tag, param, _ := strings.Cut(part, "=")
		switch tag {
		case "email":
			c.Email = true
		case "oneof":
			c.Enum = strings.Fields(param)
		case "gte":
			if v, err := strconv.ParseFloat(param, 64); err == nil {
				c.Minimum = &v
			}
		case "lte":
			if v, err := strconv.ParseFloat(param, 64); err == nil {
				c.Maximum = &v
			}
		case "min":
			if f.Kind == String {
				if n, err := strconv.Atoi(param); err == nil {
					c.MinLength = &n
				}
			} else if v, err := strconv.ParseFloat(param, 64); err == nil {
				c.Minimum = &v
			}
		}
	}
	return c
}

// Describe returns a JSON-schema style description of the entity.
func (s *Schema[T]) Describe() map[string]any {
	return describeObject(s.Title, s.Fields)
}

func describeObject(title string, fields []Field) map[string]any {
	props := make(map[string]any, len(fields))
	required := []string{}
	for _, f := range fields {
		props[f.Name] = describeField(f)
		if f.Required {
			required = append(required, f.Name)
		}
	}
	d := map[string]any{
		"type":       "object",
		"properties": props,
		"required":   required,
	}
	if title != "" {
		d["title"] = title
	}
	return d
}

func describeField(f Field) map[string]any {
	d := map[string]any{"type": f.Kind.String()}
	if f.Nullable {
		d["type"] = []string{f.Kind.String(), "null"}
	}
	if f.Description != "" {
		d["description"] = f.Description
	}
	if f.hasDefault() {
		d["default"] = f.Default
	}

	c := f.Constraints()
	if c.Email {
		d["format"] = "email"
	}
	if len(c.Enum) > 0 {
		d["enum"] = c.Enum
	}
	if c.Minimum != nil {
		d["minimum"] = *c.Minimum
	}
	if c.Maximum != nil {
		d["maximum"] = *c.Maximum
	}
	if c.MinLength != nil {
		d["minLength"] = *c.MinLength
	}

	switch f.Kind {
	case Array:
		if len(f.Elem) > 0 {
			d["items"] = describeObject("", f.Elem)
		}
	case Object:
		d["additionalProperties"] = map[string]any{"type": f.Values.String()}
	}
	return d
}
