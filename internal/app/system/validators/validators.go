// internal/app/system/validators/validators.go
package validators

import (
	"context"
	"errors"
	"strings"

	"github.com/dalemusser/lawcrm/internal/app/store/docstore"
	"github.com/dalemusser/lawcrm/internal/domain/schema"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// EnsureAll creates collections (if missing) and tries to attach JSON-Schema
// validators derived from the entity schemas. On servers that don't support
// collMod/validators (e.g. some DocumentDB versions), we log and skip.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	for _, c := range docstore.All() {
		name := c.Name()
		if _, err := ensureCollection(ctx, db, name); err != nil {
			problems = append(problems, name+": "+err.Error())
			continue
		}
		if err := setValidator(ctx, db, name, For(c)); err != nil {
			if isNoSuchCommand(err) || isNotImplemented(err) {
				zap.L().Info("validator skipped (unsupported)", zap.String("collection", name))
				continue
			}
			problems = append(problems, name+": "+err.Error())
		}
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// For returns the $jsonSchema validator document for c.
func For(c docstore.Collection) bson.M {
	var fields []schema.Field
	switch c {
	case docstore.Customers:
		fields = schema.Customer.Fields
	case docstore.Products:
		fields = schema.Product.Fields
	case docstore.Orders:
		fields = schema.Order.Fields
	case docstore.FactFinds:
		fields = schema.FactFind.Fields
	case docstore.Settings:
		fields = schema.Settings.Fields
	}
	return bson.M{"$jsonSchema": objectSchema(fields)}
}

/* ------------------------- JSON-Schema derivation ------------------------ */

func objectSchema(fields []schema.Field) bson.M {
	props := bson.M{}
	required := bson.A{}
	for _, f := range fields {
		props[f.Name] = fieldSchema(f)
		if f.Required {
			required = append(required, f.Name)
		}
	}
	out := bson.M{"bsonType": "object", "properties": props}
	if len(required) > 0 {
		out["required"] = required
	}
	return out
}

func fieldSchema(f schema.Field) bson.M {
	types := bsonTypes(f.Kind)
	if f.Nullable {
		types = append(types, "null")
	}
	var out bson.M
	if len(types) == 1 {
		out = bson.M{"bsonType": types[0]}
	} else {
		out = bson.M{"bsonType": types}
	}

	// Email format is left to request validation; $jsonSchema has no format keyword.
	c := f.Constraints()
	if len(c.Enum) > 0 {
		enum := bson.A{}
		for _, v := range c.Enum {
			enum = append(enum, v)
		}
		out["enum"] = enum
	}
	if c.Minimum != nil {
		out["minimum"] = *c.Minimum
	}
	if c.Maximum != nil {
		out["maximum"] = *c.Maximum
	}
	if c.MinLength != nil {
		out["minLength"] = *c.MinLength
	}

	switch f.Kind {
	case schema.Array:
		if len(f.Elem) > 0 {
			out["items"] = objectSchema(f.Elem)
		}
	case schema.Object:
		out["additionalProperties"] = bson.M{"bsonType": bsonTypes(f.Values)}
	}
	return out
}

func bsonTypes(k schema.Kind) bson.A {
	switch k {
	case schema.String:
		return bson.A{"string"}
	case schema.Number:
		return bson.A{"double", "int", "long", "decimal"}
	case schema.Integer:
		return bson.A{"int", "long"}
	case schema.Boolean:
		return bson.A{"bool"}
	case schema.Array:
		return bson.A{"array"}
	case schema.Object:
		return bson.A{"object"}
	}
	return bson.A{}
}

/* ---------------------- collection helpers & logging ---------------------- */

// collectionExists returns true when <name> already exists.
func collectionExists(ctx context.Context, db *mongo.Database, name string) (bool, error) {
	names, err := db.ListCollectionNames(ctx, bson.M{"name": name})
	if err != nil {
		return false, err
	}
	return len(names) > 0, nil
}

// ensureCollection idempotently makes sure <name> exists.
// Returns created==true only if we actually created it.
func ensureCollection(ctx context.Context, db *mongo.Database, name string) (created bool, err error) {
	exists, listErr := collectionExists(ctx, db, name)
	if listErr == nil && exists {
		zap.L().Info("collection exists", zap.String("collection", name))
		return false, nil
	}
	if err := db.CreateCollection(ctx, name); err != nil {
		if isNamespaceExistsErr(err) {
			return false, nil
		}
		zap.L().Warn("createCollection failed", zap.String("collection", name), zap.Error(err))
		return false, err
	}
	zap.L().Info("created collection", zap.String("collection", name))
	return true, nil
}

func setValidator(ctx context.Context, db *mongo.Database, name string, validator bson.M) error {
	cmd := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
		// moderate: documents already violating the rules can still be updated
		{Key: "validationLevel", Value: "moderate"},
		{Key: "validationAction", Value: "error"},
	}
	var out bson.M
	if err := db.RunCommand(ctx, cmd).Decode(&out); err != nil {
		return err
	}
	zap.L().Info("validator ensured", zap.String("collection", name))
	return nil
}

/* ------------------------- error helpers ------------------------- */

func commandErr(err error, code int32, text ...string) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == code {
		return true
	}
	s := strings.ToLower(err.Error())
	for _, t := range text {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

func isNamespaceExistsErr(err error) bool {
	return commandErr(err, 48, "already exists", "namespace exists")
}

func isNoSuchCommand(err error) bool {
	return commandErr(err, 59, "no such command")
}

func isNotImplemented(err error) bool {
	return commandErr(err, 115, "not implemented", "not supported")
}
