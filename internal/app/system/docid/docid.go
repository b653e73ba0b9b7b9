// internal/app/system/docid/docid.go

// Package docid converts between MongoDB ObjectIDs and the string ids API
// callers see. Documents leave the service with "_id" replaced by "id".
package docid

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PublicField is the field that carries the external id in API output.
const PublicField = "id"

// ErrInvalidIdentifier is returned for strings that are not a valid id.
var ErrInvalidIdentifier = errors.New("invalid identifier")

// Encode parses an external id. Only the canonical form produced by Decode
// (24 lowercase hex characters) is accepted, so Decode(Encode(s)) == s.
func Encode(s string) (primitive.ObjectID, error) {
	if len(s) != 24 {
		return primitive.NilObjectID, ErrInvalidIdentifier
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return primitive.NilObjectID, ErrInvalidIdentifier
		}
	}
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidIdentifier
	}
	return id, nil
}

// Decode returns the external form of id.
func Decode(id primitive.ObjectID) string {
	return id.Hex()
}

// Publish returns a copy of doc with "_id" removed and its string form
// stored under PublicField.
func Publish(doc bson.M) map[string]any {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		out[k] = v
	}
	if raw, ok := doc["_id"]; ok {
		switch id := raw.(type) {
		case primitive.ObjectID:
			out[PublicField] = Decode(id)
		case string:
			out[PublicField] = id
		default:
			out[PublicField] = fmt.Sprint(id)
		}
	}
	return out
}
