// internal/app/store/docstore/store.go

// Package docstore is the document access layer: generic create, list, get,
// update and delete operations over the CRM collections. Callers receive
// documents with the MongoDB "_id" replaced by a string "id".
package docstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/dalemusser/lawcrm/internal/app/system/docid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

var (
	// ErrStoreUnavailable is returned by every operation when the store
	// was built without a database.
	ErrStoreUnavailable = errors.New("database not available")
	// ErrNotFound is returned when a well-formed id matches no document.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidIdentifier is returned for malformed external ids.
	ErrInvalidIdentifier = docid.ErrInvalidIdentifier

	errUnknownCollection = errors.New("unknown collection")
)

// Document is a stored record as returned to callers.
type Document = map[string]any

// Filter is an exact-match filter: field name to required value.
// An empty filter matches every document.
type Filter map[string]any

// Store provides access to the CRM collections of one database.
type Store struct {
	db  *mongo.Database
	log *zap.Logger
}

// New creates a store over db. A nil db yields a store in the unavailable
// state, where every operation fails with ErrStoreUnavailable.
func New(db *mongo.Database, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{db: db, log: logger}
}

// Available reports whether the store has a database.
func (s *Store) Available() bool {
	return s != nil && s.db != nil
}

func (s *Store) coll(c Collection) (*mongo.Collection, error) {
	if !s.Available() {
		return nil, ErrStoreUnavailable
	}
	if !c.valid() {
		return nil, errUnknownCollection
	}
	return s.db.Collection(c.Name()), nil
}

// Create inserts record and returns the new document's external id.
func (s *Store) Create(ctx context.Context, c Collection, record any) (string, error) {
	coll, err := s.coll(c)
	if err != nil {
		return "", err
	}
	res, err := coll.InsertOne(ctx, record)
	if err != nil {
		return "", fmt.Errorf("insert %s: %w", c, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert %s: unexpected id type %T", c, res.InsertedID)
	}
	return docid.Decode(oid), nil
}

// List returns up to limit documents matching filter, in store order.
func (s *Store) List(ctx context.Context, c Collection, filter Filter, limit int64) ([]Document, error) {
	coll, err := s.coll(c)
	if err != nil {
		return nil, err
	}
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := coll.Find(ctx, bsonFilter(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", c, err)
	}
	defer cur.Close(ctx)

	var raw []bson.M
	if err := cur.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("find %s: %w", c, err)
	}
	out := make([]Document, 0, len(raw))
	for _, d := range raw {
		out = append(out, docid.Publish(d))
	}
	return out, nil
}

// Get returns the document with the given external id.
func (s *Store) Get(ctx context.Context, c Collection, id string) (Document, error) {
	coll, err := s.coll(c)
	if err != nil {
		return nil, err
	}
	oid, err := docid.Encode(id)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	err = coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find %s %s: %w", c, id, err)
	}
	return docid.Publish(doc), nil
}

// Update merges fields into the document with the given id (top-level
// field overwrite, no deep merge).
func (s *Store) Update(ctx context.Context, c Collection, id string, fields bson.M) error {
	coll, err := s.coll(c)
	if err != nil {
		return err
	}
	oid, err := docid.Encode(id)
	if err != nil {
		return err
	}

	// MongoDB rejects an empty $set; an empty update only has to prove the
	// document exists.
	if len(fields) == 0 {
		n, err := coll.CountDocuments(ctx, bson.M{"_id": oid}, options.Count().SetLimit(1))
		if err != nil {
			return fmt.Errorf("update %s %s: %w", c, id, err)
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	}

	res, err := coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("update %s %s: %w", c, id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the document with the given id.
func (s *Store) Delete(ctx context.Context, c Collection, id string) error {
	coll, err := s.coll(c)
	if err != nil {
		return err
	}
	oid, err := docid.Encode(id)
	if err != nil {
		return err
	}
	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete %s %s: %w", c, id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of documents matching filter.
func (s *Store) Count(ctx context.Context, c Collection, filter Filter) (int64, error) {
	coll, err := s.coll(c)
	if err != nil {
		return 0, err
	}
	n, err := coll.CountDocuments(ctx, bsonFilter(filter))
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", c, err)
	}
	return n, nil
}

// Scan calls fn for every document matching filter. projection may be nil.
// Scanning stops at the first error returned by fn.
func (s *Store) Scan(ctx context.Context, c Collection, filter Filter, projection bson.M, fn func(bson.M) error) error {
	coll, err := s.coll(c)
	if err != nil {
		return err
	}
	opts := options.Find()
	if projection != nil {
		opts.SetProjection(projection)
	}
	cur, err := coll.Find(ctx, bsonFilter(filter), opts)
	if err != nil {
		return fmt.Errorf("scan %s: %w", c, err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return fmt.Errorf("scan %s: %w", c, err)
		}
		if err := fn(doc); err != nil {
			return err
		}
	}
	if err := cur.Err(); err != nil {
		return fmt.Errorf("scan %s: %w", c, err)
	}
	return nil
}

// Aggregate runs pipeline against c and decodes every result into out,
// which must be a pointer to a slice.
func (s *Store) Aggregate(ctx context.Context, c Collection, pipeline mongo.Pipeline, out any) error {
	coll, err := s.coll(c)
	if err != nil {
		return err
	}
	cur, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return fmt.Errorf("aggregate %s: %w", c, err)
	}
	defer cur.Close(ctx)
	if err := cur.All(ctx, out); err != nil {
		return fmt.Errorf("aggregate %s: %w", c, err)
	}
	return nil
}

// Ping checks connectivity to the primary.
func (s *Store) Ping(ctx context.Context) error {
	if !s.Available() {
		return ErrStoreUnavailable
	}
	return s.db.Client().Ping(ctx, readpref.Primary())
}

// CollectionNames lists the collections present in the database.
func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	if !s.Available() {
		return nil, ErrStoreUnavailable
	}
	return s.db.ListCollectionNames(ctx, bson.M{})
}

func bsonFilter(f Filter) bson.M {
	out := bson.M{}
	for k, v := range f {
		out[k] = v
	}
	return out
}
