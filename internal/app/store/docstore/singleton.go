// internal/app/store/docstore/singleton.go
package docstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/dalemusser/lawcrm/internal/app/system/docid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Singleton collections hold at most one meaningful document: the first one
// MongoDB returns for an empty filter.

// First returns the singleton document of c, or ErrNotFound.
func (s *Store) First(ctx context.Context, c Collection) (Document, error) {
	coll, err := s.coll(c)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	err = coll.FindOne(ctx, bson.M{}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find first %s: %w", c, err)
	}
	return docid.Publish(doc), nil
}

// EnsureFirst returns the singleton document of c, creating it from
// defaults when the collection is empty.
func (s *Store) EnsureFirst(ctx context.Context, c Collection, defaults any) (Document, error) {
	doc, err := s.First(ctx, c)
	if !errors.Is(err, ErrNotFound) {
		return doc, err
	}

	coll, err := s.coll(c)
	if err != nil {
		return nil, err
	}
	// $setOnInsert leaves a document inserted concurrently untouched.
	opts := options.Update().SetUpsert(true)
	if _, err := coll.UpdateOne(ctx, bson.M{}, bson.M{"$setOnInsert": defaults}, opts); err != nil {
		return nil, fmt.Errorf("create default %s: %w", c, err)
	}
	s.log.Info("created default singleton document", zap.String("collection", c.Name()))
	return s.First(ctx, c)
}

// ReplaceFirst overwrites the fields of the singleton document of c with
// record, inserting it when the collection is empty.
func (s *Store) ReplaceFirst(ctx context.Context, c Collection, record any) error {
	coll, err := s.coll(c)
	if err != nil {
		return err
	}
	opts := options.Update().SetUpsert(true)
	if _, err := coll.UpdateOne(ctx, bson.M{}, bson.M{"$set": record}, opts); err != nil {
		return fmt.Errorf("upsert %s: %w", c, err)
	}
	return nil
}
