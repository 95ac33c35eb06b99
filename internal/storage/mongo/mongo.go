// Package mongo implements the document store backing the catalog and order
// repositories. A generic Store exposes create/read operations against named
// collections; typed repositories are built on top of it.
package mongo

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect establishes a pooled client connection and verifies it with a ping.
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	clientOpts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(100)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, errors.Wrap(err, "connect")
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, errors.Wrap(err, "ping")
	}

	return &Store{db: client.Database(database)}, nil
}

// Store provides generic document operations against named collections.
type Store struct {
	db *mongo.Database
}

// CreateDocument inserts a single record into the named collection and
// returns the generated identifier as a hex string.
func (s *Store) CreateDocument(ctx context.Context, collection string, record any) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, record)
	if err != nil {
		return "", errors.Wrapf(err, "insert into %s", collection)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.Errorf("unexpected id type %T from %s", res.InsertedID, collection)
	}
	return id.Hex(), nil
}

// Documents reads records matching filter from the named collection, decoding
// each into raw bson documents. A limit of 0 means no limit; a nil filter
// matches everything.
func (s *Store) Documents(ctx context.Context, collection string, filter any, limit int64) ([]bson.M, error) {
	if filter == nil {
		filter = bson.M{}
	}
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "find in %s", collection)
	}
	defer cur.Close(ctx)

	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrapf(err, "decode from %s", collection)
	}
	return docs, nil
}

// CountDocuments returns the number of records matching filter.
func (s *Store) CountDocuments(ctx context.Context, collection string, filter any) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	n, err := s.db.Collection(collection).CountDocuments(ctx, filter)
	if err != nil {
		return 0, errors.Wrapf(err, "count in %s", collection)
	}
	return n, nil
}

// Collections lists the collection names present in the database. Used by the
// connectivity diagnostic endpoint.
func (s *Store) Collections(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "list collections")
	}
	return names, nil
}

// Ping verifies the underlying connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, nil)
}

// Disconnect closes the underlying client.
func (s *Store) Disconnect(ctx context.Context) error {
	return s.db.Client().Disconnect(ctx)
}
