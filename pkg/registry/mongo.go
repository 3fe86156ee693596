package registry

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoCollection is the subset of *mongo.Collection used by Mongo.
type MongoCollection interface {
	CountDocuments(ctx context.Context, filter any, opts ...options.Lister[options.CountOptions]) (int64, error)
	UpdateOne(ctx context.Context, filter any, update any, opts ...options.Lister[options.UpdateOneOptions]) (*mongo.UpdateResult, error)
}

// Mongo keeps names as documents of a collection, one document per name
// stored under field.
type Mongo struct {
	coll  MongoCollection
	field string
}

// NewMongo returns a registry backed by coll.
func NewMongo(coll MongoCollection, field string) *Mongo {
	return &Mongo{coll: coll, field: field}
}

// Contains reports whether a document holds name.
func (m *Mongo) Contains(ctx context.Context, name string) (bool, error) {
	n, err := m.coll.CountDocuments(ctx, bson.D{{Key: m.field, Value: name}}, options.Count().SetLimit(1))
	if err != nil {
		return false, errors.Join(ErrLookup, err)
	}
	return n > 0, nil
}

// Add upserts a document per name. Names already present are left alone.
func (m *Mongo) Add(ctx context.Context, names ...string) error {
	for _, n := range names {
		filter := bson.D{{Key: m.field, Value: n}}
		update := bson.D{{Key: "$setOnInsert", Value: bson.D{{Key: m.field, Value: n}}}}
		if _, err := m.coll.UpdateOne(ctx, filter, update, options.UpdateOne().SetUpsert(true)); err != nil {
			return errors.Join(ErrClaim, err)
		}
	}
	return nil
}
