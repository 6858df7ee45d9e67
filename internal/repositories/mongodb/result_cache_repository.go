package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/vesoapp/veso-backend/internal/models"
	"github.com/vesoapp/veso-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ResultCacheRepository implements repositories.ResultCacheRepository on a
// MongoDB collection. A TTL index on expiresAt reaps stale entries; Get
// filters on it as well so a not-yet-reaped document never surfaces.
type ResultCacheRepository struct {
	collection *mongo.Collection
}

type cacheDocument struct {
	Key       string           `bson:"_id"`
	Results   models.ResultSet `bson:"results"`
	ExpiresAt time.Time        `bson:"expiresAt"`
}

// NewResultCacheRepository creates the repository and ensures its TTL index.
func NewResultCacheRepository(ctx context.Context, db *mongo.Database) (repositories.ResultCacheRepository, error) {
	coll := db.Collection("result_cache")
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.M{"expiresAt": 1},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	if err != nil {
		return nil, err
	}
	return &ResultCacheRepository{collection: coll}, nil
}

// Get fetches the cached set for key.
func (r *ResultCacheRepository) Get(ctx context.Context, key string) (models.ResultSet, error) {
	filter := bson.M{"_id": key, "expiresAt": bson.M{"$gt": time.Now()}}
	var doc cacheDocument
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.Results, nil
}

// Put upserts the cached set for key with the given TTL. Empty sets are
// rejected by the caller; this layer just writes what it is given.
func (r *ResultCacheRepository) Put(ctx context.Context, key string, set models.ResultSet, ttl time.Duration) error {
	doc := cacheDocument{Key: key, Results: set, ExpiresAt: time.Now().Add(ttl)}
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, opts)
	return err
}
