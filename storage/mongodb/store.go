package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trezcool/shule/core/school"
)

type documentStore struct {
	db *mongo.Database
}

var _ school.Store = (*documentStore)(nil) // interface compliance check

// NewStore returns a school.Store backed by db. db may be nil when no
// DATABASE_URL is configured; every call then fails with school.ErrStoreUnavailable.
func NewStore(db *mongo.Database) school.Store {
	return &documentStore{db: db}
}

func (s *documentStore) InsertDocument(ctx context.Context, collection string, doc interface{}) (primitive.ObjectID, error) {
	if s.db == nil {
		return primitive.NilObjectID, school.ErrStoreUnavailable
	}

	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, errors.Wrap(err, "inserting document")
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

func (s *documentStore) FindDocuments(ctx context.Context, collection string, filter school.Filter, limit ...int64) ([]school.Document, error) {
	if s.db == nil {
		return nil, school.ErrStoreUnavailable
	}

	opts := options.Find()
	if len(limit) > 0 && limit[0] > 0 {
		opts.SetLimit(limit[0])
	}
	cur, err := s.db.Collection(collection).Find(ctx, bson.M(filter), opts)
	if err != nil {
		return nil, errors.Wrap(err, "querying documents")
	}

	docs := make([]school.Document, 0)
	if err = cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "decoding documents")
	}
	return docs, nil
}

func (s *documentStore) GetDocumentByID(ctx context.Context, collection string, id primitive.ObjectID) (school.Document, error) {
	if s.db == nil {
		return nil, school.ErrStoreUnavailable
	}

	var doc school.Document
	err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, school.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "fetching document")
	}
	return doc, nil
}

func (s *documentStore) CountDocuments(ctx context.Context, collection string, filter school.Filter) (int64, error) {
	if s.db == nil {
		return 0, school.ErrStoreUnavailable
	}

	n, err := s.db.Collection(collection).CountDocuments(ctx, bson.M(filter))
	if err != nil {
		return 0, errors.Wrap(err, "counting documents")
	}
	return n, nil
}

func (s *documentStore) CollectionNames(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, school.ErrStoreUnavailable
	}

	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "listing collections")
	}
	return names, nil
}
