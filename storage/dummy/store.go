package dummydb

import (
	"context"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/trezcool/shule/core/school"
)

// Store is an in-memory school.Store for tests. Documents go through a bson
// round trip on insert so their values carry the same driver types
// (primitive.DateTime, ...) a real store would return. Insertion order is
// preserved so tests can rely on a deterministic store-provided order.
type Store struct {
	mu          sync.RWMutex
	collections map[string][]school.Document
}

var _ school.Store = (*Store)(nil) // interface compliance check

func Open() *Store {
	return &Store{collections: make(map[string][]school.Document)}
}

func (s *Store) InsertDocument(_ context.Context, collection string, doc interface{}) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := bson.Marshal(doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	var stored school.Document
	if err = bson.Unmarshal(raw, &stored); err != nil {
		return primitive.NilObjectID, err
	}

	id := primitive.NewObjectID()
	stored["_id"] = id
	s.collections[collection] = append(s.collections[collection], stored)
	return id, nil
}

func (s *Store) FindDocuments(_ context.Context, collection string, filter school.Filter, limit ...int64) ([]school.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]school.Document, 0)
	for _, doc := range s.collections[collection] {
		if !matches(doc, filter) {
			continue
		}
		docs = append(docs, copyDocument(doc))
		if len(limit) > 0 && limit[0] > 0 && int64(len(docs)) == limit[0] {
			break
		}
	}
	return docs, nil
}

func (s *Store) GetDocumentByID(_ context.Context, collection string, id primitive.ObjectID) (school.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, doc := range s.collections[collection] {
		if doc["_id"] == id {
			return copyDocument(doc), nil
		}
	}
	return nil, school.ErrNotFound
}

func (s *Store) CountDocuments(_ context.Context, collection string, filter school.Filter) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, doc := range s.collections[collection] {
		if matches(doc, filter) {
			n++
		}
	}
	return n, nil
}

func (s *Store) CollectionNames(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	return names, nil
}

func matches(doc school.Document, filter school.Filter) bool {
	for field, want := range filter {
		if !reflect.DeepEqual(doc[field], want) {
			return false
		}
	}
	return true
}

func copyDocument(doc school.Document) school.Document {
	cp := make(school.Document, len(doc))
	for k, v := range doc {
		cp[k] = v
	}
	return cp
}
