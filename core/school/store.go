package school

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrStoreUnavailable is returned uniformly by every Store call, for any
	// collection name, when no document store has been configured.
	ErrStoreUnavailable = errors.New("document store not configured")

	// ErrNotFound is returned when a document does not exist in its collection.
	ErrNotFound = errors.New("document not found")

	// ErrMalformedRecord is returned when a stored document carries no identifier;
	// that is a store-layer bug, not something this layer recovers from.
	ErrMalformedRecord = errors.New("stored document has no identifier")
)

type (
	// Document is a raw stored record as returned by the document store.
	// Values keep their driver types (primitive.ObjectID, primitive.DateTime, ...)
	// until Serialize converts them to their client-facing form.
	Document map[string]interface{}

	// Filter is an equality-based predicate on document fields.
	// An empty Filter matches all documents.
	Filter map[string]interface{}

	// Store is any document store the school collections can live in.
	// The order of documents returned by FindDocuments is unspecified;
	// ordering them for display is Order's job.
	Store interface {
		InsertDocument(ctx context.Context, collection string, doc interface{}) (primitive.ObjectID, error)
		FindDocuments(ctx context.Context, collection string, filter Filter, limit ...int64) ([]Document, error)
		GetDocumentByID(ctx context.Context, collection string, id primitive.ObjectID) (Document, error)
		CountDocuments(ctx context.Context, collection string, filter Filter) (int64, error)
		CollectionNames(ctx context.Context) ([]string, error)
	}
)
