package mongodb

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/trezcool/shule/core/school"
)

// Every call on an unconfigured store must fail uniformly, whatever the
// collection name.
func TestNilDatabase_storeUnavailable(t *testing.T) {
	store := NewStore(nil)
	ctx := context.Background()

	collections := []string{
		school.CollectionStudent,
		school.CollectionLesson,
		school.CollectionScheduleItem,
		school.CollectionGrade,
		school.CollectionAssessment,
		school.CollectionFeedPost,
		"nosuchcollection",
	}

	for _, collection := range collections {
		_, err := store.FindDocuments(ctx, collection, school.Filter{})
		assert.Equal(t, school.ErrStoreUnavailable, errors.Cause(err), "FindDocuments(%s)", collection)

		_, err = store.InsertDocument(ctx, collection, school.Document{"x": 1})
		assert.Equal(t, school.ErrStoreUnavailable, errors.Cause(err), "InsertDocument(%s)", collection)

		_, err = store.GetDocumentByID(ctx, collection, primitive.NewObjectID())
		assert.Equal(t, school.ErrStoreUnavailable, errors.Cause(err), "GetDocumentByID(%s)", collection)

		_, err = store.CountDocuments(ctx, collection, school.Filter{})
		assert.Equal(t, school.ErrStoreUnavailable, errors.Cause(err), "CountDocuments(%s)", collection)
	}

	_, err := store.CollectionNames(ctx)
	assert.Equal(t, school.ErrStoreUnavailable, errors.Cause(err))
}
