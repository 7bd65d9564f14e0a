package mongodb

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/trezcool/shule/core"
)

// Open connects to the deployment named by DATABASE_URL and returns a handle
// on the application database. A missing DATABASE_URL yields a nil database
// rather than an error: the service still starts and every store call reports
// school.ErrStoreUnavailable until one is configured.
func Open(ctx context.Context) (*mongo.Database, error) {
	uri := core.Conf.GetString("databaseUrl")
	if uri == "" {
		return nil, nil
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(err, "connecting to document store")
	}
	if err = ping(ctx, client); err != nil {
		return nil, err
	}
	return client.Database(core.Conf.GetString("databaseName")), nil
}

// ping waits for the deployment to be ready. Waits 100ms longer between each attempt.
func ping(ctx context.Context, client *mongo.Client) error {
	var err error
	maxAttempts := 30
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		if err = client.Ping(ctx, readpref.Primary()); err == nil {
			break
		}
		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "document store ping")
		case <-time.After(time.Duration(attempts) * 100 * time.Millisecond):
		}
	}

	if err != nil {
		return errors.Wrap(err, "document store ping timeout")
	}
	return nil
}
