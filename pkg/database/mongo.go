package database

import (
	"context"
	"time"

	"VideoHub.com/pkg/constants"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Init connects to MongoDB and verifies the primary is reachable.
// A non-positive timeout falls back to constants.DefaultQueryTimeout.
func Init(ctx context.Context, uri, dbName string, timeout time.Duration) (*mongo.Client, *mongo.Database, error) {
	timeout = queryTimeout(timeout)
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetTimeout(timeout))
	if err != nil {
		return nil, nil, errors.Wrap(err, "connect mongo")
	}
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, errors.Wrap(err, "ping mongo")
	}
	hlog.Infof("Connect MongoDB Success, database=%s", dbName)
	return client, client.Database(dbName), nil
}

func queryTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return constants.DefaultQueryTimeout
	}
	return d
}

// IndexSpec lists the indexes one collection needs.
type IndexSpec struct {
	Collection string
	Models     []mongo.IndexModel
}

// EnsureIndexes creates missing indexes. CreateMany is idempotent for
// indexes whose name and options already match.
func EnsureIndexes(ctx context.Context, db *mongo.Database, specs ...IndexSpec) error {
	for _, spec := range specs {
		if len(spec.Models) == 0 {
			continue
		}
		names, err := db.Collection(spec.Collection).Indexes().CreateMany(ctx, spec.Models)
		if err != nil {
			return errors.Wrapf(err, "create indexes on %s", spec.Collection)
		}
		hlog.Infof("Indexes ensured on %s: %v", spec.Collection, names)
	}
	return nil
}
