package database

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is a typed wrapper over one mongo collection. Every method maps
// driver errors through ConvertMongoError.
type Collection[T any] struct {
	coll *mongo.Collection
}

func NewCollection[T any](coll *mongo.Collection) *Collection[T] {
	return &Collection[T]{coll: coll}
}

func (c *Collection[T]) Raw() *mongo.Collection {
	return c.coll
}

// InsertOne stores doc and returns its generated id.
func (c *Collection[T]) InsertOne(ctx context.Context, doc *T) (primitive.ObjectID, error) {
	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, ConvertMongoError(err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

func (c *Collection[T]) FindOne(ctx context.Context, filter interface{}) (*T, error) {
	var out T
	if err := c.coll.FindOne(ctx, filter).Decode(&out); err != nil {
		return nil, ConvertMongoError(err)
	}
	return &out, nil
}

func (c *Collection[T]) FindOneByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	return c.FindOne(ctx, bson.D{{Key: "_id", Value: id}})
}

func (c *Collection[T]) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := c.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	results := make([]T, 0)
	if err = cursor.All(ctx, &results); err != nil {
		return nil, ConvertMongoError(err)
	}
	return results, nil
}

// UpdateByID applies update and returns the document as it is afterwards.
// updatedAt is always refreshed.
func (c *Collection[T]) UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.D) (*T, error) {
	update = touch(update, time.Now())
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var out T
	err := c.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).Decode(&out)
	if err != nil {
		return nil, ConvertMongoError(err)
	}
	return &out, nil
}

// DeleteByID removes the document and returns it as it was.
func (c *Collection[T]) DeleteByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	var out T
	if err := c.coll.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&out); err != nil {
		return nil, ConvertMongoError(err)
	}
	return &out, nil
}

// DeleteOne reports whether a matching document was removed.
func (c *Collection[T]) DeleteOne(ctx context.Context, filter interface{}) (bool, error) {
	res, err := c.coll.DeleteOne(ctx, filter)
	if err != nil {
		return false, ConvertMongoError(err)
	}
	return res.DeletedCount > 0, nil
}

func (c *Collection[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	n, err := c.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, ConvertMongoError(err)
	}
	return n, nil
}

// touch adds updatedAt to the $set stage of update, creating it if needed.
func touch(update bson.D, now time.Time) bson.D {
	out := make(bson.D, 0, len(update)+1)
	set := false
	for _, e := range update {
		if e.Key == "$set" {
			if fields, ok := e.Value.(bson.D); ok {
				e.Value = append(append(bson.D{}, fields...), bson.E{Key: "updatedAt", Value: now})
				set = true
			}
		}
		out = append(out, e)
	}
	if !set {
		out = append(out, bson.E{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: now}}})
	}
	return out
}
