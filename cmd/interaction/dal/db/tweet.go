package db

import (
	"context"
	"time"

	"VideoHub.com/cmd/model"
	"VideoHub.com/pkg/constants"
	"VideoHub.com/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TweetDB struct {
	coll *database.Collection[model.Tweet]
}

func NewTweetDB(db *mongo.Database) *TweetDB {
	return &TweetDB{coll: database.NewCollection[model.Tweet](db.Collection(constants.TweetCollection))}
}

func (d *TweetDB) CreateTweet(ctx context.Context, tweet *model.Tweet) (primitive.ObjectID, error) {
	now := time.Now()
	tweet.CreatedAt, tweet.UpdatedAt = now, now
	return d.coll.InsertOne(ctx, tweet)
}

func (d *TweetDB) GetTweetInfo(ctx context.Context, tweetID primitive.ObjectID) (*model.Tweet, error) {
	return d.coll.FindOneByID(ctx, tweetID)
}

func (d *TweetDB) UpdateTweetContent(ctx context.Context, tweetID primitive.ObjectID, content string) (*model.Tweet, error) {
	return d.coll.UpdateByID(ctx, tweetID, bson.D{{Key: "$set", Value: bson.D{{Key: "content", Value: content}}}})
}

func (d *TweetDB) DeleteTweet(ctx context.Context, tweetID primitive.ObjectID) (*model.Tweet, error) {
	return d.coll.DeleteByID(ctx, tweetID)
}

func (d *TweetDB) GetUserTweetList(ctx context.Context, ownerID primitive.ObjectID) ([]model.Tweet, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return d.coll.Find(ctx, bson.D{{Key: "owner", Value: ownerID}}, opts)
}
