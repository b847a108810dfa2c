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
)

var likeTargets = []model.LikeTarget{model.LikeVideo, model.LikeComment, model.LikeTweet}

// LikeDB stores likes. It implements toggle.Store[model.LikeKey].
type LikeDB struct {
	coll *database.Collection[model.Like]
}

func NewLikeDB(db *mongo.Database) *LikeDB {
	return &LikeDB{coll: database.NewCollection[model.Like](db.Collection(constants.LikeCollection))}
}

// LikeFilter matches the like of key and nothing scoped to another target type.
func LikeFilter(key model.LikeKey) bson.D {
	filter := bson.D{
		{Key: string(key.Target), Value: key.TargetID},
		{Key: "likedBy", Value: key.LikedBy},
	}
	for _, t := range likeTargets {
		if t != key.Target {
			filter = append(filter, bson.E{Key: string(t), Value: bson.D{{Key: "$exists", Value: false}}})
		}
	}
	return filter
}

func (d *LikeDB) DeleteOne(ctx context.Context, key model.LikeKey) (bool, error) {
	return d.coll.DeleteOne(ctx, LikeFilter(key))
}

// InsertOne returns database.ErrDuplicate when the like already exists.
func (d *LikeDB) InsertOne(ctx context.Context, key model.LikeKey) error {
	_, err := d.coll.InsertOne(ctx, model.NewLike(key, time.Now()))
	return err
}

// GetLikedVideoList pages the videos a user liked, most recent like first.
// Unpublished videos are only listed for their owner.
func (d *LikeDB) GetLikedVideoList(ctx context.Context, userID primitive.ObjectID, page database.Page) (*database.PageResult[model.VideoView], error) {
	return database.Paginate[model.VideoView](ctx, d.coll.Raw(), LikedVideosPipeline(userID), page)
}

func LikedVideosPipeline(userID primitive.ObjectID) *database.Pipeline {
	fields := append([]string{
		"videoFile", "thumbnail", "title", "description", "duration",
		"views", "isPublished", "createdAt", "updatedAt",
	}, database.UserSummary("owner")...)
	return database.NewPipeline().
		Match(bson.D{
			{Key: "likedBy", Value: userID},
			{Key: "video", Value: bson.D{{Key: "$exists", Value: true}}},
		}).
		SortDesc("createdAt").
		JoinOne(constants.VideoCollection, "video").
		ReplaceRoot("video").
		Match(bson.D{{Key: "$or", Value: bson.A{
			bson.D{{Key: "isPublished", Value: true}},
			bson.D{{Key: "owner", Value: userID}},
		}}}).
		JoinOwner("owner").
		Project(fields...)
}

// CountVideoLikes counts likes on any of the given videos.
func (d *LikeDB) CountVideoLikes(ctx context.Context, videoIDs []primitive.ObjectID) (int64, error) {
	if len(videoIDs) == 0 {
		return 0, nil
	}
	return d.coll.CountDocuments(ctx, bson.D{{Key: "video", Value: bson.D{{Key: "$in", Value: videoIDs}}}})
}
