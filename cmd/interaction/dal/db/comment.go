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

type CommentDB struct {
	coll *database.Collection[model.Comment]
}

func NewCommentDB(db *mongo.Database) *CommentDB {
	return &CommentDB{coll: database.NewCollection[model.Comment](db.Collection(constants.CommentCollection))}
}

func (d *CommentDB) CreateComment(ctx context.Context, comment *model.Comment) (primitive.ObjectID, error) {
	now := time.Now()
	comment.CreatedAt, comment.UpdatedAt = now, now
	return d.coll.InsertOne(ctx, comment)
}

func (d *CommentDB) GetCommentInfo(ctx context.Context, commentID primitive.ObjectID) (*model.Comment, error) {
	return d.coll.FindOneByID(ctx, commentID)
}

func (d *CommentDB) UpdateCommentContent(ctx context.Context, commentID primitive.ObjectID, content string) (*model.Comment, error) {
	return d.coll.UpdateByID(ctx, commentID, bson.D{{Key: "$set", Value: bson.D{{Key: "content", Value: content}}}})
}

func (d *CommentDB) DeleteComment(ctx context.Context, commentID primitive.ObjectID) (*model.Comment, error) {
	return d.coll.DeleteByID(ctx, commentID)
}

// GetVideoCommentList pages the comments of a video, newest first, with owners resolved.
func (d *CommentDB) GetVideoCommentList(ctx context.Context, videoID primitive.ObjectID, page database.Page) (*database.PageResult[model.CommentView], error) {
	return database.Paginate[model.CommentView](ctx, d.coll.Raw(), VideoCommentsPipeline(videoID), page)
}

func VideoCommentsPipeline(videoID primitive.ObjectID) *database.Pipeline {
	fields := append([]string{"content", "createdAt", "updatedAt"}, database.UserSummary("owner")...)
	return database.NewPipeline().
		Match(bson.D{{Key: "video", Value: videoID}}).
		JoinOwner("owner").
		Project(fields...).
		SortDesc("createdAt")
}
