package service

import (
	"context"

	"VideoHub.com/cmd/model"
	"VideoHub.com/pkg/database"
	"VideoHub.com/pkg/toggle"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommentStore is implemented by db.CommentDB.
type CommentStore interface {
	CreateComment(ctx context.Context, comment *model.Comment) (primitive.ObjectID, error)
	GetCommentInfo(ctx context.Context, commentID primitive.ObjectID) (*model.Comment, error)
	UpdateCommentContent(ctx context.Context, commentID primitive.ObjectID, content string) (*model.Comment, error)
	DeleteComment(ctx context.Context, commentID primitive.ObjectID) (*model.Comment, error)
	GetVideoCommentList(ctx context.Context, videoID primitive.ObjectID, page database.Page) (*database.PageResult[model.CommentView], error)
}

// TweetStore is implemented by db.TweetDB.
type TweetStore interface {
	CreateTweet(ctx context.Context, tweet *model.Tweet) (primitive.ObjectID, error)
	GetTweetInfo(ctx context.Context, tweetID primitive.ObjectID) (*model.Tweet, error)
	UpdateTweetContent(ctx context.Context, tweetID primitive.ObjectID, content string) (*model.Tweet, error)
	DeleteTweet(ctx context.Context, tweetID primitive.ObjectID) (*model.Tweet, error)
	GetUserTweetList(ctx context.Context, ownerID primitive.ObjectID) ([]model.Tweet, error)
}

// LikeStore is implemented by db.LikeDB.
type LikeStore interface {
	toggle.Store[model.LikeKey]
	GetLikedVideoList(ctx context.Context, userID primitive.ObjectID, page database.Page) (*database.PageResult[model.VideoView], error)
}

// VideoFinder resolves like and comment targets in the video collection.
type VideoFinder interface {
	GetVideoInfo(ctx context.Context, videoID primitive.ObjectID) (*model.Video, error)
}

// CommentLimiter is implemented by redis.CommentGuard.
type CommentLimiter interface {
	Allow(ctx context.Context, userID, content string) error
	Record(ctx context.Context, userID, content string)
}
