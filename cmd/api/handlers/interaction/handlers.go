package handlers

import (
	"context"

	"VideoHub.com/cmd/model"
	"VideoHub.com/pkg/database"
	"VideoHub.com/pkg/identity"
	"VideoHub.com/pkg/toggle"
)

type CommentService interface {
	GetVideoComments(ctx context.Context, videoID string, page, limit int64) (*database.PageResult[model.CommentView], error)
	AddComment(ctx context.Context, caller identity.Caller, videoID, content string) (*model.Comment, error)
	UpdateComment(ctx context.Context, caller identity.Caller, commentID, newContent string) (*model.Comment, error)
	DeleteComment(ctx context.Context, caller identity.Caller, commentID string) (*model.Comment, error)
}

type LikeService interface {
	ToggleVideoLike(ctx context.Context, caller identity.Caller, videoID string) (toggle.Result, error)
	ToggleCommentLike(ctx context.Context, caller identity.Caller, commentID string) (toggle.Result, error)
	ToggleTweetLike(ctx context.Context, caller identity.Caller, tweetID string) (toggle.Result, error)
	GetLikedVideos(ctx context.Context, caller identity.Caller, page, limit int64) (*database.PageResult[model.VideoView], error)
}

type TweetService interface {
	CreateTweet(ctx context.Context, caller identity.Caller, content string) (*model.Tweet, error)
	GetUserTweets(ctx context.Context, userID string) ([]model.Tweet, error)
	UpdateTweet(ctx context.Context, caller identity.Caller, tweetID, newTweet string) (*model.Tweet, error)
	DeleteTweet(ctx context.Context, caller identity.Caller, tweetID string) (*model.Tweet, error)
}

// Handler serves comments, likes and tweets.
type Handler struct {
	comments CommentService
	likes    LikeService
	tweets   TweetService
}

func New(comments CommentService, likes LikeService, tweets TweetService) *Handler {
	return &Handler{comments: comments, likes: likes, tweets: tweets}
}

type PageParam struct {
	Page  int64 `query:"page"`
	Limit int64 `query:"limit"`
}

type ListCommentParam struct {
	VideoId string `path:"videoId"`
	Page    int64  `query:"page"`
	Limit   int64  `query:"limit"`
}

type CreateCommentParam struct {
	VideoId string `path:"videoId"`
	Comment string `json:"comment" form:"comment"`
}

type UpdateCommentParam struct {
	CommentId  string `path:"commentId"`
	NewComment string `json:"newComment" form:"newComment"`
}

type CommentIdParam struct {
	CommentId string `path:"commentId"`
}

type VideoIdParam struct {
	VideoId string `path:"videoId"`
}

type TweetIdParam struct {
	TweetId string `path:"tweetId"`
}

type CreateTweetParam struct {
	Content string `json:"content" form:"content"`
}

type UpdateTweetParam struct {
	TweetId  string `path:"tweetId"`
	NewTweet string `json:"newTweet" form:"newTweet"`
}

type UserIdParam struct {
	UserId string `path:"userId"`
}
