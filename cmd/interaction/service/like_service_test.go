package service

import (
	"context"
	"net/http"
	"testing"

	"VideoHub.com/cmd/model"
	"VideoHub.com/pkg/errno"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type likeFixture struct {
	svc     *LikeService
	likes   *memLikes
	events  *recordPublisher
	owner   primitive.ObjectID
	fan     primitive.ObjectID
	video   *model.Video
	comment *model.Comment
	tweet   *model.Tweet
}

func newLikeFixture() *likeFixture {
	f := &likeFixture{
		likes:  newMemLikes(),
		events: &recordPublisher{},
		owner:  primitive.NewObjectID(),
		fan:    primitive.NewObjectID(),
	}
	f.video = &model.Video{ID: primitive.NewObjectID(), Owner: f.owner, IsPublished: true}
	comments := newMemComments()
	f.comment = &model.Comment{ID: primitive.NewObjectID(), Owner: f.owner, Video: f.video.ID}
	comments.docs[f.comment.ID] = f.comment
	tweets := newMemTweets()
	f.tweet = &model.Tweet{ID: primitive.NewObjectID(), Owner: f.owner}
	tweets.docs[f.tweet.ID] = f.tweet

	f.svc = NewLikeService(f.likes, memVideos{f.video.ID: f.video}, comments, tweets, f.events)
	return f
}

func TestToggleVideoLikeRoundTrip(t *testing.T) {
	f := newLikeFixture()
	ctx := context.Background()
	fan := callerOf(f.fan)

	res, err := f.svc.ToggleVideoLike(ctx, fan, f.video.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "liked", res.Action)
	assert.Len(t, f.likes.records, 1)

	res, err = f.svc.ToggleVideoLike(ctx, fan, f.video.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "unliked", res.Action)
	assert.Empty(t, f.likes.records)

	require.Len(t, f.events.events, 2)
	assert.Equal(t, "like.video", f.events.events[1].Type)
	assert.Equal(t, "unliked", f.events.events[1].Action)
}

func TestLikesAreScopedPerTargetType(t *testing.T) {
	f := newLikeFixture()
	ctx := context.Background()
	fan := callerOf(f.fan)

	_, err := f.svc.ToggleVideoLike(ctx, fan, f.video.ID.Hex())
	require.NoError(t, err)
	res, err := f.svc.ToggleCommentLike(ctx, fan, f.comment.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "liked", res.Action)
	res, err = f.svc.ToggleTweetLike(ctx, fan, f.tweet.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "liked", res.Action)
	assert.Len(t, f.likes.records, 3)
}

func TestSelfLikeAlwaysRejected(t *testing.T) {
	f := newLikeFixture()
	ctx := context.Background()
	owner := callerOf(f.owner)

	for i := 0; i < 2; i++ {
		_, err := f.svc.ToggleVideoLike(ctx, owner, f.video.ID.Hex())
		assert.Equal(t, http.StatusBadRequest, statusOf(err))
		assert.Equal(t, "You cannot like your own video", errno.ConvertErr(err).ErrMsg)

		_, err = f.svc.ToggleCommentLike(ctx, owner, f.comment.ID.Hex())
		assert.Equal(t, "You cannot like your own comment", errno.ConvertErr(err).ErrMsg)

		_, err = f.svc.ToggleTweetLike(ctx, owner, f.tweet.ID.Hex())
		assert.Equal(t, "You cannot like your own tweet", errno.ConvertErr(err).ErrMsg)
	}
	assert.Empty(t, f.likes.records)
}

func TestToggleLikeMissingTarget(t *testing.T) {
	f := newLikeFixture()
	ctx := context.Background()

	_, err := f.svc.ToggleTweetLike(ctx, callerOf(f.fan), primitive.NewObjectID().Hex())
	assert.Equal(t, http.StatusNotFound, statusOf(err))
	assert.Equal(t, "Tweet not found", errno.ConvertErr(err).ErrMsg)

	_, err = f.svc.ToggleCommentLike(ctx, callerOf(f.fan), "")
	assert.Equal(t, "Comment id is required", errno.ConvertErr(err).ErrMsg)
}

func TestGetLikedVideos(t *testing.T) {
	f := newLikeFixture()
	ctx := context.Background()

	_, err := f.svc.ToggleVideoLike(ctx, callerOf(f.fan), f.video.ID.Hex())
	require.NoError(t, err)
	_, err = f.svc.ToggleCommentLike(ctx, callerOf(f.fan), f.comment.ID.Hex())
	require.NoError(t, err)

	res, err := f.svc.GetLikedVideos(ctx, callerOf(f.fan), 1, 10)
	require.NoError(t, err)
	require.Len(t, res.Docs, 1)
	assert.Equal(t, f.video.ID, res.Docs[0].ID)
}
