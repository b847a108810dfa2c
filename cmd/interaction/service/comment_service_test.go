package service

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"VideoHub.com/cmd/model"
	"VideoHub.com/pkg/errno"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type commentFixture struct {
	svc      *CommentService
	comments *memComments
	limiter  *fakeLimiter
	events   *recordPublisher
	video    *model.Video
	owner    primitive.ObjectID
	viewer   primitive.ObjectID
}

func newCommentFixture() *commentFixture {
	f := &commentFixture{
		comments: newMemComments(),
		limiter:  &fakeLimiter{},
		events:   &recordPublisher{},
		owner:    primitive.NewObjectID(),
		viewer:   primitive.NewObjectID(),
	}
	f.video = &model.Video{ID: primitive.NewObjectID(), Owner: f.owner, IsPublished: true}
	f.svc = NewCommentService(f.comments, memVideos{f.video.ID: f.video}, f.limiter, f.events)
	return f
}

func statusOf(err error) int {
	return errno.ConvertErr(err).StatusCode
}

func TestAddComment(t *testing.T) {
	f := newCommentFixture()
	ctx := context.Background()

	c, err := f.svc.AddComment(ctx, callerOf(f.viewer), f.video.ID.Hex(), "  great video ")
	require.NoError(t, err)
	assert.Equal(t, "great video", c.Content)
	assert.Equal(t, f.viewer, c.Owner)
	assert.Equal(t, f.video.ID, c.Video)
	assert.Len(t, f.limiter.recorded, 1)
	require.Len(t, f.events.events, 1)
	assert.Equal(t, "comment.create", f.events.events[0].Type)
}

func TestAddCommentValidation(t *testing.T) {
	f := newCommentFixture()
	ctx := context.Background()
	caller := callerOf(f.viewer)

	_, err := f.svc.AddComment(ctx, caller, f.video.ID.Hex(), "   ")
	assert.Equal(t, http.StatusBadRequest, statusOf(err))
	assert.Equal(t, "Comment is required", errno.ConvertErr(err).ErrMsg)

	_, err = f.svc.AddComment(ctx, caller, f.video.ID.Hex(), strings.Repeat("a", 501))
	assert.Equal(t, http.StatusBadRequest, statusOf(err))

	_, err = f.svc.AddComment(ctx, caller, "nope", "hi")
	assert.Equal(t, "Invalid video id", errno.ConvertErr(err).ErrMsg)

	_, err = f.svc.AddComment(ctx, caller, primitive.NewObjectID().Hex(), "hi")
	assert.Equal(t, http.StatusNotFound, statusOf(err))
	assert.Equal(t, "Video not found", errno.ConvertErr(err).ErrMsg)

	f.limiter.deny = errno.TooManyRequestsErr
	_, err = f.svc.AddComment(ctx, caller, f.video.ID.Hex(), "hi")
	assert.Equal(t, http.StatusTooManyRequests, statusOf(err))
	assert.Empty(t, f.comments.docs)
}

func TestAddCommentMissingAfterInsert(t *testing.T) {
	f := newCommentFixture()
	f.comments.dropAfterInsert = true

	_, err := f.svc.AddComment(context.Background(), callerOf(f.viewer), f.video.ID.Hex(), "hi")
	assert.Equal(t, http.StatusInternalServerError, statusOf(err))
	assert.Empty(t, f.events.events)
}

func TestUpdateAndDeleteCommentOwnership(t *testing.T) {
	f := newCommentFixture()
	ctx := context.Background()

	c, err := f.svc.AddComment(ctx, callerOf(f.viewer), f.video.ID.Hex(), "first")
	require.NoError(t, err)

	_, err = f.svc.UpdateComment(ctx, callerOf(f.owner), c.ID.Hex(), "hijacked")
	assert.Equal(t, http.StatusUnauthorized, statusOf(err))
	assert.Equal(t, "first", f.comments.docs[c.ID].Content)

	_, err = f.svc.UpdateComment(ctx, callerOf(f.viewer), c.ID.Hex(), "")
	assert.Equal(t, "New comment is required", errno.ConvertErr(err).ErrMsg)

	updated, err := f.svc.UpdateComment(ctx, callerOf(f.viewer), c.ID.Hex(), "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)

	_, err = f.svc.DeleteComment(ctx, callerOf(f.owner), c.ID.Hex())
	assert.Equal(t, http.StatusUnauthorized, statusOf(err))
	assert.Contains(t, f.comments.docs, c.ID)

	deleted, err := f.svc.DeleteComment(ctx, callerOf(f.viewer), c.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, c.ID, deleted.ID)

	_, err = f.svc.DeleteComment(ctx, callerOf(f.viewer), c.ID.Hex())
	assert.Equal(t, http.StatusNotFound, statusOf(err))
}

func TestGetVideoCommentsPagination(t *testing.T) {
	f := newCommentFixture()
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := f.svc.AddComment(ctx, callerOf(f.viewer), f.video.ID.Hex(), "c")
		require.NoError(t, err)
	}

	res, err := f.svc.GetVideoComments(ctx, f.video.ID.Hex(), 1, 2)
	require.NoError(t, err)
	assert.Len(t, res.Docs, 2)
	assert.Equal(t, int64(3), res.TotalDocs)
	assert.True(t, res.HasNextPage)

	res, err = f.svc.GetVideoComments(ctx, f.video.ID.Hex(), 5, 2)
	require.NoError(t, err)
	assert.Empty(t, res.Docs)
	assert.False(t, res.HasNextPage)

	_, err = f.svc.GetVideoComments(ctx, primitive.NewObjectID().Hex(), 1, 10)
	assert.Equal(t, http.StatusNotFound, statusOf(err))
}
