package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"VideoHub.com/cmd/model"
	"VideoHub.com/pkg/constants"
	"VideoHub.com/pkg/database"
	"VideoHub.com/pkg/errno"
	"VideoHub.com/pkg/identity"
	"VideoHub.com/pkg/toggle"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/config"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const callerID = "65f1c0a1e4b0a1b2c3d4e5f6"

type stubComments struct {
	gotVideo, gotContent string
	gotPage, gotLimit    int64
}

func (s *stubComments) GetVideoComments(_ context.Context, videoID string, page, limit int64) (*database.PageResult[model.CommentView], error) {
	s.gotVideo, s.gotPage, s.gotLimit = videoID, page, limit
	return database.NewPageResult[model.CommentView](nil, 0, database.NewPage(page, limit)), nil
}

func (s *stubComments) AddComment(_ context.Context, caller identity.Caller, videoID, content string) (*model.Comment, error) {
	s.gotVideo, s.gotContent = videoID, content
	return &model.Comment{Content: content}, nil
}

func (s *stubComments) UpdateComment(_ context.Context, _ identity.Caller, _, _ string) (*model.Comment, error) {
	return nil, errno.AuthorizationFailedErr.WithMessage("You are not authorized to modify this comment")
}

func (s *stubComments) DeleteComment(_ context.Context, _ identity.Caller, _ string) (*model.Comment, error) {
	return nil, errno.NotFoundErr.WithMessage("Comment not found")
}

type stubLikes struct {
	gotID string
}

func (s *stubLikes) ToggleVideoLike(_ context.Context, _ identity.Caller, id string) (toggle.Result, error) {
	s.gotID = id
	return toggle.Result{Action: constants.ActionLiked, Active: true}, nil
}

func (s *stubLikes) ToggleCommentLike(_ context.Context, _ identity.Caller, id string) (toggle.Result, error) {
	s.gotID = id
	return toggle.Result{Action: constants.ActionUnliked}, nil
}

func (s *stubLikes) ToggleTweetLike(_ context.Context, _ identity.Caller, _ string) (toggle.Result, error) {
	return toggle.Result{}, errno.SelfActionErr.WithMessage("You cannot like your own tweet")
}

func (s *stubLikes) GetLikedVideos(_ context.Context, _ identity.Caller, page, limit int64) (*database.PageResult[model.VideoView], error) {
	return database.NewPageResult[model.VideoView](nil, 0, database.NewPage(page, limit)), nil
}

type stubTweets struct{}

func (stubTweets) CreateTweet(_ context.Context, _ identity.Caller, content string) (*model.Tweet, error) {
	return &model.Tweet{Content: content}, nil
}

func (stubTweets) GetUserTweets(_ context.Context, _ string) ([]model.Tweet, error) {
	return []model.Tweet{{Content: "a"}, {Content: "b"}}, nil
}

func (stubTweets) UpdateTweet(_ context.Context, _ identity.Caller, _, newTweet string) (*model.Tweet, error) {
	return &model.Tweet{Content: newTweet}, nil
}

func (stubTweets) DeleteTweet(_ context.Context, _ identity.Caller, _ string) (*model.Tweet, error) {
	return &model.Tweet{}, nil
}

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	Success    bool            `json:"success"`
}

func newEngine(h *Handler, authenticated bool) *route.Engine {
	r := route.NewEngine(config.NewOptions([]config.Option{}))
	if authenticated {
		r.Use(func(ctx context.Context, c *app.RequestContext) {
			identity.Bind(c, identity.Caller{UserID: callerID})
			c.Next(ctx)
		})
	}
	r.GET("/comments/:videoId", h.ListComment)
	r.POST("/comments/:videoId", h.CreateComment)
	r.PATCH("/comments/c/:commentId", h.UpdateComment)
	r.DELETE("/comments/c/:commentId", h.DeleteComment)
	r.POST("/likes/toggle/v/:videoId", h.LikeVideo())
	r.POST("/likes/toggle/c/:commentId", h.LikeComment())
	r.POST("/likes/toggle/t/:tweetId", h.LikeTweet())
	r.GET("/likes/videos", h.LikedVideos)
	r.POST("/tweets", h.CreateTweet)
	r.GET("/tweets/user/:userId", h.UserTweets)
	return r
}

func perform(t *testing.T, r *route.Engine, method, path, body string) envelope {
	t.Helper()
	var b *ut.Body
	if body != "" {
		b = &ut.Body{Body: bytes.NewBufferString(body), Len: len(body)}
	}
	w := ut.PerformRequest(r, method, path, b, ut.Header{Key: "Content-Type", Value: "application/json"})
	resp := w.Result()

	var env envelope
	require.NoError(t, json.Unmarshal(resp.Body(), &env))
	assert.Equal(t, resp.StatusCode(), env.StatusCode)
	return env
}

func TestCommentRoutes(t *testing.T) {
	comments := &stubComments{}
	r := newEngine(New(comments, &stubLikes{}, stubTweets{}), true)

	env := perform(t, r, http.MethodGet, "/comments/v1?page=2&limit=5", "")
	assert.Equal(t, http.StatusOK, env.StatusCode)
	assert.Equal(t, "Comments fetched successfully", env.Message)
	assert.Equal(t, "v1", comments.gotVideo)
	assert.Equal(t, int64(2), comments.gotPage)
	assert.Equal(t, int64(5), comments.gotLimit)

	env = perform(t, r, http.MethodPost, "/comments/v2", `{"comment":"nice"}`)
	assert.Equal(t, http.StatusCreated, env.StatusCode)
	assert.Equal(t, "nice", comments.gotContent)

	env = perform(t, r, http.MethodPatch, "/comments/c/c1", `{"newComment":"x"}`)
	assert.Equal(t, http.StatusUnauthorized, env.StatusCode)
	assert.False(t, env.Success)

	env = perform(t, r, http.MethodDelete, "/comments/c/c1", "")
	assert.Equal(t, http.StatusNotFound, env.StatusCode)
	assert.Equal(t, "Comment not found", env.Message)
}

func TestLikeRoutes(t *testing.T) {
	likes := &stubLikes{}
	r := newEngine(New(&stubComments{}, likes, stubTweets{}), true)

	env := perform(t, r, http.MethodPost, "/likes/toggle/v/abc", "")
	assert.Equal(t, "Video successfully liked", env.Message)
	assert.JSONEq(t, `{"action":"liked","active":true}`, string(env.Data))
	assert.Equal(t, "abc", likes.gotID)

	env = perform(t, r, http.MethodPost, "/likes/toggle/c/def", "")
	assert.Equal(t, "Comment successfully unliked", env.Message)

	env = perform(t, r, http.MethodPost, "/likes/toggle/t/ghi", "")
	assert.Equal(t, http.StatusBadRequest, env.StatusCode)

	env = perform(t, r, http.MethodGet, "/likes/videos", "")
	assert.Equal(t, http.StatusOK, env.StatusCode)
}

func TestTweetRoutes(t *testing.T) {
	r := newEngine(New(&stubComments{}, &stubLikes{}, stubTweets{}), true)

	env := perform(t, r, http.MethodPost, "/tweets", `{"content":"hello"}`)
	assert.Equal(t, http.StatusCreated, env.StatusCode)

	env = perform(t, r, http.MethodGet, "/tweets/user/u1", "")
	var tweets []model.Tweet
	require.NoError(t, json.Unmarshal(env.Data, &tweets))
	assert.Len(t, tweets, 2)
}

func TestRoutesRequireCaller(t *testing.T) {
	r := newEngine(New(&stubComments{}, &stubLikes{}, stubTweets{}), false)

	env := perform(t, r, http.MethodPost, "/comments/v2", `{"comment":"nice"}`)
	assert.Equal(t, http.StatusUnauthorized, env.StatusCode)
	env = perform(t, r, http.MethodPost, "/likes/toggle/v/abc", "")
	assert.Equal(t, http.StatusUnauthorized, env.StatusCode)
}
