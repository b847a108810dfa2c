package handlers

import (
	"context"
	"net/http"

	"VideoHub.com/pkg/identity"
	"VideoHub.com/pkg/response"
	"VideoHub.com/pkg/toggle"
	"github.com/cloudwego/hertz/pkg/app"
)

type toggleFunc func(ctx context.Context, caller identity.Caller, id string) (toggle.Result, error)

// likeAction binds the path parameter produced by bind and runs flip on it.
func likeAction(kind string, bind func(c *app.RequestContext) (string, error), flip toggleFunc) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		caller, err := identity.FromRequest(c)
		if err != nil {
			response.SendError(ctx, c, err)
			return
		}
		id, err := bind(c)
		if err != nil {
			response.SendError(ctx, c, err)
			return
		}
		res, err := flip(ctx, caller, id)
		if err != nil {
			response.SendError(ctx, c, err)
			return
		}
		response.SendResponse(c, http.StatusOK, res, kind+" successfully "+res.Action)
	}
}

func (h *Handler) LikeVideo() app.HandlerFunc {
	return likeAction("Video", func(c *app.RequestContext) (string, error) {
		var req VideoIdParam
		err := response.Bind(c, &req)
		return req.VideoId, err
	}, h.likes.ToggleVideoLike)
}

func (h *Handler) LikeComment() app.HandlerFunc {
	return likeAction("Comment", func(c *app.RequestContext) (string, error) {
		var req CommentIdParam
		err := response.Bind(c, &req)
		return req.CommentId, err
	}, h.likes.ToggleCommentLike)
}

func (h *Handler) LikeTweet() app.HandlerFunc {
	return likeAction("Tweet", func(c *app.RequestContext) (string, error) {
		var req TweetIdParam
		err := response.Bind(c, &req)
		return req.TweetId, err
	}, h.likes.ToggleTweetLike)
}

func (h *Handler) LikedVideos(ctx context.Context, c *app.RequestContext) {
	caller, err := identity.FromRequest(c)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	var req PageParam
	if err = response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	videos, err := h.likes.GetLikedVideos(ctx, caller, req.Page, req.Limit)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, videos, "Liked videos fetched successfully")
}
