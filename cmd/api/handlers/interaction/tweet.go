package handlers

import (
	"context"
	"net/http"

	"VideoHub.com/pkg/identity"
	"VideoHub.com/pkg/response"
	"github.com/cloudwego/hertz/pkg/app"
)

func (h *Handler) CreateTweet(ctx context.Context, c *app.RequestContext) {
	caller, err := identity.FromRequest(c)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	var req CreateTweetParam
	if err = response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	tweet, err := h.tweets.CreateTweet(ctx, caller, req.Content)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	response.SendResponse(c, http.StatusCreated, tweet, "Tweet created successfully")
}

func (h *Handler) UserTweets(ctx context.Context, c *app.RequestContext) {
	var req UserIdParam
	if err := response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	tweets, err := h.tweets.GetUserTweets(ctx, req.UserId)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, tweets, "Tweets fetched successfully")
}

func (h *Handler) UpdateTweet(ctx context.Context, c *app.RequestContext) {
	caller, err := identity.FromRequest(c)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	var req UpdateTweetParam
	if err = response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	tweet, err := h.tweets.UpdateTweet(ctx, caller, req.TweetId, req.NewTweet)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, tweet, "Tweet updated successfully")
}

func (h *Handler) DeleteTweet(ctx context.Context, c *app.RequestContext) {
	caller, err := identity.FromRequest(c)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	var req TweetIdParam
	if err = response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	tweet, err := h.tweets.DeleteTweet(ctx, caller, req.TweetId)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, tweet, "Tweet deleted successfully")
}
