package handlers

import (
	"context"
	"net/http"

	"VideoHub.com/cmd/model"
	"VideoHub.com/pkg/database"
	"VideoHub.com/pkg/identity"
	"VideoHub.com/pkg/response"
	"VideoHub.com/pkg/toggle"
	"github.com/cloudwego/hertz/pkg/app"
)

type RelationService interface {
	ToggleSubscription(ctx context.Context, caller identity.Caller, channelID string) (toggle.Result, error)
	GetChannelSubscribers(ctx context.Context, channelID string, page, limit int64) (*database.PageResult[model.SubscriberView], error)
	GetSubscribedChannels(ctx context.Context, subscriberID string, page, limit int64) (*database.PageResult[model.ChannelView], error)
}

type Handler struct {
	relations RelationService
}

func New(relations RelationService) *Handler {
	return &Handler{relations: relations}
}

type ChannelParam struct {
	ChannelId string `path:"channelId"`
	Page      int64  `query:"page"`
	Limit     int64  `query:"limit"`
}

type SubscriberParam struct {
	SubscriberId string `path:"subscriberId"`
	Page         int64  `query:"page"`
	Limit        int64  `query:"limit"`
}

func (h *Handler) ToggleSubscription(ctx context.Context, c *app.RequestContext) {
	caller, err := identity.FromRequest(c)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	var req ChannelParam
	if err = response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	res, err := h.relations.ToggleSubscription(ctx, caller, req.ChannelId)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, res, "Channel successfully "+res.Action)
}

func (h *Handler) ChannelSubscribers(ctx context.Context, c *app.RequestContext) {
	var req ChannelParam
	if err := response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	subscribers, err := h.relations.GetChannelSubscribers(ctx, req.ChannelId, req.Page, req.Limit)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, subscribers, "Subscribers fetched successfully")
}

func (h *Handler) SubscribedChannels(ctx context.Context, c *app.RequestContext) {
	var req SubscriberParam
	if err := response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	channels, err := h.relations.GetSubscribedChannels(ctx, req.SubscriberId, req.Page, req.Limit)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, channels, "Subscribed channels fetched successfully")
}
