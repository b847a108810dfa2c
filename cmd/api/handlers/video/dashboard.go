package handlers

import (
	"context"
	"net/http"

	"VideoHub.com/pkg/identity"
	"VideoHub.com/pkg/response"
	"github.com/cloudwego/hertz/pkg/app"
)

func (h *Handler) ChannelStats(ctx context.Context, c *app.RequestContext) {
	caller, err := identity.FromRequest(c)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	stats, err := h.dashboard.GetChannelStats(ctx, caller)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, stats, "Channel stats fetched successfully")
}

func (h *Handler) ChannelVideos(ctx context.Context, c *app.RequestContext) {
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
	videos, err := h.dashboard.GetChannelVideos(ctx, caller, req.Page, req.Limit)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, videos, "Channel videos fetched successfully")
}
