package handlers

import (
	"context"
	"net/http"

	"VideoHub.com/cmd/video/service"
	"VideoHub.com/pkg/identity"
	"VideoHub.com/pkg/response"
	"VideoHub.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func (h *Handler) ListVideos(ctx context.Context, c *app.RequestContext) {
	var req VideoListParam
	if err := response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	videos, err := h.videos.GetAllVideos(ctx, service.ListParam{
		Page:     req.Page,
		Limit:    req.Limit,
		Query:    req.Query,
		SortBy:   req.SortBy,
		SortType: req.SortType,
		UserID:   req.UserId,
	})
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, videos, "Videos fetched successfully")
}

func (h *Handler) PublishVideo(ctx context.Context, c *app.RequestContext) {
	caller, err := identity.FromRequest(c)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	var req VideoFormParam
	if err = response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	duration, err := parseDuration(req.Duration)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}

	videoPath, err := utils.SaveFormFile(c, "videoFile", h.tempDir)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	thumbnailPath, err := utils.SaveFormFile(c, "thumbnail", h.tempDir)
	defer utils.RemoveFiles(videoPath, thumbnailPath)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}

	video, err := h.videos.PublishVideo(ctx, caller, service.PublishParam{
		Title:         req.Title,
		Description:   req.Description,
		Duration:      duration,
		VideoPath:     videoPath,
		ThumbnailPath: thumbnailPath,
	})
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	hlog.CtxInfof(ctx, "video %s published by %s", video.ID.Hex(), caller.UserID)
	response.SendResponse(c, http.StatusOK, video, "Video published successfully")
}

func (h *Handler) GetVideo(ctx context.Context, c *app.RequestContext) {
	caller, err := identity.FromRequest(c)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	var req VideoIdParam
	if err = response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	video, err := h.videos.GetVideoByID(ctx, caller, req.VideoId)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, video, "Video fetched successfully")
}

func (h *Handler) UpdateVideo(ctx context.Context, c *app.RequestContext) {
	caller, err := identity.FromRequest(c)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	var req VideoFormParam
	if err = response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	duration, err := parseDuration(req.Duration)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	thumbnailPath, err := utils.SaveFormFile(c, "thumbnail", h.tempDir)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	defer utils.RemoveFiles(thumbnailPath)

	video, err := h.videos.UpdateVideo(ctx, caller, req.VideoId, service.UpdateParam{
		Title:         req.Title,
		Description:   req.Description,
		Duration:      duration,
		ThumbnailPath: thumbnailPath,
	})
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, video, "Video updated successfully")
}

func (h *Handler) DeleteVideo(ctx context.Context, c *app.RequestContext) {
	caller, err := identity.FromRequest(c)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	var req VideoIdParam
	if err = response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	video, err := h.videos.DeleteVideo(ctx, caller, req.VideoId)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, video, "Video deleted successfully")
}

func (h *Handler) TogglePublish(ctx context.Context, c *app.RequestContext) {
	caller, err := identity.FromRequest(c)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	var req VideoIdParam
	if err = response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	video, err := h.videos.TogglePublishStatus(ctx, caller, req.VideoId)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	state := "unpublished"
	if video.IsPublished {
		state = "published"
	}
	response.SendResponse(c, http.StatusOK, video, "Video is now "+state)
}
