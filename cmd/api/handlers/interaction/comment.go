package handlers

import (
	"context"
	"net/http"

	"VideoHub.com/pkg/identity"
	"VideoHub.com/pkg/response"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func (h *Handler) ListComment(ctx context.Context, c *app.RequestContext) {
	var req ListCommentParam
	if err := response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	comments, err := h.comments.GetVideoComments(ctx, req.VideoId, req.Page, req.Limit)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, comments, "Comments fetched successfully")
}

func (h *Handler) CreateComment(ctx context.Context, c *app.RequestContext) {
	caller, err := identity.FromRequest(c)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	var req CreateCommentParam
	if err = response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	comment, err := h.comments.AddComment(ctx, caller, req.VideoId, req.Comment)
	if err != nil {
		hlog.CtxInfof(ctx, "add comment by %s rejected: %v", caller.UserID, err)
		response.SendError(ctx, c, err)
		return
	}
	response.SendResponse(c, http.StatusCreated, comment, "Comment added")
}

func (h *Handler) UpdateComment(ctx context.Context, c *app.RequestContext) {
	caller, err := identity.FromRequest(c)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	var req UpdateCommentParam
	if err = response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	comment, err := h.comments.UpdateComment(ctx, caller, req.CommentId, req.NewComment)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, comment, "Comment updated")
}

func (h *Handler) DeleteComment(ctx context.Context, c *app.RequestContext) {
	caller, err := identity.FromRequest(c)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	var req CommentIdParam
	if err = response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	comment, err := h.comments.DeleteComment(ctx, caller, req.CommentId)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, comment, "Comment deleted")
}
