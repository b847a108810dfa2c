package handlers

import (
	"context"
	"net/http"

	"VideoHub.com/pkg/identity"
	"VideoHub.com/pkg/response"
	"github.com/cloudwego/hertz/pkg/app"
)

func (h *Handler) CreatePlaylist(ctx context.Context, c *app.RequestContext) {
	caller, err := identity.FromRequest(c)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	var req PlaylistParam
	if err = response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	playlist, err := h.playlists.CreatePlaylist(ctx, caller, req.Name, req.Description)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	response.SendResponse(c, http.StatusCreated, playlist, "Playlist created successfully")
}

func (h *Handler) GetPlaylist(ctx context.Context, c *app.RequestContext) {
	var req PlaylistParam
	if err := response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	playlist, err := h.playlists.GetPlaylistByID(ctx, req.PlaylistId)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, playlist, "Playlist fetched successfully")
}

func (h *Handler) UserPlaylists(ctx context.Context, c *app.RequestContext) {
	var req UserIdParam
	if err := response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	playlists, err := h.playlists.GetUserPlaylists(ctx, req.UserId)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, playlists, "Playlists fetched successfully")
}

func (h *Handler) UpdatePlaylist(ctx context.Context, c *app.RequestContext) {
	caller, err := identity.FromRequest(c)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	var req PlaylistParam
	if err = response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	playlist, err := h.playlists.UpdatePlaylist(ctx, caller, req.PlaylistId, req.Name, req.Description)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, playlist, "Playlist updated successfully")
}

func (h *Handler) DeletePlaylist(ctx context.Context, c *app.RequestContext) {
	caller, err := identity.FromRequest(c)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	var req PlaylistParam
	if err = response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	playlist, err := h.playlists.DeletePlaylist(ctx, caller, req.PlaylistId)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, playlist, "Playlist deleted successfully")
}

func (h *Handler) AddToPlaylist(ctx context.Context, c *app.RequestContext) {
	caller, err := identity.FromRequest(c)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	var req PlaylistVideoParam
	if err = response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	playlist, err := h.playlists.AddVideoToPlaylist(ctx, caller, req.VideoId, req.PlaylistId)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, playlist, "Video added to playlist successfully")
}

func (h *Handler) RemoveFromPlaylist(ctx context.Context, c *app.RequestContext) {
	caller, err := identity.FromRequest(c)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	var req PlaylistVideoParam
	if err = response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	playlist, err := h.playlists.RemoveVideoFromPlaylist(ctx, caller, req.VideoId, req.PlaylistId)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, playlist, "Video removed from playlist successfully")
}
