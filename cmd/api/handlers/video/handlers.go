package handlers

import (
	"context"
	"strconv"
	"strings"

	"VideoHub.com/cmd/model"
	"VideoHub.com/cmd/video/service"
	"VideoHub.com/pkg/database"
	"VideoHub.com/pkg/errno"
	"VideoHub.com/pkg/identity"
)

type VideoService interface {
	GetAllVideos(ctx context.Context, req service.ListParam) (*database.PageResult[model.VideoView], error)
	PublishVideo(ctx context.Context, caller identity.Caller, req service.PublishParam) (*model.Video, error)
	GetVideoByID(ctx context.Context, caller identity.Caller, videoID string) (*model.Video, error)
	UpdateVideo(ctx context.Context, caller identity.Caller, videoID string, req service.UpdateParam) (*model.Video, error)
	DeleteVideo(ctx context.Context, caller identity.Caller, videoID string) (*model.Video, error)
	TogglePublishStatus(ctx context.Context, caller identity.Caller, videoID string) (*model.Video, error)
}

type PlaylistService interface {
	CreatePlaylist(ctx context.Context, caller identity.Caller, name, description string) (*model.Playlist, error)
	GetPlaylistByID(ctx context.Context, playlistID string) (*model.Playlist, error)
	GetUserPlaylists(ctx context.Context, userID string) ([]model.Playlist, error)
	UpdatePlaylist(ctx context.Context, caller identity.Caller, playlistID, name, description string) (*model.Playlist, error)
	DeletePlaylist(ctx context.Context, caller identity.Caller, playlistID string) (*model.Playlist, error)
	AddVideoToPlaylist(ctx context.Context, caller identity.Caller, videoID, playlistID string) (*model.Playlist, error)
	RemoveVideoFromPlaylist(ctx context.Context, caller identity.Caller, videoID, playlistID string) (*model.Playlist, error)
}

type DashboardService interface {
	GetChannelStats(ctx context.Context, caller identity.Caller) (*model.ChannelStats, error)
	GetChannelVideos(ctx context.Context, caller identity.Caller, page, limit int64) (*database.PageResult[model.Video], error)
}

// Handler serves videos, playlists and the channel dashboard.
type Handler struct {
	videos    VideoService
	playlists PlaylistService
	dashboard DashboardService
	tempDir   string
}

func New(videos VideoService, playlists PlaylistService, dashboard DashboardService, tempDir string) *Handler {
	return &Handler{videos: videos, playlists: playlists, dashboard: dashboard, tempDir: tempDir}
}

type PageParam struct {
	Page  int64 `query:"page"`
	Limit int64 `query:"limit"`
}

type VideoListParam struct {
	Page     int64  `query:"page"`
	Limit    int64  `query:"limit"`
	Query    string `query:"query"`
	SortBy   string `query:"sortBy"`
	SortType string `query:"sortType"`
	UserId   string `query:"userId"`
}

type VideoIdParam struct {
	VideoId string `path:"videoId"`
}

// VideoFormParam is the text part of the publish and update forms.
// Duration stays a string so an absent value can be told apart from a bad one.
type VideoFormParam struct {
	VideoId     string `path:"videoId"`
	Title       string `form:"title" json:"title"`
	Description string `form:"description" json:"description"`
	Duration    string `form:"duration" json:"duration"`
}

type PlaylistParam struct {
	PlaylistId  string `path:"playlistId"`
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
}

type PlaylistVideoParam struct {
	VideoId    string `path:"videoId"`
	PlaylistId string `path:"playlistId"`
}

type UserIdParam struct {
	UserId string `path:"userId"`
}

func parseDuration(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	d, err := strconv.ParseFloat(raw, 64)
	if err != nil || d < 0 {
		return 0, errno.ParamErr.WithMessage("Invalid duration")
	}
	return d, nil
}
