package service

import (
	"context"

	"VideoHub.com/cmd/model"
	"VideoHub.com/cmd/video/dal/db"
	"VideoHub.com/pkg/database"
	"VideoHub.com/pkg/oss"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VideoStore is implemented by db.VideoDB.
type VideoStore interface {
	CreateVideo(ctx context.Context, video *model.Video) (primitive.ObjectID, error)
	GetVideoInfo(ctx context.Context, videoID primitive.ObjectID) (*model.Video, error)
	IncrementViews(ctx context.Context, videoID primitive.ObjectID) (*model.Video, error)
	UpdateVideoInfo(ctx context.Context, videoID primitive.ObjectID, patch model.VideoPatch) (*model.Video, error)
	TogglePublish(ctx context.Context, videoID primitive.ObjectID) (*model.Video, error)
	DeleteVideo(ctx context.Context, videoID primitive.ObjectID) (*model.Video, error)
	GetAllVideos(ctx context.Context, query db.VideoQuery, page database.Page) (*database.PageResult[model.VideoView], error)
}

// ChannelStore is the owner side view of the video collection, implemented by db.VideoDB.
type ChannelStore interface {
	GetChannelVideoList(ctx context.Context, ownerID primitive.ObjectID, page database.Page) (*database.PageResult[model.Video], error)
	CountOwnerVideos(ctx context.Context, ownerID primitive.ObjectID) (int64, error)
	SumOwnerViews(ctx context.Context, ownerID primitive.ObjectID) (int64, error)
	OwnerVideoIDs(ctx context.Context, ownerID primitive.ObjectID) ([]primitive.ObjectID, error)
}

// PlaylistStore is implemented by db.PlaylistDB.
type PlaylistStore interface {
	CreatePlaylist(ctx context.Context, playlist *model.Playlist) (primitive.ObjectID, error)
	GetPlaylistInfo(ctx context.Context, playlistID primitive.ObjectID) (*model.Playlist, error)
	UpdatePlaylistInfo(ctx context.Context, playlistID primitive.ObjectID, name, description string) (*model.Playlist, error)
	DeletePlaylist(ctx context.Context, playlistID primitive.ObjectID) (*model.Playlist, error)
	AddVideo(ctx context.Context, playlistID, videoID primitive.ObjectID) (*model.Playlist, error)
	RemoveVideo(ctx context.Context, playlistID, videoID primitive.ObjectID) (*model.Playlist, error)
	GetUserPlaylistList(ctx context.Context, ownerID primitive.ObjectID) ([]model.Playlist, error)
}

// MediaStore is implemented by oss.Storage.
type MediaStore interface {
	FPut(ctx context.Context, prefix, path string) (oss.Object, error)
	Remove(ctx context.Context, key string) error
}

// Prober is implemented by utils.FFmpegProber.
type Prober interface {
	ProbeDuration(path string) (float64, error)
	ExtractThumbnail(videoPath, outputDir string) (string, error)
}

// SubscriberCounter is implemented by the relation dal.
type SubscriberCounter interface {
	CountSubscribers(ctx context.Context, channelID primitive.ObjectID) (int64, error)
}

// LikeCounter is implemented by the interaction dal.
type LikeCounter interface {
	CountVideoLikes(ctx context.Context, videoIDs []primitive.ObjectID) (int64, error)
}
