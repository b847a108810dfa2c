package service

import (
	"context"
	"strings"

	"VideoHub.com/cmd/model"
	"VideoHub.com/pkg/database"
	"VideoHub.com/pkg/errno"
	"VideoHub.com/pkg/identity"
	"VideoHub.com/pkg/ownership"
	"VideoHub.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VideoFinder resolves videos added to playlists.
type VideoFinder interface {
	GetVideoInfo(ctx context.Context, videoID primitive.ObjectID) (*model.Video, error)
}

type PlaylistService struct {
	playlists PlaylistStore
	videos    VideoFinder
}

func NewPlaylistService(playlists PlaylistStore, videos VideoFinder) *PlaylistService {
	return &PlaylistService{playlists: playlists, videos: videos}
}

func (s *PlaylistService) CreatePlaylist(ctx context.Context, caller identity.Caller, name, description string) (*model.Playlist, error) {
	if utils.Blank(name) || utils.Blank(description) {
		return nil, errno.ParamErr.WithMessage("All fields are required")
	}
	uid, err := caller.ObjectID()
	if err != nil {
		return nil, err
	}
	id, err := s.playlists.CreatePlaylist(ctx, &model.Playlist{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Owner:       uid,
	})
	if err != nil {
		return nil, errors.WithMessage(err, "dao.CreatePlaylist failed")
	}
	created, err := s.playlists.GetPlaylistInfo(ctx, id)
	if err != nil {
		hlog.CtxErrorf(ctx, "playlist %s missing after insert: %v", id.Hex(), err)
		return nil, errno.ServiceErr.WithMessage("Failed to create playlist")
	}
	return created, nil
}

func (s *PlaylistService) GetPlaylistByID(ctx context.Context, playlistID string) (*model.Playlist, error) {
	pid, err := utils.ParseObjectID(playlistID, "Playlist")
	if err != nil {
		return nil, err
	}
	return ownership.Load[*model.Playlist](ctx, "Playlist", pid, s.playlists.GetPlaylistInfo)
}

func (s *PlaylistService) GetUserPlaylists(ctx context.Context, userID string) ([]model.Playlist, error) {
	uid, err := utils.ParseObjectID(userID, "User")
	if err != nil {
		return nil, err
	}
	playlists, err := s.playlists.GetUserPlaylistList(ctx, uid)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUserPlaylistList failed")
	}
	return playlists, nil
}

func (s *PlaylistService) UpdatePlaylist(ctx context.Context, caller identity.Caller, playlistID, name, description string) (*model.Playlist, error) {
	if utils.Blank(name) || utils.Blank(description) {
		return nil, errno.ParamErr.WithMessage("Name and description are required")
	}
	pid, err := s.owned(ctx, caller, playlistID)
	if err != nil {
		return nil, err
	}
	updated, err := s.playlists.UpdatePlaylistInfo(ctx, pid, strings.TrimSpace(name), strings.TrimSpace(description))
	return updated, notFoundOr(err, "dao.UpdatePlaylistInfo failed")
}

func (s *PlaylistService) DeletePlaylist(ctx context.Context, caller identity.Caller, playlistID string) (*model.Playlist, error) {
	pid, err := s.owned(ctx, caller, playlistID)
	if err != nil {
		return nil, err
	}
	deleted, err := s.playlists.DeletePlaylist(ctx, pid)
	return deleted, notFoundOr(err, "dao.DeletePlaylist failed")
}

func (s *PlaylistService) AddVideoToPlaylist(ctx context.Context, caller identity.Caller, videoID, playlistID string) (*model.Playlist, error) {
	pid, vid, err := s.ownedWithVideo(ctx, caller, videoID, playlistID)
	if err != nil {
		return nil, err
	}
	playlist, err := s.playlists.AddVideo(ctx, pid, vid)
	return playlist, notFoundOr(err, "dao.AddVideo failed")
}

func (s *PlaylistService) RemoveVideoFromPlaylist(ctx context.Context, caller identity.Caller, videoID, playlistID string) (*model.Playlist, error) {
	pid, vid, err := s.ownedWithVideo(ctx, caller, videoID, playlistID)
	if err != nil {
		return nil, err
	}
	playlist, err := s.playlists.RemoveVideo(ctx, pid, vid)
	return playlist, notFoundOr(err, "dao.RemoveVideo failed")
}

func (s *PlaylistService) owned(ctx context.Context, caller identity.Caller, playlistID string) (primitive.ObjectID, error) {
	pid, err := utils.ParseObjectID(playlistID, "Playlist")
	if err != nil {
		return pid, err
	}
	_, err = ownership.Check[*model.Playlist](ctx, "Playlist", pid, caller, s.playlists.GetPlaylistInfo)
	return pid, err
}

func (s *PlaylistService) ownedWithVideo(ctx context.Context, caller identity.Caller, videoID, playlistID string) (primitive.ObjectID, primitive.ObjectID, error) {
	pid, err := utils.ParseObjectID(playlistID, "Playlist")
	if err != nil {
		return pid, primitive.NilObjectID, err
	}
	vid, err := utils.ParseObjectID(videoID, "Video")
	if err != nil {
		return pid, vid, err
	}
	if _, err = ownership.Check[*model.Playlist](ctx, "Playlist", pid, caller, s.playlists.GetPlaylistInfo); err != nil {
		return pid, vid, err
	}
	_, err = ownership.Load[*model.Video](ctx, "Video", vid, s.videos.GetVideoInfo)
	return pid, vid, err
}

// notFoundOr maps a playlist that vanished between check and write to 404.
func notFoundOr(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, database.ErrNotFound) {
		return errno.NotFoundErr.WithMessage("Playlist not found")
	}
	return errors.WithMessage(err, msg)
}
