package service

import (
	"context"
	"os"
	"strings"

	"VideoHub.com/cmd/model"
	"VideoHub.com/cmd/video/dal/db"
	"VideoHub.com/pkg/database"
	"VideoHub.com/pkg/errno"
	"VideoHub.com/pkg/identity"
	"VideoHub.com/pkg/mq"
	"VideoHub.com/pkg/oss"
	"VideoHub.com/pkg/ownership"
	"VideoHub.com/pkg/saga"
	"VideoHub.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

// PublishParam describes an uploaded video. Duration and ThumbnailPath are
// optional; missing values are read from the video file.
type PublishParam struct {
	Title         string
	Description   string
	Duration      float64
	VideoPath     string
	ThumbnailPath string
}

type UpdateParam struct {
	Title         string
	Description   string
	Duration      float64
	ThumbnailPath string
}

type ListParam struct {
	Page     int64
	Limit    int64
	Query    string
	SortBy   string
	SortType string
	UserID   string
}

type VideoService struct {
	videos  VideoStore
	media   MediaStore
	prober  Prober
	events  mq.Publisher
	tempDir string
}

func NewVideoService(videos VideoStore, media MediaStore, prober Prober, events mq.Publisher, tempDir string) *VideoService {
	return &VideoService{videos: videos, media: media, prober: prober, events: events, tempDir: tempDir}
}

func (s *VideoService) GetAllVideos(ctx context.Context, req ListParam) (*database.PageResult[model.VideoView], error) {
	query := db.VideoQuery{Search: strings.TrimSpace(req.Query), SortBy: req.SortBy, Order: -1}
	if req.SortBy != "" && !db.SortFields[req.SortBy] {
		return nil, errno.ParamErr.WithMessage("Invalid sortBy field")
	}
	switch strings.ToLower(req.SortType) {
	case "", "desc":
	case "asc":
		query.Order = 1
	default:
		return nil, errno.ParamErr.WithMessage("sortType must be asc or desc")
	}
	if req.UserID != "" {
		uid, err := utils.ParseObjectID(req.UserID, "User")
		if err != nil {
			return nil, err
		}
		query.Owner = &uid
	}
	videos, err := s.videos.GetAllVideos(ctx, query, database.NewPage(req.Page, req.Limit))
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetAllVideos failed")
	}
	return videos, nil
}

// PublishVideo uploads the media, then stores the metadata. Uploaded objects
// are removed again when a later step fails.
func (s *VideoService) PublishVideo(ctx context.Context, caller identity.Caller, req PublishParam) (*model.Video, error) {
	if utils.Blank(req.Title) || utils.Blank(req.Description) {
		return nil, errno.ParamErr.WithMessage("All fields are required")
	}
	if req.VideoPath == "" {
		return nil, errno.ParamErr.WithMessage("Video file is required")
	}
	if req.Duration < 0 {
		return nil, errno.ParamErr.WithMessage("Duration must be positive")
	}
	uid, err := caller.ObjectID()
	if err != nil {
		return nil, err
	}

	duration := req.Duration
	if duration == 0 {
		if duration, err = s.prober.ProbeDuration(req.VideoPath); err != nil {
			hlog.CtxWarnf(ctx, "probe %s: %v", req.VideoPath, err)
			return nil, errno.ParamErr.WithMessage("Duration is required")
		}
	}
	thumbnailPath := req.ThumbnailPath
	if thumbnailPath == "" {
		dir, err := os.MkdirTemp(s.tempDir, "thumb-")
		if err != nil {
			return nil, errors.Wrap(err, "create thumbnail dir")
		}
		defer os.RemoveAll(dir)
		if thumbnailPath, err = s.prober.ExtractThumbnail(req.VideoPath, dir); err != nil {
			hlog.CtxWarnf(ctx, "extract thumbnail from %s: %v", req.VideoPath, err)
			return nil, errno.ParamErr.WithMessage("Thumbnail is required")
		}
	}

	sg := saga.New("publish video")
	videoFile, err := s.media.FPut(ctx, oss.VideoPrefix, req.VideoPath)
	if err != nil {
		hlog.CtxErrorf(ctx, "upload video file: %v", err)
		return nil, errno.OssErr.WithMessage("Failed to upload video")
	}
	sg.Record("remove video file", s.remover(videoFile.Key))

	thumbnail, err := s.media.FPut(ctx, oss.ThumbnailPrefix, thumbnailPath)
	if err != nil {
		hlog.CtxErrorf(ctx, "upload thumbnail: %v", err)
		return nil, abort(ctx, sg, errno.OssErr.WithMessage("Failed to upload Thumbnail"))
	}
	sg.Record("remove thumbnail", s.remover(thumbnail.Key))

	id, err := s.videos.CreateVideo(ctx, &model.Video{
		VideoFile:    videoFile.URL,
		VideoFileKey: videoFile.Key,
		Thumbnail:    thumbnail.URL,
		ThumbnailKey: thumbnail.Key,
		Title:        strings.TrimSpace(req.Title),
		Description:  strings.TrimSpace(req.Description),
		Duration:     duration,
		IsPublished:  true,
		Owner:        uid,
	})
	if err != nil {
		hlog.CtxErrorf(ctx, "dao.CreateVideo failed: %v", err)
		return nil, abort(ctx, sg, errno.ServiceErr.WithMessage("Something went wrong while uploading the video"))
	}
	created, err := s.videos.GetVideoInfo(ctx, id)
	if err != nil {
		hlog.CtxErrorf(ctx, "video %s missing after insert: %v", id.Hex(), err)
		return nil, abort(ctx, sg, errno.ServiceErr.WithMessage("Failed to create video"))
	}
	mq.Emit(ctx, s.events, mq.NewEvent(mq.VideoPublishEvent, caller.UserID, id.Hex(), ""))
	return created, nil
}

func (s *VideoService) remover(key string) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return s.media.Remove(ctx, key)
	}
}

// abort rolls sg back. A rollback that leaves media behind is reported in the
// client message as well as in the returned *saga.Failure.
func abort(ctx context.Context, sg *saga.Saga, cause errno.ErrNo) error {
	err := sg.Fail(ctx, cause)
	var failure *saga.Failure
	if errors.As(err, &failure) {
		failure.Cause = cause.WithMessage(cause.ErrMsg + "; cleanup of uploaded media failed")
		return failure
	}
	return err
}

// GetVideoByID returns the video and counts a view when the caller is not the owner.
func (s *VideoService) GetVideoByID(ctx context.Context, caller identity.Caller, videoID string) (*model.Video, error) {
	vid, err := utils.ParseObjectID(videoID, "Video")
	if err != nil {
		return nil, err
	}
	video, err := ownership.Load[*model.Video](ctx, "Video", vid, s.videos.GetVideoInfo)
	if err != nil {
		return nil, err
	}
	if caller.Is(video.Owner) {
		return video, nil
	}
	if !video.IsPublished {
		return nil, errno.ParamErr.WithMessage("Video is not published")
	}
	counted, err := s.videos.IncrementViews(ctx, vid)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, errno.NotFoundErr.WithMessage("Video not found")
		}
		return nil, errors.WithMessage(err, "dao.IncrementViews failed")
	}
	return counted, nil
}

// UpdateVideo rewrites the metadata. A new thumbnail replaces the stored one,
// which is removed once the update went through.
func (s *VideoService) UpdateVideo(ctx context.Context, caller identity.Caller, videoID string, req UpdateParam) (*model.Video, error) {
	if utils.Blank(req.Title) || utils.Blank(req.Description) || req.Duration <= 0 {
		return nil, errno.ParamErr.WithMessage("All fields are required")
	}
	vid, err := utils.ParseObjectID(videoID, "Video")
	if err != nil {
		return nil, err
	}
	current, err := ownership.Check[*model.Video](ctx, "Video", vid, caller, s.videos.GetVideoInfo)
	if err != nil {
		return nil, err
	}

	patch := model.VideoPatch{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Duration:    req.Duration,
	}
	sg := saga.New("update video")
	if req.ThumbnailPath != "" {
		thumbnail, err := s.media.FPut(ctx, oss.ThumbnailPrefix, req.ThumbnailPath)
		if err != nil {
			hlog.CtxErrorf(ctx, "upload thumbnail: %v", err)
			return nil, errno.OssErr.WithMessage("Failed to upload Thumbnail")
		}
		sg.Record("remove new thumbnail", s.remover(thumbnail.Key))
		patch.Thumbnail, patch.ThumbnailKey = thumbnail.URL, thumbnail.Key
	}

	updated, err := s.videos.UpdateVideoInfo(ctx, vid, patch)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, abort(ctx, sg, errno.NotFoundErr.WithMessage("Video not found"))
		}
		hlog.CtxErrorf(ctx, "dao.UpdateVideoInfo failed: %v", err)
		return nil, abort(ctx, sg, errno.ServiceErr.WithMessage("Failed to update video"))
	}
	if patch.ThumbnailKey != "" {
		s.removeQuietly(ctx, current.ThumbnailKey)
	}
	return updated, nil
}

// DeleteVideo removes the document, then its media on a best effort basis.
func (s *VideoService) DeleteVideo(ctx context.Context, caller identity.Caller, videoID string) (*model.Video, error) {
	vid, err := utils.ParseObjectID(videoID, "Video")
	if err != nil {
		return nil, err
	}
	if _, err = ownership.Check[*model.Video](ctx, "Video", vid, caller, s.videos.GetVideoInfo); err != nil {
		return nil, err
	}
	deleted, err := s.videos.DeleteVideo(ctx, vid)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, errno.NotFoundErr.WithMessage("Video not found")
		}
		return nil, errors.WithMessage(err, "dao.DeleteVideo failed")
	}
	s.removeQuietly(ctx, deleted.VideoFileKey)
	s.removeQuietly(ctx, deleted.ThumbnailKey)
	return deleted, nil
}

func (s *VideoService) removeQuietly(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.media.Remove(ctx, key); err != nil {
		hlog.CtxWarnf(ctx, "remove media %s: %v", key, err)
	}
}

func (s *VideoService) TogglePublishStatus(ctx context.Context, caller identity.Caller, videoID string) (*model.Video, error) {
	vid, err := utils.ParseObjectID(videoID, "Video")
	if err != nil {
		return nil, err
	}
	if _, err = ownership.Check[*model.Video](ctx, "Video", vid, caller, s.videos.GetVideoInfo); err != nil {
		return nil, err
	}
	video, err := s.videos.TogglePublish(ctx, vid)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, errno.NotFoundErr.WithMessage("Video not found")
		}
		return nil, errors.WithMessage(err, "dao.TogglePublish failed")
	}
	return video, nil
}
