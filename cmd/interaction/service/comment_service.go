package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"VideoHub.com/cmd/model"
	"VideoHub.com/pkg/constants"
	"VideoHub.com/pkg/database"
	"VideoHub.com/pkg/errno"
	"VideoHub.com/pkg/identity"
	"VideoHub.com/pkg/mq"
	"VideoHub.com/pkg/ownership"
	"VideoHub.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type CommentService struct {
	comments CommentStore
	videos   VideoFinder
	limiter  CommentLimiter
	events   mq.Publisher
}

func NewCommentService(comments CommentStore, videos VideoFinder, limiter CommentLimiter, events mq.Publisher) *CommentService {
	return &CommentService{comments: comments, videos: videos, limiter: limiter, events: events}
}

// validateCommentContent rejects empty and oversized comments.
func validateCommentContent(content, emptyMsg string) error {
	if utils.Blank(content) {
		return errno.ParamErr.WithMessage(emptyMsg)
	}
	if utf8.RuneCountInString(content) > constants.MaxCommentLength {
		return errno.ParamErr.WithMessage("Comment too long, maximum 500 characters allowed")
	}
	return nil
}

func (s *CommentService) GetVideoComments(ctx context.Context, videoID string, page, limit int64) (*database.PageResult[model.CommentView], error) {
	vid, err := utils.ParseObjectID(videoID, "Video")
	if err != nil {
		return nil, err
	}
	if _, err = ownership.Load[*model.Video](ctx, "Video", vid, s.videos.GetVideoInfo); err != nil {
		return nil, err
	}
	comments, err := s.comments.GetVideoCommentList(ctx, vid, database.NewPage(page, limit))
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetVideoCommentList failed")
	}
	return comments, nil
}

func (s *CommentService) AddComment(ctx context.Context, caller identity.Caller, videoID, content string) (*model.Comment, error) {
	if err := validateCommentContent(content, "Comment is required"); err != nil {
		return nil, err
	}
	vid, err := utils.ParseObjectID(videoID, "Video")
	if err != nil {
		return nil, err
	}
	uid, err := caller.ObjectID()
	if err != nil {
		return nil, err
	}
	if _, err = ownership.Load[*model.Video](ctx, "Video", vid, s.videos.GetVideoInfo); err != nil {
		return nil, err
	}
	if s.limiter != nil {
		if err = s.limiter.Allow(ctx, caller.UserID, content); err != nil {
			return nil, err
		}
	}

	id, err := s.comments.CreateComment(ctx, &model.Comment{
		Content: strings.TrimSpace(content),
		Video:   vid,
		Owner:   uid,
	})
	if err != nil {
		return nil, errors.WithMessage(err, "dao.CreateComment failed")
	}
	created, err := s.comments.GetCommentInfo(ctx, id)
	if err != nil {
		hlog.CtxErrorf(ctx, "comment %s missing after insert: %v", id.Hex(), err)
		return nil, errno.ServiceErr.WithMessage("Failed to create comment")
	}

	if s.limiter != nil {
		s.limiter.Record(ctx, caller.UserID, content)
	}
	mq.Emit(ctx, s.events, mq.NewEvent(mq.CommentAddEvent, caller.UserID, id.Hex(), ""))
	return created, nil
}

func (s *CommentService) UpdateComment(ctx context.Context, caller identity.Caller, commentID, newContent string) (*model.Comment, error) {
	if err := validateCommentContent(newContent, "New comment is required"); err != nil {
		return nil, err
	}
	cid, err := utils.ParseObjectID(commentID, "Comment")
	if err != nil {
		return nil, err
	}
	if _, err = ownership.Check[*model.Comment](ctx, "Comment", cid, caller, s.comments.GetCommentInfo); err != nil {
		return nil, err
	}
	updated, err := s.comments.UpdateCommentContent(ctx, cid, strings.TrimSpace(newContent))
	if err != nil {
		return nil, notFoundOr(err, "Comment", "dao.UpdateCommentContent failed")
	}
	return updated, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, caller identity.Caller, commentID string) (*model.Comment, error) {
	cid, err := utils.ParseObjectID(commentID, "Comment")
	if err != nil {
		return nil, err
	}
	if _, err = ownership.Check[*model.Comment](ctx, "Comment", cid, caller, s.comments.GetCommentInfo); err != nil {
		return nil, err
	}
	deleted, err := s.comments.DeleteComment(ctx, cid)
	if err != nil {
		return nil, notFoundOr(err, "Comment", "dao.DeleteComment failed")
	}
	return deleted, nil
}

// notFoundOr maps a document that vanished between check and write to 404.
func notFoundOr(err error, kind, msg string) error {
	if errors.Is(err, database.ErrNotFound) {
		return errno.NotFoundErr.WithMessage(kind + " not found")
	}
	return errors.WithMessage(err, msg)
}
