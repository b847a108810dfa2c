package service

import (
	"context"

	"VideoHub.com/cmd/model"
	"VideoHub.com/pkg/constants"
	"VideoHub.com/pkg/database"
	"VideoHub.com/pkg/errno"
	"VideoHub.com/pkg/identity"
	"VideoHub.com/pkg/mq"
	"VideoHub.com/pkg/ownership"
	"VideoHub.com/pkg/toggle"
	"VideoHub.com/pkg/utils"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var likeActions = toggle.Actions{On: constants.ActionLiked, Off: constants.ActionUnliked}

// LikeService toggles likes on videos, comments and tweets.
type LikeService struct {
	likes    LikeStore
	videos   VideoFinder
	comments CommentStore
	tweets   TweetStore
	events   mq.Publisher
}

func NewLikeService(likes LikeStore, videos VideoFinder, comments CommentStore, tweets TweetStore, events mq.Publisher) *LikeService {
	return &LikeService{likes: likes, videos: videos, comments: comments, tweets: tweets, events: events}
}

func (s *LikeService) ToggleVideoLike(ctx context.Context, caller identity.Caller, videoID string) (toggle.Result, error) {
	id, err := utils.ParseObjectID(videoID, "Video")
	if err != nil {
		return toggle.Result{}, err
	}
	video, err := ownership.Load[*model.Video](ctx, "Video", id, s.videos.GetVideoInfo)
	if err != nil {
		return toggle.Result{}, err
	}
	return s.toggle(ctx, caller, model.LikeVideo, id, video, mq.VideoLikeEvent)
}

func (s *LikeService) ToggleCommentLike(ctx context.Context, caller identity.Caller, commentID string) (toggle.Result, error) {
	id, err := utils.ParseObjectID(commentID, "Comment")
	if err != nil {
		return toggle.Result{}, err
	}
	comment, err := ownership.Load[*model.Comment](ctx, "Comment", id, s.comments.GetCommentInfo)
	if err != nil {
		return toggle.Result{}, err
	}
	return s.toggle(ctx, caller, model.LikeComment, id, comment, mq.CommentLikeEvent)
}

func (s *LikeService) ToggleTweetLike(ctx context.Context, caller identity.Caller, tweetID string) (toggle.Result, error) {
	id, err := utils.ParseObjectID(tweetID, "Tweet")
	if err != nil {
		return toggle.Result{}, err
	}
	tweet, err := ownership.Load[*model.Tweet](ctx, "Tweet", id, s.tweets.GetTweetInfo)
	if err != nil {
		return toggle.Result{}, err
	}
	return s.toggle(ctx, caller, model.LikeTweet, id, tweet, mq.TweetLikeEvent)
}

// toggle rejects likes on the caller's own content, then flips the like.
func (s *LikeService) toggle(ctx context.Context, caller identity.Caller, target model.LikeTarget, targetID primitive.ObjectID, doc ownership.Owned, eventType string) (toggle.Result, error) {
	if caller.Is(doc.OwnerID()) {
		return toggle.Result{}, errno.SelfActionErr.WithMessage("You cannot like your own " + string(target))
	}
	uid, err := caller.ObjectID()
	if err != nil {
		return toggle.Result{}, err
	}
	key := model.LikeKey{Target: target, TargetID: targetID, LikedBy: uid}
	res, err := toggle.Flip[model.LikeKey](ctx, s.likes, key, likeActions)
	if err != nil {
		return toggle.Result{}, errors.WithMessagef(err, "toggle %s like", target)
	}
	mq.Emit(ctx, s.events, mq.NewEvent(eventType, caller.UserID, key.TargetID.Hex(), res.Action))
	return res, nil
}

func (s *LikeService) GetLikedVideos(ctx context.Context, caller identity.Caller, page, limit int64) (*database.PageResult[model.VideoView], error) {
	uid, err := caller.ObjectID()
	if err != nil {
		return nil, err
	}
	videos, err := s.likes.GetLikedVideoList(ctx, uid, database.NewPage(page, limit))
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetLikedVideoList failed")
	}
	return videos, nil
}
