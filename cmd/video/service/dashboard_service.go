package service

import (
	"context"

	"VideoHub.com/cmd/model"
	"VideoHub.com/pkg/database"
	"VideoHub.com/pkg/identity"
	"github.com/pkg/errors"
)

type DashboardService struct {
	channel     ChannelStore
	subscribers SubscriberCounter
	likes       LikeCounter
}

func NewDashboardService(channel ChannelStore, subscribers SubscriberCounter, likes LikeCounter) *DashboardService {
	return &DashboardService{channel: channel, subscribers: subscribers, likes: likes}
}

// GetChannelStats aggregates the caller's channel across videos, subscriptions and likes.
func (s *DashboardService) GetChannelStats(ctx context.Context, caller identity.Caller) (*model.ChannelStats, error) {
	uid, err := caller.ObjectID()
	if err != nil {
		return nil, err
	}
	stats := &model.ChannelStats{}
	if stats.TotalVideos, err = s.channel.CountOwnerVideos(ctx, uid); err != nil {
		return nil, errors.WithMessage(err, "dao.CountOwnerVideos failed")
	}
	if stats.TotalViews, err = s.channel.SumOwnerViews(ctx, uid); err != nil {
		return nil, errors.WithMessage(err, "dao.SumOwnerViews failed")
	}
	if stats.TotalSubscribers, err = s.subscribers.CountSubscribers(ctx, uid); err != nil {
		return nil, errors.WithMessage(err, "dao.CountSubscribers failed")
	}
	ids, err := s.channel.OwnerVideoIDs(ctx, uid)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.OwnerVideoIDs failed")
	}
	if stats.TotalLikes, err = s.likes.CountVideoLikes(ctx, ids); err != nil {
		return nil, errors.WithMessage(err, "dao.CountVideoLikes failed")
	}
	return stats, nil
}

func (s *DashboardService) GetChannelVideos(ctx context.Context, caller identity.Caller, page, limit int64) (*database.PageResult[model.Video], error) {
	uid, err := caller.ObjectID()
	if err != nil {
		return nil, err
	}
	videos, err := s.channel.GetChannelVideoList(ctx, uid, database.NewPage(page, limit))
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetChannelVideoList failed")
	}
	return videos, nil
}
