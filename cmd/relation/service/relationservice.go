package service

import (
	"context"

	"VideoHub.com/cmd/model"
	"VideoHub.com/pkg/constants"
	"VideoHub.com/pkg/database"
	"VideoHub.com/pkg/errno"
	"VideoHub.com/pkg/identity"
	"VideoHub.com/pkg/mq"
	"VideoHub.com/pkg/toggle"
	"VideoHub.com/pkg/utils"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubscriptionStore is implemented by db.SubscriptionDB.
type SubscriptionStore interface {
	toggle.Store[model.SubscriptionKey]
	GetSubscriberList(ctx context.Context, channelID primitive.ObjectID, page database.Page) (*database.PageResult[model.SubscriberView], error)
	GetChannelList(ctx context.Context, subscriberID primitive.ObjectID, page database.Page) (*database.PageResult[model.ChannelView], error)
}

// UserFinder is implemented by the user dal.
type UserFinder interface {
	GetUserInfo(ctx context.Context, userID primitive.ObjectID) (*model.User, error)
}

var subscriptionActions = toggle.Actions{On: constants.ActionSubscribed, Off: constants.ActionUnsubscribed}

type RelationService struct {
	subscriptions SubscriptionStore
	users         UserFinder
	events        mq.Publisher
}

func NewRelationService(subscriptions SubscriptionStore, users UserFinder, events mq.Publisher) *RelationService {
	return &RelationService{subscriptions: subscriptions, users: users, events: events}
}

// ToggleSubscription subscribes the caller to channelID, or unsubscribes if
// already subscribed.
func (service *RelationService) ToggleSubscription(ctx context.Context, caller identity.Caller, channelID string) (toggle.Result, error) {
	cid, err := utils.ParseObjectID(channelID, "Channel")
	if err != nil {
		return toggle.Result{}, err
	}
	if caller.Is(cid) {
		return toggle.Result{}, errno.SelfActionErr.WithMessage("You cannot subscribe to yourself")
	}
	uid, err := caller.ObjectID()
	if err != nil {
		return toggle.Result{}, err
	}
	if err = service.userExists(ctx, cid, "Channel"); err != nil {
		return toggle.Result{}, err
	}

	key := model.SubscriptionKey{Channel: cid, Subscriber: uid}
	res, err := toggle.Flip[model.SubscriptionKey](ctx, service.subscriptions, key, subscriptionActions)
	if err != nil {
		return toggle.Result{}, errors.WithMessage(err, "toggle subscription")
	}
	mq.Emit(ctx, service.events, mq.NewEvent(mq.SubscriptionEvent, caller.UserID, cid.Hex(), res.Action))
	return res, nil
}

func (service *RelationService) GetChannelSubscribers(ctx context.Context, channelID string, page, limit int64) (*database.PageResult[model.SubscriberView], error) {
	cid, err := utils.ParseObjectID(channelID, "Channel")
	if err != nil {
		return nil, err
	}
	if err = service.userExists(ctx, cid, "Channel"); err != nil {
		return nil, err
	}
	subscribers, err := service.subscriptions.GetSubscriberList(ctx, cid, database.NewPage(page, limit))
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetSubscriberList failed")
	}
	return subscribers, nil
}

func (service *RelationService) GetSubscribedChannels(ctx context.Context, subscriberID string, page, limit int64) (*database.PageResult[model.ChannelView], error) {
	sid, err := utils.ParseObjectID(subscriberID, "Subscriber")
	if err != nil {
		return nil, err
	}
	if err = service.userExists(ctx, sid, "Subscriber"); err != nil {
		return nil, err
	}
	channels, err := service.subscriptions.GetChannelList(ctx, sid, database.NewPage(page, limit))
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetChannelList failed")
	}
	return channels, nil
}

func (service *RelationService) userExists(ctx context.Context, id primitive.ObjectID, kind string) error {
	if _, err := service.users.GetUserInfo(ctx, id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return errno.NotFoundErr.WithMessage(kind + " not found")
		}
		return errors.WithMessage(err, "dao.GetUserInfo failed")
	}
	return nil
}
