package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscription means Subscriber follows Channel.
type Subscription struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Channel    primitive.ObjectID `bson:"channel" json:"channel"`
	Subscriber primitive.ObjectID `bson:"subscriber" json:"subscriber"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type SubscriptionKey struct {
	Channel    primitive.ObjectID
	Subscriber primitive.ObjectID
}

// SubscriberView lists who follows a channel.
type SubscriberView struct {
	ID           primitive.ObjectID `bson:"_id" json:"_id"`
	Subscriber   UserSummary        `bson:"subscriber" json:"subscriber"`
	SubscribedAt time.Time          `bson:"createdAt" json:"subscribedAt"`
}

// ChannelView lists what a user follows.
type ChannelView struct {
	ID           primitive.ObjectID `bson:"_id" json:"_id"`
	Channel      UserSummary        `bson:"channel" json:"channel"`
	SubscribedAt time.Time          `bson:"createdAt" json:"subscribedAt"`
}
