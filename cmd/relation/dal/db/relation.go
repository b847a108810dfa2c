package db

import (
	"context"
	"time"

	"VideoHub.com/cmd/model"
	"VideoHub.com/pkg/constants"
	"VideoHub.com/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SubscriptionDB stores subscriptions. It implements toggle.Store[model.SubscriptionKey].
type SubscriptionDB struct {
	coll *database.Collection[model.Subscription]
}

func NewSubscriptionDB(db *mongo.Database) *SubscriptionDB {
	return &SubscriptionDB{coll: database.NewCollection[model.Subscription](db.Collection(constants.SubscriptionCollection))}
}

func Indexes() []database.IndexSpec {
	return []database.IndexSpec{{
		Collection: constants.SubscriptionCollection,
		Models: []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "channel", Value: 1}, {Key: "subscriber", Value: 1}},
				Options: options.Index().SetName("uniq_channel_subscriber").SetUnique(true),
			},
			{Keys: bson.D{{Key: "subscriber", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
	}}
}

func subscriptionFilter(key model.SubscriptionKey) bson.D {
	return bson.D{{Key: "channel", Value: key.Channel}, {Key: "subscriber", Value: key.Subscriber}}
}

func (d *SubscriptionDB) DeleteOne(ctx context.Context, key model.SubscriptionKey) (bool, error) {
	return d.coll.DeleteOne(ctx, subscriptionFilter(key))
}

// InsertOne returns database.ErrDuplicate when the subscription already exists.
func (d *SubscriptionDB) InsertOne(ctx context.Context, key model.SubscriptionKey) error {
	now := time.Now()
	_, err := d.coll.InsertOne(ctx, &model.Subscription{
		Channel:    key.Channel,
		Subscriber: key.Subscriber,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	return err
}

func (d *SubscriptionDB) CountSubscribers(ctx context.Context, channelID primitive.ObjectID) (int64, error) {
	return d.coll.CountDocuments(ctx, bson.D{{Key: "channel", Value: channelID}})
}

// GetSubscriberList pages the users following channelID, newest first.
func (d *SubscriptionDB) GetSubscriberList(ctx context.Context, channelID primitive.ObjectID, page database.Page) (*database.PageResult[model.SubscriberView], error) {
	return database.Paginate[model.SubscriberView](ctx, d.coll.Raw(), relationPipeline("channel", channelID, "subscriber"), page)
}

// GetChannelList pages the channels subscriberID follows, newest first.
func (d *SubscriptionDB) GetChannelList(ctx context.Context, subscriberID primitive.ObjectID, page database.Page) (*database.PageResult[model.ChannelView], error) {
	return database.Paginate[model.ChannelView](ctx, d.coll.Raw(), relationPipeline("subscriber", subscriberID, "channel"), page)
}

// relationPipeline filters on one side of the relation and resolves the other.
func relationPipeline(matchField string, id primitive.ObjectID, joinField string) *database.Pipeline {
	fields := append([]string{"createdAt"}, database.UserSummary(joinField)...)
	return database.NewPipeline().
		Match(bson.D{{Key: matchField, Value: id}}).
		JoinOwner(joinField).
		Project(fields...).
		SortDesc("createdAt")
}
