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

type UserDB struct {
	coll *database.Collection[model.User]
}

func NewUserDB(db *mongo.Database) *UserDB {
	return &UserDB{coll: database.NewCollection[model.User](db.Collection(constants.UserCollection))}
}

func Indexes() []database.IndexSpec {
	return []database.IndexSpec{{
		Collection: constants.UserCollection,
		Models: []mongo.IndexModel{
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetName("uniq_username").SetUnique(true)},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetName("uniq_email").SetUnique(true)},
		},
	}}
}

// CreateUser returns database.ErrDuplicate when username or email is taken.
func (d *UserDB) CreateUser(ctx context.Context, user *model.User) (primitive.ObjectID, error) {
	now := time.Now()
	user.CreatedAt, user.UpdatedAt = now, now
	return d.coll.InsertOne(ctx, user)
}

func (d *UserDB) GetUserInfo(ctx context.Context, userID primitive.ObjectID) (*model.User, error) {
	return d.coll.FindOneByID(ctx, userID)
}

// FindUser matches either the username or the email.
func (d *UserDB) FindUser(ctx context.Context, username, email string) (*model.User, error) {
	return d.coll.FindOne(ctx, bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "username", Value: username}},
		bson.D{{Key: "email", Value: email}},
	}}})
}
