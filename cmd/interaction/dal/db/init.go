package db

import (
	"VideoHub.com/pkg/constants"
	"VideoHub.com/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Indexes lists what the interaction collections need. The partial unique
// indexes on likes allow at most one like per (target, likedBy).
func Indexes() []database.IndexSpec {
	return []database.IndexSpec{
		{
			Collection: constants.CommentCollection,
			Models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "video", Value: 1}, {Key: "createdAt", Value: -1}}},
			},
		},
		{
			Collection: constants.TweetCollection,
			Models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}}},
			},
		},
		{
			Collection: constants.LikeCollection,
			Models: []mongo.IndexModel{
				uniqueLikeIndex("video"),
				uniqueLikeIndex("comment"),
				uniqueLikeIndex("tweet"),
				{Keys: bson.D{{Key: "likedBy", Value: 1}, {Key: "createdAt", Value: -1}}},
			},
		},
	}
}

func uniqueLikeIndex(target string) mongo.IndexModel {
	return mongo.IndexModel{
		Keys: bson.D{{Key: target, Value: 1}, {Key: "likedBy", Value: 1}},
		Options: options.Index().
			SetName("uniq_" + target + "_likedBy").
			SetUnique(true).
			SetPartialFilterExpression(bson.D{{Key: target, Value: bson.D{{Key: "$exists", Value: true}}}}),
	}
}
