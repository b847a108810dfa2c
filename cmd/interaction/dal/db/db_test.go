package db

import (
	"testing"

	"VideoHub.com/cmd/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func stageKeys(stages mongo.Pipeline) []string {
	keys := make([]string, 0, len(stages))
	for _, s := range stages {
		keys = append(keys, s[0].Key)
	}
	return keys
}

func TestLikeFilterExcludesOtherTargets(t *testing.T) {
	key := model.LikeKey{Target: model.LikeTweet, TargetID: primitive.NewObjectID(), LikedBy: primitive.NewObjectID()}
	filter := LikeFilter(key)

	require.Len(t, filter, 4)
	assert.Equal(t, bson.E{Key: "tweet", Value: key.TargetID}, filter[0])
	assert.Equal(t, bson.E{Key: "likedBy", Value: key.LikedBy}, filter[1])
	assert.Equal(t, "video", filter[2].Key)
	assert.Equal(t, "comment", filter[3].Key)
}

func TestVideoCommentsPipeline(t *testing.T) {
	id := primitive.NewObjectID()
	stages := VideoCommentsPipeline(id).Stages()

	assert.Equal(t, []string{"$match", "$lookup", "$unwind", "$project", "$sort"}, stageKeys(stages))
	assert.Equal(t, bson.D{{Key: "video", Value: id}}, stages[0][0].Value)
}

func TestLikedVideosPipelineJoinsVideoBeforeOwner(t *testing.T) {
	stages := LikedVideosPipeline(primitive.NewObjectID()).Stages()
	assert.Equal(t, []string{
		"$match", "$sort", "$lookup", "$unwind", "$replaceRoot",
		"$match", "$lookup", "$unwind", "$project",
	}, stageKeys(stages))
}

func TestIndexesDeclareUniqueLikes(t *testing.T) {
	var unique int
	for _, spec := range Indexes() {
		if spec.Collection != "likes" {
			continue
		}
		for _, m := range spec.Models {
			if m.Options != nil && m.Options.Unique != nil && *m.Options.Unique {
				unique++
			}
		}
	}
	assert.Equal(t, 3, unique)
}
