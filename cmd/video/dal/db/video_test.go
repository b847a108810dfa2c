package db

import (
	"testing"

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

func TestPublishedVideosPipelineDefaults(t *testing.T) {
	stages := PublishedVideosPipeline(VideoQuery{}).Stages()

	assert.Equal(t, []string{"$match", "$lookup", "$unwind", "$project", "$sort"}, stageKeys(stages))
	assert.Equal(t, bson.D{{Key: "isPublished", Value: true}}, stages[0][0].Value)
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}, stages[4][0].Value)
}

func TestPublishedVideosPipelineFilters(t *testing.T) {
	owner := primitive.NewObjectID()
	stages := PublishedVideosPipeline(VideoQuery{Search: "go.dev", Owner: &owner, SortBy: "views", Order: 1}).Stages()

	match := stages[0][0].Value.(bson.D)
	require.Len(t, match, 3)
	assert.Equal(t, bson.E{Key: "owner", Value: owner}, match[1])
	or := match[2].Value.(bson.A)
	title := or[0].(bson.D)[0].Value.(primitive.Regex)
	assert.Equal(t, `go\.dev`, title.Pattern)
	assert.Equal(t, "i", title.Options)
	assert.Equal(t, bson.D{{Key: "views", Value: 1}, {Key: "_id", Value: 1}}, stages[4][0].Value)
}

func TestPublishedVideosPipelineIgnoresUnknownSort(t *testing.T) {
	stages := PublishedVideosPipeline(VideoQuery{SortBy: "password", Order: 1}).Stages()
	assert.Equal(t, bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}, stages[4][0].Value)
}

func TestIndexesCoverVideosAndPlaylists(t *testing.T) {
	var colls []string
	for _, spec := range Indexes() {
		colls = append(colls, spec.Collection)
	}
	assert.ElementsMatch(t, []string{"videos", "playlists"}, colls)
}
