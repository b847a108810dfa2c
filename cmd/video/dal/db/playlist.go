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

type PlaylistDB struct {
	coll *database.Collection[model.Playlist]
}

func NewPlaylistDB(db *mongo.Database) *PlaylistDB {
	return &PlaylistDB{coll: database.NewCollection[model.Playlist](db.Collection(constants.PlaylistCollection))}
}

func (d *PlaylistDB) CreatePlaylist(ctx context.Context, playlist *model.Playlist) (primitive.ObjectID, error) {
	now := time.Now()
	playlist.CreatedAt, playlist.UpdatedAt = now, now
	if playlist.Videos == nil {
		playlist.Videos = []primitive.ObjectID{}
	}
	return d.coll.InsertOne(ctx, playlist)
}

func (d *PlaylistDB) GetPlaylistInfo(ctx context.Context, playlistID primitive.ObjectID) (*model.Playlist, error) {
	return d.coll.FindOneByID(ctx, playlistID)
}

func (d *PlaylistDB) UpdatePlaylistInfo(ctx context.Context, playlistID primitive.ObjectID, name, description string) (*model.Playlist, error) {
	return d.coll.UpdateByID(ctx, playlistID, bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: name},
		{Key: "description", Value: description},
	}}})
}

func (d *PlaylistDB) DeletePlaylist(ctx context.Context, playlistID primitive.ObjectID) (*model.Playlist, error) {
	return d.coll.DeleteByID(ctx, playlistID)
}

// AddVideo appends videoID to the playlist. The list keeps duplicates.
func (d *PlaylistDB) AddVideo(ctx context.Context, playlistID, videoID primitive.ObjectID) (*model.Playlist, error) {
	return d.coll.UpdateByID(ctx, playlistID, bson.D{{Key: "$push", Value: bson.D{{Key: "videos", Value: videoID}}}})
}

// RemoveVideo drops every occurrence of videoID from the playlist.
func (d *PlaylistDB) RemoveVideo(ctx context.Context, playlistID, videoID primitive.ObjectID) (*model.Playlist, error) {
	return d.coll.UpdateByID(ctx, playlistID, bson.D{{Key: "$pull", Value: bson.D{{Key: "videos", Value: videoID}}}})
}

func (d *PlaylistDB) GetUserPlaylistList(ctx context.Context, ownerID primitive.ObjectID) ([]model.Playlist, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return d.coll.Find(ctx, bson.D{{Key: "owner", Value: ownerID}}, opts)
}
