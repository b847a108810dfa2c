package db

import (
	"context"
	"regexp"
	"time"

	"VideoHub.com/cmd/model"
	"VideoHub.com/pkg/constants"
	"VideoHub.com/pkg/database"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SortFields lists the fields GetAllVideos may sort by.
var SortFields = map[string]bool{
	"createdAt": true,
	"views":     true,
	"duration":  true,
	"title":     true,
}

// VideoQuery filters the public video listing. Owner is optional.
type VideoQuery struct {
	Search string
	Owner  *primitive.ObjectID
	SortBy string
	// Order is 1 for ascending, -1 for descending.
	Order int
}

type VideoDB struct {
	coll *database.Collection[model.Video]
}

func NewVideoDB(db *mongo.Database) *VideoDB {
	return &VideoDB{coll: database.NewCollection[model.Video](db.Collection(constants.VideoCollection))}
}

func Indexes() []database.IndexSpec {
	return []database.IndexSpec{
		{
			Collection: constants.VideoCollection,
			Models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("owner_createdAt")},
				{Keys: bson.D{{Key: "isPublished", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("published_createdAt")},
			},
		},
		{
			Collection: constants.PlaylistCollection,
			Models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("owner_createdAt")},
			},
		},
	}
}

func (d *VideoDB) CreateVideo(ctx context.Context, video *model.Video) (primitive.ObjectID, error) {
	now := time.Now()
	video.CreatedAt, video.UpdatedAt = now, now
	return d.coll.InsertOne(ctx, video)
}

func (d *VideoDB) GetVideoInfo(ctx context.Context, videoID primitive.ObjectID) (*model.Video, error) {
	return d.coll.FindOneByID(ctx, videoID)
}

// IncrementViews adds one view atomically and returns the counted document.
func (d *VideoDB) IncrementViews(ctx context.Context, videoID primitive.ObjectID) (*model.Video, error) {
	return d.coll.UpdateByID(ctx, videoID, bson.D{{Key: "$inc", Value: bson.D{{Key: "views", Value: 1}}}})
}

// UpdateVideoInfo writes patch. The thumbnail is only replaced when the patch carries one.
func (d *VideoDB) UpdateVideoInfo(ctx context.Context, videoID primitive.ObjectID, patch model.VideoPatch) (*model.Video, error) {
	set := bson.D{
		{Key: "title", Value: patch.Title},
		{Key: "description", Value: patch.Description},
		{Key: "duration", Value: patch.Duration},
	}
	if patch.Thumbnail != "" {
		set = append(set,
			bson.E{Key: "thumbnail", Value: patch.Thumbnail},
			bson.E{Key: "thumbnailKey", Value: patch.ThumbnailKey},
		)
	}
	return d.coll.UpdateByID(ctx, videoID, bson.D{{Key: "$set", Value: set}})
}

// TogglePublish flips isPublished in a single update.
func (d *VideoDB) TogglePublish(ctx context.Context, videoID primitive.ObjectID) (*model.Video, error) {
	update := mongo.Pipeline{bson.D{{Key: "$set", Value: bson.D{
		{Key: "isPublished", Value: bson.D{{Key: "$not", Value: bson.A{"$isPublished"}}}},
		{Key: "updatedAt", Value: "$$NOW"},
	}}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var out model.Video
	err := d.coll.Raw().FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: videoID}}, update, opts).Decode(&out)
	if err != nil {
		return nil, database.ConvertMongoError(err)
	}
	return &out, nil
}

func (d *VideoDB) DeleteVideo(ctx context.Context, videoID primitive.ObjectID) (*model.Video, error) {
	return d.coll.DeleteByID(ctx, videoID)
}

// GetAllVideos pages published videos with their owners resolved.
func (d *VideoDB) GetAllVideos(ctx context.Context, query VideoQuery, page database.Page) (*database.PageResult[model.VideoView], error) {
	return database.Paginate[model.VideoView](ctx, d.coll.Raw(), PublishedVideosPipeline(query), page)
}

func PublishedVideosPipeline(query VideoQuery) *database.Pipeline {
	match := bson.D{{Key: "isPublished", Value: true}}
	if query.Owner != nil {
		match = append(match, bson.E{Key: "owner", Value: *query.Owner})
	}
	if query.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query.Search), Options: "i"}
		match = append(match, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "title", Value: pattern}},
			bson.D{{Key: "description", Value: pattern}},
		}})
	}
	sortBy := query.SortBy
	if !SortFields[sortBy] {
		sortBy = "createdAt"
	}
	order := query.Order
	if order == 0 {
		order = -1
	}

	fields := append([]string{
		"videoFile", "thumbnail", "title", "description", "duration",
		"views", "isPublished", "createdAt", "updatedAt",
	}, database.UserSummary("owner")...)
	return database.NewPipeline().
		Match(match).
		JoinOwner("owner").
		Project(fields...).
		Sort(sortBy, order)
}

// GetChannelVideoList pages every video of owner, published or not, newest first.
func (d *VideoDB) GetChannelVideoList(ctx context.Context, ownerID primitive.ObjectID, page database.Page) (*database.PageResult[model.Video], error) {
	p := database.NewPipeline().
		Match(bson.D{{Key: "owner", Value: ownerID}}).
		SortDesc("createdAt")
	return database.Paginate[model.Video](ctx, d.coll.Raw(), p, page)
}

func (d *VideoDB) CountOwnerVideos(ctx context.Context, ownerID primitive.ObjectID) (int64, error) {
	return d.coll.CountDocuments(ctx, bson.D{{Key: "owner", Value: ownerID}})
}

type viewTotal struct {
	TotalViews int64 `bson:"totalViews"`
}

// SumOwnerViews returns the views of every video of owner added together.
func (d *VideoDB) SumOwnerViews(ctx context.Context, ownerID primitive.ObjectID) (int64, error) {
	p := database.NewPipeline().
		Match(bson.D{{Key: "owner", Value: ownerID}}).
		Group(nil, bson.D{{Key: "totalViews", Value: bson.D{{Key: "$sum", Value: "$views"}}}})
	rows, err := database.Aggregate[viewTotal](ctx, d.coll.Raw(), p)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].TotalViews, nil
}

func (d *VideoDB) OwnerVideoIDs(ctx context.Context, ownerID primitive.ObjectID) ([]primitive.ObjectID, error) {
	raw, err := d.coll.Raw().Distinct(ctx, "_id", bson.D{{Key: "owner", Value: ownerID}})
	if err != nil {
		return nil, database.ConvertMongoError(err)
	}
	ids := make([]primitive.ObjectID, 0, len(raw))
	for _, v := range raw {
		id, ok := v.(primitive.ObjectID)
		if !ok {
			return nil, errors.Errorf("unexpected video id type %T", v)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
