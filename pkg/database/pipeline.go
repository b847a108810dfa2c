package database

import (
	"VideoHub.com/pkg/constants"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Pipeline composes aggregation stages. Handlers never build pipeline
// literals themselves; the dal layer chains the stages it needs.
//
//	NewPipeline().
//		Match(bson.D{{Key: "video", Value: id}}).
//		JoinOwner("owner").
//		Project(append([]string{"content"}, UserSummary("owner")...)...).
//		SortDesc("createdAt")
type Pipeline struct {
	stages mongo.Pipeline
}

func NewPipeline() *Pipeline {
	return &Pipeline{stages: mongo.Pipeline{}}
}

func (p *Pipeline) Match(filter bson.D) *Pipeline {
	p.stages = append(p.stages, bson.D{{Key: "$match", Value: filter}})
	return p
}

func (p *Pipeline) Lookup(from, localField, foreignField, as string) *Pipeline {
	p.stages = append(p.stages, bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: from},
		{Key: "localField", Value: localField},
		{Key: "foreignField", Value: foreignField},
		{Key: "as", Value: as},
	}}})
	return p
}

// Unwind flattens a joined array. Documents whose join came back empty are dropped.
func (p *Pipeline) Unwind(field string) *Pipeline {
	p.stages = append(p.stages, bson.D{{Key: "$unwind", Value: "$" + field}})
	return p
}

// JoinOne replaces the reference stored in localField with the referenced document.
func (p *Pipeline) JoinOne(from, localField string) *Pipeline {
	return p.Lookup(from, localField, "_id", localField).Unwind(localField)
}

// JoinOwner resolves a user reference in place.
func (p *Pipeline) JoinOwner(field string) *Pipeline {
	return p.JoinOne(constants.UserCollection, field)
}

func (p *Pipeline) Project(fields ...string) *Pipeline {
	projection := make(bson.D, 0, len(fields))
	for _, f := range fields {
		projection = append(projection, bson.E{Key: f, Value: 1})
	}
	p.stages = append(p.stages, bson.D{{Key: "$project", Value: projection}})
	return p
}

// Sort orders by field, then by _id in the same direction so equal values
// keep a stable order across pages.
func (p *Pipeline) Sort(field string, order int) *Pipeline {
	if order >= 0 {
		order = 1
	} else {
		order = -1
	}
	keys := bson.D{{Key: field, Value: order}}
	if field != "_id" {
		keys = append(keys, bson.E{Key: "_id", Value: order})
	}
	p.stages = append(p.stages, bson.D{{Key: "$sort", Value: keys}})
	return p
}

func (p *Pipeline) SortDesc(field string) *Pipeline {
	return p.Sort(field, -1)
}

// ReplaceRoot promotes an embedded document to the top level.
func (p *Pipeline) ReplaceRoot(field string) *Pipeline {
	p.stages = append(p.stages, bson.D{{Key: "$replaceRoot", Value: bson.D{{Key: "newRoot", Value: "$" + field}}}})
	return p
}

func (p *Pipeline) Group(id interface{}, accumulators bson.D) *Pipeline {
	group := append(bson.D{{Key: "_id", Value: id}}, accumulators...)
	p.stages = append(p.stages, bson.D{{Key: "$group", Value: group}})
	return p
}

// Stages returns a copy of the stages built so far.
func (p *Pipeline) Stages() mongo.Pipeline {
	out := make(mongo.Pipeline, len(p.stages))
	copy(out, p.stages)
	return out
}

// Facet returns the stages followed by a $facet that slices the requested
// page and counts the full result set in one round trip.
func (p *Pipeline) Facet(page Page) mongo.Pipeline {
	return append(p.Stages(), bson.D{{Key: "$facet", Value: bson.D{
		{Key: "docs", Value: bson.A{
			bson.D{{Key: "$skip", Value: page.Skip()}},
			bson.D{{Key: "$limit", Value: page.Limit}},
		}},
		{Key: "meta", Value: bson.A{
			bson.D{{Key: "$count", Value: "total"}},
		}},
	}}})
}

// UserSummary lists the projected fields of a joined user: id, username, avatar.
func UserSummary(prefix string) []string {
	return []string{prefix + "._id", prefix + ".username", prefix + ".avatar"}
}
