package database

import (
	"context"
	"math"

	"VideoHub.com/pkg/constants"
	"go.mongodb.org/mongo-driver/mongo"
)

// Page is a normalized 1-based page request.
type Page struct {
	Page  int64
	Limit int64
}

// NewPage applies defaults: page 1, limit 10, limit capped at constants.MaxLimit.
// Page is capped so the computed skip stays non-negative.
func NewPage(page, limit int64) Page {
	if page < 1 {
		page = constants.DefaultPage
	}
	if limit < 1 {
		limit = constants.DefaultLimit
	}
	if limit > constants.MaxLimit {
		limit = constants.MaxLimit
	}
	// Skip()+limit must fit in int64; mongo folds $skip and $limit into one sum
	if maxPage := (math.MaxInt64 - limit) / limit; page > maxPage {
		page = maxPage
	}
	return Page{Page: page, Limit: limit}
}

func (p Page) Skip() int64 {
	return (p.Page - 1) * p.Limit
}

// PageResult is the paginated listing returned to clients.
type PageResult[T any] struct {
	Docs          []T    `json:"docs"`
	TotalDocs     int64  `json:"totalDocs"`
	Limit         int64  `json:"limit"`
	Page          int64  `json:"page"`
	TotalPages    int64  `json:"totalPages"`
	PagingCounter int64  `json:"pagingCounter"`
	HasPrevPage   bool   `json:"hasPrevPage"`
	HasNextPage   bool   `json:"hasNextPage"`
	PrevPage      *int64 `json:"prevPage"`
	NextPage      *int64 `json:"nextPage"`
}

func NewPageResult[T any](docs []T, total int64, page Page) *PageResult[T] {
	if docs == nil {
		docs = []T{}
	}
	var totalPages int64
	if total > 0 {
		totalPages = (total + page.Limit - 1) / page.Limit
	}
	res := &PageResult[T]{
		Docs:          docs,
		TotalDocs:     total,
		Limit:         page.Limit,
		Page:          page.Page,
		TotalPages:    totalPages,
		PagingCounter: page.Skip() + 1,
		HasPrevPage:   page.Page > 1,
		HasNextPage:   page.Page < totalPages,
	}
	if res.HasPrevPage {
		prev := page.Page - 1
		res.PrevPage = &prev
	}
	if res.HasNextPage {
		next := page.Page + 1
		res.NextPage = &next
	}
	return res
}

type facetResult[T any] struct {
	Docs []T `bson:"docs"`
	Meta []struct {
		Total int64 `bson:"total"`
	} `bson:"meta"`
}

// Paginate runs p against coll and returns the requested page.
func Paginate[T any](ctx context.Context, coll *mongo.Collection, p *Pipeline, page Page) (*PageResult[T], error) {
	cursor, err := coll.Aggregate(ctx, p.Facet(page))
	if err != nil {
		return nil, ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var out []facetResult[T]
	if err = cursor.All(ctx, &out); err != nil {
		return nil, ConvertMongoError(err)
	}
	if len(out) == 0 {
		return NewPageResult[T](nil, 0, page), nil
	}
	var total int64
	if len(out[0].Meta) > 0 {
		total = out[0].Meta[0].Total
	}
	return NewPageResult(out[0].Docs, total, page), nil
}

// Aggregate runs p and decodes every result document.
func Aggregate[T any](ctx context.Context, coll *mongo.Collection, p *Pipeline) ([]T, error) {
	cursor, err := coll.Aggregate(ctx, p.Stages())
	if err != nil {
		return nil, ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	results := make([]T, 0)
	if err = cursor.All(ctx, &results); err != nil {
		return nil, ConvertMongoError(err)
	}
	return results, nil
}
