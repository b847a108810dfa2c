package service

import (
	"context"
	"sort"

	"VideoHub.com/cmd/model"
	"VideoHub.com/pkg/database"
	"VideoHub.com/pkg/identity"
	"VideoHub.com/pkg/mq"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func callerOf(id primitive.ObjectID) identity.Caller {
	return identity.Caller{UserID: id.Hex(), Username: "user-" + id.Hex()[20:]}
}

type memVideos map[primitive.ObjectID]*model.Video

func (m memVideos) GetVideoInfo(_ context.Context, id primitive.ObjectID) (*model.Video, error) {
	if v, ok := m[id]; ok {
		return v, nil
	}
	return nil, database.ErrNotFound
}

type memComments struct {
	docs map[primitive.ObjectID]*model.Comment
	// dropAfterInsert simulates a comment that cannot be read back
	dropAfterInsert bool
}

func newMemComments() *memComments {
	return &memComments{docs: map[primitive.ObjectID]*model.Comment{}}
}

func (m *memComments) CreateComment(_ context.Context, c *model.Comment) (primitive.ObjectID, error) {
	c.ID = primitive.NewObjectID()
	if !m.dropAfterInsert {
		m.docs[c.ID] = c
	}
	return c.ID, nil
}

func (m *memComments) GetCommentInfo(_ context.Context, id primitive.ObjectID) (*model.Comment, error) {
	if c, ok := m.docs[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, database.ErrNotFound
}

func (m *memComments) UpdateCommentContent(_ context.Context, id primitive.ObjectID, content string) (*model.Comment, error) {
	c, ok := m.docs[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	c.Content = content
	cp := *c
	return &cp, nil
}

func (m *memComments) DeleteComment(_ context.Context, id primitive.ObjectID) (*model.Comment, error) {
	c, ok := m.docs[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	delete(m.docs, id)
	return c, nil
}

func (m *memComments) GetVideoCommentList(_ context.Context, videoID primitive.ObjectID, page database.Page) (*database.PageResult[model.CommentView], error) {
	var all []model.CommentView
	for _, c := range m.docs {
		if c.Video == videoID {
			all = append(all, model.CommentView{ID: c.ID, Content: c.Content, Owner: model.UserSummary{ID: c.Owner}})
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID.Hex() > all[j].ID.Hex() })
	total := int64(len(all))
	start := page.Skip()
	if start > total {
		start = total
	}
	end := start + page.Limit
	if end > total {
		end = total
	}
	return database.NewPageResult(all[start:end], total, page), nil
}

type memTweets struct {
	docs map[primitive.ObjectID]*model.Tweet
}

func newMemTweets() *memTweets {
	return &memTweets{docs: map[primitive.ObjectID]*model.Tweet{}}
}

func (m *memTweets) CreateTweet(_ context.Context, t *model.Tweet) (primitive.ObjectID, error) {
	t.ID = primitive.NewObjectID()
	m.docs[t.ID] = t
	return t.ID, nil
}

func (m *memTweets) GetTweetInfo(_ context.Context, id primitive.ObjectID) (*model.Tweet, error) {
	if t, ok := m.docs[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, database.ErrNotFound
}

func (m *memTweets) UpdateTweetContent(_ context.Context, id primitive.ObjectID, content string) (*model.Tweet, error) {
	t, ok := m.docs[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	t.Content = content
	cp := *t
	return &cp, nil
}

func (m *memTweets) DeleteTweet(_ context.Context, id primitive.ObjectID) (*model.Tweet, error) {
	t, ok := m.docs[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	delete(m.docs, id)
	return t, nil
}

func (m *memTweets) GetUserTweetList(_ context.Context, owner primitive.ObjectID) ([]model.Tweet, error) {
	out := make([]model.Tweet, 0)
	for _, t := range m.docs {
		if t.Owner == owner {
			out = append(out, *t)
		}
	}
	return out, nil
}

// memLikes enforces the same uniqueness as the partial unique indexes.
type memLikes struct {
	records map[model.LikeKey]bool
}

func newMemLikes() *memLikes {
	return &memLikes{records: map[model.LikeKey]bool{}}
}

func (m *memLikes) DeleteOne(_ context.Context, key model.LikeKey) (bool, error) {
	if m.records[key] {
		delete(m.records, key)
		return true, nil
	}
	return false, nil
}

func (m *memLikes) InsertOne(_ context.Context, key model.LikeKey) error {
	if m.records[key] {
		return errors.Wrap(database.ErrDuplicate, "E11000")
	}
	m.records[key] = true
	return nil
}

func (m *memLikes) GetLikedVideoList(_ context.Context, userID primitive.ObjectID, page database.Page) (*database.PageResult[model.VideoView], error) {
	var docs []model.VideoView
	for k := range m.records {
		if k.LikedBy == userID && k.Target == model.LikeVideo {
			docs = append(docs, model.VideoView{ID: k.TargetID})
		}
	}
	return database.NewPageResult(docs, int64(len(docs)), page), nil
}

type recordPublisher struct {
	events []*mq.Event
}

func (r *recordPublisher) Publish(_ context.Context, e *mq.Event) error {
	r.events = append(r.events, e)
	return nil
}

type fakeLimiter struct {
	deny     error
	recorded []string
}

func (f *fakeLimiter) Allow(context.Context, string, string) error { return f.deny }

func (f *fakeLimiter) Record(_ context.Context, _ string, content string) {
	f.recorded = append(f.recorded, content)
}
