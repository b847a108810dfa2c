package service

import (
	"context"
	"net/http"
	"sort"

	"VideoHub.com/cmd/model"
	"VideoHub.com/cmd/video/dal/db"
	"VideoHub.com/pkg/database"
	"VideoHub.com/pkg/errno"
	"VideoHub.com/pkg/identity"
	"VideoHub.com/pkg/oss"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func statusOf(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return errno.ConvertErr(err).StatusCode
}

func callerOf(id primitive.ObjectID) identity.Caller {
	return identity.Caller{UserID: id.Hex()}
}

type memVideos struct {
	docs      map[primitive.ObjectID]*model.Video
	failWrite error
	lastQuery db.VideoQuery
}

func newMemVideos(videos ...*model.Video) *memVideos {
	m := &memVideos{docs: map[primitive.ObjectID]*model.Video{}}
	for _, v := range videos {
		if v.ID.IsZero() {
			v.ID = primitive.NewObjectID()
		}
		m.docs[v.ID] = v
	}
	return m
}

func (m *memVideos) CreateVideo(_ context.Context, v *model.Video) (primitive.ObjectID, error) {
	if m.failWrite != nil {
		return primitive.NilObjectID, m.failWrite
	}
	v.ID = primitive.NewObjectID()
	m.docs[v.ID] = v
	return v.ID, nil
}

func (m *memVideos) GetVideoInfo(_ context.Context, id primitive.ObjectID) (*model.Video, error) {
	if v, ok := m.docs[id]; ok {
		cp := *v
		return &cp, nil
	}
	return nil, database.ErrNotFound
}

func (m *memVideos) IncrementViews(ctx context.Context, id primitive.ObjectID) (*model.Video, error) {
	v, ok := m.docs[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	v.Views++
	return m.GetVideoInfo(ctx, id)
}

func (m *memVideos) UpdateVideoInfo(ctx context.Context, id primitive.ObjectID, patch model.VideoPatch) (*model.Video, error) {
	if m.failWrite != nil {
		return nil, m.failWrite
	}
	v, ok := m.docs[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	v.Title, v.Description, v.Duration = patch.Title, patch.Description, patch.Duration
	if patch.Thumbnail != "" {
		v.Thumbnail, v.ThumbnailKey = patch.Thumbnail, patch.ThumbnailKey
	}
	return m.GetVideoInfo(ctx, id)
}

func (m *memVideos) TogglePublish(ctx context.Context, id primitive.ObjectID) (*model.Video, error) {
	v, ok := m.docs[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	v.IsPublished = !v.IsPublished
	return m.GetVideoInfo(ctx, id)
}

func (m *memVideos) DeleteVideo(_ context.Context, id primitive.ObjectID) (*model.Video, error) {
	v, ok := m.docs[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	delete(m.docs, id)
	return v, nil
}

func (m *memVideos) GetAllVideos(_ context.Context, query db.VideoQuery, page database.Page) (*database.PageResult[model.VideoView], error) {
	m.lastQuery = query
	var docs []model.VideoView
	for _, v := range m.docs {
		if v.IsPublished {
			docs = append(docs, model.VideoView{ID: v.ID, Title: v.Title, Owner: model.UserSummary{ID: v.Owner}})
		}
	}
	return database.NewPageResult(docs, int64(len(docs)), page), nil
}

func (m *memVideos) owned(owner primitive.ObjectID) []model.Video {
	var out []model.Video
	for _, v := range m.docs {
		if v.Owner == owner {
			out = append(out, *v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (m *memVideos) GetChannelVideoList(_ context.Context, owner primitive.ObjectID, page database.Page) (*database.PageResult[model.Video], error) {
	all := m.owned(owner)
	return database.NewPageResult(all, int64(len(all)), page), nil
}

func (m *memVideos) CountOwnerVideos(_ context.Context, owner primitive.ObjectID) (int64, error) {
	return int64(len(m.owned(owner))), nil
}

func (m *memVideos) SumOwnerViews(_ context.Context, owner primitive.ObjectID) (int64, error) {
	var total int64
	for _, v := range m.owned(owner) {
		total += v.Views
	}
	return total, nil
}

func (m *memVideos) OwnerVideoIDs(_ context.Context, owner primitive.ObjectID) ([]primitive.ObjectID, error) {
	var ids []primitive.ObjectID
	for _, v := range m.owned(owner) {
		ids = append(ids, v.ID)
	}
	return ids, nil
}

type memMedia struct {
	objects    map[string]bool
	failPut    map[string]bool
	failRemove bool
	n          int
}

func newMemMedia() *memMedia {
	return &memMedia{objects: map[string]bool{}, failPut: map[string]bool{}}
}

func (m *memMedia) FPut(_ context.Context, prefix, path string) (oss.Object, error) {
	if m.failPut[prefix] {
		return oss.Object{}, errors.New("bucket unavailable")
	}
	m.n++
	key := oss.ObjectKey(prefix, path)
	m.objects[key] = true
	return oss.Object{Key: key, URL: "http://media/" + key}, nil
}

func (m *memMedia) Remove(_ context.Context, key string) error {
	if m.failRemove {
		return errors.New("remove denied")
	}
	delete(m.objects, key)
	return nil
}

type fakeProber struct {
	duration float64
	probed   bool
	thumbed  bool
}

func (p *fakeProber) ProbeDuration(string) (float64, error) {
	p.probed = true
	if p.duration == 0 {
		return 0, errors.New("no duration")
	}
	return p.duration, nil
}

func (p *fakeProber) ExtractThumbnail(_, dir string) (string, error) {
	p.thumbed = true
	return dir + "/thumbnail.jpg", nil
}

type memPlaylists struct {
	docs map[primitive.ObjectID]*model.Playlist
}

func newMemPlaylists() *memPlaylists {
	return &memPlaylists{docs: map[primitive.ObjectID]*model.Playlist{}}
}

func (m *memPlaylists) CreatePlaylist(_ context.Context, p *model.Playlist) (primitive.ObjectID, error) {
	p.ID = primitive.NewObjectID()
	if p.Videos == nil {
		p.Videos = []primitive.ObjectID{}
	}
	m.docs[p.ID] = p
	return p.ID, nil
}

func (m *memPlaylists) GetPlaylistInfo(_ context.Context, id primitive.ObjectID) (*model.Playlist, error) {
	if p, ok := m.docs[id]; ok {
		cp := *p
		cp.Videos = append([]primitive.ObjectID{}, p.Videos...)
		return &cp, nil
	}
	return nil, database.ErrNotFound
}

func (m *memPlaylists) UpdatePlaylistInfo(ctx context.Context, id primitive.ObjectID, name, description string) (*model.Playlist, error) {
	p, ok := m.docs[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	p.Name, p.Description = name, description
	return m.GetPlaylistInfo(ctx, id)
}

func (m *memPlaylists) DeletePlaylist(_ context.Context, id primitive.ObjectID) (*model.Playlist, error) {
	p, ok := m.docs[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	delete(m.docs, id)
	return p, nil
}

func (m *memPlaylists) AddVideo(ctx context.Context, id, videoID primitive.ObjectID) (*model.Playlist, error) {
	p, ok := m.docs[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	p.Videos = append(p.Videos, videoID)
	return m.GetPlaylistInfo(ctx, id)
}

func (m *memPlaylists) RemoveVideo(ctx context.Context, id, videoID primitive.ObjectID) (*model.Playlist, error) {
	p, ok := m.docs[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	kept := p.Videos[:0]
	for _, v := range p.Videos {
		if v != videoID {
			kept = append(kept, v)
		}
	}
	p.Videos = kept
	return m.GetPlaylistInfo(ctx, id)
}

func (m *memPlaylists) GetUserPlaylistList(_ context.Context, owner primitive.ObjectID) ([]model.Playlist, error) {
	var out []model.Playlist
	for _, p := range m.docs {
		if p.Owner == owner {
			out = append(out, *p)
		}
	}
	return out, nil
}

type countSubscribers map[primitive.ObjectID]int64

func (c countSubscribers) CountSubscribers(_ context.Context, channel primitive.ObjectID) (int64, error) {
	return c[channel], nil
}

type countLikes map[primitive.ObjectID]int64

func (c countLikes) CountVideoLikes(_ context.Context, ids []primitive.ObjectID) (int64, error) {
	var n int64
	for _, id := range ids {
		n += c[id]
	}
	return n, nil
}
