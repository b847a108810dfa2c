package oss

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	key := ObjectKey(VideoPrefix, "/tmp/upload/Clip.MP4")
	assert.True(t, strings.HasPrefix(key, "videos/"))
	assert.True(t, strings.HasSuffix(key, ".mp4"))
	assert.NotEqual(t, key, ObjectKey(VideoPrefix, "/tmp/upload/Clip.MP4"))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "image/png", ContentType("cover.png"))
	assert.Equal(t, "application/octet-stream", ContentType("noext"))
}

func TestURL(t *testing.T) {
	s := newStorage(nil, Options{Endpoint: "localhost:9000", Bucket: "media"})
	assert.Equal(t, "http://localhost:9000/media/videos/a.mp4", s.URL("videos/a.mp4"))

	s = newStorage(nil, Options{Endpoint: "minio:9000", Bucket: "media", PublicURL: "https://cdn.example.com/"})
	assert.Equal(t, "https://cdn.example.com/media/thumbnails/b.jpg", s.URL("thumbnails/b.jpg"))
}
