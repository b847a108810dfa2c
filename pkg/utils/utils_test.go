package utils

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"VideoHub.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseObjectID(t *testing.T) {
	_, err := ParseObjectID("  ", "Video")
	require.Error(t, err)
	assert.Equal(t, "Video id is required", errno.ConvertErr(err).ErrMsg)

	_, err = ParseObjectID("xyz", "Playlist")
	assert.Equal(t, "Invalid playlist id", errno.ConvertErr(err).ErrMsg)
	assert.Equal(t, http.StatusBadRequest, errno.ConvertErr(err).StatusCode)

	id := primitive.NewObjectID()
	got, err := ParseObjectID(id.Hex(), "Video")
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestParseProbeDuration(t *testing.T) {
	d, err := ParseProbeDuration(`{"streams":[],"format":{"filename":"a.mp4","duration":"12.480000"}}`)
	require.NoError(t, err)
	assert.InDelta(t, 12.48, d, 0.0001)

	_, err = ParseProbeDuration(`{"format":{}}`)
	assert.Error(t, err)

	_, err = ParseProbeDuration(`{"format":{"duration":"N/A"}}`)
	assert.Error(t, err)
}

func TestCryptRoundTrip(t *testing.T) {
	hash, err := Crypt("s3cret!")
	require.NoError(t, err)
	assert.True(t, VerifyPassword("s3cret!", hash))
	assert.False(t, VerifyPassword("wrong", hash))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("alice@example.com"))
	assert.False(t, IsValidEmail("alice@"))
	assert.False(t, Blank(" x "))
	assert.True(t, Blank(" \t"))
}

func multipartContext(body string) *app.RequestContext {
	c := app.NewContext(0)
	c.Request.Header.SetMethod(http.MethodPost)
	c.Request.Header.SetContentTypeBytes([]byte("multipart/form-data; boundary=xyz"))
	c.Request.SetBodyString(body)
	return c
}

func TestSaveFormFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("not multipart", func(t *testing.T) {
		c := app.NewContext(0)
		c.Request.Header.SetContentTypeBytes([]byte("application/json"))
		c.Request.SetBodyString(`{"title":"a"}`)
		path, err := SaveFormFile(c, "thumbnail", dir)
		require.NoError(t, err)
		assert.Empty(t, path)
	})

	t.Run("field missing", func(t *testing.T) {
		c := multipartContext("--xyz\r\nContent-Disposition: form-data; name=\"title\"\r\n\r\nIntro\r\n--xyz--\r\n")
		path, err := SaveFormFile(c, "thumbnail", dir)
		require.NoError(t, err)
		assert.Empty(t, path)
	})

	t.Run("truncated body", func(t *testing.T) {
		c := multipartContext("--xyz\r\nContent-Disposition: form-data; name=\"videoFile\"; filename=\"a.mp4\"\r\n\r\npartial")
		path, err := SaveFormFile(c, "videoFile", dir)
		require.Error(t, err)
		assert.Empty(t, path)
		assert.Equal(t, http.StatusBadRequest, errno.ConvertErr(err).StatusCode)
		assert.Equal(t, "Malformed multipart form", errno.ConvertErr(err).ErrMsg)
	})

	t.Run("saved", func(t *testing.T) {
		c := multipartContext("--xyz\r\nContent-Disposition: form-data; name=\"videoFile\"; filename=\"a.mp4\"\r\n" +
			"Content-Type: video/mp4\r\n\r\nfake mp4\r\n--xyz--\r\n")
		path, err := SaveFormFile(c, "videoFile", dir)
		require.NoError(t, err)
		assert.Equal(t, ".mp4", filepath.Ext(path))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "fake mp4", string(data))
		RemoveFiles(path)
	})
}
