package response

import (
	"net/http"
	"testing"

	"VideoHub.com/pkg/errno"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	env := New(http.StatusCreated, map[string]string{"id": "1"}, "Playlist created successfully")
	assert.Equal(t, http.StatusCreated, env.StatusCode)
	assert.True(t, env.Success)
	assert.Equal(t, "Playlist created successfully", env.Message)
}

func TestFromErr(t *testing.T) {
	env := FromErr(errors.Wrap(errno.NotFoundErr.WithMessage("Comment not found"), "db"))
	assert.Equal(t, http.StatusNotFound, env.StatusCode)
	assert.False(t, env.Success)
	assert.Nil(t, env.Data)
	assert.Equal(t, "Comment not found", env.Message)

	env = FromErr(errors.New("driver exploded"))
	assert.Equal(t, http.StatusInternalServerError, env.StatusCode)
	assert.Equal(t, errno.ServiceErr.ErrMsg, env.Message)
}
