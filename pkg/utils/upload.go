package utils

import (
	"os"
	"path/filepath"

	"VideoHub.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	herrors "github.com/cloudwego/hertz/pkg/common/errors"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// SaveFormFile stores the multipart file under field into dir and returns its
// path. An absent file, or a body that is not multipart at all, yields an
// empty path and no error. A multipart body that cannot be parsed is a ParamErr.
func SaveFormFile(c *app.RequestContext, field, dir string) (string, error) {
	header, err := c.FormFile(field)
	switch {
	case errors.Is(err, protocol.ErrMissingFile), errors.Is(err, herrors.ErrNoMultipartForm):
		return "", nil
	case err != nil:
		return "", errors.Wrapf(errno.ParamErr.WithMessage("Malformed multipart form"), "read %s: %v", field, err)
	case header == nil:
		return "", nil
	}
	if err = os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", errors.WithMessage(err, "Failed to create folders")
	}
	path := filepath.Join(dir, uuid.NewString()+filepath.Ext(header.Filename))
	if err = c.SaveUploadedFile(header, path); err != nil {
		return "", errors.Wrapf(err, "save upload %s", field)
	}
	return path, nil
}

// RemoveFiles deletes local temp files, ignoring empty paths.
func RemoveFiles(paths ...string) {
	for _, p := range paths {
		if p != "" {
			_ = os.Remove(p)
		}
	}
}
