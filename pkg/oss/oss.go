package oss

import (
	"context"
	"mime"
	"path/filepath"
	"strings"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

// object key prefixes
const (
	VideoPrefix     = "videos"
	ThumbnailPrefix = "thumbnails"
	AvatarPrefix    = "avatars"
)

// Object is a stored media file. Key is what Remove takes, URL is what clients get.
type Object struct {
	Key string
	URL string
}

// Storage writes media into a single MinIO bucket.
type Storage struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func newStorage(client *minio.Client, opts Options) *Storage {
	base := opts.PublicURL
	if base == "" {
		scheme := "http://"
		if opts.UseSSL {
			scheme = "https://"
		}
		base = scheme + opts.Endpoint
	}
	return &Storage{client: client, bucket: opts.Bucket, publicURL: strings.TrimRight(base, "/")}
}

// FPut uploads the local file at path under prefix with a random object name
// that keeps the file extension.
func (s *Storage) FPut(ctx context.Context, prefix, path string) (Object, error) {
	key := ObjectKey(prefix, path)
	_, err := s.client.FPutObject(ctx, s.bucket, key, path, minio.PutObjectOptions{ContentType: ContentType(path)})
	if err != nil {
		return Object{}, errors.Wrapf(err, "upload %s", key)
	}
	hlog.CtxInfof(ctx, "uploaded %s to bucket %s", key, s.bucket)
	return Object{Key: key, URL: s.URL(key)}, nil
}

func (s *Storage) Remove(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return errors.Wrapf(err, "remove %s", key)
	}
	return nil
}

func (s *Storage) URL(key string) string {
	return s.publicURL + "/" + s.bucket + "/" + key
}

// ObjectKey builds "<prefix>/<uuid><ext>" for a local file.
func ObjectKey(prefix, path string) string {
	return prefix + "/" + uuid.NewString() + strings.ToLower(filepath.Ext(path))
}

// ContentType guesses the MIME type from the extension.
func ContentType(path string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
