package oss

import (
	"context"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

// Options describes the MinIO bucket media is written to.
type Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
	Region    string
	// PublicURL prefixes object keys in returned URLs. Defaults to the endpoint.
	PublicURL string
}

// InitMinio connects to MinIO and makes sure the media bucket exists.
func InitMinio(ctx context.Context, opts Options) (*Storage, error) {
	hlog.Infof("Initializing MinIO client with endpoint: %s, bucket: %s", opts.Endpoint, opts.Bucket)

	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create minio client")
	}

	s := newStorage(client, opts)
	if err = s.ensureBucket(ctx, opts.Region); err != nil {
		return nil, err
	}
	hlog.Info("Connect Minio Success")
	return s, nil
}

func (s *Storage) ensureBucket(ctx context.Context, region string) error {
	if region == "" {
		region = "us-east-1"
	}
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return errors.Wrap(err, "check bucket")
	}
	if exists {
		return nil
	}
	if err = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		return errors.Wrap(err, "create bucket")
	}
	return nil
}
