package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/homebarberid/booking-api/internal/config"
)

// ImageStore keeps portfolio and profile images in an S3 bucket. Every
// upload is normalized to webp under a uuid key.
type ImageStore struct {
	client     *s3.Client
	bucket     string
	publicBase string
}

func NewImageStore(cfg *config.Config) *ImageStore {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &ImageStore{
		client:     s3.New(opts),
		bucket:     cfg.S3Bucket,
		publicBase: strings.TrimRight(cfg.S3PublicBase, "/"),
	}
}

// Save normalizes the upload to webp and stores it under
// "<prefix>/<uuid>.webp", returning the object key.
func (s *ImageStore) Save(ctx context.Context, prefix string, r io.Reader) (string, error) {
	data, err := encodeWebP(r)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s/%s.webp", prefix, uuid.NewString())

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", err
	}

	return key, nil
}

func (s *ImageStore) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

// URL returns the public URL for a stored key.
func (s *ImageStore) URL(key string) string {
	if key == "" {
		return ""
	}
	if s.publicBase != "" {
		return s.publicBase + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
}
