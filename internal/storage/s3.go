package storage

import (
	"context"
	"fmt"
	"strings"

	"fornecedores/pkg/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3API is the slice of the S3 client the provider uses.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type S3Storage struct {
	client        s3API
	bucket        string
	region        string
	publicBaseURL string
}

func NewS3Storage(client s3API, config *types.Config) *S3Storage {
	return &S3Storage{
		client:        client,
		bucket:        config.S3BucketName,
		region:        config.S3Region,
		publicBaseURL: strings.TrimSuffix(config.S3PublicBaseURL, "/"),
	}
}

func (s *S3Storage) UploadAll(ctx context.Context, prefix string, files []Upload) ([]types.FileRef, error) {
	return uploadAll(ctx, prefix, files, func(ctx context.Context, key string, file Upload) (string, error) {
		_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(s.bucket),
			Key:         aws.String(key),
			Body:        file.Body,
			ContentType: aws.String(file.ContentType),
		})
		if err != nil {
			return "", err
		}
		return s.PublicURL(key), nil
	})
}

func (s *S3Storage) Delete(ctx context.Context, fileURL string) error {
	key, err := KeyFromURL(fileURL)
	if err != nil {
		return err
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}
	return nil
}

// PublicURL returns the download URL persisted alongside the file
// name. A CDN base overrides the virtual-hosted bucket URL when set.
func (s *S3Storage) PublicURL(key string) string {
	if s.publicBaseURL != "" {
		return fmt.Sprintf("%s/%s", s.publicBaseURL, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

var _ Provider = (*S3Storage)(nil)
