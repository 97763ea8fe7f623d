package minio_storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/url"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// ImageStorage holds the pictures referenced by image-focus slides. Reads go
// out as presigned URLs so the bucket stays private.
type ImageStorage struct {
	storage    *MinioStorage
	bucket     string
	presignTTL time.Duration
}

func NewImageStorage(storage *MinioStorage, bucketName string, presignTTL time.Duration) (*ImageStorage, error) {
	if err := storage.ensureBucket(context.Background(), bucketName); err != nil {
		return nil, err
	}
	return &ImageStorage{storage: storage, bucket: bucketName, presignTTL: presignTTL}, nil
}

func (s *ImageStorage) UploadImage(
	ctx context.Context,
	slideID uuid.UUID,
	filename string,
	reader io.Reader,
	size int64,
	contentType string,
) (objectKey string, err error) {
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".bin"
	}

	objectKey = fmt.Sprintf("slides/%s/image%s", slideID.String(), ext)

	if contentType == "" {
		contentType = mime.TypeByExtension(ext)
		if contentType == "" {
			contentType = "application/octet-stream"
		}
	}

	_, err = s.storage.client.PutObject(
		ctx,
		s.bucket,
		objectKey,
		reader,
		size,
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return "", err
	}
	return objectKey, nil
}

func (s *ImageStorage) GetImageURL(ctx context.Context, objectKey string) (string, error) {
	reqParams := make(url.Values)
	presignedURL, err := s.storage.client.PresignedGetObject(
		ctx,
		s.bucket,
		objectKey,
		s.presignTTL,
		reqParams,
	)
	if err != nil {
		return "", err
	}
	return presignedURL.String(), nil
}

func (s *ImageStorage) DeleteImage(ctx context.Context, objectKey string) error {
	return s.storage.client.RemoveObject(ctx, s.bucket, objectKey, minio.RemoveObjectOptions{})
}
