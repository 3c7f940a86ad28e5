// Copyright (c) 2026 Glowlab. All rights reserved.

package storage

import (
	stdctx "context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/glowlab/glowlab/internal/platform/apperr"
	"github.com/glowlab/glowlab/internal/platform/constants"
)

const pingTimeout = 2 * time.Second

// MinioStore is the S3-compatible [ObjectStore] implementation.
type MinioStore struct {
	client *minio.Client

	// probeBucket is checked during health pings.
	probeBucket string
}

// NewMinioStore connects to an S3-compatible endpoint (R2, MinIO).
func NewMinioStore(endpoint, accessKey, secretKey string, useSSL bool, probeBucket string, logger *slog.Logger) (*MinioStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: failed to create client: %w", err)
	}

	logger.Info("object storage client created",
		slog.String("endpoint", endpoint),
		slog.Bool("ssl", useSSL),
	)

	return &MinioStore{client: client, probeBucket: probeBucket}, nil
}

// Put implements [ObjectStore].
//
// Without native conditional writes on every S3-compatible backend, the
// no-overwrite guarantee is a stat-then-put sequence. A concurrent upload to
// the same key can slip between the two calls; key layouts embed millisecond
// timestamps precisely so this window is never hit in practice.
func (store *MinioStore) Put(context stdctx.Context, bucket, key string, reader io.Reader, size int64, contentType string, overwrite bool) error {
	if !overwrite {
		_, err := store.client.StatObject(context, bucket, key, minio.StatObjectOptions{})
		if err == nil {
			return apperr.Conflict("Object already exists: " + key)
		}
		if response := minio.ToErrorResponse(err); response.Code != "NoSuchKey" {
			return fmt.Errorf("storage: stat %s/%s: %w", bucket, key, err)
		}
	}

	_, err := store.client.PutObject(context, bucket, key, reader, size, minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: constants.UploadCacheControl,
	})
	if err != nil {
		return fmt.Errorf("storage: put %s/%s: %w", bucket, key, err)
	}

	return nil
}

// Remove implements [ObjectStore]. Missing keys are treated as success.
func (store *MinioStore) Remove(context stdctx.Context, bucket, key string) error {
	err := store.client.RemoveObject(context, bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		if response := minio.ToErrorResponse(err); response.Code == "NoSuchKey" {
			return nil
		}
		return fmt.Errorf("storage: remove %s/%s: %w", bucket, key, err)
	}
	return nil
}

// Ping implements [ObjectStore] by checking the probe bucket exists.
func (store *MinioStore) Ping(context stdctx.Context) error {
	pingCtx, cancel := stdctx.WithTimeout(context, pingTimeout)
	defer cancel()

	exists, err := store.client.BucketExists(pingCtx, store.probeBucket)
	if err != nil {
		return fmt.Errorf("storage: ping failed: %w", err)
	}
	if !exists {
		return fmt.Errorf("storage: bucket %q does not exist", store.probeBucket)
	}

	return nil
}
