// Copyright (c) 2026 Glowlab. All rights reserved.

/*
Package storage provides object storage for uploaded catalog imagery.

It handles product thumbnails, brand logos, and profile avatars. Objects are
written to an S3-compatible backend (Cloudflare R2 in production, MinIO in
development) and served to clients through a public CDN origin.

Core Responsibilities:

  - Keys: Deterministic, collision-resistant object key layouts.
  - Replacement: New image is uploaded BEFORE the old one is removed, so a
    failed upload never leaves an entity pointing at a deleted object.
  - URLs: Translation between storage coordinates (bucket, key) and the
    public URLs persisted on catalog rows.
*/
package storage

import (
	stdctx "context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/glowlab/glowlab/internal/platform/apperr"
)

// ObjectStore is the minimal backend contract the [Uploader] needs.
//
// # Why an interface?
//
// The concrete implementation wraps the MinIO SDK; tests substitute an
// in-memory fake to assert call ordering without network access.
type ObjectStore interface {
	// Put streams an object into the bucket. When overwrite is false the
	// call fails with a CONFLICT error if the key already exists.
	Put(context stdctx.Context, bucket, key string, reader io.Reader, size int64, contentType string, overwrite bool) error

	// Remove deletes an object. Removing a missing key is not an error.
	Remove(context stdctx.Context, bucket, key string) error

	// Ping verifies the backend is reachable.
	Ping(context stdctx.Context) error
}

// Uploader implements the image upload workflows on top of an [ObjectStore].
type Uploader struct {
	store         ObjectStore
	publicBaseURL string
}

// NewUploader creates an Uploader.
//
// publicBaseURL is the CDN origin serving the buckets, without a trailing
// slash, e.g. "https://cdn.glowlab.app".
func NewUploader(store ObjectStore, publicBaseURL string) *Uploader {
	return &Uploader{
		store:         store,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// # Object Keys

// OwnedKey builds a key scoped to an owning entity: "folder/owner_unixms.ext".
//
// The millisecond timestamp makes successive uploads for the same owner
// distinct, so thumbnails and avatars never need overwrite semantics.
func OwnedKey(folder, ownerID, filename string) string {
	return fmt.Sprintf("%s/%s_%d%s", folder, ownerID, time.Now().UnixMilli(), extension(filename))
}

// RandomKey builds an ownerless key: "folder/unixms-rand.ext".
//
// Used for brand logos, where the owning row may not exist yet at upload time.
func RandomKey(folder, filename string) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return fmt.Sprintf("%s/%d-%s%s", folder, time.Now().UnixMilli(), suffix, extension(filename))
}

// extension normalizes the file extension, defaulting to .bin for bare names.
func extension(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		return ".bin"
	}
	return ext
}

// # Workflows

// Upload stores an object and returns its public URL.
func (uploader *Uploader) Upload(context stdctx.Context, bucket, key string, reader io.Reader, size int64, contentType string, overwrite bool) (string, error) {
	if err := uploader.store.Put(context, bucket, key, reader, size, contentType, overwrite); err != nil {
		return "", err
	}
	return uploader.PublicURL(bucket, key), nil
}

// Replace uploads a new object, then removes the object behind oldPublicURL.
//
// # Ordering
//
// The new object is always written first. If the upload fails, the old object
// stays untouched and the entity keeps a valid image. If removal of the old
// object fails, the error is returned but the new URL is ALSO returned, so
// the caller can persist it — an orphaned object is better than a broken image.
func (uploader *Uploader) Replace(context stdctx.Context, bucket, key string, reader io.Reader, size int64, contentType string, overwrite bool, oldPublicURL string) (string, error) {
	newURL, err := uploader.Upload(context, bucket, key, reader, size, contentType, overwrite)
	if err != nil {
		return "", err
	}

	if oldPublicURL == "" {
		return newURL, nil
	}

	oldBucket, oldKey, err := uploader.ParsePublicURL(oldPublicURL)
	if err != nil {
		// The stored URL is foreign or malformed; leave it alone.
		return newURL, nil
	}

	if err := uploader.store.Remove(context, oldBucket, oldKey); err != nil {
		return newURL, err
	}

	return newURL, nil
}

// Delete removes the object behind a public URL. Foreign URLs are ignored.
func (uploader *Uploader) Delete(context stdctx.Context, publicURL string) error {
	bucket, key, err := uploader.ParsePublicURL(publicURL)
	if err != nil {
		return nil
	}
	return uploader.store.Remove(context, bucket, key)
}

// # URL Mapping

// PublicURL builds the CDN URL for a stored object.
func (uploader *Uploader) PublicURL(bucket, key string) string {
	return uploader.publicBaseURL + "/" + bucket + "/" + key
}

// ParsePublicURL splits a public URL back into (bucket, key).
//
// Returns a validation error if the URL does not belong to the configured
// CDN origin or lacks a bucket/key pair.
func (uploader *Uploader) ParsePublicURL(publicURL string) (string, string, error) {
	if !strings.HasPrefix(publicURL, uploader.publicBaseURL+"/") {
		return "", "", apperr.ValidationError("URL does not belong to managed storage")
	}

	rest := strings.TrimPrefix(publicURL, uploader.publicBaseURL+"/")
	bucket, key, found := strings.Cut(rest, "/")
	if !found || bucket == "" || key == "" {
		return "", "", apperr.ValidationError("URL is missing a bucket or object key")
	}

	return bucket, key, nil
}
