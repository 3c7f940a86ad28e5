// Copyright (c) 2026 Glowlab. All rights reserved.

package storage_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowlab/glowlab/internal/platform/storage"
)

// fakeStore records the order of backend calls and can fail on demand.
type fakeStore struct {
	calls      []string
	failPut    bool
	failRemove bool
}

func (f *fakeStore) Put(_ context.Context, bucket, key string, _ io.Reader, _ int64, _ string, _ bool) error {
	f.calls = append(f.calls, "put:"+bucket+"/"+key)
	if f.failPut {
		return errors.New("put failed")
	}
	return nil
}

func (f *fakeStore) Remove(_ context.Context, bucket, key string) error {
	f.calls = append(f.calls, "remove:"+bucket+"/"+key)
	if f.failRemove {
		return errors.New("remove failed")
	}
	return nil
}

func (f *fakeStore) Ping(_ context.Context) error { return nil }

const baseURL = "https://cdn.glowlab.test"

/*
TestUploader_Replace_Ordering verifies that the new object is written before
the old one is removed, and that a failed upload leaves the old object alone.
*/
func TestUploader_Replace_Ordering(t *testing.T) {
	t.Run("upload_then_remove", func(t *testing.T) {
		store := &fakeStore{}
		uploader := storage.NewUploader(store, baseURL)

		oldURL := baseURL + "/glowlab-cms/thumbs/42_1000.webp"
		newURL, err := uploader.Replace(context.Background(),
			"glowlab-cms", "thumbs/42_2000.webp",
			strings.NewReader("img"), 3, "image/webp", false, oldURL)

		require.NoError(t, err)
		assert.Equal(t, baseURL+"/glowlab-cms/thumbs/42_2000.webp", newURL)
		assert.Equal(t, []string{
			"put:glowlab-cms/thumbs/42_2000.webp",
			"remove:glowlab-cms/thumbs/42_1000.webp",
		}, store.calls)
	})

	t.Run("failed_upload_keeps_old_object", func(t *testing.T) {
		store := &fakeStore{failPut: true}
		uploader := storage.NewUploader(store, baseURL)

		oldURL := baseURL + "/glowlab-cms/thumbs/42_1000.webp"
		_, err := uploader.Replace(context.Background(),
			"glowlab-cms", "thumbs/42_2000.webp",
			strings.NewReader("img"), 3, "image/webp", false, oldURL)

		require.Error(t, err)
		// No remove call must have been issued.
		assert.Equal(t, []string{"put:glowlab-cms/thumbs/42_2000.webp"}, store.calls)
	})

	t.Run("failed_remove_still_returns_new_url", func(t *testing.T) {
		store := &fakeStore{failRemove: true}
		uploader := storage.NewUploader(store, baseURL)

		oldURL := baseURL + "/glowlab-cms/thumbs/42_1000.webp"
		newURL, err := uploader.Replace(context.Background(),
			"glowlab-cms", "thumbs/42_2000.webp",
			strings.NewReader("img"), 3, "image/webp", false, oldURL)

		assert.Error(t, err)
		assert.Equal(t, baseURL+"/glowlab-cms/thumbs/42_2000.webp", newURL)
	})

	t.Run("foreign_old_url_is_ignored", func(t *testing.T) {
		store := &fakeStore{}
		uploader := storage.NewUploader(store, baseURL)

		newURL, err := uploader.Replace(context.Background(),
			"brand-logos", "brands/1000-abcd1234.png",
			strings.NewReader("img"), 3, "image/png", true,
			"https://example.com/external.png")

		require.NoError(t, err)
		assert.Equal(t, baseURL+"/brand-logos/brands/1000-abcd1234.png", newURL)
		assert.Equal(t, []string{"put:brand-logos/brands/1000-abcd1234.png"}, store.calls)
	})
}

/*
TestUploader_ParsePublicURL covers the URL to (bucket, key) round trip.
*/
func TestUploader_ParsePublicURL(t *testing.T) {
	uploader := storage.NewUploader(&fakeStore{}, baseURL)

	t.Run("round_trip", func(t *testing.T) {
		url := uploader.PublicURL("glowlab-cms", "avatars/u1_1000.jpg")
		bucket, key, err := uploader.ParsePublicURL(url)

		require.NoError(t, err)
		assert.Equal(t, "glowlab-cms", bucket)
		assert.Equal(t, "avatars/u1_1000.jpg", key)
	})

	tests := []struct {
		name string
		url  string
	}{
		{"foreign_origin", "https://evil.example/bucket/key.png"},
		{"missing_key", baseURL + "/glowlab-cms"},
		{"empty_bucket", baseURL + "//key.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := uploader.ParsePublicURL(tt.url)
			assert.Error(t, err)
		})
	}
}

/*
TestObjectKeys checks the shape of generated object keys.
*/
func TestObjectKeys(t *testing.T) {
	t.Run("owned_key", func(t *testing.T) {
		key := storage.OwnedKey("thumbs", "42", "Photo.WEBP")

		assert.True(t, strings.HasPrefix(key, "thumbs/42_"))
		assert.True(t, strings.HasSuffix(key, ".webp"))
	})

	t.Run("random_key", func(t *testing.T) {
		first := storage.RandomKey("brands", "logo.png")
		second := storage.RandomKey("brands", "logo.png")

		assert.True(t, strings.HasPrefix(first, "brands/"))
		assert.True(t, strings.HasSuffix(first, ".png"))
		assert.NotEqual(t, first, second)
	})

	t.Run("missing_extension", func(t *testing.T) {
		key := storage.OwnedKey("avatars", "u1", "avatar")
		assert.True(t, strings.HasSuffix(key, ".bin"))
	})
}
