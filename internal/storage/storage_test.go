package storage

import (
	"context"
	"encoding/base64"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobFilename(t *testing.T) {
	tests := []struct {
		name        string
		prefix      string
		contentType string
		wantExt     string
	}{
		{"png", "observation", "image/png", ".png"},
		{"jpeg normalized to jpg", "observation", "image/jpeg", ".jpg"},
		{"pdf", "report", "application/pdf", ".pdf"},
		{"missing subtype falls back to bin", "compliance", "image/", ".bin"},
		{"empty content type falls back to bin", "compliance", "", ".bin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := blobFilename(tt.prefix, tt.contentType)
			assert.True(t, strings.HasPrefix(got, tt.prefix+"_"))
			assert.True(t, strings.HasSuffix(got, tt.wantExt), "got %q", got)
		})
	}
}

func TestBlobFilenameUnique(t *testing.T) {
	a := blobFilename("observation", "image/png")
	b := blobFilename("observation", "image/png")
	assert.NotEqual(t, a, b)
}

func TestIsDataURL(t *testing.T) {
	assert.True(t, IsDataURL("data:image/png;base64,iVBORw0KGgo="))
	assert.False(t, IsDataURL("/uploads/observation_abc.png"))
	assert.False(t, IsDataURL("https://bucket.s3.amazonaws.com/uploads/x.png"))
	assert.False(t, IsDataURL(""))
}

func TestStoreDataURL_RoundTrip(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	payload := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

	ref, err := StoreDataURL(context.Background(), store, dataURL, "observation")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "/uploads/observation_"))
	assert.True(t, strings.HasSuffix(ref, ".png"))

	filename := strings.TrimPrefix(ref, "/uploads/")
	rc, contentType, err := store.Open(context.Background(), filename)
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
	assert.Equal(t, "image/png", contentType)
}

func TestStoreDataURL_PassThrough(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	// Existing references are returned unchanged without touching storage
	ref, err := StoreDataURL(context.Background(), store, "/uploads/observation_abc.png", "observation")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/observation_abc.png", ref)

	ref, err = StoreDataURL(context.Background(), store, "https://example.com/x.png", "observation")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/x.png", ref)
}

func TestStoreDataURL_MalformedPayload(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	_, err = StoreDataURL(context.Background(), store, "data:image/png;base64,!!!notbase64!!!", "observation")
	assert.Error(t, err)
}

func TestLocalStore_OpenRejectsTraversal(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	_, _, err = store.Open(context.Background(), "../../etc/passwd")
	assert.Error(t, err)
}

func TestLocalStore_OpenMissing(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	_, _, err = store.Open(context.Background(), "observation_missing.png")
	assert.Error(t, err)
}
