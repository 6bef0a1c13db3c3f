package blobstore

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// FSStore writes objects to the local filesystem under root/bucket/key and
// serves them from the given URL prefix. Used for local development where no
// hosted storage is configured.
type FSStore struct {
	root      string
	urlPrefix string
}

// NewFSStore creates a filesystem-backed store.
// PRE: root is a writable directory path; urlPrefix has no trailing slash
func NewFSStore(root, urlPrefix string) *FSStore {
	return &FSStore{root: root, urlPrefix: urlPrefix}
}

// Put writes the object to disk.
// POST: Returns the sanitized key as the reference
func (s *FSStore) Put(ctx context.Context, bucket, key, contentType string, data []byte) (string, error) {
	ref := SanitizeKey(key)
	dir := filepath.Join(s.root, bucket)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create bucket dir %s: %w", bucket, err)
	}
	if err := os.WriteFile(filepath.Join(dir, ref), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s/%s: %w", bucket, ref, err)
	}
	return ref, nil
}

// PublicURL resolves a reference under the configured prefix.
func (s *FSStore) PublicURL(bucket, ref string) string {
	if ref == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s/%s", s.urlPrefix, bucket, url.PathEscape(ref))
}
