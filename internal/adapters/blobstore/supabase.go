package blobstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// SupabaseStore uploads objects to Supabase Storage over its REST API.
type SupabaseStore struct {
	projectURL string
	serviceKey string
	client     *http.Client
}

// NewSupabaseStore creates a store for the given project.
// PRE: projectURL and serviceKey are non-empty
func NewSupabaseStore(projectURL, serviceKey string) *SupabaseStore {
	return &SupabaseStore{
		projectURL: projectURL,
		serviceKey: serviceKey,
		client:     &http.Client{Timeout: 30 * time.Second},
	}
}

// Put uploads the object via PUT to the storage endpoint.
// POST: Returns the sanitized key as the reference
func (s *SupabaseStore) Put(ctx context.Context, bucket, key, contentType string, data []byte) (string, error) {
	ref := SanitizeKey(key)
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.projectURL, bucket, ref)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload to %s failed: %w", bucket, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("upload to %s failed with status %d: %s", bucket, resp.StatusCode, body)
	}
	return ref, nil
}

// PublicURL resolves a reference against the project's public object path.
func (s *SupabaseStore) PublicURL(bucket, ref string) string {
	if ref == "" {
		return ""
	}
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.projectURL, bucket, url.PathEscape(ref))
}
