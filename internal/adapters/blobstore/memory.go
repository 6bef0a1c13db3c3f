package blobstore

import (
	"context"
	"sync"
)

// MemoryStore keeps objects in memory. Intended for tests.
type MemoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte

	// PutErr, when set, is returned by every Put without storing anything.
	PutErr error
	// Puts records bucket/key pairs in call order.
	Puts []string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: map[string][]byte{}}
}

// Put stores the object under bucket/key.
func (s *MemoryStore) Put(ctx context.Context, bucket, key, contentType string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.PutErr != nil {
		return "", s.PutErr
	}
	ref := SanitizeKey(key)
	s.objects[bucket+"/"+ref] = append([]byte(nil), data...)
	s.Puts = append(s.Puts, bucket+"/"+ref)
	return ref, nil
}

// PublicURL returns a stable fake URL for stored references.
func (s *MemoryStore) PublicURL(bucket, ref string) string {
	if ref == "" {
		return ""
	}
	return "memory://" + bucket + "/" + ref
}

// Get returns a stored object, or nil when absent.
func (s *MemoryStore) Get(bucket, ref string) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.objects[bucket+"/"+ref]
}
