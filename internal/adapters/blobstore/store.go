// Package blobstore provides object storage for uploaded images. Uploads go
// to a named bucket and return an opaque reference used later to build a
// public URL.
package blobstore

import (
	"context"
	"regexp"
)

// Bucket names, one per upload slot.
const (
	BucketSchoolBadges = "school-badges"
	BucketAdminPhotos  = "admin-photos"
	BucketPlayerPhotos = "player-photos"
)

// Store uploads binary objects and resolves their public URLs.
type Store interface {
	// Put stores data under bucket/key and returns the stored reference.
	// PRE: bucket is one of the Bucket constants; key is non-empty
	// POST: Returns the reference to persist, or an error (nothing stored)
	Put(ctx context.Context, bucket, key, contentType string, data []byte) (string, error)

	// PublicURL resolves a stored reference to a browser-reachable URL.
	// An empty ref resolves to an empty URL.
	PublicURL(bucket, ref string) string
}

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// SanitizeKey strips characters that are not safe in an object key.
func SanitizeKey(key string) string {
	return unsafeKeyChars.ReplaceAllString(key, "_")
}
