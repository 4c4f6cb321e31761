package storage

import (
	"context"
	"time"
)

// Default expiry duration for presigned URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

// ImageStorage resolves object keys of exercise images to URLs a browser can load.
type ImageStorage interface {
	// PresignedImageURL creates a temporary URL that allows GET requests
	// for viewing an object directly from the storage provider.
	PresignedImageURL(ctx context.Context, objectKey string) (string, error)
}
