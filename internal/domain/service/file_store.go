package service

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// FileStore stores onboarding documents (currently only W-9 forms) in a
// blob bucket and hands back opaque keys for the affiliate record.
type FileStore interface {
	// SaveW9 stores a W-9 upload for an affiliate and returns the blob key.
	// Re-uploading replaces the previous document under a new key.
	SaveW9(ctx context.Context, affiliateID uuid.UUID, filename string, contents io.Reader) (string, error)

	// Close releases the underlying bucket.
	Close() error
}
