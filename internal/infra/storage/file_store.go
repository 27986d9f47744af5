// Package storage stores onboarding documents in a blob bucket through the
// gocloud.dev portable blob API, so the same code serves a local directory in
// development and GCS in production.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"portal/config"
	"portal/internal/domain/lifecycle"
	"portal/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Register the bucket drivers used by the supported bucket URL schemes.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

// blobFileStore implements service.FileStore on top of a gocloud blob bucket.
type blobFileStore struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// Params holds dependencies for the file store, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewFileStore opens the configured W-9 bucket and returns a FileStore bound
// to it. The bucket is closed on application shutdown.
func NewFileStore(params Params) (service.FileStore, error) {
	if params.Config.Storage == nil || params.Config.Storage.W9BucketURL == "" {
		return nil, errors.New("storage.w9BucketUrl must be configured")
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, params.Config.Storage.W9BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", params.Config.Storage.W9BucketURL)
	}

	store := &blobFileStore{
		bucket: bucket,
		logger: params.Logger,
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

// SaveW9 stores a W-9 upload under a timestamped key scoped to the affiliate.
// Each upload gets a fresh key, so the affiliate record always points at the
// latest document and older uploads remain for audit. The random component
// keeps back-to-back uploads in the same instant from sharing a key.
func (s *blobFileStore) SaveW9(ctx context.Context, affiliateID uuid.UUID, filename string, contents io.Reader) (string, error) {
	key := fmt.Sprintf("%s/%d-%s-%s", affiliateID, time.Now().UnixMilli(), uuid.NewString()[:8], sanitizeFilename(filename))

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: "application/pdf",
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(writer, contents); err != nil {
		writer.Close()

		return "", errors.Wrap(err, "failed to write document")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize document write")
	}

	s.logger.Info("W-9 document stored",
		slog.String("affiliate_id", affiliateID.String()),
		slog.String("key", key),
	)

	return key, nil
}

// Close releases the underlying bucket.
func (s *blobFileStore) Close() error {
	return s.bucket.Close()
}

// sanitizeFilename strips path separators and keeps only the base name so
// user-supplied filenames cannot escape the affiliate's key prefix.
func sanitizeFilename(filename string) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		return "document.pdf"
	}

	return strings.ReplaceAll(base, " ", "_")
}
