package ports

import "context"

// UploadStore persists raw uploaded files and returns the stored path.
type UploadStore interface {
	// Save writes the payload under the given category (e.g. "scans",
	// "compliance") and returns the path the record should reference.
	Save(ctx context.Context, category string, upload ImageUpload) (string, error)
}
