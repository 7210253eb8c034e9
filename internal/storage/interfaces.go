package storage

import "context"

// BlobRef identifies one stored blob. Locator is an opaque durable reference
// usable without re-uploading; it ends up embedded in a log row.
type BlobRef struct {
	ID      string
	Locator string
}

// BlobStore is the blob-store capability. Implementations must be safe for
// concurrent use by multiple goroutines.
type BlobStore interface {
	Upload(ctx context.Context, name string, data []byte, contentType string) (BlobRef, error)
}

// RowAppender is the tabular-log capability. The row is positional: it must
// already match the destination's fixed column order.
type RowAppender interface {
	Append(ctx context.Context, row []string) error
}
