package pipeline

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"collector/internal/logger"
	"collector/internal/retry"
	"collector/internal/storage"
)

// ImageReference ties a stored blob locator back to its input position. A
// degraded image keeps its slot with an empty locator so ordering survives.
type ImageReference struct {
	Index   int
	Locator string
}

// ImagePersister decodes and uploads submission images. Failures degrade the
// single image, never the submission: a bad payload or an exhausted retry
// leaves the empty locator in that slot.
type ImagePersister struct {
	store       storage.BlobStore
	retry       retry.Policy
	concurrency int
	callTimeout time.Duration
	log         *logger.Logger
}

// Persist uploads the images concurrently (bounded) and returns one reference
// per input, order preserved. An empty input makes no store calls.
func (p *ImagePersister) Persist(ctx context.Context, submissionID string, receivedAt time.Time, images []string) []ImageReference {
	refs := make([]ImageReference, len(images))
	if len(images) == 0 {
		return refs
	}

	var group errgroup.Group
	group.SetLimit(p.concurrency)
	for i, encoded := range images {
		i, encoded := i, encoded
		group.Go(func() error {
			refs[i] = p.persistOne(ctx, submissionID, receivedAt, i, encoded)
			return nil
		})
	}
	// persistOne never returns an error; Wait is a barrier so the row
	// assembler only ever sees the complete set.
	_ = group.Wait()
	return refs
}

func (p *ImagePersister) persistOne(ctx context.Context, submissionID string, receivedAt time.Time, index int, encoded string) ImageReference {
	ref := ImageReference{Index: index}

	data, contentType, err := decodeImage(encoded)
	if err != nil {
		p.log.Warning("Submission %s: %v", submissionID, &DecodeError{Index: index, Err: err})
		return ref
	}

	name := blobName(receivedAt, index, submissionID, contentType)
	var blob storage.BlobRef
	err = p.retry.Do(ctx, func(ctx context.Context) error {
		callCtx, cancel := context.WithTimeout(ctx, p.callTimeout)
		defer cancel()
		var uploadErr error
		blob, uploadErr = p.store.Upload(callCtx, name, data, contentType)
		return uploadErr
	})
	if err != nil {
		p.log.Warning("Submission %s: image %d degraded, upload failed: %v", submissionID, index, err)
		return ref
	}

	ref.Locator = blob.Locator
	return ref
}

// decodeImage accepts a data URL ("data:image/jpeg;base64,<payload>") or a
// bare base64 string, which defaults to image/jpeg.
func decodeImage(encoded string) ([]byte, string, error) {
	payload := encoded
	contentType := "image/jpeg"

	if strings.HasPrefix(encoded, "data:") {
		comma := strings.IndexByte(encoded, ',')
		if comma < 0 {
			return nil, "", fmt.Errorf("data URL has no payload separator")
		}
		header := encoded[len("data:"):comma]
		payload = encoded[comma+1:]
		if mime, _, _ := strings.Cut(header, ";"); mime != "" {
			contentType = mime
		}
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("invalid base64 payload: %w", err)
	}
	if len(data) == 0 {
		return nil, "", fmt.Errorf("empty image payload")
	}
	return data, contentType, nil
}

// blobName is unique per submission and per index: submission time plus the
// submission ID, never content, since two submissions may legitimately upload
// bit-identical images.
func blobName(receivedAt time.Time, index int, submissionID string, contentType string) string {
	ext := "jpg"
	if _, sub, ok := strings.Cut(contentType, "/"); ok && sub != "" && sub != "jpeg" {
		ext = sub
	}
	id := submissionID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("capture_%d_%02d_%s.%s", receivedAt.UnixMilli(), index, id, ext)
}
