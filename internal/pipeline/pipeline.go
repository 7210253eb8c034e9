package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"

	"collector/internal/config"
	"collector/internal/dto"
	"collector/internal/logger"
	"collector/internal/retry"
	"collector/internal/storage"
)

// Result is what a completed run reports back to the transport layer.
type Result struct {
	ID         string
	ReceivedAt time.Time
	Identity   dto.DeviceIdentity
	Images     []ImageReference
	Row        []string
}

// ImagesStored counts the slots that ended up with a real locator.
func (r *Result) ImagesStored() int {
	n := 0
	for _, ref := range r.Images {
		if ref.Locator != "" {
			n++
		}
	}
	return n
}

// Pipeline runs one submission through validation, device inference, image
// persistence and the log append. The two store handles are process-wide and
// must be safe for concurrent use; everything else lives for one request.
type Pipeline struct {
	rowLog      storage.RowAppender
	images      *ImagePersister
	retry       retry.Policy
	maxImages   int
	callTimeout time.Duration
	log         *logger.Logger
}

// New wires the pipeline. The same retry policy governs image uploads and the
// log append.
func New(blobs storage.BlobStore, rowLog storage.RowAppender, cfg *config.Config, log *logger.Logger) *Pipeline {
	policy := retry.Policy{
		Attempts:  cfg.RetryAttempts,
		BaseDelay: cfg.RetryBaseDelay,
		Transient: storage.IsTransient,
	}
	return &Pipeline{
		rowLog: rowLog,
		images: &ImagePersister{
			store:       blobs,
			retry:       policy,
			concurrency: cfg.UploadConcurrency,
			callTimeout: cfg.CallTimeout,
			log:         log,
		},
		retry:       policy,
		maxImages:   cfg.MaxImages,
		callTimeout: cfg.CallTimeout,
		log:         log,
	}
}

// Process moves one submission through the forward path
// Received -> Validated -> Enriched -> ImagesPersisted -> Logged -> Done.
// Only validation and the final log append can fail a run; everything between
// degrades to placeholder cells. Images already uploaded when the log append
// exhausts its retries stay behind without a row; that inconsistency is
// accepted rather than compensated.
func (p *Pipeline) Process(ctx context.Context, sub *dto.TelemetrySubmission) (*Result, error) {
	res := &Result{ID: uuid.NewString(), ReceivedAt: time.Now().UTC()}

	sub, err := Validate(sub)
	if err != nil {
		return nil, &StageError{Stage: StageValidate, Err: err}
	}

	var userAgent string
	if sub.ClientHints != nil {
		userAgent = sub.ClientHints.UserAgent
	}
	res.Identity = InferDevice(userAgent, sub.GPUInfo)

	images := sub.Images
	if len(images) > p.maxImages {
		p.log.Warning("Submission %s: %d images exceed the %d slots, extras dropped", res.ID, len(images), p.maxImages)
		images = images[:p.maxImages]
	}
	res.Images = p.images.Persist(ctx, res.ID, res.ReceivedAt, images)

	res.Row = AssembleRow(sub, res.Identity, res.Images)

	err = p.retry.Do(ctx, func(ctx context.Context) error {
		callCtx, cancel := context.WithTimeout(ctx, p.callTimeout)
		defer cancel()
		return p.rowLog.Append(callCtx, res.Row)
	})
	if err != nil {
		// The partial result still comes back so the caller can journal the
		// run under its real ID.
		p.log.Error("Submission %s: log append failed: %v", res.ID, err)
		return res, &StageError{Stage: StageLog, Err: err}
	}

	p.log.Info("Submission %s from %s recorded (%s %s, %d/%d images)",
		res.ID, sub.NetworkAddress, res.Identity.Brand, res.Identity.Model, res.ImagesStored(), len(res.Images))
	return res, nil
}
