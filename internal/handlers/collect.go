package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"collector/internal/dto"
	"collector/internal/journal"
	"collector/internal/logger"
	"collector/internal/pipeline"
	"collector/internal/services/websocket"
)

// maxBodyBytes bounds a submission body; four base64 camera frames fit well
// under this.
const maxBodyBytes = 32 << 20

// CollectHandler accepts one telemetry submission, runs it through the
// pipeline, journals the outcome and notifies live viewers.
func CollectHandler(pipe *pipeline.Pipeline, jr *journal.Journal, hub *websocket.HubService, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var sub dto.TelemetrySubmission
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			log.Warning("Rejected unreadable submission from %s: %v", r.RemoteAddr, err)
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "invalid JSON body"})
			return
		}
		sub.NetworkAddress = clientAddress(r)

		// A client that disconnects mid-run must not cancel in-flight store
		// calls: uploaded images still deserve their log write. Per-call
		// timeouts inside the pipeline keep this bounded.
		ctx := context.WithoutCancel(r.Context())

		res, err := pipe.Process(ctx, &sub)
		if err != nil {
			var stageErr *pipeline.StageError
			if errors.As(err, &stageErr) && stageErr.Stage == pipeline.StageValidate {
				log.Warning("Rejected submission from %s: %v", sub.NetworkAddress, err)
				writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
				return
			}
			recordOutcome(jr, log, summarizeFailure(&sub, res, err))
			writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
			return
		}

		summary := summarize(&sub, res)
		recordOutcome(jr, log, summary)
		if payload, err := json.Marshal(summary); err == nil {
			hub.Broadcast(payload)
		}

		writeJSON(w, http.StatusOK, dto.CollectResponse{OK: true, Device: &res.Identity})
	}
}

// clientAddress prefers the first X-Forwarded-For hop, falling back to the
// socket peer.
func clientAddress(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

func summarize(sub *dto.TelemetrySubmission, res *pipeline.Result) dto.SubmissionSummary {
	return dto.SubmissionSummary{
		ID:             res.ID,
		ReceivedAt:     res.ReceivedAt.Format(time.RFC3339Nano),
		CapturedAt:     sub.CapturedAt,
		NetworkAddress: sub.NetworkAddress,
		Brand:          res.Identity.Brand,
		Model:          res.Identity.Model,
		ImageCount:     len(sub.Images),
		ImagesStored:   res.ImagesStored(),
		Status:         "done",
	}
}

func summarizeFailure(sub *dto.TelemetrySubmission, res *pipeline.Result, err error) dto.SubmissionSummary {
	s := dto.SubmissionSummary{
		ID:             uuid.NewString(),
		ReceivedAt:     time.Now().UTC().Format(time.RFC3339Nano),
		CapturedAt:     sub.CapturedAt,
		NetworkAddress: sub.NetworkAddress,
		ImageCount:     len(sub.Images),
		Status:         "failed",
		Error:          err.Error(),
	}
	if res != nil {
		s.ID = res.ID
		s.ReceivedAt = res.ReceivedAt.Format(time.RFC3339Nano)
		s.Brand = res.Identity.Brand
		s.Model = res.Identity.Model
		s.ImagesStored = res.ImagesStored()
	}
	return s
}

// recordOutcome is best-effort: a journal problem is logged, never surfaced.
func recordOutcome(jr *journal.Journal, log *logger.Logger, s dto.SubmissionSummary) {
	if err := jr.Record(s); err != nil {
		log.Error("Failed to journal submission %s: %v", s.ID, err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
