package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"collector/internal/journal"
	"collector/internal/logger"
)

const defaultSubmissionLimit = 20

// GetSubmissionsHandler lists recent journal entries, newest first.
func GetSubmissionsHandler(jr *journal.Journal, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
		if limit <= 0 || err != nil {
			limit = defaultSubmissionLimit
		}

		entries, err := jr.Recent(limit)
		if err != nil {
			log.Error("Failed to list submissions: %v", err)
			http.Error(w, "Unable to read submission journal", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entries); err != nil {
			log.Error("Error encoding JSON response: %v", err)
		}
	}
}
