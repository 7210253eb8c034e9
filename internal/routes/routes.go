package routes

import (
	"net/http"

	"collector/internal/config"
	"collector/internal/handlers"
	"collector/internal/journal"
	"collector/internal/logger"
	"collector/internal/middleware"
	"collector/internal/pipeline"
	"collector/internal/services/websocket"
)

// SetupRoutes registers the ingestion endpoint, the operator API, log viewing,
// static serving, and wraps the mux with the CORS middleware.
func SetupRoutes(pipe *pipeline.Pipeline, jr *journal.Journal, hub *websocket.HubService, cfg *config.Config, log *logger.Logger) http.Handler {
	mux := http.NewServeMux()

	// Ingestion endpoint
	mux.HandleFunc("/collect", handlers.CollectHandler(pipe, jr, hub, log))

	// Operator API
	mux.HandleFunc("/api/view", handlers.ViewWebsocketHandler(hub, log))
	mux.HandleFunc("/api/submissions", handlers.GetSubmissionsHandler(jr, log))

	// Log endpoints
	mux.HandleFunc("/logs/info", handlers.ShowInfoLogsHandler(cfg))
	mux.HandleFunc("/logs/warning", handlers.ShowWarningLogsHandler(cfg))
	mux.HandleFunc("/logs/error", handlers.ShowErrorLogsHandler(cfg))

	// Static capture page
	mux.Handle("/", http.FileServer(http.Dir(cfg.StaticDirectory)))

	return middleware.CORSMiddleware(mux)
}
