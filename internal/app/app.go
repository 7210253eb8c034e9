package app

import (
	"context"
	"fmt"
	"net/http"

	"collector/internal/config"
	"collector/internal/journal"
	"collector/internal/logger"
	"collector/internal/pipeline"
	"collector/internal/routes"
	"collector/internal/services/websocket"
	"collector/internal/storage"
)

type App struct {
	config   *config.Config
	logger   *logger.Logger
	journal  *journal.Journal
	hub      *websocket.HubService
	pipeline *pipeline.Pipeline
}

// NewApp loads config and credentials and wires every service. Bad key
// material or an unreachable journal file fail here, before the listener
// starts.
func NewApp() (*App, error) {
	cfg := config.Load()
	log := logger.New(cfg.LogDirectory)

	ctx := context.Background()
	creds, err := storage.LoadCredentials(ctx, cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("credentials: %w", err)
	}

	blobs, err := storage.NewDriveStore(ctx, creds, cfg.DriveFolderID)
	if err != nil {
		return nil, fmt.Errorf("blob store: %w", err)
	}

	rowLog, err := storage.NewSheetsLog(ctx, creds, cfg.SheetID, cfg.SheetRange)
	if err != nil {
		return nil, fmt.Errorf("tabular log: %w", err)
	}

	jr, err := journal.Open(cfg.JournalPath)
	if err != nil {
		return nil, fmt.Errorf("journal: %w", err)
	}

	hub := websocket.NewHubService(log)
	pipe := pipeline.New(blobs, rowLog, cfg, log)

	return &App{
		config:   cfg,
		logger:   log,
		journal:  jr,
		hub:      hub,
		pipeline: pipe,
	}, nil
}

func (a *App) Run() error {
	go a.hub.Run()

	router := routes.SetupRoutes(a.pipeline, a.journal, a.hub, a.config, a.logger)

	a.logger.Info("Telemetry collector listening on :%d", a.config.Port)
	a.logger.Info("Appending rows to sheet %s range %s", a.config.SheetID, a.config.SheetRange)
	a.logger.Info("Uploading captures to Drive folder %s", a.config.DriveFolderID)

	return http.ListenAndServe(fmt.Sprintf(":%d", a.config.Port), router)
}
