// Package http exposes the sync trigger and status surface over HTTP.
package http

import (
	"context"

	"github.com/mwiersma/grippsync/internal/logger"
	"github.com/mwiersma/grippsync/internal/service"
	"github.com/mwiersma/grippsync/models"
)

// SyncService is the slice of the orchestrator the HTTP surface needs.
type SyncService interface {
	// Trigger starts a background run and returns its id, or
	// service.ErrRunInProgress while one is active.
	Trigger(ctx context.Context, opts service.RunOptions) (string, error)

	// Status returns the bookkeeping rows of every mirrored entity.
	Status(ctx context.Context) ([]models.SyncStatus, error)
}

type Handler struct {
	syncService SyncService

	logger *logger.Logger
}

func NewHandler(syncService SyncService, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		syncService: syncService,
		logger:      logger,
	}
}
