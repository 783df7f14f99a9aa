package service

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_caller_mock.go -package=mock

import (
	"context"

	"github.com/mwiersma/grippsync/models"
)

// RemoteCaller executes one remote API call and blocks until it settles.
// In production this is the request queue; the orchestrator never talks to
// the outbound client directly, so every call it makes is paced and
// throttled with the rest of the process.
type RemoteCaller interface {
	Do(ctx context.Context, method string, filters []models.Filter, options *models.Options) (*models.CallResult, error)
}
