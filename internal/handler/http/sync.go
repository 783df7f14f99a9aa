package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/mwiersma/grippsync/internal/logger"
	"github.com/mwiersma/grippsync/internal/service"
	"github.com/mwiersma/grippsync/internal/utils"
)

// triggerResponse is the body of an accepted manual trigger.
type triggerResponse struct {
	RunID string `json:"run_id"`
}

// triggerSync starts a background run. Optional query parameters: repeated
// "entity" narrows the run to the named entities, "full" forces a full
// refetch. A run already in progress yields 409.
func (h *Handler) triggerSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	opts := service.RunOptions{
		Entities: r.URL.Query()["entity"],
	}

	if rawFull := r.URL.Query().Get("full"); rawFull != "" {
		full, err := strconv.ParseBool(rawFull)
		if err != nil {
			log.Warn().Str("func", "*Handler.triggerSync").Str("full", rawFull).Msg("invalid full parameter")
			http.Error(w, "invalid full parameter", http.StatusBadRequest)
			return
		}
		opts.Full = full
	}

	runID, err := h.syncService.Trigger(ctx, opts)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRunInProgress):
			log.Info().Str("func", "*Handler.triggerSync").Msg("trigger rejected, run in progress")
			http.Error(w, "sync run already in progress", http.StatusConflict)
		case errors.Is(err, service.ErrUnknownEntity):
			log.Warn().Str("func", "*Handler.triggerSync").Err(err).Msg("trigger rejected, unknown entity")
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.Err(err).Str("func", "*Handler.triggerSync").Msg("error starting sync run")
			http.Error(w, "error starting sync run", http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, triggerResponse{RunID: runID}, http.StatusAccepted)
}

// syncStatus returns the bookkeeping rows of every mirrored entity.
func (h *Handler) syncStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	statuses, err := h.syncService.Status(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.syncStatus").Msg("error reading sync statuses")
		http.Error(w, "error reading sync statuses", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, statuses, http.StatusOK)
}
