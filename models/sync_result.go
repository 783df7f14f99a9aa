package models

import "time"

// SyncResult is the structured outcome of one entity routine inside a run.
// A non-nil Err means the entity's mirror writes were rolled back; skipped
// pages and rows are partial failures that do not fail the entity.
type SyncResult struct {
	Entity string `json:"entity"`
	Mode   string `json:"mode"`

	Rows         int `json:"rows"`
	RowsSkipped  int `json:"rows_skipped,omitempty"`
	PagesFetched int `json:"pages_fetched"`
	PagesFailed  int `json:"pages_failed,omitempty"`

	Err error `json:"-"`
}

// RunReport aggregates the per-entity results of one scheduler or manual
// run. RunID ties log lines and results of the same run together.
type RunReport struct {
	RunID      string       `json:"run_id"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
	Results    []SyncResult `json:"results"`
}

// Failed reports whether any entity routine ended with an unrecoverable
// error.
func (r *RunReport) Failed() bool {
	for _, res := range r.Results {
		if res.Err != nil {
			return true
		}
	}
	return false
}
