package workers

// Workers aggregates the application's background workers.
type Workers struct {
	workers []Worker
}

// NewWorkers bundles the given workers; Run and Stop fan out to all of them.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in order.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops every worker in reverse start order and waits for each.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
