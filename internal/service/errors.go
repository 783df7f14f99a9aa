package service

import "errors"

var (
	// ErrRunInProgress is returned when a run is requested while another
	// one is still walking the entities. At most one run executes at a
	// time; callers are expected to retry later.
	ErrRunInProgress = errors.New("sync run already in progress")

	// ErrUnknownEntity is returned when a run is requested for an entity
	// name that is not mirrored.
	ErrUnknownEntity = errors.New("unknown sync entity")
)
