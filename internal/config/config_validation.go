// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if strings.TrimSpace(cfg.Gripp.BaseURL) == "" {
		errs = append(errs, fmt.Errorf("%w: remote base url is required", ErrInvalidGrippConfigs))
	}
	if strings.TrimSpace(cfg.Gripp.Token) == "" {
		errs = append(errs, fmt.Errorf("%w: remote bearer token is required", ErrInvalidGrippConfigs))
	}
	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		errs = append(errs, fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs))
	}
	if cfg.Queue.MaxConcurrent < 0 {
		errs = append(errs, fmt.Errorf("%w: max concurrent must not be negative", ErrInvalidQueueConfigs))
	}
	if cfg.Sync.PageSize < 0 || cfg.Sync.MaxPages < 0 {
		errs = append(errs, fmt.Errorf("%w: page size and max pages must not be negative", ErrInvalidSyncConfigs))
	}

	return errors.Join(errs...)
}
