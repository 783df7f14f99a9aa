package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_PopulatesAllSections(t *testing.T) {
	content := `{
		"gripp": {
			"base_url": "https://api.example.test/public/api3.php",
			"token": "secret",
			"timeout": "15s",
			"max_retries": 4,
			"retry_base": "500ms",
			"default_retry_after": "5s"
		},
		"queue": {"max_concurrent": 2, "min_interval": "250ms", "max_attempts": 5},
		"sync": {"page_size": 100, "max_pages": 1000, "page_retries": 3, "retry_base": "1s", "interval": "15m", "full_every": 24},
		"storage": {"db": {"dsn": "postgres://localhost/mirror"}},
		"server": {"http_address": "localhost:8080", "request_timeout": "30s"}
	}`

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.test/public/api3.php", cfg.Gripp.BaseURL)
	assert.Equal(t, "secret", cfg.Gripp.Token)
	assert.Equal(t, 15*time.Second, cfg.Gripp.Timeout)
	assert.Equal(t, 4, cfg.Gripp.MaxRetries)
	assert.Equal(t, 2, cfg.Queue.MaxConcurrent)
	assert.Equal(t, 250*time.Millisecond, cfg.Queue.MinInterval)
	assert.Equal(t, 100, cfg.Sync.PageSize)
	assert.Equal(t, 1000, cfg.Sync.MaxPages)
	assert.Equal(t, 15*time.Minute, cfg.Sync.Interval)
	assert.Equal(t, "postgres://localhost/mirror", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
}

func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string form", input: `"1h30m"`, want: 90 * time.Minute},
		{name: "numeric nanoseconds", input: `1000000000`, want: time.Second},
		{name: "garbage", input: `"not-a-duration"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}
