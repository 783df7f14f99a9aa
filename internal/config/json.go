package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Gripp struct {
		BaseURL           string   `json:"base_url"`
		Token             string   `json:"token"`
		Timeout           Duration `json:"timeout"`
		MaxRetries        int      `json:"max_retries"`
		RetryBase         Duration `json:"retry_base"`
		DefaultRetryAfter Duration `json:"default_retry_after"`
	} `json:"gripp,omitempty"`

	Queue struct {
		MaxConcurrent int      `json:"max_concurrent"`
		MinInterval   Duration `json:"min_interval"`
		MaxAttempts   int      `json:"max_attempts"`
	} `json:"queue,omitempty"`

	Sync struct {
		PageSize    int      `json:"page_size"`
		MaxPages    int      `json:"max_pages"`
		PageRetries int      `json:"page_retries"`
		RetryBase   Duration `json:"retry_base"`
		Interval    Duration `json:"interval"`
		FullEvery   int      `json:"full_every"`
	} `json:"sync,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Gripp: Gripp{
			BaseURL:           jsonCfg.Gripp.BaseURL,
			Token:             jsonCfg.Gripp.Token,
			Timeout:           time.Duration(jsonCfg.Gripp.Timeout),
			MaxRetries:        jsonCfg.Gripp.MaxRetries,
			RetryBase:         time.Duration(jsonCfg.Gripp.RetryBase),
			DefaultRetryAfter: time.Duration(jsonCfg.Gripp.DefaultRetryAfter),
		},
		Queue: Queue{
			MaxConcurrent: jsonCfg.Queue.MaxConcurrent,
			MinInterval:   time.Duration(jsonCfg.Queue.MinInterval),
			MaxAttempts:   jsonCfg.Queue.MaxAttempts,
		},
		Sync: Sync{
			PageSize:    jsonCfg.Sync.PageSize,
			MaxPages:    jsonCfg.Sync.MaxPages,
			PageRetries: jsonCfg.Sync.PageRetries,
			RetryBase:   time.Duration(jsonCfg.Sync.RetryBase),
			Interval:    time.Duration(jsonCfg.Sync.Interval),
			FullEvery:   jsonCfg.Sync.FullEvery,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
