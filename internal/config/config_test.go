// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"dario.cat/mergo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_DOWNLOAD_DIR": "/var/downloads",
		"APP_VERSION":      "1.2.3",

		"ADAPTER_ADDRESS":         "https://vault.example.com",
		"ADAPTER_REQUEST_TIMEOUT": "30s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "/var/downloads", cfg.App.DownloadDir)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "https://vault.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseEnv_EmptyEnvironment(t *testing.T) {
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Empty(t, cfg.Adapter.HTTPAddress)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"ADAPTER_REQUEST_TIMEOUT": "not-a-duration"})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
}

func TestParseJSON_AllFields(t *testing.T) {
	jsonBody := `{
		"app": {"download_dir": "/tmp/dl", "version": "0.9.0"},
		"adapter": {"http_address": "https://vault.local", "request_timeout": "45s"}
	}`
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(jsonBody), 0644))

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "/tmp/dl", cfg.App.DownloadDir)
	assert.Equal(t, "0.9.0", cfg.App.Version)
	assert.Equal(t, "https://vault.local", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseJSON_NumericTimeout(t *testing.T) {
	// Durations may also be given as nanosecond numbers.
	jsonBody := `{"adapter": {"request_timeout": 1000000000}}`
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(jsonBody), 0644))

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	require.Error(t, err)
}

func TestParseJSON_MalformedBody(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := parseJSON(path)
	require.Error(t, err)
}

// TestMerge_FirstNonZeroWins verifies the merge semantics the builder relies
// on: mergo keeps values already set by an earlier (higher-priority) source.
func TestMerge_FirstNonZeroWins(t *testing.T) {
	dst := &StructuredConfig{
		Adapter: Adapter{HTTPAddress: "https://from-env"},
	}
	src := &StructuredConfig{
		Adapter: Adapter{HTTPAddress: "https://from-json", RequestTimeout: time.Minute},
		App:     App{DownloadDir: "/from-json"},
	}

	require.NoError(t, mergo.Merge(dst, src))

	assert.Equal(t, "https://from-env", dst.Adapter.HTTPAddress)
	assert.Equal(t, time.Minute, dst.Adapter.RequestTimeout)
	assert.Equal(t, "/from-json", dst.App.DownloadDir)
}

func TestClientConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ClientConfig
		wantErr error
	}{
		{
			name: "valid",
			cfg: ClientConfig{
				App:     App{DownloadDir: "downloads"},
				Adapter: Adapter{HTTPAddress: "https://vault.local", RequestTimeout: time.Second},
			},
			wantErr: nil,
		},
		{
			name: "missing address",
			cfg: ClientConfig{
				App:     App{DownloadDir: "downloads"},
				Adapter: Adapter{RequestTimeout: time.Second},
			},
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name: "zero timeout",
			cfg: ClientConfig{
				App:     App{DownloadDir: "downloads"},
				Adapter: Adapter{HTTPAddress: "https://vault.local"},
			},
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name: "missing download dir",
			cfg: ClientConfig{
				Adapter: Adapter{HTTPAddress: "https://vault.local", RequestTimeout: time.Second},
			},
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
