// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Study Sesh Authors

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_ServerConfig(t *testing.T) {
	t.Setenv("AUTH_TOKEN_SIGN_KEY", "env-sign-key")
	t.Setenv("AUTH_TOKEN_ISSUER", "env-issuer")
	t.Setenv("AUTH_TOKEN_DURATION", "168h")
	t.Setenv("AUTH_BCRYPT_COST", "12")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:5300")
	t.Setenv("ASSISTANT_API_KEY", "sk-env")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "env-sign-key", cfg.Auth.TokenSignKey)
	assert.Equal(t, "env-issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, "postgres://env", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:5300", cfg.Server.HTTPAddress)
	assert.Equal(t, "sk-env", cfg.Assistant.APIKey)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("AUTH_TOKEN_DURATION", "not-a-duration")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestGetClientConfig_Defaults(t *testing.T) {
	cfg, err := GetClientConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5300", cfg.Adapter.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.NotEmpty(t, cfg.Storage.SQLitePath)
}

func TestGetClientConfig_EnvOverride(t *testing.T) {
	t.Setenv("ADAPTER_BASE_URL", "http://api.example.com")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "5s")
	t.Setenv("STORAGE_SQLITE_PATH", "/tmp/study.db")

	cfg, err := GetClientConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://api.example.com", cfg.Adapter.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/study.db", cfg.Storage.SQLitePath)
}
