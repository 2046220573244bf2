package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "localhost:5300",
		"-d", "postgres://flag",
		"-token-sign-key", "flag-key",
		"-token-issuer", "flag-issuer",
		"-token-duration", "168h",
		"-bcrypt-cost", "10",
		"-request-timeout", "30s",
		"-assistant-url", "https://openrouter.ai/api/v1",
		"-assistant-model", "mistralai/mistral-7b-instruct",
		"-assistant-max-tokens", "500",
		"-c", "/etc/study-sesh.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:5300", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://flag", cfg.Storage.DB.DSN)
	assert.Equal(t, "flag-key", cfg.Auth.TokenSignKey)
	assert.Equal(t, "flag-issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.Assistant.BaseURL)
	assert.Equal(t, "mistralai/mistral-7b-instruct", cfg.Assistant.Model)
	assert.Equal(t, 500, cfg.Assistant.MaxTokens)
	assert.Equal(t, "/etc/study-sesh.json", cfg.JSONFilePath)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)

	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.Auth.TokenDuration)
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		want    string
	}{
		{name: "localhost", input: "localhost:5300", want: "localhost:5300"},
		{name: "ip address", input: "127.0.0.1:8080", want: "127.0.0.1:8080"},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "bad port", input: "localhost:zero", wantErr: true},
		{name: "negative port", input: "localhost:-1", wantErr: true},
		{name: "bad host", input: "not an ip:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}

func TestNetAddress_String_Empty(t *testing.T) {
	var a NetAddress
	assert.Empty(t, a.String())
}
