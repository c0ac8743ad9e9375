// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/art-explorer/internal/collection"
	"github.com/pdiddy/art-explorer/internal/secrets"
	"github.com/pdiddy/art-explorer/internal/translate"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	BindEnv(v)
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newViper(), nil)
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Server.Listen)
	assert.Equal(t, "public", cfg.Server.PublicDir)
	assert.Empty(t, cfg.Server.CORSOrigins)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, collection.DefaultBaseURL, cfg.Collection.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Collection.Timeout)
	assert.Equal(t, "art-explorer/0.1", cfg.Collection.UserAgent)
	assert.Equal(t, "es", cfg.Translate.TargetLang)
	assert.Equal(t, translate.DefaultGTXEndpoint, cfg.Translate.Endpoint)
	assert.Equal(t, translate.DefaultCloudEndpoint, cfg.Translate.CloudEndpoint)
	assert.Empty(t, cfg.Translate.APIKey)
	assert.Zero(t, cfg.Translate.Timeout)
	assert.False(t, cfg.Translate.Breaker.Enabled)
	assert.Equal(t, 0.6, cfg.Translate.Breaker.FailureRatio)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 24224, cfg.Log.Fluent.Port)
	assert.Equal(t, "http://localhost:3000", cfg.Browse.ProxyURL)
	assert.Equal(t, "es", cfg.Browse.Lang, "browse language follows the target language")
}

func TestLoad_SecretFillsAPIKey(t *testing.T) {
	cfg, err := Load(newViper(), map[string]string{secrets.TranslateAPIKey: "from-file"})
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Translate.APIKey)

	v := newViper()
	v.Set("translate.api_key", "explicit")
	cfg, err = Load(v, map[string]string{secrets.TranslateAPIKey: "from-file"})
	require.NoError(t, err)
	assert.Equal(t, "explicit", cfg.Translate.APIKey)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("ART_EXPLORER_SERVER_LISTEN", ":8080")
	t.Setenv("ART_EXPLORER_TRANSLATE_TARGET_LANG", "fr")
	t.Setenv("ART_EXPLORER_COLLECTION_TIMEOUT", "5s")
	t.Setenv("ART_EXPLORER_LOG_LEVEL", "DEBUG")

	cfg, err := Load(newViper(), nil)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, "fr", cfg.Translate.TargetLang)
	assert.Equal(t, 5*time.Second, cfg.Collection.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_LogLevelAliases(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"warning", "warn"},
		{"WARNING", "warn"},
		{" Warn ", "warn"},
		{"Error", "error"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v := newViper()
			v.Set("log.level", tt.in)
			cfg, err := Load(v, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Log.Level)
		})
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "art-explorer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  listen: ":9000"
  cors_origins: ["http://localhost:5173"]
translate:
  target_lang: de
  breaker:
    enabled: true
    min_requests: 4
log:
  format: json
`), 0o644))

	v := newViper()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v, nil)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Listen)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "de", cfg.Translate.TargetLang)
	assert.True(t, cfg.Translate.Breaker.Enabled)
	assert.EqualValues(t, 4, cfg.Translate.Breaker.MinRequests)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		value  any
		errMsg string
	}{
		{"bad base url", "collection.base_url", "not a url", "BaseURL must be a URL"},
		{"empty listen", "server.listen", "", "Listen is required"},
		{"bad log level", "log.level", "loud", "Level must be one of"},
		{"bad log format", "log.format", "xml", "Format must be one of"},
		{"fluent without host", "log.fluent.enabled", true, "Host is required"},
		{"failure ratio above one", "translate.breaker.failure_ratio", 1.5, "FailureRatio failed lte=1"},
		{"unparseable language", "translate.target_lang", "not_a_language!", "translate.target_lang"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newViper()
			v.Set(tt.key, tt.value)
			_, err := Load(v, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
