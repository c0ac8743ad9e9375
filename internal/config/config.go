// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config assembles and validates the application configuration from
// viper (flags, environment, config file) and the loaded secrets.
package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/pdiddy/art-explorer/internal/collection"
	"github.com/pdiddy/art-explorer/internal/secrets"
	"github.com/pdiddy/art-explorer/internal/translate"
	"github.com/pdiddy/art-explorer/pkg/types"
)

// EnvPrefix is prepended to environment variable names, so that
// translate.target_lang is read from ART_EXPLORER_TRANSLATE_TARGET_LANG.
const EnvPrefix = "ART_EXPLORER"

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// SetDefaults registers every key's default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.listen", ":3000")
	v.SetDefault("server.public_dir", "public")
	v.SetDefault("server.cors_origins", []string{})
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("collection.base_url", collection.DefaultBaseURL)
	v.SetDefault("collection.timeout", 30*time.Second)
	v.SetDefault("collection.user_agent", "art-explorer/0.1")

	v.SetDefault("translate.target_lang", "es")
	v.SetDefault("translate.endpoint", translate.DefaultGTXEndpoint)
	v.SetDefault("translate.cloud_endpoint", translate.DefaultCloudEndpoint)
	v.SetDefault("translate.api_key", "")
	v.SetDefault("translate.timeout", time.Duration(0))
	v.SetDefault("translate.user_agent", "art-explorer/0.1")
	v.SetDefault("translate.breaker.enabled", false)
	v.SetDefault("translate.breaker.max_requests", 1)
	v.SetDefault("translate.breaker.interval", time.Minute)
	v.SetDefault("translate.breaker.open_timeout", 30*time.Second)
	v.SetDefault("translate.breaker.min_requests", 10)
	v.SetDefault("translate.breaker.failure_ratio", 0.6)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.fluent.enabled", false)
	v.SetDefault("log.fluent.host", "")
	v.SetDefault("log.fluent.port", 24224)
	v.SetDefault("log.fluent.tag", "art-explorer")

	v.SetDefault("browse.proxy_url", "http://localhost:3000")
	v.SetDefault("browse.timeout", 30*time.Second)
	v.SetDefault("browse.user_agent", "art-explorer/0.1")
	v.SetDefault("browse.lang", "")
}

// BindEnv makes every key readable from the ART_EXPLORER_ environment.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load unmarshals v into an AppConfig, fills the translation key from
// secrets when none was configured, and validates the result.
func Load(v *viper.Viper, loaded map[string]string) (types.AppConfig, error) {
	var cfg types.AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding configuration: %w", err)
	}

	if cfg.Translate.APIKey == "" {
		cfg.Translate.APIKey = loaded[secrets.TranslateAPIKey]
	}
	if cfg.Browse.Lang == "" {
		cfg.Browse.Lang = cfg.Translate.TargetLang
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if cfg.Log.Level == "warning" {
		cfg.Log.Level = "warn"
	}

	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks struct constraints and that the language tags parse.
func Validate(cfg types.AppConfig) error {
	if err := validatorInstance().Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fieldMessage(fe))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if _, err := language.Parse(cfg.Translate.TargetLang); err != nil {
		return fmt.Errorf("invalid configuration: translate.target_lang %q: %w", cfg.Translate.TargetLang, err)
	}
	if _, err := language.Parse(cfg.Browse.Lang); err != nil {
		return fmt.Errorf("invalid configuration: browse.lang %q: %w", cfg.Browse.Lang, err)
	}
	return nil
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "required", "required_if":
		return field + " is required"
	case "url":
		return fmt.Sprintf("%s must be a URL, got %q", field, fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s=%s", field, fe.Tag(), fe.Param())
	}
}
