package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that call out to
// external services.
type HTTPConfig struct {
	// Timeout is the HTTP client timeout. Zero means no client-side timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with outgoing requests
	// (e.g. "art-explorer/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// ServerConfig holds settings for the enrichment proxy.
type ServerConfig struct {
	// Listen is the local listen address (default ":3000").
	Listen string `json:"listen" yaml:"listen" mapstructure:"listen" validate:"required"`

	// PublicDir is the static asset directory served at "/". Empty disables
	// static serving.
	PublicDir string `json:"public_dir" yaml:"public_dir" mapstructure:"public_dir"`

	// CORSOrigins is the CORS allow-list. Empty disables the CORS middleware.
	CORSOrigins []string `json:"cors_origins" yaml:"cors_origins" mapstructure:"cors_origins"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// CollectionConfig holds settings for the external collection API client.
type CollectionConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL is the collection API root; departments, search and objects
	// endpoints hang off it.
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url" validate:"required,url"`
}

// BreakerConfig tunes the optional circuit breaker around the translation
// backend.
type BreakerConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`

	// MaxRequests is the number of probes let through while half-open.
	MaxRequests uint32 `json:"max_requests" yaml:"max_requests" mapstructure:"max_requests"`

	// Interval resets the closed-state counts.
	Interval time.Duration `json:"interval" yaml:"interval" mapstructure:"interval"`

	// OpenTimeout is how long the breaker stays open before probing.
	OpenTimeout time.Duration `json:"open_timeout" yaml:"open_timeout" mapstructure:"open_timeout"`

	// MinRequests is the sample size required before the breaker may trip.
	MinRequests uint32 `json:"min_requests" yaml:"min_requests" mapstructure:"min_requests"`

	// FailureRatio trips the breaker once reached.
	FailureRatio float64 `json:"failure_ratio" yaml:"failure_ratio" mapstructure:"failure_ratio" validate:"gte=0,lte=1"`
}

// TranslateConfig holds settings for the translation backend.
type TranslateConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// TargetLang is the BCP 47 tag records are translated into (default "es").
	TargetLang string `json:"target_lang" yaml:"target_lang" mapstructure:"target_lang" validate:"required"`

	// Endpoint is the keyless translation endpoint.
	Endpoint string `json:"endpoint" yaml:"endpoint" mapstructure:"endpoint" validate:"required,url"`

	// CloudEndpoint is the keyed translation endpoint, used when APIKey is set.
	CloudEndpoint string `json:"cloud_endpoint" yaml:"cloud_endpoint" mapstructure:"cloud_endpoint" validate:"required,url"`

	// APIKey selects the keyed backend.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`

	Breaker BreakerConfig `json:"breaker" yaml:"breaker" mapstructure:"breaker"`
}

// FluentConfig configures the optional Fluent Bit log sink.
type FluentConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled" mapstructure:"enabled"`
	Host    string `json:"host" yaml:"host" mapstructure:"host" validate:"required_if=Enabled true"`
	Port    int    `json:"port" yaml:"port" mapstructure:"port"`
	Tag     string `json:"tag" yaml:"tag" mapstructure:"tag"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string       `json:"level" yaml:"level" mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string       `json:"format" yaml:"format" mapstructure:"format" validate:"oneof=console json text"`
	Fluent FluentConfig `json:"fluent" yaml:"fluent" mapstructure:"fluent"`
}

// BrowseConfig holds settings for the terminal catalog client.
type BrowseConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// ProxyURL is the root of a running enrichment proxy.
	ProxyURL string `json:"proxy_url" yaml:"proxy_url" mapstructure:"proxy_url" validate:"required,url"`

	// Lang selects the label bundle used to render cards.
	Lang string `json:"lang" yaml:"lang" mapstructure:"lang"`
}

// AppConfig groups all component configurations.
type AppConfig struct {
	Server     ServerConfig     `json:"server" yaml:"server" mapstructure:"server"`
	Collection CollectionConfig `json:"collection" yaml:"collection" mapstructure:"collection"`
	Translate  TranslateConfig  `json:"translate" yaml:"translate" mapstructure:"translate"`
	Log        LogConfig        `json:"log" yaml:"log" mapstructure:"log"`
	Browse     BrowseConfig     `json:"browse" yaml:"browse" mapstructure:"browse"`
}
