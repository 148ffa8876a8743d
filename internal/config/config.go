package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config carries all process configuration. Every value is resolved from the
// environment at startup; secrets (provider API keys) are never compiled in.
type Config struct {
	ServiceName string
	Environment string
	HTTPAddr    string
	DatabaseURL string

	Asaas    AsaasConfig
	Klaviyo  KlaviyoConfig
	Tracing  TracingConfig
	Bootstrap BootstrapConfig

	// UpstreamTimeout bounds each outbound provider call.
	UpstreamTimeout time.Duration
}

// AsaasConfig configures the Asaas billing API client.
type AsaasConfig struct {
	BaseURL string
	// FallbackAPIKey is the shared last-resort credential used when a client
	// has no enabled key of its own. Empty means no fallback exists.
	FallbackAPIKey string
}

// KlaviyoConfig configures the Klaviyo marketing API client.
type KlaviyoConfig struct {
	BaseURL string
}

// TracingConfig configures the OTLP trace exporter.
type TracingConfig struct {
	Enabled          bool
	ExporterEndpoint string
	ExporterProtocol string
	SamplingRatio    float64
}

// BootstrapConfig controls startup seeding.
type BootstrapConfig struct {
	EnsureAdminClient bool
}

const (
	defaultHTTPAddr        = ":8080"
	defaultAsaasBaseURL    = "https://api.asaas.com/v3"
	defaultKlaviyoBaseURL  = "https://a.klaviyo.com"
	defaultUpstreamTimeout = 10 * time.Second
)

// Load builds a Config from the environment.
func Load() (Config, error) {
	cfg := Config{
		ServiceName: envOr("SERVICE_NAME", "convertfy-insights"),
		Environment: envOr("ENVIRONMENT", "development"),
		HTTPAddr:    envOr("HTTP_ADDR", defaultHTTPAddr),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		Asaas: AsaasConfig{
			BaseURL:        envOr("ASAAS_BASE_URL", defaultAsaasBaseURL),
			FallbackAPIKey: strings.TrimSpace(os.Getenv("ASAAS_FALLBACK_API_KEY")),
		},
		Klaviyo: KlaviyoConfig{
			BaseURL: envOr("KLAVIYO_BASE_URL", defaultKlaviyoBaseURL),
		},
		Tracing: TracingConfig{
			Enabled:          envBool("TRACING_ENABLED", false),
			ExporterEndpoint: strings.TrimSpace(os.Getenv("TRACING_EXPORTER_ENDPOINT")),
			ExporterProtocol: envOr("TRACING_EXPORTER_PROTOCOL", "http"),
			SamplingRatio:    envFloat("TRACING_SAMPLING_RATIO", 0.1),
		},
		Bootstrap: BootstrapConfig{
			EnsureAdminClient: envBool("BOOTSTRAP_ENSURE_ADMIN_CLIENT", true),
		},
		UpstreamTimeout: defaultUpstreamTimeout,
	}

	if raw := strings.TrimSpace(os.Getenv("UPSTREAM_TIMEOUT")); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid UPSTREAM_TIMEOUT %q: %w", raw, err)
		}
		cfg.UpstreamTimeout = timeout
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

// IsProduction reports whether the process runs with production settings.
func (c Config) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(c.Environment), "production")
}

func envOr(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return value
}

func envFloat(key string, fallback float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return value
}
