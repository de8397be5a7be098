package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	ListenAddr      string        // HTTP listen address
	AppTitle        string        // Reported in the startup log
	AppVersion      string        // Reported in the startup log
	WelcomeMessage  string        // Body of GET /
	LogLevel        string        // debug, info, warn or error
	LogFormat       string        // text (tint) or json
	AllowedOrigins  []string      // CORS allowed origins
	MaxBodyBytes    int64         // Request body size limit
	ShutdownTimeout time.Duration // Grace period for in-flight requests

	Payments PaymentsConfig
}

// PaymentsConfig tunes the simulated payment flow.
type PaymentsConfig struct {
	ProcessorDelay time.Duration // Simulated external processor latency
	FetchCount     int           // Directory lookups per charge
	FetchDelay     time.Duration // Latency of a single directory lookup
	LogLines       int           // Lines written to the transaction log
	HistorySize    int           // Records returned by the history endpoint
}

// Load reads configuration from environment variables, falling back to defaults.
func Load() *Config {
	return &Config{
		ListenAddr:      envOrDefault("LISTEN_ADDR", ":8000"),
		AppTitle:        envOrDefault("APP_TITLE", "Demo API"),
		AppVersion:      envOrDefault("APP_VERSION", "1.0.0"),
		WelcomeMessage:  envOrDefault("WELCOME_MESSAGE", "Welcome to FastAPI Demo"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "text"),
		AllowedOrigins:  envOrDefaultList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		MaxBodyBytes:    envOrDefaultInt64("MAX_BODY_BYTES", 1<<20),
		ShutdownTimeout: envOrDefaultDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		Payments: PaymentsConfig{
			ProcessorDelay: envOrDefaultDuration("PAYMENT_PROCESSOR_DELAY", 5*time.Second),
			FetchCount:     envOrDefaultInt("PAYMENT_FETCH_COUNT", 1000),
			FetchDelay:     envOrDefaultDuration("PAYMENT_FETCH_DELAY", 10*time.Millisecond),
			LogLines:       envOrDefaultInt("PAYMENT_LOG_LINES", 10000),
			HistorySize:    envOrDefaultInt("PAYMENT_HISTORY_SIZE", 100000),
		},
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrDefaultInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func envOrDefaultInt(key string, fallback int) int {
	return int(envOrDefaultInt64(key, int64(fallback)))
}

func envOrDefaultDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return fallback
	}
	return d
}

// envOrDefaultList splits a comma-separated value, dropping empty entries.
func envOrDefaultList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
