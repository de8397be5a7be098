package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8000", cfg.ListenAddr)
	assert.Equal(t, "Welcome to FastAPI Demo", cfg.WelcomeMessage)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.Payments.ProcessorDelay)
	assert.Equal(t, 1000, cfg.Payments.FetchCount)
	assert.Equal(t, 10*time.Millisecond, cfg.Payments.FetchDelay)
	assert.Equal(t, 10000, cfg.Payments.LogLines)
	assert.Equal(t, 100000, cfg.Payments.HistorySize)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("PAYMENT_PROCESSOR_DELAY", "250ms")
	t.Setenv("PAYMENT_HISTORY_SIZE", "42")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 250*time.Millisecond, cfg.Payments.ProcessorDelay)
	assert.Equal(t, 42, cfg.Payments.HistorySize)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("PAYMENT_FETCH_COUNT", "many")
	t.Setenv("PAYMENT_FETCH_DELAY", "-1s")
	t.Setenv("MAX_BODY_BYTES", "-5")

	cfg := Load()

	assert.Equal(t, 1000, cfg.Payments.FetchCount)
	assert.Equal(t, 10*time.Millisecond, cfg.Payments.FetchDelay)
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
}
