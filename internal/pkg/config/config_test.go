package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "HTTP_PORT", "CATALOG_BACKEND", "CART_STORE", "CART_TTL", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "ENFORCE_STOCK", "DEFAULT_PRICE_MAX", "CORS_ORIGINS", "OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_EXPORTER_OTLP_INSECURE", "OTEL_SERVICE_NAME", "OTEL_TRACES_SAMPLER_ARG"} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, CatalogMemory, cfg.CatalogBackend)
	assert.Equal(t, CartStoreMemory, cfg.CartStore)
	assert.Equal(t, 24*time.Hour, cfg.CartTTL)
	assert.Equal(t, 50.0, cfg.RateLimitRPS)
	assert.Equal(t, 100, cfg.RateLimitBurst)
	assert.Equal(t, "1000", cfg.DefaultPriceMax)
	assert.False(t, cfg.EnforceStock)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.Empty(t, cfg.OTLPEndpoint)
	assert.True(t, cfg.OTLPInsecure)
	assert.Equal(t, "shopfront-service", cfg.ServiceName)
	assert.Equal(t, 1.0, cfg.TraceSampleRatio)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("CATALOG_BACKEND", "spanner")
	t.Setenv("CART_STORE", "redis")
	t.Setenv("CART_TTL", "90m")
	t.Setenv("ENFORCE_STOCK", "true")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, CatalogSpanner, cfg.CatalogBackend)
	assert.Equal(t, CartStoreRedis, cfg.CartStore)
	assert.Equal(t, 90*time.Minute, cfg.CartTTL)
	assert.True(t, cfg.EnforceStock)
}

func TestFromEnv_CORSOrigins(t *testing.T) {
	t.Setenv("CORS_ORIGINS", " https://shop.example.com, ,http://localhost:5173 ")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://shop.example.com", "http://localhost:5173"}, cfg.CORSOrigins)

	t.Setenv("CORS_ORIGINS", "none")
	cfg, err = FromEnv()
	require.NoError(t, err)
	assert.Empty(t, cfg.CORSOrigins)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"CART_TTL", "soon"},
		{"RATE_LIMIT_RPS", "fast"},
		{"RATE_LIMIT_BURST", "1.5"},
		{"ENFORCE_STOCK", "maybe"},
		{"CATALOG_BACKEND", "postgres"},
		{"CART_STORE", "memcached"},
		{"OTEL_EXPORTER_OTLP_INSECURE", "sometimes"},
		{"OTEL_TRACES_SAMPLER_ARG", "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := FromEnv()
			assert.ErrorContains(t, err, tt.key)
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("GRPC_PORT=7070\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
		_ = os.Unsetenv("GRPC_PORT")
	})
	t.Setenv("GRPC_PORT", "")
	require.NoError(t, os.Unsetenv("GRPC_PORT"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.GRPCPort)
}

func TestLoad_MissingDotEnv(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	_, err = Load()
	assert.NoError(t, err)
}
