// Package config loads service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Catalog backends.
const (
	CatalogMemory  = "memory"
	CatalogSpanner = "spanner"
)

// Cart snapshot stores.
const (
	CartStoreMemory = "memory"
	CartStoreRedis  = "redis"
)

// Config holds application configuration.
type Config struct {
	Env             string
	HTTPPort        string
	GRPCPort        string
	CatalogBackend  string
	SpannerDB       string
	CartStore       string
	RedisURL        string
	CartTTL         time.Duration
	RateLimitRPS    float64
	RateLimitBurst  int
	DefaultPriceMax string
	EnforceStock    bool
	CORSOrigins     []string

	// OTLPEndpoint is the host:port of an OTLP/gRPC trace collector; empty
	// disables trace export
	OTLPEndpoint     string
	OTLPInsecure     bool
	ServiceName      string
	TraceSampleRatio float64
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv reads configuration from the process environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		Env:             getEnv("APP_ENV", "development"),
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		GRPCPort:        getEnv("GRPC_PORT", "9090"),
		CatalogBackend:  getEnv("CATALOG_BACKEND", CatalogMemory),
		SpannerDB:       getEnv("SPANNER_DATABASE", "projects/test-project/instances/dev-instance/databases/shopfront-db"),
		CartStore:       getEnv("CART_STORE", CartStoreMemory),
		RedisURL:        getEnv("REDIS_URL", "redis://localhost:6379/0"),
		DefaultPriceMax: getEnv("DEFAULT_PRICE_MAX", "1000"),
		OTLPEndpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		ServiceName:     getEnv("OTEL_SERVICE_NAME", "shopfront-service"),
	}

	cfg.CORSOrigins = splitList(getEnv("CORS_ORIGINS", "http://localhost:3000"))

	var err error
	if cfg.CartTTL, err = time.ParseDuration(getEnv("CART_TTL", "24h")); err != nil {
		return Config{}, fmt.Errorf("invalid CART_TTL: %w", err)
	}
	if cfg.RateLimitRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "50"), 64); err != nil {
		return Config{}, fmt.Errorf("invalid RATE_LIMIT_RPS: %w", err)
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(getEnv("RATE_LIMIT_BURST", "100")); err != nil {
		return Config{}, fmt.Errorf("invalid RATE_LIMIT_BURST: %w", err)
	}
	if cfg.EnforceStock, err = strconv.ParseBool(getEnv("ENFORCE_STOCK", "false")); err != nil {
		return Config{}, fmt.Errorf("invalid ENFORCE_STOCK: %w", err)
	}
	if cfg.OTLPInsecure, err = strconv.ParseBool(getEnv("OTEL_EXPORTER_OTLP_INSECURE", "true")); err != nil {
		return Config{}, fmt.Errorf("invalid OTEL_EXPORTER_OTLP_INSECURE: %w", err)
	}
	if cfg.TraceSampleRatio, err = strconv.ParseFloat(getEnv("OTEL_TRACES_SAMPLER_ARG", "1"), 64); err != nil {
		return Config{}, fmt.Errorf("invalid OTEL_TRACES_SAMPLER_ARG: %w", err)
	}
	if cfg.TraceSampleRatio < 0 || cfg.TraceSampleRatio > 1 {
		return Config{}, fmt.Errorf("invalid OTEL_TRACES_SAMPLER_ARG %v: must be within [0, 1]", cfg.TraceSampleRatio)
	}

	switch cfg.CatalogBackend {
	case CatalogMemory, CatalogSpanner:
	default:
		return Config{}, fmt.Errorf("invalid CATALOG_BACKEND %q", cfg.CatalogBackend)
	}

	switch cfg.CartStore {
	case CartStoreMemory, CartStoreRedis:
	default:
		return Config{}, fmt.Errorf("invalid CART_STORE %q", cfg.CartStore)
	}

	return cfg, nil
}

// splitList splits a comma separated value, dropping empty items. "none"
// yields an empty list.
func splitList(raw string) []string {
	if strings.EqualFold(strings.TrimSpace(raw), "none") {
		return nil
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
