// Package config loads service configuration from BOOKING_* environment
// variables with sensible defaults for local development.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ServiceConfig holds all configuration for the booking service.
type ServiceConfig struct {
	Port           string
	AppEnv         string
	DataDir        string
	JWTSecret      string
	TokenTTL       time.Duration
	KafkaBrokers   []string
	GuardedCreate  bool
	AllowedOrigins []string
}

// Load reads configuration from the environment. Kafka brokers are
// optional: an empty value disables event publishing.
func Load() (*ServiceConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("BOOKING")
	v.AutomaticEnv()

	v.SetDefault("SERVICE_PORT", ":8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DATA_DIR", "./data")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("TOKEN_TTL_MINUTES", 8*60)
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("GUARDED_CREATE", false)
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:5500")

	cfg := &ServiceConfig{
		Port:           normalizePort(v.GetString("SERVICE_PORT")),
		AppEnv:         v.GetString("APP_ENV"),
		DataDir:        v.GetString("DATA_DIR"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		TokenTTL:       time.Duration(v.GetInt("TOKEN_TTL_MINUTES")) * time.Minute,
		KafkaBrokers:   splitList(v.GetString("KAFKA_BROKERS")),
		GuardedCreate:  v.GetBool("GUARDED_CREATE"),
		AllowedOrigins: splitList(v.GetString("ALLOWED_ORIGINS")),
	}

	if cfg.AppEnv != "development" && cfg.JWTSecret == "" {
		return nil, fmt.Errorf("BOOKING_JWT_SECRET is required outside development")
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-only-secret"
	}

	return cfg, nil
}

func normalizePort(port string) string {
	if port == "" {
		return ":8080"
	}
	if !strings.HasPrefix(port, ":") {
		return ":" + port
	}
	return port
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
