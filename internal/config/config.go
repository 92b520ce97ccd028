package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config contains runtime configuration for the API process.
type Config struct {
	AppEnv          string
	HTTPPort        string
	LogLevel        string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	GraphiQL        bool
	SeedData        bool
}

// Load reads the environment. A value that is set but does not parse is
// an error, never a silent fallback to the default.
func Load() (Config, error) {
	var errs []error

	cfg := Config{
		AppEnv:          getEnv("APP_ENV", "development"),
		HTTPPort:        getEnv("HTTP_PORT", "4000"),
		LogLevel:        getEnv("LOG_LEVEL", ""),
		RequestTimeout:  getDuration("REQUEST_TIMEOUT", 20*time.Second, &errs),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 15*time.Second, &errs),
		GraphiQL:        getBool("GRAPHIQL", true, &errs),
		SeedData:        getBool("SEED_DATA", true, &errs),
	}
	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}

	port, err := strconv.Atoi(cfg.HTTPPort)
	if err != nil || port < 1 || port > 65535 {
		return Config{}, errors.New("HTTP_PORT must be a port number between 1 and 65535")
	}
	if cfg.RequestTimeout <= 0 {
		return Config{}, errors.New("REQUEST_TIMEOUT must be positive")
	}
	if cfg.ShutdownTimeout <= 0 {
		return Config{}, errors.New("SHUTDOWN_TIMEOUT must be positive")
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getDuration(key string, def time.Duration, errs *[]error) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s must be a duration such as 20s: %w", key, err))
		return def
	}
	return d
}

func getBool(key string, def bool, errs *[]error) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s must be true or false: %w", key, err))
		return def
	}
	return b
}
