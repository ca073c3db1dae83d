package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/FruitReels_Go/internal/domain"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"gte=1,lte=65535"`
	Environment string `validate:"required"`
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	LogDir      string

	// Game
	CostPerRoll      int `validate:"gt=0"`
	ReelCount        int `validate:"eq=3"`
	TotalSymbolCount int `validate:"gt=0"`
	InitialWinnings  int
	CatalogPath      string
	Locale           string `validate:"bcp47_language_tag"` // Number formatting of result messages

	// Reel timing
	TimingMinUnits int           `validate:"gte=1"`
	TimingMaxUnits int           `validate:"gtefield=TimingMinUnits"`
	TimingUnit     time.Duration `validate:"gt=0"`

	// Session
	ResetPolicy string        `validate:"oneof=keep cancel"`
	HistorySize int           `validate:"gt=0"`
	HistoryTTL  time.Duration `validate:"gte=0"`

	// Payout workers
	WorkerCount     int `validate:"gte=1"`
	WorkerQueueSize int `validate:"gte=1"`

	// HTTP
	CORSAllowedOrigins []string      `validate:"min=1,dive,required"`
	ShutdownTimeout    time.Duration `validate:"gt=0"`
	TrustedProxies     []string      `validate:"dive,ip"` // Peers allowed to set X-Forwarded-For
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	var errs []error
	intVar := func(key string, def int) int {
		v, err := getEnvAsInt(key, def)
		errs = append(errs, err)
		return v
	}
	durationVar := func(key string, def time.Duration) time.Duration {
		v, err := getEnvAsDuration(key, def)
		errs = append(errs, err)
		return v
	}

	cfg := &Config{
		Port:        intVar(EnvPort, DefaultPort),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		LogLevel:    strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		LogDir:      getEnv(EnvLogDir, ""),

		CostPerRoll:      intVar(EnvCostPerRoll, DefaultCostPerRoll),
		ReelCount:        intVar(EnvReelCount, DefaultReelCount),
		TotalSymbolCount: intVar(EnvTotalSymbolCount, DefaultTotalSymbolCount),
		InitialWinnings:  intVar(EnvInitialWinnings, DefaultInitialWinnings),
		CatalogPath:      getEnv(EnvCatalogPath, DefaultCatalogPath),
		Locale:           getEnv(EnvLocale, DefaultLocale),

		TimingMinUnits: intVar(EnvTimingMinUnits, DefaultTimingMinUnits),
		TimingMaxUnits: intVar(EnvTimingMaxUnits, DefaultTimingMaxUnits),
		TimingUnit:     durationVar(EnvTimingUnit, DefaultTimingUnit),

		ResetPolicy: strings.ToLower(getEnv(EnvResetPolicy, DefaultResetPolicy)),
		HistorySize: intVar(EnvHistorySize, DefaultHistorySize),
		HistoryTTL:  durationVar(EnvHistoryTTL, DefaultHistoryTTL),

		WorkerCount:     intVar(EnvWorkerCount, DefaultWorkerCount),
		WorkerQueueSize: intVar(EnvWorkerQueueSize, DefaultWorkerQueueSize),

		CORSAllowedOrigins: getEnvAsList(EnvCORSOrigins, DefaultCORSOrigins),
		ShutdownTimeout:    durationVar(EnvShutdownTimeout, DefaultShutdownTimeout),
		TrustedProxies:     getEnvAsList(EnvTrustedProxies, ""),
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ReelLength is the number of symbols on each reel
func (c *Config) ReelLength() int {
	if c.ReelCount == 0 {
		return 0
	}
	return c.TotalSymbolCount / c.ReelCount
}

// IsProduction reports whether the environment is production
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Environment)
	return env == EnvironmentProduction || env == EnvironmentProdLong
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return defaultValue, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return v, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return defaultValue, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return v, nil
}

// getEnvAsList splits a comma separated variable, dropping empty items
func getEnvAsList(key, defaultValue string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, defaultValue), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
