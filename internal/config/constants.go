package config

import "time"

// Default values
const (
	DefaultPort             = 8080
	DefaultEnvironment      = "dev"
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultCostPerRoll      = 100
	DefaultReelCount        = 3
	DefaultTotalSymbolCount = 120
	DefaultInitialWinnings  = 1000
	DefaultTimingMinUnits   = 1
	DefaultTimingMaxUnits   = 10
	DefaultTimingUnit       = time.Second
	DefaultResetPolicy      = "keep"
	DefaultCatalogPath      = "configs/symbols.yaml"
	DefaultHistorySize      = 100
	DefaultHistoryTTL       = time.Hour
	DefaultWorkerCount      = 1
	DefaultWorkerQueueSize  = 64
	DefaultCORSOrigins      = "*"
	DefaultShutdownTimeout  = 15 * time.Second
	DefaultLocale           = "en"
)

// Environment variable names
const (
	EnvPort             = "PORT"
	EnvEnvironment      = "ENVIRONMENT"
	EnvLogLevel         = "LOG_LEVEL"
	EnvLogFormat        = "LOG_FORMAT"
	EnvLogDir           = "LOG_DIR"
	EnvCostPerRoll      = "COST_PER_ROLL"
	EnvReelCount        = "REEL_COUNT"
	EnvTotalSymbolCount = "TOTAL_SYMBOL_COUNT"
	EnvInitialWinnings  = "INITIAL_WINNINGS"
	EnvTimingMinUnits   = "TIMING_MIN_UNITS"
	EnvTimingMaxUnits   = "TIMING_MAX_UNITS"
	EnvTimingUnit       = "TIMING_UNIT"
	EnvResetPolicy      = "RESET_POLICY"
	EnvCatalogPath      = "CATALOG_PATH"
	EnvHistorySize      = "HISTORY_SIZE"
	EnvHistoryTTL       = "HISTORY_TTL"
	EnvWorkerCount      = "WORKER_COUNT"
	EnvWorkerQueueSize  = "WORKER_QUEUE_SIZE"
	EnvCORSOrigins      = "CORS_ALLOWED_ORIGINS"
	EnvShutdownTimeout  = "SHUTDOWN_TIMEOUT"
	EnvTrustedProxies   = "TRUSTED_PROXIES"
	EnvLocale           = "LOCALE"
)

// Environments that count as production for warnings
const (
	EnvironmentProduction = "prod"
	EnvironmentProdLong   = "production"
)

// Warning messages
const (
	WarnWildcardCORS   = "CORS_ALLOWED_ORIGINS is * in production - restrict it to the presentation origin"
	WarnNoLogDir       = "LOG_DIR is empty in production - logs only go to stdout"
	WarnFastTimingUnit = "TIMING_UNIT is below 100ms - reels will settle faster than they can be animated"
)
