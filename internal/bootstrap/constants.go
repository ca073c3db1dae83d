package bootstrap

// Log messages for startup
const (
	LogMsgStartingFruitReels   = "Starting FruitReels"
	LogMsgCatalogLoaded        = "Symbol catalog loaded"
	LogMsgEventSystemReady     = "Event system initialized"
	LogMsgMetricsCollectorInit = "Metrics collector registered"
	LogMsgSSESubscriberInit    = "SSE subscriber registered"
	LogMsgEventTrace           = "Event published"
)

// Error context messages for startup
const (
	ErrMsgFailedLoadCatalog      = "failed to load symbol catalog"
	ErrMsgFailedCreateEngine     = "failed to create roll engine"
	ErrMsgFailedCreateCoordinate = "failed to create reel timing coordinator"
	ErrMsgFailedParseLocale      = "failed to parse locale"
	ErrMsgFailedCreateSession    = "failed to create session"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgSessionShutdownFail  = "Session shutdown failed"
	LogMsgServerStopped        = "Server stopped"
)
