package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second
)

// Stream response headers
const (
	HeaderContentType  = "Content-Type"
	HeaderCacheControl = "Cache-Control"
	HeaderConnection   = "Connection"

	ContentTypeEventStream = "text/event-stream"
	CacheControlNoCache    = "no-cache"
	ConnectionKeepAlive    = "keep-alive"
)

// QueryParamTypes is a comma-separated list of event types a client subscribes to
const QueryParamTypes = "types"

// ErrMsgStreamingUnsupported is returned when the response writer cannot flush
const ErrMsgStreamingUnsupported = "SSE not supported"

// Event types for SSE
const (
	// EventTypeRollStarted carries the reels and per-reel durations to animate
	EventTypeRollStarted = "roll.started"

	// EventTypeRollSettled carries the payout once the last reel has stopped
	EventTypeRollSettled = "roll.settled"

	// EventTypeRollReset tells clients to return the reels to the idle view
	EventTypeRollReset = "roll.reset"

	// EventTypeRollIgnored is sent when a roll request lost to the roll in flight
	EventTypeRollIgnored = "roll.ignored"

	// EventTypeConnected is the first event on every stream
	EventTypeConnected = "connected"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgInvalidPayload     = "Invalid roll event payload"
	LogMsgSubscriberReady    = "SSE subscriber registered for event types"
)
