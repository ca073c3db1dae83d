package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertHighRate = "SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
)

// HTTP header names
const (
	HeaderAuthorization  = "Authorization"
	HeaderCookie         = "Cookie"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
	HeaderRequestID      = "X-Request-ID"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Request limits
const (
	MaxRequestBytes   = 1 << 20
	RateLimitRequests = 1000
	RateLimitWindow   = 5 * time.Minute
	ReadHeaderTimeout = 5 * time.Second
	CORSMaxAgeSeconds = 300
)

// QuietPaths are served without request logging
var QuietPaths = []string{
	"/healthz",
	"/metrics",
	"/swagger/",
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)
