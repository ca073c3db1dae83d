package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
)

// Session metric names
const (
	MetricNameRollsStarted     = "rolls_started_total"
	MetricNameRollsIgnored     = "rolls_ignored_total"
	MetricNameRollsSettled     = "rolls_settled_total"
	MetricNameRollsReset       = "rolls_reset_total"
	MetricNameStalePayouts     = "stale_payouts_total"
	MetricNameCancelledPayouts = "cancelled_payouts_total"
	MetricNamePendingPayouts   = "pending_payouts"
	MetricNameWinnings         = "session_winnings"
	MetricNamePayoutDelta      = "payout_delta"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished = "Total number of events published"
)

// Session metric help text
const (
	HelpTextRollsStarted     = "Total number of rolls started"
	HelpTextRollsIgnored     = "Total number of roll requests ignored while a roll was in progress"
	HelpTextRollsSettled     = "Total number of rolls settled, by outcome"
	HelpTextRollsReset       = "Total number of reset requests"
	HelpTextStalePayouts     = "Total number of payouts applied after their roll was reset"
	HelpTextCancelledPayouts = "Total number of payouts cancelled by a reset"
	HelpTextPendingPayouts   = "Payout tasks currently scheduled"
	HelpTextWinnings         = "Current session winnings"
	HelpTextPayoutDelta      = "Distribution of winnings change per settled roll"
)

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelOutcome = "outcome"
)

// Outcome label values
const (
	OutcomeLoss   = "loss"
	OutcomePair   = "pair"
	OutcomeTriple = "triple"
)

// PathUnmatched labels requests that matched no route
const PathUnmatched = "unmatched"

// ============================================================================
// Buckets
// ============================================================================

var (
	// HTTPLatencyBuckets covers 1ms to 5s
	HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}

	// PayoutDeltaBuckets covers a loss at cost 100 up to a cherry triple and beyond
	PayoutDeltaBuckets = []float64{-1000, -100, 0, 100, 300, 700, 1500, 3000}
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgEventPayloadUnexpected = "Event payload has unexpected shape"
)
