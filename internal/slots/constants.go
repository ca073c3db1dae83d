package slots

// Game defaults
const (
	DefaultCostPerRoll      = 100
	DefaultReelCount        = 3
	DefaultTotalSymbolCount = 120
)

// Match sizes
const (
	PairCount   = 2
	TripleCount = 3

	// TripleFactor doubles the catalog multiplier for three of a kind
	TripleFactor = 2
)

// Outcome classes, used as metric labels and message selectors
const (
	OutcomeLoss   = "loss"
	OutcomePair   = "pair"
	OutcomeTriple = "triple"
)

// Message formats
const (
	MsgFmtLoss   = "No match. You lost %d."
	MsgFmtPair   = "Two %s! x%d pays %d (net +%d)."
	MsgFmtTriple = "Three %s! x%d pays %d (net +%d)."
)

// Error context messages
const (
	ErrContextGenerateReels = "failed to generate reels"
	ErrContextLookupLanding = "failed to resolve landing symbol"
)
