package slots

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/FruitReels_Go/internal/domain"
)

// Formatter renders outcomes as user-facing text
type Formatter struct {
	printer     *message.Printer
	title       cases.Caser
	costPerRoll int
}

// NewFormatter creates a formatter for the given locale
func NewFormatter(tag language.Tag, costPerRoll int) *Formatter {
	return &Formatter{
		printer:     message.NewPrinter(tag),
		title:       cases.Title(tag),
		costPerRoll: costPerRoll,
	}
}

// Format creates a user-facing message for the outcome
func (f *Formatter) Format(o domain.Outcome) string {
	payout := f.costPerRoll * o.Multiplier
	kind := f.title.String(strings.ToLower(string(o.MatchedKind)))

	switch Classify(o) {
	case OutcomeTriple:
		return f.printer.Sprintf(MsgFmtTriple, kind, o.Multiplier, payout, o.PayoutDelta)
	case OutcomePair:
		return f.printer.Sprintf(MsgFmtPair, kind, o.Multiplier, payout, o.PayoutDelta)
	default:
		return f.printer.Sprintf(MsgFmtLoss, -o.PayoutDelta)
	}
}

// FormatAmount renders an amount with locale-aware grouping
func (f *Formatter) FormatAmount(amount int64) string {
	return f.printer.Sprintf("%d", amount)
}
