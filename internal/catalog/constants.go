package catalog

import "github.com/osse101/FruitReels_Go/internal/domain"

// Default symbol kinds
const (
	KindCherry domain.SymbolKind = "CHERRY"
	KindApple  domain.SymbolKind = "APPLE"
	KindBanana domain.SymbolKind = "BANANA"
)

// Default multipliers
const (
	MultiplierCherry = 2
	MultiplierApple  = 4
	MultiplierBanana = 8
)

// Catalog constraints
const (
	// MinKinds is the smallest catalog that can still produce a non-match
	MinKinds = 2

	// MinMultiplier keeps every match strictly profitable
	MinMultiplier = 2
)

// Error context messages
const (
	ErrContextReadCatalog  = "failed to read catalog file"
	ErrContextParseCatalog = "failed to parse catalog file"
)
