package catalog

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/FruitReels_Go/internal/domain"
)

// Entry is the configurable form of a symbol
type Entry struct {
	Kind       domain.SymbolKind `yaml:"kind" json:"kind" validate:"required"`
	Multiplier int               `yaml:"multiplier" json:"multiplier" validate:"gte=2"`
	DisplayRef string            `yaml:"display_ref" json:"display_ref"`
}

// Catalog is the immutable table of symbol kinds.
// The number of kinds is the range of every uniform draw made by the engine.
type Catalog struct {
	symbols []domain.Symbol
	index   map[domain.SymbolKind]int
}

var validate = validator.New()

// New validates entries and builds a catalog. Any violation wraps domain.ErrInvalidCatalog.
func New(entries []Entry) (*Catalog, error) {
	if len(entries) < MinKinds {
		return nil, fmt.Errorf("%w: need at least %d kinds, got %d", domain.ErrInvalidCatalog, MinKinds, len(entries))
	}

	c := &Catalog{
		symbols: make([]domain.Symbol, 0, len(entries)),
		index:   make(map[domain.SymbolKind]int, len(entries)),
	}

	for i, e := range entries {
		if err := validate.Struct(e); err != nil {
			return nil, fmt.Errorf("%w: entry %d (%q): %s", domain.ErrInvalidCatalog, i, e.Kind, describe(err))
		}
		if _, dup := c.index[e.Kind]; dup {
			return nil, fmt.Errorf("%w: duplicate kind %q", domain.ErrInvalidCatalog, e.Kind)
		}
		c.index[e.Kind] = len(c.symbols)
		c.symbols = append(c.symbols, domain.Symbol{
			Kind:       e.Kind,
			Multiplier: e.Multiplier,
			DisplayRef: e.DisplayRef,
		})
	}

	return c, nil
}

// MustNew is New for static tables; it panics on invalid input
func MustNew(entries []Entry) *Catalog {
	c, err := New(entries)
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the three-fruit catalog
func Default() *Catalog {
	return MustNew([]Entry{
		{Kind: KindCherry, Multiplier: MultiplierCherry, DisplayRef: "cherry.svg"},
		{Kind: KindApple, Multiplier: MultiplierApple, DisplayRef: "apple.svg"},
		{Kind: KindBanana, Multiplier: MultiplierBanana, DisplayRef: "banana.svg"},
	})
}

// Lookup returns the symbol for kind
func (c *Catalog) Lookup(kind domain.SymbolKind) (domain.Symbol, error) {
	i, ok := c.index[kind]
	if !ok {
		return domain.Symbol{}, fmt.Errorf("%w: %q", domain.ErrUnknownSymbol, kind)
	}
	return c.symbols[i], nil
}

// Symbol resolves a draw index in [0, Len()) to its symbol
func (c *Catalog) Symbol(i int) domain.Symbol {
	return c.symbols[i]
}

// Len is the number of distinct kinds
func (c *Catalog) Len() int {
	return len(c.symbols)
}

// Kinds returns the kinds in declaration order
func (c *Catalog) Kinds() []domain.SymbolKind {
	kinds := make([]domain.SymbolKind, len(c.symbols))
	for i, s := range c.symbols {
		kinds[i] = s.Kind
	}
	return kinds
}

// Symbols returns a copy of every symbol in declaration order
func (c *Catalog) Symbols() []domain.Symbol {
	out := make([]domain.Symbol, len(c.symbols))
	copy(out, c.symbols)
	return out
}

// Contains reports whether s is exactly a catalog entry
func (c *Catalog) Contains(s domain.Symbol) bool {
	i, ok := c.index[s.Kind]
	return ok && c.symbols[i] == s
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
