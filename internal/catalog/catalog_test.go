package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FruitReels_Go/internal/domain"
)

func TestDefault(t *testing.T) {
	c := Default()

	require.Equal(t, 3, c.Len())
	assert.Equal(t, []domain.SymbolKind{KindCherry, KindApple, KindBanana}, c.Kinds())

	multipliers := make([]int, 0, c.Len())
	for _, s := range c.Symbols() {
		multipliers = append(multipliers, s.Multiplier)
	}
	assert.Equal(t, []int{2, 4, 8}, multipliers)
}

func TestLookup(t *testing.T) {
	c := Default()

	s, err := c.Lookup(KindApple)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Multiplier)
	assert.Equal(t, "apple.svg", s.DisplayRef)

	_, err = c.Lookup("PLUM")
	assert.ErrorIs(t, err, domain.ErrUnknownSymbol)
}

func TestSymbolIndexMatchesKinds(t *testing.T) {
	c := Default()
	for i, kind := range c.Kinds() {
		assert.Equal(t, kind, c.Symbol(i).Kind)
	}
}

func TestContains(t *testing.T) {
	c := Default()

	cherry, err := c.Lookup(KindCherry)
	require.NoError(t, err)
	assert.True(t, c.Contains(cherry))

	forged := cherry
	forged.Multiplier = 100
	assert.False(t, c.Contains(forged), "same kind with different payout is not a catalog entry")
	assert.False(t, c.Contains(domain.Symbol{Kind: "PLUM", Multiplier: 2}))
}

func TestSymbolsReturnsCopy(t *testing.T) {
	c := Default()
	symbols := c.Symbols()
	symbols[0].Multiplier = 999

	s, err := c.Lookup(KindCherry)
	require.NoError(t, err)
	assert.Equal(t, MultiplierCherry, s.Multiplier)
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		wantMsg string
	}{
		{
			name:    "too few kinds",
			entries: []Entry{{Kind: "A", Multiplier: 2}},
			wantMsg: "at least 2 kinds",
		},
		{
			name:    "duplicate kind",
			entries: []Entry{{Kind: "A", Multiplier: 2}, {Kind: "A", Multiplier: 4}},
			wantMsg: "duplicate kind",
		},
		{
			name:    "empty kind",
			entries: []Entry{{Kind: "A", Multiplier: 2}, {Kind: "", Multiplier: 4}},
			wantMsg: "Kind is required",
		},
		{
			name:    "multiplier below two",
			entries: []Entry{{Kind: "A", Multiplier: 2}, {Kind: "B", Multiplier: 1}},
			wantMsg: "Multiplier must be at least 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.entries)
			assert.Nil(t, c)
			require.ErrorIs(t, err, domain.ErrInvalidCatalog)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() { MustNew(nil) })
}

func TestLoadFile(t *testing.T) {
	c, err := LoadFile(filepath.Join("testdata", "symbols.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 4, c.Len())
	seven, err := c.Lookup("SEVEN")
	require.NoError(t, err)
	assert.Equal(t, 20, seven.Multiplier)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrContextReadCatalog)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("symbols: [:::"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrContextParseCatalog)

	_, err = Parse([]byte("symbols:\n  - kind: A\n    multiplier: 2\n  - kind: A\n    multiplier: 3\n"))
	assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Kinds(), c.Kinds())

	path := filepath.Join(t.TempDir(), "cat.yaml")
	require.NoError(t, os.WriteFile(path, []byte("symbols:\n  - kind: X\n    multiplier: 3\n  - kind: Y\n    multiplier: 5\n"), 0o600))
	c, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, []domain.SymbolKind{"X", "Y"}, c.Kinds())
}
