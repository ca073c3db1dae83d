package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/FruitReels_Go/internal/catalog"
	"github.com/osse101/FruitReels_Go/internal/domain"
	"github.com/osse101/FruitReels_Go/internal/slots"
)

func main() {
	rolls := flag.Int("rolls", 1_000_000, "number of rolls to simulate")
	workers := flag.Int("workers", 4, "parallel simulation workers")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "random seed")
	cost := flag.Int("cost", slots.DefaultCostPerRoll, "cost per roll")
	symbols := flag.Int("symbols", slots.DefaultTotalSymbolCount, "total symbols across the reels")
	catalogPath := flag.String("catalog", "", "symbol catalog YAML (built-in catalog when empty)")
	locale := flag.String("locale", "en", "locale for number formatting")
	flag.Parse()

	if err := run(*rolls, *workers, *seed, *cost, *symbols, *catalogPath, *locale); err != nil {
		fmt.Fprintf(os.Stderr, "simulate: %v\n", err)
		os.Exit(1)
	}
}

func run(rolls, workers int, seed uint64, cost, symbols int, catalogPath, locale string) error {
	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("invalid locale: %w", err)
	}

	cat, err := catalog.Load(catalogPath)
	if err != nil {
		return err
	}

	cfg := slots.Config{
		CostPerRoll: cost,
		ReelCount:   slots.DefaultReelCount,
		ReelLength:  symbols / slots.DefaultReelCount,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	stats, err := slots.Simulate(ctx, cat, cfg, rolls, workers, seed)
	if err != nil {
		return err
	}

	writeReport(os.Stdout, tag, cat.Kinds(), cost, seed, time.Since(start), stats)
	return nil
}

func writeReport(w io.Writer, tag language.Tag, kinds []domain.SymbolKind, cost int, seed uint64, elapsed time.Duration, stats slots.SimulationStats) {
	p := message.NewPrinter(tag)
	f := slots.NewFormatter(tag, cost)
	p.Fprintf(w, "seed:           %d\n", seed)
	p.Fprintf(w, "rolls:          %d in %v\n", stats.Rolls, elapsed.Round(time.Millisecond))
	p.Fprintf(w, "wagered:        %s\n", f.FormatAmount(stats.Wagered))
	p.Fprintf(w, "returned:       %s\n", f.FormatAmount(stats.Returned))
	p.Fprintf(w, "RTP:            %.4f\n", stats.RTP())
	p.Fprintf(w, "hit frequency:  %.4f\n", stats.HitFrequency())
	for _, class := range []string{slots.OutcomeLoss, slots.OutcomePair, slots.OutcomeTriple} {
		p.Fprintf(w, "%-15s %d\n", class+":", stats.ByClass[class])
	}
	for _, kind := range kinds {
		p.Fprintf(w, "  %-10s pairs %d, triples %d\n", kind, stats.PairHits[kind], stats.TripleHit[kind])
	}
}
