package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/roei-asher/Lottery/internal/dataset"
	"github.com/roei-asher/Lottery/internal/domain"
	"github.com/roei-asher/Lottery/internal/generator"
	"github.com/roei-asher/Lottery/internal/reporting"
	"github.com/roei-asher/Lottery/internal/scoring"
	pgstore "github.com/roei-asher/Lottery/internal/storage/postgres"
)

func main() {
	game := flag.String("game", "israeli", "Game profile: israeli, megamillions or powerball")
	csvPath := flag.String("csv", "", "Draw history CSV file")
	postgresDSN := flag.String("postgres-dsn", "", "PostgreSQL connection string (alternative to --csv)")
	numTickets := flag.Int("tickets", 12, "Number of tickets to generate")
	seed := flag.Int64("seed", 0, "Random seed (0 for time-based)")
	lookback := flag.Int("lookback", scoring.DefaultLookbackDraws, "Number of recent draws to score against")
	format := flag.String("format", "markdown", "Output format: markdown or csv")
	outPath := flag.String("out", "", "Output file (defaults to stdout)")
	flag.Parse()

	logger := log.New(os.Stderr, "[predict] ", log.LstdFlags)

	profile, err := domain.ProfileByName(*game)
	if err != nil {
		logger.Fatalf("Unknown game %q", *game)
	}
	if *csvPath == "" && *postgresDSN == "" {
		logger.Fatal("Either --csv or --postgres-dsn is required")
	}

	ctx := context.Background()

	draws, err := loadHistory(ctx, profile, *csvPath, *postgresDSN, *lookback)
	if err != nil {
		logger.Fatalf("Error loading history: %v", err)
	}
	logger.Printf("Loaded %d draws for %s", len(draws), profile.Name)

	cfg := scoring.DefaultConfig()
	cfg.LookbackDraws = *lookback

	engine, err := generator.New(profile, draws,
		generator.WithScoringConfig(cfg),
		generator.WithSeed(*seed),
	)
	if err != nil {
		logger.Fatalf("Error creating engine: %v", err)
	}

	tickets, err := engine.Generate(*numTickets)
	if err != nil {
		logger.Fatalf("Error generating tickets: %v", err)
	}

	report := &reporting.TicketReport{
		Profile:       profile,
		LookbackDraws: *lookback,
		HistoryDraws:  len(draws),
		Seed:          *seed,
		GeneratedAt:   time.Now().UTC(),
		Tickets:       tickets,
	}

	var rendered string
	switch *format {
	case "markdown":
		rendered = reporting.RenderTicketsMarkdown(report)
	case "csv":
		rendered = reporting.RenderTicketsCSV(report)
	default:
		logger.Fatalf("Unknown format %q (want markdown or csv)", *format)
	}

	if err := writeOutput(*outPath, rendered); err != nil {
		logger.Fatalf("Error writing output: %v", err)
	}
	if *outPath != "" {
		logger.Printf("Wrote %d tickets to %s", len(tickets), *outPath)
	}
}

// loadHistory reads the draw history from a CSV file or Postgres,
// most recent first.
func loadHistory(ctx context.Context, profile domain.Profile, csvPath, postgresDSN string, lookback int) ([]domain.Draw, error) {
	if csvPath != "" {
		draws, err := dataset.LoadCSV(csvPath, profile)
		if err != nil {
			return nil, fmt.Errorf("load csv: %w", err)
		}
		return draws, nil
	}

	pool, err := pgstore.NewPool(ctx, postgresDSN)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()

	stored, err := pgstore.NewDrawStore(pool).Recent(ctx, profile.Name, lookback)
	if err != nil {
		return nil, fmt.Errorf("load recent draws: %w", err)
	}

	draws := make([]domain.Draw, len(stored))
	for i, d := range stored {
		draws[i] = *d
	}
	return draws, nil
}

func writeOutput(path, content string) error {
	if path == "" {
		fmt.Print(content)
		return nil
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
