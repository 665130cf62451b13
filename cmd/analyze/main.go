package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/roei-asher/Lottery/internal/analysis"
	"github.com/roei-asher/Lottery/internal/dataset"
	"github.com/roei-asher/Lottery/internal/domain"
	"github.com/roei-asher/Lottery/internal/reporting"
	chstore "github.com/roei-asher/Lottery/internal/storage/clickhouse"
	pgstore "github.com/roei-asher/Lottery/internal/storage/postgres"
)

func main() {
	game := flag.String("game", "israeli", "Game profile: israeli, megamillions or powerball")
	csvPath := flag.String("csv", "", "Draw history CSV file")
	postgresDSN := flag.String("postgres-dsn", "", "PostgreSQL connection string (alternative to --csv)")
	clickhouseDSN := flag.String("clickhouse-dsn", "", "ClickHouse connection string for appearance frequencies (optional)")
	hotColdDraws := flag.Int("hot-cold-draws", analysis.DefaultHotColdDraws, "Recent draws used for hot/cold classification")
	trendNumber := flag.Int("trend-number", 0, "Number to compute a rolling appearance trend for (0 to skip)")
	trendWindow := flag.Int("trend-window", analysis.DefaultRollingWindow, "Rolling window size for trend output")
	format := flag.String("format", "markdown", "Output format: markdown or csv")
	outPath := flag.String("out", "", "Output file (defaults to stdout)")
	flag.Parse()

	logger := log.New(os.Stderr, "[analyze] ", log.LstdFlags)

	profile, err := domain.ProfileByName(*game)
	if err != nil {
		logger.Fatalf("Unknown game %q", *game)
	}
	if *csvPath == "" && *postgresDSN == "" {
		logger.Fatal("Either --csv or --postgres-dsn is required")
	}

	ctx := context.Background()

	draws, err := loadHistory(ctx, profile, *csvPath, *postgresDSN)
	if err != nil {
		logger.Fatalf("Error loading history: %v", err)
	}
	logger.Printf("Loaded %d draws for %s", len(draws), profile.Name)

	hot, cold := analysis.HotCold(profile, draws, *hotColdDraws)
	report := &reporting.AnalysisReport{
		Profile:     profile,
		GeneratedAt: time.Now().UTC(),
		Summary:     analysis.Summarize(profile, draws),
		Hot:         hot,
		Cold:        cold,
	}

	var rendered string
	switch *format {
	case "markdown":
		rendered = reporting.RenderAnalysisMarkdown(report)
	case "csv":
		rendered = reporting.RenderFrequencyCSV(report)
	default:
		logger.Fatalf("Unknown format %q (want markdown or csv)", *format)
	}

	if err := writeOutput(*outPath, rendered); err != nil {
		logger.Fatalf("Error writing output: %v", err)
	}

	if *trendNumber > 0 {
		printTrend(logger, draws, *trendNumber, *trendWindow)
	}
	if *clickhouseDSN != "" {
		if err := printStoredFrequencies(ctx, logger, *clickhouseDSN, profile.Name); err != nil {
			logger.Fatalf("Error querying clickhouse: %v", err)
		}
	}
}

// loadHistory reads the full draw history from a CSV file or Postgres,
// most recent first.
func loadHistory(ctx context.Context, profile domain.Profile, csvPath, postgresDSN string) ([]domain.Draw, error) {
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

	store := pgstore.NewDrawStore(pool)
	total, err := store.Count(ctx, profile.Name)
	if err != nil {
		return nil, fmt.Errorf("count draws: %w", err)
	}

	stored, err := store.Recent(ctx, profile.Name, total)
	if err != nil {
		return nil, fmt.Errorf("load draws: %w", err)
	}

	draws := make([]domain.Draw, len(stored))
	for i, d := range stored {
		draws[i] = *d
	}
	return draws, nil
}

// printTrend logs the rolling appearance rate of one number over time.
func printTrend(logger *log.Logger, draws []domain.Draw, number, window int) {
	points := analysis.Trend(draws, number, window)
	if len(points) == 0 {
		logger.Printf("No trend data for number %d", number)
		return
	}

	logger.Printf("Rolling appearance rate for number %d (window %d):", number, window)
	for _, p := range points {
		logger.Printf("  %s  %.2f", p.WindowEnd.Format("2006-01-02"), p.Rate)
	}
}

// printStoredFrequencies queries the ClickHouse appearance table and logs
// the aggregated counts, as a cross-check against the CSV-derived summary.
func printStoredFrequencies(ctx context.Context, logger *log.Logger, dsn, game string) error {
	conn, err := chstore.NewConn(ctx, dsn)
	if err != nil {
		return fmt.Errorf("connect to clickhouse: %w", err)
	}
	defer conn.Close()

	store := chstore.NewAppearanceStore(conn)
	since := time.Now().UTC().AddDate(-10, 0, 0)

	freqs, err := store.FrequencyByNumber(ctx, game, since, false)
	if err != nil {
		return fmt.Errorf("query frequencies: %w", err)
	}

	logger.Printf("Stored appearance counts for %s (top 10):", game)
	for i, f := range freqs {
		if i >= 10 {
			break
		}
		logger.Printf("  %2d: %d appearances", f.Number, f.Appearances)
	}
	return nil
}

func writeOutput(path, content string) error {
	if path == "" {
		fmt.Print(content)
		return nil
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
