// Package dataset reads and writes the tabular draw-history files the
// fetchers produce. It is the boundary between raw files and typed draws;
// the generation engine never touches a file.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/roei-asher/Lottery/internal/domain"
)

// Column headers recognized per field. Matching is case-insensitive and
// tolerant of the naming drift between the per-game files.
var (
	dateHeaders    = []string{"draw date", "date", "drawdate"}
	specialHeaders = []string{"special", "megaball", "mega ball", "powerball"}
)

// Date layouts tried in order when parsing the date column.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02/01/2006",
	"01/02/2006",
	time.RFC3339,
}

// LoadCSV reads a draw-history CSV, validates every row against the
// profile, and returns the draws ordered most-recent-first.
func LoadCSV(path string, p domain.Profile) ([]domain.Draw, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	draws, err := Read(f, p)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	return draws, nil
}

// Read parses draw records from CSV data.
func Read(r io.Reader, p domain.Profile) ([]domain.Draw, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols, err := resolveColumns(header, p)
	if err != nil {
		return nil, err
	}

	var draws []domain.Draw
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line+1, err)
		}
		line++

		draw, err := parseRow(record, cols, p)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		draws = append(draws, draw)
	}

	// Most recent first, regardless of file order.
	sort.SliceStable(draws, func(i, j int) bool {
		return draws[i].Date.After(draws[j].Date)
	})
	return draws, nil
}

// WriteCSV writes draws in the canonical layout LoadCSV reads back:
// Draw Date, Number1..NumberK, Special.
func WriteCSV(path string, p domain.Profile, draws []domain.Draw) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dataset: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := []string{"Draw Date"}
	for i := 1; i <= p.RegularCount; i++ {
		header = append(header, fmt.Sprintf("Number%d", i))
	}
	header = append(header, "Special")
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, d := range draws {
		row := []string{d.Date.Format("2006-01-02")}
		for _, n := range d.Regular {
			row = append(row, strconv.Itoa(n))
		}
		row = append(row, strconv.Itoa(d.Special))
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush dataset: %w", err)
	}
	return nil
}

// columns holds the resolved field positions within a header row.
type columns struct {
	date    int
	regular []int
	special int
}

func resolveColumns(header []string, p domain.Profile) (columns, error) {
	cols := columns{date: -1, special: -1}

	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = strings.ToLower(strings.TrimSpace(h))
	}

	for i, h := range normalized {
		if cols.date == -1 && matchesAny(h, dateHeaders) {
			cols.date = i
		}
		if cols.special == -1 && matchesAny(h, specialHeaders) {
			cols.special = i
		}
	}

	for i := 1; i <= p.RegularCount; i++ {
		want := fmt.Sprintf("number%d", i)
		found := -1
		for j, h := range normalized {
			if h == want {
				found = j
				break
			}
		}
		if found == -1 {
			return cols, fmt.Errorf("missing column %q in header %v", want, header)
		}
		cols.regular = append(cols.regular, found)
	}

	if cols.date == -1 {
		return cols, fmt.Errorf("no date column in header %v", header)
	}
	if cols.special == -1 {
		return cols, fmt.Errorf("no special-number column in header %v", header)
	}
	return cols, nil
}

func matchesAny(h string, candidates []string) bool {
	for _, c := range candidates {
		if h == c {
			return true
		}
	}
	return false
}

func parseRow(record []string, cols columns, p domain.Profile) (domain.Draw, error) {
	var draw domain.Draw

	maxIdx := cols.date
	for _, idx := range cols.regular {
		if idx > maxIdx {
			maxIdx = idx
		}
	}
	if cols.special > maxIdx {
		maxIdx = cols.special
	}
	if len(record) <= maxIdx {
		return draw, fmt.Errorf("row has %d fields, need at least %d", len(record), maxIdx+1)
	}

	date, err := parseDate(record[cols.date])
	if err != nil {
		return draw, err
	}
	draw.Date = date

	for _, idx := range cols.regular {
		n, err := parseNumber(record[idx])
		if err != nil {
			return draw, err
		}
		draw.Regular = append(draw.Regular, n)
	}

	draw.Special, err = parseNumber(record[cols.special])
	if err != nil {
		return draw, err
	}

	if err := draw.Validate(p); err != nil {
		return draw, err
	}
	return draw, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}

func parseNumber(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("unparseable number %q", s)
	}
	return n, nil
}
