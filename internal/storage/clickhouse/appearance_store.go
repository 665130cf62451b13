package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/roei-asher/Lottery/internal/domain"
	"github.com/roei-asher/Lottery/internal/storage"
)

// AppearanceStore implements storage.AppearanceStore using ClickHouse.
// One row per (draw, number); frequency queries aggregate server-side.
type AppearanceStore struct {
	conn *Conn
}

// NewAppearanceStore creates a new AppearanceStore.
func NewAppearanceStore(conn *Conn) *AppearanceStore {
	return &AppearanceStore{conn: conn}
}

// Compile-time interface check.
var _ storage.AppearanceStore = (*AppearanceStore)(nil)

// InsertDraws appends appearance rows for the given draws. Each draw
// expands into one row per regular number plus one for the special.
func (s *AppearanceStore) InsertDraws(ctx context.Context, game string, draws []*domain.Draw) error {
	if game == "" {
		return storage.ErrInvalidInput
	}
	if len(draws) == 0 {
		return nil
	}

	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO number_appearances (
			game, draw_date, number, is_special
		)
	`)
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}

	for _, d := range draws {
		if d == nil || d.Date.IsZero() {
			return storage.ErrInvalidInput
		}
		for _, n := range d.Regular {
			if err := batch.Append(game, d.Date, uint16(n), uint8(0)); err != nil {
				return fmt.Errorf("append to batch: %w", err)
			}
		}
		if err := batch.Append(game, d.Date, uint16(d.Special), uint8(1)); err != nil {
			return fmt.Errorf("append to batch: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}

	return nil
}

// FrequencyByNumber aggregates appearances per number since the given date,
// most frequent first with number ascending as tie-break.
func (s *AppearanceStore) FrequencyByNumber(ctx context.Context, game string, since time.Time, special bool) ([]storage.NumberFrequency, error) {
	query := `
		SELECT number, count(*) AS appearances
		FROM number_appearances
		WHERE game = ? AND is_special = ? AND draw_date >= ?
		GROUP BY number
		ORDER BY appearances DESC, number ASC
	`

	isSpecial := uint8(0)
	if special {
		isSpecial = 1
	}

	rows, err := s.conn.Query(ctx, query, game, isSpecial, since)
	if err != nil {
		return nil, fmt.Errorf("query number frequencies: %w", err)
	}
	defer rows.Close()

	var freqs []storage.NumberFrequency
	for rows.Next() {
		var number uint16
		var appearances uint64

		if err := rows.Scan(&number, &appearances); err != nil {
			return nil, fmt.Errorf("scan frequency row: %w", err)
		}

		freqs = append(freqs, storage.NumberFrequency{
			Number:      int(number),
			Appearances: int(appearances),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate frequency rows: %w", err)
	}

	return freqs, nil
}

// Count returns the number of appearance rows stored for the game.
func (s *AppearanceStore) Count(ctx context.Context, game string) (int, error) {
	query := `SELECT count(*) FROM number_appearances WHERE game = ?`

	var count uint64
	if err := s.conn.QueryRow(ctx, query, game).Scan(&count); err != nil {
		return 0, fmt.Errorf("count appearances: %w", err)
	}
	return int(count), nil
}
