package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/roei-asher/Lottery/internal/domain"
	"github.com/roei-asher/Lottery/internal/storage"
)

// DrawStore implements storage.DrawStore using PostgreSQL.
type DrawStore struct {
	pool *Pool
}

// NewDrawStore creates a new DrawStore.
func NewDrawStore(pool *Pool) *DrawStore {
	return &DrawStore{pool: pool}
}

// Compile-time interface check.
var _ storage.DrawStore = (*DrawStore)(nil)

// Insert adds one draw. Returns ErrDuplicateKey if a draw already exists
// for the game and date.
func (s *DrawStore) Insert(ctx context.Context, game string, d *domain.Draw) error {
	if game == "" || d == nil || d.Date.IsZero() {
		return storage.ErrInvalidInput
	}

	query := `
		INSERT INTO draws (game, draw_date, regular, special)
		VALUES ($1, $2, $3, $4)
	`

	_, err := s.pool.Exec(ctx, query,
		game,
		d.Date,
		toInt32s(d.Regular),
		int32(d.Special),
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert draw: %w", err)
	}
	return nil
}

// InsertBatch adds draws in order, skipping ones already present.
// Returns the number actually inserted.
func (s *DrawStore) InsertBatch(ctx context.Context, game string, draws []*domain.Draw) (int, error) {
	if game == "" {
		return 0, storage.ErrInvalidInput
	}

	inserted := 0
	for _, d := range draws {
		switch err := s.Insert(ctx, game, d); err {
		case nil:
			inserted++
		case storage.ErrDuplicateKey:
			// Overlapping fetch windows re-deliver known draws.
		default:
			return inserted, err
		}
	}
	return inserted, nil
}

// Recent returns up to limit draws for the game, most recent first.
func (s *DrawStore) Recent(ctx context.Context, game string, limit int) ([]*domain.Draw, error) {
	if limit < 0 {
		return nil, storage.ErrInvalidInput
	}

	query := `
		SELECT draw_date, regular, special
		FROM draws
		WHERE game = $1
		ORDER BY draw_date DESC
		LIMIT $2
	`

	rows, err := s.pool.Query(ctx, query, game, limit)
	if err != nil {
		return nil, fmt.Errorf("get recent draws: %w", err)
	}
	defer rows.Close()

	return scanDraws(rows)
}

// Latest returns the most recent draw for the game.
func (s *DrawStore) Latest(ctx context.Context, game string) (*domain.Draw, error) {
	query := `
		SELECT draw_date, regular, special
		FROM draws
		WHERE game = $1
		ORDER BY draw_date DESC
		LIMIT 1
	`

	row := s.pool.QueryRow(ctx, query, game)
	d, err := scanDraw(row)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get latest draw: %w", err)
	}
	return d, nil
}

// Count returns the number of stored draws for the game.
func (s *DrawStore) Count(ctx context.Context, game string) (int, error) {
	query := `SELECT COUNT(*) FROM draws WHERE game = $1`

	var count int
	if err := s.pool.QueryRow(ctx, query, game).Scan(&count); err != nil {
		return 0, fmt.Errorf("count draws: %w", err)
	}
	return count, nil
}

// scanDraw scans a single row into a Draw.
func scanDraw(row pgx.Row) (*domain.Draw, error) {
	var d domain.Draw
	var regular []int32
	var special int32

	if err := row.Scan(&d.Date, &regular, &special); err != nil {
		return nil, err
	}

	d.Regular = toInts(regular)
	d.Special = int(special)
	return &d, nil
}

// scanDraws scans multiple rows into a slice of Draw.
func scanDraws(rows pgx.Rows) ([]*domain.Draw, error) {
	var draws []*domain.Draw

	for rows.Next() {
		var d domain.Draw
		var regular []int32
		var special int32

		if err := rows.Scan(&d.Date, &regular, &special); err != nil {
			return nil, fmt.Errorf("scan draw row: %w", err)
		}

		d.Regular = toInts(regular)
		d.Special = int(special)
		draws = append(draws, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate draw rows: %w", err)
	}

	return draws, nil
}

func toInt32s(values []int) []int32 {
	out := make([]int32, len(values))
	for i, v := range values {
		out[i] = int32(v)
	}
	return out
}

func toInts(values []int32) []int {
	out := make([]int, len(values))
	for i, v := range values {
		out[i] = int(v)
	}
	return out
}
