// Package storage defines the persistence contracts for draw histories.
// Implementations live in the memory, postgres and clickhouse subpackages.
package storage

import (
	"context"
	"time"

	"github.com/roei-asher/Lottery/internal/domain"
)

// DrawStore persists draw histories per game. Histories are append-only:
// a (game, date) key is written once and never updated.
type DrawStore interface {
	// Insert adds one draw. Returns ErrDuplicateKey if a draw already
	// exists for the game and date.
	Insert(ctx context.Context, game string, d *domain.Draw) error

	// InsertBatch adds draws in order, skipping ones already present.
	// Returns the number actually inserted.
	InsertBatch(ctx context.Context, game string, draws []*domain.Draw) (int, error)

	// Recent returns up to limit draws for the game, most recent first.
	Recent(ctx context.Context, game string, limit int) ([]*domain.Draw, error)

	// Latest returns the most recent draw for the game. Returns
	// ErrNotFound when no draws are stored.
	Latest(ctx context.Context, game string) (*domain.Draw, error)

	// Count returns the number of stored draws for the game.
	Count(ctx context.Context, game string) (int, error)
}

// NumberFrequency is one row of an appearance aggregation.
type NumberFrequency struct {
	Number      int
	Appearances int
}

// AppearanceStore persists per-number appearance rows for frequency
// analytics. Each draw expands into one row per number drawn.
type AppearanceStore interface {
	// InsertDraws appends appearance rows for the given draws.
	InsertDraws(ctx context.Context, game string, draws []*domain.Draw) error

	// FrequencyByNumber aggregates appearances per number since the given
	// date, most frequent first. Special and regular numbers are counted
	// separately.
	FrequencyByNumber(ctx context.Context, game string, since time.Time, special bool) ([]NumberFrequency, error)

	// Count returns the number of appearance rows stored for the game.
	Count(ctx context.Context, game string) (int, error)
}
