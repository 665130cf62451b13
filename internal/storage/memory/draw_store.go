package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/roei-asher/Lottery/internal/domain"
	"github.com/roei-asher/Lottery/internal/storage"
)

// DrawStore is an in-memory implementation of storage.DrawStore.
type DrawStore struct {
	mu   sync.RWMutex
	data map[string]map[string]*domain.Draw // game -> date key -> draw
}

// NewDrawStore creates a new in-memory draw store.
func NewDrawStore() *DrawStore {
	return &DrawStore{data: make(map[string]map[string]*domain.Draw)}
}

// Compile-time interface check.
var _ storage.DrawStore = (*DrawStore)(nil)

// Insert adds one draw. Returns ErrDuplicateKey for a repeated (game, date).
func (s *DrawStore) Insert(_ context.Context, game string, d *domain.Draw) error {
	if game == "" || d == nil || d.Date.IsZero() {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertLocked(game, d)
}

func (s *DrawStore) insertLocked(game string, d *domain.Draw) error {
	byDate, ok := s.data[game]
	if !ok {
		byDate = make(map[string]*domain.Draw)
		s.data[game] = byDate
	}

	key := d.Date.Format("2006-01-02")
	if _, exists := byDate[key]; exists {
		return storage.ErrDuplicateKey
	}

	// Store a copy to prevent external mutation.
	draw := *d
	draw.Regular = append([]int(nil), d.Regular...)
	byDate[key] = &draw
	return nil
}

// InsertBatch adds draws in order, skipping duplicates. Returns the number
// inserted.
func (s *DrawStore) InsertBatch(_ context.Context, game string, draws []*domain.Draw) (int, error) {
	if game == "" {
		return 0, storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	inserted := 0
	for _, d := range draws {
		if d == nil || d.Date.IsZero() {
			return inserted, storage.ErrInvalidInput
		}
		switch err := s.insertLocked(game, d); err {
		case nil:
			inserted++
		case storage.ErrDuplicateKey:
			// Skip; batch fetches routinely overlap existing history.
		default:
			return inserted, err
		}
	}
	return inserted, nil
}

// Recent returns up to limit draws, most recent first.
func (s *DrawStore) Recent(_ context.Context, game string, limit int) ([]*domain.Draw, error) {
	if limit < 0 {
		return nil, storage.ErrInvalidInput
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	byDate := s.data[game]
	result := make([]*domain.Draw, 0, len(byDate))
	for _, d := range byDate {
		draw := *d
		draw.Regular = append([]int(nil), d.Regular...)
		result = append(result, &draw)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	if limit < len(result) {
		result = result[:limit]
	}
	return result, nil
}

// Latest returns the most recent draw for the game.
func (s *DrawStore) Latest(_ context.Context, game string) (*domain.Draw, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest *domain.Draw
	for _, d := range s.data[game] {
		if latest == nil || d.Date.After(latest.Date) {
			latest = d
		}
	}
	if latest == nil {
		return nil, storage.ErrNotFound
	}

	draw := *latest
	draw.Regular = append([]int(nil), latest.Regular...)
	return &draw, nil
}

// Count returns the number of stored draws for the game.
func (s *DrawStore) Count(_ context.Context, game string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data[game]), nil
}
