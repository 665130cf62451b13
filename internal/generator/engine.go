// Package generator turns score and pair-correlation tables into a batch of
// valid, deduplicated lottery tickets using several sampling strategies.
package generator

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/roei-asher/Lottery/internal/domain"
	"github.com/roei-asher/Lottery/internal/pairs"
	"github.com/roei-asher/Lottery/internal/sampling"
	"github.com/roei-asher/Lottery/internal/scoring"
)

// Engine errors.
var (
	// ErrInvalidConfig is returned before any generation work begins when
	// the profile or scoring parameters cannot produce valid tickets.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnsatisfiable is returned when the fallback generator cannot fill
	// the requested batch within the attempt budget.
	ErrUnsatisfiable = errors.New("unable to satisfy ticket request")
)

// Engine generates ticket batches from an immutable draw history. The
// history and profile may be shared across engines; the random source
// belongs to a single engine, so use one engine per goroutine.
type Engine struct {
	profile domain.Profile
	draws   []domain.Draw
	scoring scoring.Config
	tuning  Tuning
	rng     *rand.Rand
}

// Option configures an Engine.
type Option func(*Engine)

// WithScoringConfig overrides the default analysis parameters.
func WithScoringConfig(cfg scoring.Config) Option {
	return func(e *Engine) { e.scoring = cfg }
}

// WithTuning overrides the profile-derived strategy tuning.
func WithTuning(t Tuning) Option {
	return func(e *Engine) { e.tuning = t }
}

// WithSeed fixes the random seed for reproducible batches. Zero (the
// default) seeds from the clock.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.rng = sampling.NewRand(seed) }
}

// New creates an engine over a most-recent-first draw history. Configuration
// is validated here so Generate never starts work it cannot finish.
func New(profile domain.Profile, draws []domain.Draw, opts ...Option) (*Engine, error) {
	e := &Engine{
		profile: profile,
		draws:   draws,
		scoring: scoring.DefaultConfig(),
		tuning:  DefaultTuning(profile),
		rng:     sampling.NewRand(0),
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if !e.scoring.Valid() {
		return nil, fmt.Errorf("%w: scoring weights and decays must be finite and lookback positive", ErrInvalidConfig)
	}
	if e.tuning.MaxTopUpFactor < 1 {
		return nil, fmt.Errorf("%w: top-up factor must be positive", ErrInvalidConfig)
	}
	return e, nil
}

// tables is the per-call scratch state: score tables, rankings, and the pair
// graph. Built fresh by every Generate call and discarded with it.
type tables struct {
	scores      scoring.Scores
	ranked      []int // regular numbers by descending score
	rankedPairs []pairs.PairCount
	graph       *pairs.Graph
}

func (e *Engine) analyze() *tables {
	scores := scoring.Analyze(e.profile, e.draws, e.scoring)
	table := pairs.Count(e.profile, e.draws, e.scoring.LookbackDraws)

	ranked := scores.Regular.Ranked()
	rankedPairs := table.Ranked()

	walkPool := clamp(e.tuning.WalkPairPool, len(rankedPairs))
	return &tables{
		scores:      scores,
		ranked:      ranked,
		rankedPairs: rankedPairs,
		graph:       pairs.NewGraph(rankedPairs[:walkPool]),
	}
}

// Generate produces exactly numTickets distinct valid tickets, in acceptance
// order. The three primary strategies contribute raw candidates; validation
// discards malformed ones, dedup keeps first-seen combinations, and the
// mixed fallback tops up the rest. The call is a pure in-memory computation.
func (e *Engine) Generate(numTickets int) ([]domain.Ticket, error) {
	if numTickets < 1 {
		return nil, fmt.Errorf("%w: ticket count %d must be positive", ErrInvalidConfig, numTickets)
	}

	tb := e.analyze()

	// Each primary strategy contributes an equal share of raw candidates,
	// at least the traditional four per strategy.
	perStrategy := (numTickets + 2) / 3
	if perStrategy < 4 {
		perStrategy = 4
	}

	var raw []domain.Ticket
	for i := 0; i < perStrategy; i++ {
		raw = append(raw, e.coreTicket(tb))
	}
	for i := 0; i < perStrategy; i++ {
		raw = append(raw, e.tieredTicket(tb))
	}
	for i := 0; i < perStrategy; i++ {
		raw = append(raw, e.pairTicket(tb))
	}

	accepted, seen := e.validateAndDedup(raw)

	// Top up with the mixed fallback until the quota is met. The budget only
	// runs out when the profile leaves too few distinct legal tickets, which
	// New's validation cannot rule out for degenerate tunings.
	budget := e.tuning.MaxTopUpFactor * numTickets
	for len(accepted) < numTickets {
		if budget == 0 {
			return nil, fmt.Errorf("%w: generated %d of %d tickets before exhausting fallback attempts",
				ErrUnsatisfiable, len(accepted), numTickets)
		}
		budget--

		candidate := e.mixedTicket(tb)
		if !e.valid(candidate) {
			continue
		}
		if _, dup := seen[candidate.Key()]; dup {
			continue
		}
		seen[candidate.Key()] = struct{}{}
		accepted = append(accepted, candidate)
	}

	return accepted[:numTickets], nil
}

// validateAndDedup filters raw candidates against the profile invariants and
// removes duplicates, preserving first-seen order.
func (e *Engine) validateAndDedup(raw []domain.Ticket) ([]domain.Ticket, map[string]struct{}) {
	seen := make(map[string]struct{}, len(raw))
	accepted := make([]domain.Ticket, 0, len(raw))
	for _, t := range raw {
		if !e.valid(t) {
			continue
		}
		key := t.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		accepted = append(accepted, t)
	}
	return accepted, seen
}

// valid checks the domain invariants: exactly RegularCount distinct regular
// numbers in range, special number in range. Generators may legitimately
// emit tickets that fail here.
func (e *Engine) valid(t domain.Ticket) bool {
	if len(t.Regular) != e.profile.RegularCount {
		return false
	}
	for i, n := range t.Regular {
		if !e.profile.InRegularRange(n) {
			return false
		}
		// Canonical tickets are sorted, so a duplicate is always adjacent.
		if i > 0 && n == t.Regular[i-1] {
			return false
		}
	}
	return e.profile.InSpecialRange(t.Special)
}
