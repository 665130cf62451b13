package generator

import "github.com/roei-asher/Lottery/internal/domain"

// Tuning holds the strategy-shaping constants. The exact values are not
// load-bearing; defaults scale with the profile's regular count so one
// engine serves every game. Override via WithTuning for experimentation.
type Tuning struct {
	// CorePool is the top-K score-ranked numbers the core strategy draws from.
	CorePool int
	// TierWidth is the width of each of the three contiguous rank tiers.
	TierWidth int
	// TierSplit is how many slots each tier contributes, top tier first.
	TierSplit [3]int
	// PairPool is the ranked-pair slice the pair strategy samples from.
	PairPool int
	// PairSample is how many pairs one pair-strategy ticket unions.
	PairSample int
	// MixedPool is the ranked slice the mixed strategy seeds from.
	MixedPool int
	// WalkPairPool is the ranked-pair slice forming the mixed strategy's graph.
	WalkPairPool int
	// MaxTopUpFactor bounds the validator's fallback loop at
	// MaxTopUpFactor * numTickets attempts.
	MaxTopUpFactor int
}

// DefaultTuning derives tuning constants from the profile.
func DefaultTuning(p domain.Profile) Tuning {
	k := p.RegularCount

	// Split the per-ticket slots across tiers roughly 3:2:1.
	s1 := k / 2
	s3 := k / 6
	if s3 < 1 {
		s3 = 1
	}
	s2 := k - s1 - s3
	if s2 < 1 {
		s2 = 1
		s1 = k - s2 - s3
	}

	return Tuning{
		CorePool:       (5*k + 1) / 2, // ~2.5x regular count
		TierWidth:      (3*k + 1) / 2, // ~1.5x regular count
		TierSplit:      [3]int{s1, s2, s3},
		PairPool:       (5 * k) / 2,
		PairSample:     k / 2,
		MixedPool:      3 * k,
		WalkPairPool:   5 * k,
		MaxTopUpFactor: 50,
	}
}

// clamp limits pool sizes to what the profile and history actually provide.
func clamp(n, max int) int {
	if n > max {
		return max
	}
	return n
}
