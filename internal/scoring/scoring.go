// Package scoring turns a window of historical draws into per-number scores
// blending how often each number appeared (frequency) with how recently it
// appeared (exponentially decayed recency).
package scoring

import (
	"math"
	"sort"

	"github.com/roei-asher/Lottery/internal/domain"
)

// Default analysis parameters.
const (
	DefaultLookbackDraws   = 200
	DefaultFrequencyWeight = 0.6
	DefaultRecencyWeight   = 0.4
	DefaultRegularDecay    = 0.02
	DefaultSpecialDecay    = 0.03
)

// Config holds the tunable scoring parameters. FrequencyWeight and
// RecencyWeight are intended to sum to 1; this is documented, not enforced.
type Config struct {
	LookbackDraws   int
	FrequencyWeight float64
	RecencyWeight   float64
	RegularDecay    float64
	SpecialDecay    float64
}

// DefaultConfig returns the standard analysis parameters.
func DefaultConfig() Config {
	return Config{
		LookbackDraws:   DefaultLookbackDraws,
		FrequencyWeight: DefaultFrequencyWeight,
		RecencyWeight:   DefaultRecencyWeight,
		RegularDecay:    DefaultRegularDecay,
		SpecialDecay:    DefaultSpecialDecay,
	}
}

// Valid reports whether the parameters can produce finite scores.
func (c Config) Valid() bool {
	for _, v := range []float64{c.FrequencyWeight, c.RecencyWeight, c.RegularDecay, c.SpecialDecay} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return c.LookbackDraws > 0
}

// ScoreTable maps a number to its blended score in [0, 1]. Tables are built
// fresh per analysis run and never mutated afterwards.
type ScoreTable map[int]float64

// Scores holds the per-pool score tables of one analysis run.
type Scores struct {
	Regular ScoreTable
	Special ScoreTable
}

// Analyze computes the regular and special score tables over the most recent
// cfg.LookbackDraws draws. The window clamps silently to the available
// history; an empty window yields all-zero tables rather than an error, and
// downstream sampling treats all-zero weights as uniform.
func Analyze(p domain.Profile, draws []domain.Draw, cfg Config) Scores {
	window := domain.Window(draws, cfg.LookbackDraws)

	return Scores{
		Regular: scorePool(window, cfg, p.RegularMin, p.RegularMax, cfg.RegularDecay,
			func(d *domain.Draw) []int { return d.Regular }),
		Special: scorePool(window, cfg, p.SpecialMin, p.SpecialMax, cfg.SpecialDecay,
			func(d *domain.Draw) []int { return []int{d.Special} }),
	}
}

// scorePool blends max-normalized frequency and recency over [min, max].
// numbers extracts the relevant slots from a draw; draw index 0 is the most
// recent, so its appearances carry the largest recency weight.
func scorePool(window []domain.Draw, cfg Config, min, max int, decay float64, numbers func(*domain.Draw) []int) ScoreTable {
	freq := make(map[int]int)
	recency := make(map[int]float64)

	for i := range window {
		weight := math.Exp(-decay * float64(i))
		for _, n := range numbers(&window[i]) {
			freq[n]++
			recency[n] += weight
		}
	}

	maxFreq := 0
	maxRecency := 0.0
	for _, c := range freq {
		if c > maxFreq {
			maxFreq = c
		}
	}
	for _, w := range recency {
		if w > maxRecency {
			maxRecency = w
		}
	}
	// Empty window: substitute 1 so the division is defined and every score
	// degenerates to zero.
	if maxFreq == 0 {
		maxFreq = 1
	}
	if maxRecency == 0 {
		maxRecency = 1
	}

	table := make(ScoreTable, max-min+1)
	for n := min; n <= max; n++ {
		normFreq := float64(freq[n]) / float64(maxFreq)
		normRecency := recency[n] / maxRecency
		table[n] = cfg.FrequencyWeight*normFreq + cfg.RecencyWeight*normRecency
	}
	return table
}

// Ranked returns the numbers ordered by descending score. Equal scores are
// broken by ascending number so the ranking is deterministic.
func (t ScoreTable) Ranked() []int {
	nums := make([]int, 0, len(t))
	for n := range t {
		nums = append(nums, n)
	}
	sort.Slice(nums, func(i, j int) bool {
		if t[nums[i]] != t[nums[j]] {
			return t[nums[i]] > t[nums[j]]
		}
		return nums[i] < nums[j]
	})
	return nums
}

// Weights returns the scores for items in item order, for use as sampling
// weights.
func (t ScoreTable) Weights(items []int) []float64 {
	w := make([]float64, len(items))
	for i, n := range items {
		w[i] = t[n]
	}
	return w
}
