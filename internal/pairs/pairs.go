// Package pairs counts how often two regular numbers are drawn together and
// exposes the counts both as a ranked table and as a weighted graph for the
// mixed strategy's edge-expansion walk.
package pairs

import (
	"sort"

	"github.com/roei-asher/Lottery/internal/domain"
)

// Pair is an unordered pair of regular numbers, normalized so A < B.
type Pair struct {
	A, B int
}

// NewPair normalizes (a, b) into canonical order.
func NewPair(a, b int) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// PairCount is one table entry: a pair and its co-occurrence count.
type PairCount struct {
	Pair  Pair
	Count int
}

// Table holds co-occurrence counts for every possible pair of regular
// numbers in a profile's range, including pairs never observed.
type Table struct {
	profile domain.Profile
	counts  map[Pair]int
}

// Count builds the pair table over the most recent lookback draws. Every
// possible pair starts at zero; each draw increments every 2-combination of
// its regular numbers once.
func Count(p domain.Profile, draws []domain.Draw, lookback int) *Table {
	counts := make(map[Pair]int)
	for i := p.RegularMin; i <= p.RegularMax; i++ {
		for j := i + 1; j <= p.RegularMax; j++ {
			counts[Pair{A: i, B: j}] = 0
		}
	}

	for _, d := range domain.Window(draws, lookback) {
		for i := 0; i < len(d.Regular); i++ {
			for j := i + 1; j < len(d.Regular); j++ {
				counts[NewPair(d.Regular[i], d.Regular[j])]++
			}
		}
	}

	return &Table{profile: p, counts: counts}
}

// Get returns the co-occurrence count for the pair (a, b) in either order.
func (t *Table) Get(a, b int) int {
	return t.counts[NewPair(a, b)]
}

// Total returns the sum of all pair counts. Over a window of W draws of k
// numbers each this equals W * C(k, 2).
func (t *Table) Total() int {
	sum := 0
	for _, c := range t.counts {
		sum += c
	}
	return sum
}

// Len returns the number of pair entries, i.e. C(range, 2).
func (t *Table) Len() int {
	return len(t.counts)
}

// Ranked returns all pairs ordered by descending count. The count ordering
// is what matters; ties are broken by ascending pair so the result is
// reproducible.
func (t *Table) Ranked() []PairCount {
	ranked := make([]PairCount, 0, len(t.counts))
	for p, c := range t.counts {
		ranked = append(ranked, PairCount{Pair: p, Count: c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		if ranked[i].Pair.A != ranked[j].Pair.A {
			return ranked[i].Pair.A < ranked[j].Pair.A
		}
		return ranked[i].Pair.B < ranked[j].Pair.B
	})
	return ranked
}
