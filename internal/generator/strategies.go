package generator

import (
	"github.com/roei-asher/Lottery/internal/domain"
	"github.com/roei-asher/Lottery/internal/pairs"
	"github.com/roei-asher/Lottery/internal/sampling"
)

// coreTicket restricts selection to the top-scored pool: half the slots by
// straight score weighting, the rest with per-item jittered weights so
// repeated calls diverge, topped up uniformly from the full range.
func (e *Engine) coreTicket(tb *tables) domain.Ticket {
	k := e.profile.RegularCount
	pool := tb.ranked[:clamp(e.tuning.CorePool, len(tb.ranked))]

	chosen := sampling.Sample(e.rng, pool, tb.scores.Regular.Weights(pool), k/2)

	remaining := exclude(pool, chosen)
	if len(remaining) > 0 && len(chosen) < k {
		jittered := make([]float64, len(remaining))
		for i, n := range remaining {
			jittered[i] = tb.scores.Regular[n] * (0.7 + 0.3*e.rng.Float64())
		}
		chosen = append(chosen, sampling.Sample(e.rng, remaining, jittered, k-len(chosen))...)
	}

	chosen = e.topUpUniform(chosen, k)
	return domain.NewTicket(chosen, e.specialNumber(tb))
}

// tieredTicket partitions the ranking into three contiguous tiers and draws
// a fixed slot split from each, uniformly within a tier. Score rank decides
// tier membership only; inside a tier every number is equally likely.
func (e *Engine) tieredTicket(tb *tables) domain.Ticket {
	w := e.tuning.TierWidth
	var chosen []int
	for i, slots := range e.tuning.TierSplit {
		lo := clamp(i*w, len(tb.ranked))
		hi := clamp((i+1)*w, len(tb.ranked))
		chosen = append(chosen, sampling.Sample(e.rng, tb.ranked[lo:hi], nil, slots)...)
	}
	return domain.NewTicket(chosen, e.specialNumber(tb))
}

// pairTicket samples a few top-ranked pairs, unions their endpoints, and
// fills the remaining slots greedily from the score ranking. A pool too
// thin to reach RegularCount yields a short ticket that validation drops.
func (e *Engine) pairTicket(tb *tables) domain.Ticket {
	k := e.profile.RegularCount
	pool := tb.rankedPairs[:clamp(e.tuning.PairPool, len(tb.rankedPairs))]

	indices := make([]int, len(pool))
	for i := range pool {
		indices[i] = i
	}

	set := make(map[int]bool)
	for _, idx := range sampling.Sample(e.rng, indices, nil, e.tuning.PairSample) {
		set[pool[idx].Pair.A] = true
		set[pool[idx].Pair.B] = true
	}

	for _, n := range tb.ranked {
		if len(set) >= k {
			break
		}
		set[n] = true
	}

	chosen := make([]int, 0, len(set))
	for n := range set {
		chosen = append(chosen, n)
	}
	return domain.NewTicket(chosen, e.specialNumber(tb))
}

// mixedTicket is the fallback strategy: a score-weighted seed followed by an
// edge-expansion walk over the pair graph, extending the set through pairs
// with exactly one endpoint already chosen. When no such edge exists it
// falls back to score-weighted selection over the whole range, so the walk
// always terminates.
func (e *Engine) mixedTicket(tb *tables) domain.Ticket {
	k := e.profile.RegularCount
	pool := tb.ranked[:clamp(e.tuning.MixedPool, len(tb.ranked))]

	set := make(map[int]bool, k)
	for _, n := range sampling.Sample(e.rng, pool, tb.scores.Regular.Weights(pool), k/2) {
		set[n] = true
	}

	for len(set) < k {
		if frontier := tb.graph.Frontier(set); len(frontier) > 0 {
			set[e.pickFrontier(frontier)] = true
			continue
		}

		available := make([]int, 0, e.profile.RegularRange()-len(set))
		for n := e.profile.RegularMin; n <= e.profile.RegularMax; n++ {
			if !set[n] {
				available = append(available, n)
			}
		}
		// available is never empty while len(set) < k <= range size.
		set[sampling.Pick(e.rng, available, tb.scores.Regular.Weights(available))] = true
	}

	chosen := make([]int, 0, k)
	for n := range set {
		chosen = append(chosen, n)
	}
	return domain.NewTicket(chosen, e.specialNumber(tb))
}

// pickFrontier selects a frontier edge weighted by co-occurrence count and
// returns its outside endpoint.
func (e *Engine) pickFrontier(frontier []pairs.Edge) int {
	indices := make([]int, len(frontier))
	weights := make([]float64, len(frontier))
	for i, edge := range frontier {
		indices[i] = i
		weights[i] = float64(edge.Count)
	}
	return frontier[sampling.Pick(e.rng, indices, weights)].Outside
}

// specialNumber draws the special number, score-weighted over its full
// range. Shared by every strategy.
func (e *Engine) specialNumber(tb *tables) int {
	nums := make([]int, 0, e.profile.SpecialRange())
	for n := e.profile.SpecialMin; n <= e.profile.SpecialMax; n++ {
		nums = append(nums, n)
	}
	return sampling.Pick(e.rng, nums, tb.scores.Special.Weights(nums))
}

// topUpUniform extends chosen to k numbers with uniform picks from the full
// regular range, excluding numbers already present.
func (e *Engine) topUpUniform(chosen []int, k int) []int {
	for len(chosen) < k {
		available := make([]int, 0, e.profile.RegularRange()-len(chosen))
		for n := e.profile.RegularMin; n <= e.profile.RegularMax; n++ {
			if !contains(chosen, n) {
				available = append(available, n)
			}
		}
		if len(available) == 0 {
			break
		}
		chosen = append(chosen, sampling.Pick(e.rng, available, nil))
	}
	return chosen
}

func contains(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

// exclude returns the items of pool not present in taken, preserving order.
func exclude(pool, taken []int) []int {
	out := make([]int, 0, len(pool))
	for _, n := range pool {
		if !contains(taken, n) {
			out = append(out, n)
		}
	}
	return out
}
