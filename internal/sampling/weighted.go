package sampling

import "math/rand"

// Pick selects one index from items with probability proportional to its
// weight. When the total weight is zero (or no weight is positive) the pick
// falls back to a uniform choice, so callers never see an error from a
// degenerate score table. Returns -1 only for an empty item list.
//
// weights may be nil for an explicitly uniform pick. Negative weights are
// treated as zero.
func Pick(rng *rand.Rand, items []int, weights []float64) int {
	n := len(items)
	if n == 0 {
		return -1
	}
	if weights == nil {
		return items[rng.Intn(n)]
	}

	total := 0.0
	for i := 0; i < n; i++ {
		if w := weights[i]; w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return items[rng.Intn(n)]
	}

	target := rng.Float64() * total
	acc := 0.0
	for i := 0; i < n; i++ {
		if w := weights[i]; w > 0 {
			acc += w
			if target < acc {
				return items[i]
			}
		}
	}
	// Float accumulation can land a hair past the last positive weight.
	for i := n - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return items[i]
		}
	}
	return items[n-1]
}

// Sample draws up to k distinct items without replacement, each pick
// proportional to the remaining weight mass. Zero total weight falls back
// to uniform selection among the remaining items. When k exceeds the item
// count, all items are returned (in pick order).
func Sample(rng *rand.Rand, items []int, weights []float64, k int) []int {
	n := len(items)
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}

	remaining := make([]int, n)
	copy(remaining, items)
	var remWeights []float64
	if weights != nil {
		remWeights = make([]float64, n)
		copy(remWeights, weights)
	}

	picked := make([]int, 0, k)
	for len(picked) < k {
		chosen := Pick(rng, remaining, remWeights)
		picked = append(picked, chosen)

		// Remove the chosen item (and its weight) from the pool.
		for i, v := range remaining {
			if v == chosen {
				remaining = append(remaining[:i], remaining[i+1:]...)
				if remWeights != nil {
					remWeights = append(remWeights[:i], remWeights[i+1:]...)
				}
				break
			}
		}
	}
	return picked
}
