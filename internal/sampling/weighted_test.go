package sampling

import "testing"

func TestPick_EmptyItems(t *testing.T) {
	rng := NewRand(1)
	if got := Pick(rng, nil, nil); got != -1 {
		t.Errorf("Pick(empty) = %d, want -1", got)
	}
}

func TestPick_ZeroWeightsFallsBackToUniform(t *testing.T) {
	rng := NewRand(42)
	items := []int{10, 20, 30}
	weights := []float64{0, 0, 0}

	seen := make(map[int]int)
	for i := 0; i < 3000; i++ {
		seen[Pick(rng, items, weights)]++
	}
	for _, item := range items {
		if seen[item] == 0 {
			t.Errorf("item %d never picked under uniform fallback", item)
		}
	}
}

func TestPick_RespectsWeights(t *testing.T) {
	rng := NewRand(7)
	items := []int{1, 2}
	weights := []float64{0.9, 0.1}

	count1 := 0
	const trials = 10000
	for i := 0; i < trials; i++ {
		if Pick(rng, items, weights) == 1 {
			count1++
		}
	}
	// Expected ~9000; allow generous slack for randomness.
	if count1 < 8500 || count1 > 9500 {
		t.Errorf("heavy item picked %d/%d times, expected around 9000", count1, trials)
	}
}

func TestPick_NegativeWeightNeverChosen(t *testing.T) {
	rng := NewRand(3)
	items := []int{1, 2, 3}
	weights := []float64{-1, 5, -2}
	for i := 0; i < 1000; i++ {
		if got := Pick(rng, items, weights); got != 2 {
			t.Fatalf("picked %d despite only item 2 having positive weight", got)
		}
	}
}

func TestSample_Distinct(t *testing.T) {
	rng := NewRand(9)
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	weights := []float64{1, 1, 1, 1, 1, 1, 1, 1}

	for trial := 0; trial < 200; trial++ {
		got := Sample(rng, items, weights, 5)
		if len(got) != 5 {
			t.Fatalf("Sample returned %d items, want 5", len(got))
		}
		seen := make(map[int]struct{})
		for _, v := range got {
			if _, dup := seen[v]; dup {
				t.Fatalf("duplicate %d in sample %v", v, got)
			}
			seen[v] = struct{}{}
		}
	}
}

func TestSample_KExceedsPool(t *testing.T) {
	rng := NewRand(5)
	got := Sample(rng, []int{4, 5, 6}, nil, 10)
	if len(got) != 3 {
		t.Errorf("Sample returned %d items, want all 3", len(got))
	}
}

func TestSample_DoesNotMutateInputs(t *testing.T) {
	rng := NewRand(11)
	items := []int{1, 2, 3, 4}
	weights := []float64{1, 2, 3, 4}
	Sample(rng, items, weights, 4)

	if items[0] != 1 || items[3] != 4 {
		t.Error("items slice was mutated")
	}
	if weights[0] != 1 || weights[3] != 4 {
		t.Error("weights slice was mutated")
	}
}

func TestNewRand_Deterministic(t *testing.T) {
	a := NewRand(123)
	b := NewRand(123)
	for i := 0; i < 100; i++ {
		if a.Int63() != b.Int63() {
			t.Fatal("same seed produced diverging streams")
		}
	}
}
