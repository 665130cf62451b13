package generator

import (
	"errors"
	"testing"
	"time"

	"github.com/roei-asher/Lottery/internal/domain"
)

// synthHistory builds n Israeli draws, most recent first, with number 7 in
// every draw and the other slots rotating through the range.
func synthHistory(n int) []domain.Draw {
	draws := make([]domain.Draw, n)
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		regular := []int{7}
		next := 8 + (i*3)%29
		for len(regular) < 6 {
			if next > 37 {
				next = 1
			}
			if next != 7 {
				regular = append(regular, next)
			}
			next++
		}
		draws[i] = domain.Draw{
			Date:    base.AddDate(0, 0, -i),
			Regular: regular,
			Special: 1 + i%7,
		}
	}
	return draws
}

func newTestEngine(t *testing.T, seed int64) *Engine {
	t.Helper()
	e, err := New(domain.Israeli, synthHistory(200), WithSeed(seed))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func TestGenerate_BatchInvariants(t *testing.T) {
	e := newTestEngine(t, 1)

	for _, n := range []int{1, 5, 12, 40} {
		tickets, err := e.Generate(n)
		if err != nil {
			t.Fatalf("Generate(%d): %v", n, err)
		}
		if len(tickets) != n {
			t.Fatalf("Generate(%d) returned %d tickets", n, len(tickets))
		}

		seen := make(map[string]struct{})
		for _, tk := range tickets {
			if len(tk.Regular) != 6 {
				t.Errorf("ticket %v has %d regular numbers", tk, len(tk.Regular))
			}
			for i, num := range tk.Regular {
				if num < 1 || num > 37 {
					t.Errorf("ticket %v contains out-of-range number %d", tk, num)
				}
				if i > 0 && num <= tk.Regular[i-1] {
					t.Errorf("ticket %v regular numbers not strictly ascending", tk)
				}
			}
			if tk.Special < 1 || tk.Special > 7 {
				t.Errorf("ticket %v has out-of-range special %d", tk, tk.Special)
			}
			if _, dup := seen[tk.Key()]; dup {
				t.Errorf("duplicate ticket in batch: %v", tk)
			}
			seen[tk.Key()] = struct{}{}
		}
	}
}

func TestGenerate_DeterministicWithSeed(t *testing.T) {
	history := synthHistory(200)

	a, err := New(domain.Israeli, history, WithSeed(77))
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(domain.Israeli, history, WithSeed(77))
	if err != nil {
		t.Fatal(err)
	}

	first, err := a.Generate(12)
	if err != nil {
		t.Fatal(err)
	}
	second, err := b.Generate(12)
	if err != nil {
		t.Fatal(err)
	}

	for i := range first {
		if first[i].Key() != second[i].Key() {
			t.Fatalf("ticket %d differs between identically seeded runs: %v vs %v",
				i, first[i], second[i])
		}
	}
}

func TestGenerate_EmptyHistoryStillFillsBatch(t *testing.T) {
	e, err := New(domain.Israeli, nil, WithSeed(3))
	if err != nil {
		t.Fatal(err)
	}

	tickets, err := e.Generate(12)
	if err != nil {
		t.Fatalf("Generate over empty history: %v", err)
	}
	if len(tickets) != 12 {
		t.Fatalf("got %d tickets, want 12", len(tickets))
	}
}

func TestGenerate_PositiveCountRequired(t *testing.T) {
	e := newTestEngine(t, 1)
	for _, n := range []int{0, -3} {
		if _, err := e.Generate(n); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Generate(%d) = %v, want ErrInvalidConfig", n, err)
		}
	}
}

func TestGenerate_UnsatisfiableRequest(t *testing.T) {
	// 3-of-3 with a single special number: exactly one legal ticket exists.
	tiny := domain.Profile{
		Name: "tiny", RegularMin: 1, RegularMax: 3, RegularCount: 3,
		SpecialMin: 1, SpecialMax: 1,
	}
	e, err := New(tiny, nil, WithSeed(5))
	if err != nil {
		t.Fatal(err)
	}

	tickets, err := e.Generate(1)
	if err != nil {
		t.Fatalf("Generate(1) on tiny profile: %v", err)
	}
	if tickets[0].Key() != "1,2,3|1" {
		t.Errorf("unexpected ticket %v", tickets[0])
	}

	if _, err := e.Generate(2); !errors.Is(err, ErrUnsatisfiable) {
		t.Errorf("Generate(2) = %v, want ErrUnsatisfiable", err)
	}
}

func TestNew_InvalidProfile(t *testing.T) {
	bad := domain.Profile{RegularMin: 1, RegularMax: 5, RegularCount: 9, SpecialMin: 1, SpecialMax: 2}
	if _, err := New(bad, nil); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("New with oversized count = %v, want ErrInvalidConfig", err)
	}
}

func TestGenerate_HotNumberAppearsAboveBaseline(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping statistical test in short mode")
	}

	history := synthHistory(200)

	containing := 0
	total := 0
	for seed := int64(1); seed <= 50; seed++ {
		e, err := New(domain.Israeli, history, WithSeed(seed))
		if err != nil {
			t.Fatal(err)
		}
		tickets, err := e.Generate(20)
		if err != nil {
			t.Fatal(err)
		}
		for _, tk := range tickets {
			total++
			for _, n := range tk.Regular {
				if n == 7 {
					containing++
					break
				}
			}
		}
	}

	// Under uniform selection a ticket contains any fixed number with
	// probability 6/37 ~ 0.162. Number 7 appears in every historical draw,
	// so the weighted strategies must include it well above that baseline.
	rate := float64(containing) / float64(total)
	baseline := 6.0 / 37.0
	if rate <= baseline {
		t.Errorf("hot number inclusion rate %.3f not above uniform baseline %.3f", rate, baseline)
	}
}

func TestGenerate_ScratchStateIsPerCall(t *testing.T) {
	e := newTestEngine(t, 9)

	// Back-to-back calls must each satisfy the full batch contract; a stale
	// dedup set from the previous call would make the second run short.
	for i := 0; i < 5; i++ {
		tickets, err := e.Generate(12)
		if err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
		if len(tickets) != 12 {
			t.Fatalf("call %d returned %d tickets", i, len(tickets))
		}
	}
}
