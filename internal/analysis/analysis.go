// Package analysis computes descriptive statistics over a draw history:
// summary counts, hot/cold classification, and rolling appearance trends.
// It feeds the reporting layer; the generation engine does not depend on it.
package analysis

import (
	"sort"
	"time"

	"github.com/roei-asher/Lottery/internal/domain"
)

// Default window sizes for hot/cold classification and trend analysis.
const (
	DefaultHotColdDraws  = 50
	DefaultRollingWindow = 20
)

// NumberCount is one frequency entry.
type NumberCount struct {
	Number int
	Count  int
}

// Summary describes a full draw history.
type Summary struct {
	TotalDraws        int
	DateStart         time.Time
	DateEnd           time.Time
	MostCommon        []NumberCount // top 10 regular numbers
	LeastCommon       []NumberCount // bottom 10 regular numbers
	MostCommonSpecial []NumberCount // top 5 special numbers
}

// Summarize computes summary statistics over the whole history. Draws are
// expected most-recent-first.
func Summarize(p domain.Profile, draws []domain.Draw) Summary {
	s := Summary{TotalDraws: len(draws)}
	if len(draws) == 0 {
		return s
	}
	s.DateEnd = draws[0].Date
	s.DateStart = draws[len(draws)-1].Date

	regular := countRegular(draws)
	special := make(map[int]int)
	for _, d := range draws {
		special[d.Special]++
	}

	ranked := rankCounts(regular)
	s.MostCommon = topN(ranked, 10)
	s.LeastCommon = bottomN(ranked, 10)
	s.MostCommonSpecial = topN(rankCounts(special), 5)
	return s
}

// HotCold classifies the top and bottom 20% of numbers by appearance count
// over the most recent draws. Only numbers that appeared at all are ranked,
// matching the original behavior.
func HotCold(p domain.Profile, draws []domain.Draw, recentDraws int) (hot, cold []int) {
	window := domain.Window(draws, recentDraws)
	ranked := rankCounts(countRegular(window))
	if len(ranked) == 0 {
		return nil, nil
	}

	cutoff := len(ranked) / 5
	if cutoff < 1 {
		cutoff = 1
	}
	for _, nc := range ranked[:cutoff] {
		hot = append(hot, nc.Number)
	}
	for _, nc := range ranked[len(ranked)-cutoff:] {
		cold = append(cold, nc.Number)
	}
	sort.Ints(hot)
	sort.Ints(cold)
	return hot, cold
}

// TrendPoint is the appearance rate of a number within one rolling window.
type TrendPoint struct {
	WindowEnd time.Time
	Rate      float64 // appearances per draw within the window
}

// Trend computes the rolling appearance rate of one regular number, oldest
// window first; window slides one draw at a time over the chronological
// history.
func Trend(draws []domain.Draw, number, window int) []TrendPoint {
	if window < 1 || len(draws) < window {
		return nil
	}

	// Work oldest-first for a chronological series.
	chrono := make([]domain.Draw, len(draws))
	for i, d := range draws {
		chrono[len(draws)-1-i] = d
	}

	appears := make([]int, len(chrono))
	for i, d := range chrono {
		for _, n := range d.Regular {
			if n == number {
				appears[i] = 1
				break
			}
		}
	}

	points := make([]TrendPoint, 0, len(chrono)-window+1)
	sum := 0
	for i, a := range appears {
		sum += a
		if i >= window {
			sum -= appears[i-window]
		}
		if i >= window-1 {
			points = append(points, TrendPoint{
				WindowEnd: chrono[i].Date,
				Rate:      float64(sum) / float64(window),
			})
		}
	}
	return points
}

func countRegular(draws []domain.Draw) map[int]int {
	counts := make(map[int]int)
	for _, d := range draws {
		for _, n := range d.Regular {
			counts[n]++
		}
	}
	return counts
}

// rankCounts orders observed numbers by descending count, ascending number
// on ties.
func rankCounts(counts map[int]int) []NumberCount {
	ranked := make([]NumberCount, 0, len(counts))
	for n, c := range counts {
		ranked = append(ranked, NumberCount{Number: n, Count: c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Number < ranked[j].Number
	})
	return ranked
}

func topN(ranked []NumberCount, n int) []NumberCount {
	if n > len(ranked) {
		n = len(ranked)
	}
	out := make([]NumberCount, n)
	copy(out, ranked[:n])
	return out
}

func bottomN(ranked []NumberCount, n int) []NumberCount {
	if n > len(ranked) {
		n = len(ranked)
	}
	out := make([]NumberCount, n)
	copy(out, ranked[len(ranked)-n:])
	return out
}
