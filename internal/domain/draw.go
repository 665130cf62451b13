package domain

import (
	"fmt"
	"time"
)

// Draw represents one historical drawing: the date plus the numbers drawn.
// Histories are ordered most-recent-first and treated as immutable once loaded.
type Draw struct {
	Date    time.Time
	Regular []int // RegularCount distinct numbers, in drawn order
	Special int
}

// Validate checks the draw against a game profile.
func (d *Draw) Validate(p Profile) error {
	if len(d.Regular) != p.RegularCount {
		return fmt.Errorf("draw on %s has %d regular numbers, want %d",
			d.Date.Format("2006-01-02"), len(d.Regular), p.RegularCount)
	}
	seen := make(map[int]struct{}, len(d.Regular))
	for _, n := range d.Regular {
		if !p.InRegularRange(n) {
			return fmt.Errorf("draw on %s: regular number %d outside [%d, %d]",
				d.Date.Format("2006-01-02"), n, p.RegularMin, p.RegularMax)
		}
		if _, dup := seen[n]; dup {
			return fmt.Errorf("draw on %s: regular number %d repeated",
				d.Date.Format("2006-01-02"), n)
		}
		seen[n] = struct{}{}
	}
	if !p.InSpecialRange(d.Special) {
		return fmt.Errorf("draw on %s: special number %d outside [%d, %d]",
			d.Date.Format("2006-01-02"), d.Special, p.SpecialMin, p.SpecialMax)
	}
	return nil
}

// Window returns the most recent n draws, clamping silently when fewer are
// available. Draws must already be ordered most-recent-first.
func Window(draws []Draw, n int) []Draw {
	if n < 0 {
		n = 0
	}
	if n > len(draws) {
		n = len(draws)
	}
	return draws[:n]
}
