package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Ticket is one generated candidate combination: RegularCount distinct
// regular numbers (stored sorted ascending) plus one special number.
// Two tickets are equal iff their canonical keys are equal.
type Ticket struct {
	Regular []int
	Special int
}

// NewTicket builds a ticket in canonical form. The input slice is copied
// and sorted; duplicates are preserved so invalid candidates stay visible
// to validation.
func NewTicket(regular []int, special int) Ticket {
	sorted := make([]int, len(regular))
	copy(sorted, regular)
	sort.Ints(sorted)
	return Ticket{Regular: sorted, Special: special}
}

// Key returns the canonical identity of the ticket, e.g. "3,7,12,19,25,31|4".
func (t Ticket) Key() string {
	var sb strings.Builder
	for i, n := range t.Regular {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(n))
	}
	sb.WriteByte('|')
	sb.WriteString(strconv.Itoa(t.Special))
	return sb.String()
}

// String renders the ticket the way the CLI prints it.
func (t Ticket) String() string {
	parts := make([]string, len(t.Regular))
	for i, n := range t.Regular {
		parts[i] = fmt.Sprintf("%2d", n)
	}
	return fmt.Sprintf("[%s] | Special: %d", strings.Join(parts, ", "), t.Special)
}
