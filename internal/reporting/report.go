// Package reporting renders ticket batches and analysis results as Markdown
// or CSV for the CLI tools. It holds no logic of its own: the structs here
// are assembled by callers from engine and analysis output.
package reporting

import (
	"time"

	"github.com/roei-asher/Lottery/internal/analysis"
	"github.com/roei-asher/Lottery/internal/domain"
)

// TicketReport is one generation run ready for rendering.
type TicketReport struct {
	Profile       domain.Profile
	LookbackDraws int
	HistoryDraws  int
	Seed          int64 // 0 means unseeded
	GeneratedAt   time.Time
	Tickets       []domain.Ticket
}

// AnalysisReport is one analysis run ready for rendering.
type AnalysisReport struct {
	Profile     domain.Profile
	GeneratedAt time.Time
	Summary     analysis.Summary
	Hot         []int
	Cold        []int
}
