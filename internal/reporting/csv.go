package reporting

import (
	"fmt"
	"strings"
)

// RenderTicketsCSV renders a ticket batch as CSV, one row per ticket with
// number slots split into columns.
func RenderTicketsCSV(r *TicketReport) string {
	var sb strings.Builder

	sb.WriteString("ticket")
	for i := 1; i <= r.Profile.RegularCount; i++ {
		sb.WriteString(fmt.Sprintf(",number%d", i))
	}
	sb.WriteString(",special\n")

	for i, t := range r.Tickets {
		sb.WriteString(fmt.Sprintf("%d", i+1))
		for _, n := range t.Regular {
			sb.WriteString(fmt.Sprintf(",%d", n))
		}
		sb.WriteString(fmt.Sprintf(",%d\n", t.Special))
	}
	return sb.String()
}

// RenderFrequencyCSV renders analysis frequency rows as CSV.
func RenderFrequencyCSV(r *AnalysisReport) string {
	var sb strings.Builder

	sb.WriteString("rank,number,appearances\n")
	for i, nc := range r.Summary.MostCommon {
		sb.WriteString(fmt.Sprintf("%d,%d,%d\n", i+1, nc.Number, nc.Count))
	}
	return sb.String()
}
