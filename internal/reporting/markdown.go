package reporting

import (
	"fmt"
	"strings"
	"time"
)

// RenderTicketsMarkdown renders a generation run as Markdown.
func RenderTicketsMarkdown(r *TicketReport) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s — Generated Tickets\n\n", gameTitle(r.Profile.Name)))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Based on %d of %d available draws | Regular: %d of %d-%d | Special: %d-%d\n\n",
		min(r.LookbackDraws, r.HistoryDraws), r.HistoryDraws,
		r.Profile.RegularCount, r.Profile.RegularMin, r.Profile.RegularMax,
		r.Profile.SpecialMin, r.Profile.SpecialMax))
	if r.Seed != 0 {
		sb.WriteString(fmt.Sprintf("Seed: %d\n\n", r.Seed))
	}

	sb.WriteString("| # | Regular Numbers | Special |\n")
	sb.WriteString("|---|-----------------|--------|\n")
	for i, t := range r.Tickets {
		nums := make([]string, len(t.Regular))
		for j, n := range t.Regular {
			nums[j] = fmt.Sprintf("%d", n)
		}
		sb.WriteString(fmt.Sprintf("| %d | %s | %d |\n", i+1, strings.Join(nums, ", "), t.Special))
	}
	sb.WriteString("\n")
	sb.WriteString("Draws are independent and uniformly random; these combinations reproduce historical distributional skew for entertainment only.\n")

	return sb.String()
}

// RenderAnalysisMarkdown renders an analysis run as Markdown.
func RenderAnalysisMarkdown(r *AnalysisReport) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s — Data Analysis\n\n", gameTitle(r.Profile.Name)))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))

	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Total Draws | %d |\n", r.Summary.TotalDraws))
	if r.Summary.TotalDraws > 0 {
		sb.WriteString(fmt.Sprintf("| Date Range | %s to %s |\n",
			r.Summary.DateStart.Format("2006-01-02"), r.Summary.DateEnd.Format("2006-01-02")))
	}
	sb.WriteString("\n")

	if len(r.Summary.MostCommon) > 0 {
		sb.WriteString("## Most Frequent Regular Numbers\n\n")
		sb.WriteString("| Rank | Number | Appearances | Rate |\n")
		sb.WriteString("|------|--------|-------------|------|\n")
		slots := r.Summary.TotalDraws * r.Profile.RegularCount
		for i, nc := range r.Summary.MostCommon {
			sb.WriteString(fmt.Sprintf("| %d | %d | %d | %.2f%% |\n",
				i+1, nc.Number, nc.Count, 100*float64(nc.Count)/float64(slots)))
		}
		sb.WriteString("\n")
	}

	if len(r.Summary.MostCommonSpecial) > 0 {
		sb.WriteString("## Most Frequent Special Numbers\n\n")
		sb.WriteString("| Rank | Number | Appearances |\n")
		sb.WriteString("|------|--------|-------------|\n")
		for i, nc := range r.Summary.MostCommonSpecial {
			sb.WriteString(fmt.Sprintf("| %d | %d | %d |\n", i+1, nc.Number, nc.Count))
		}
		sb.WriteString("\n")
	}

	if len(r.Hot) > 0 || len(r.Cold) > 0 {
		sb.WriteString("## Hot / Cold Numbers\n\n")
		sb.WriteString(fmt.Sprintf("- Hot: %s\n", joinInts(r.Hot)))
		sb.WriteString(fmt.Sprintf("- Cold: %s\n", joinInts(r.Cold)))
		sb.WriteString("\n")
	}

	return sb.String()
}

func gameTitle(name string) string {
	switch name {
	case "israeli":
		return "Israeli Lottery"
	case "megamillions":
		return "Mega Millions"
	case "powerball":
		return "Powerball"
	}
	return name
}

func joinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, ", ")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
