package itinerary

import (
	"fmt"
	"strings"
)

// FormatReport renders the plan as the plain-text summary shown to users.
// Each day gets a heading and one indented line per visit; a priced visit
// carries its price in parentheses.
func FormatReport(plans []DayPlan) string {
	if len(plans) == 0 {
		return "No itinerary could be generated for the given days."
	}

	var b strings.Builder
	for _, day := range plans {
		fmt.Fprintf(&b, "Day %d:\n", day.Day)
		if len(day.Schedule) == 0 {
			b.WriteString("  No activities planned for this day.\n")
		}
		for _, item := range day.Schedule {
			fmt.Fprintf(&b, "  %s - %s: %s", item.StartTime, item.EndTime, item.DestinationName)
			if item.Price != "" && item.Price != "N/A" {
				fmt.Fprintf(&b, " (%s)", item.Price)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}
