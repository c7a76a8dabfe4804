package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"datawash/internal/frame"
)

// Currency formats an amount as whole dollars with thousands separators,
// e.g. 50000 -> "$50,000". The amount is rounded to the nearest dollar.
func Currency(v float64) string {
	return "$" + humanize.Comma(int64(math.Round(v)))
}

// FormatAbsentCounts renders per-column absent cell counts, one aligned
// line per column in table order.
func FormatAbsentCounts(counts []frame.AbsentCount) string {
	width := 0
	for _, c := range counts {
		if len(c.Column) > width {
			width = len(c.Column)
		}
	}

	var b strings.Builder
	for _, c := range counts {
		fmt.Fprintf(&b, "%-*s  %d\n", width, c.Column, c.Count)
	}
	return b.String()
}

// FormatValues renders a value list the way the validation section
// prints distinct column values, e.g. ["IT" "HR"].
func FormatValues(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return "[" + strings.Join(quoted, " ") + "]"
}
