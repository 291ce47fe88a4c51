package receipt

import (
	"fmt"
	"strings"
	"time"
)

// FormatCurrency renders a dollar amount with two decimals.
func FormatCurrency(usd float64) string {
	return fmt.Sprintf("$%.2f", usd)
}

// FormatNumber formats an integer with comma separators (e.g. 1,234,567).
// Used for raw, non-billed token counts.
func FormatNumber(n int) string {
	negative := n < 0
	if negative {
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	if len(s) > 3 {
		var b strings.Builder
		for i, c := range s {
			if i > 0 && (len(s)-i)%3 == 0 {
				b.WriteByte(',')
			}
			b.WriteRune(c)
		}
		s = b.String()
	}
	if negative {
		return "-" + s
	}
	return s
}

// FormatCompact renders a token quantity with a K/M suffix
// (999 -> "999", 1500 -> "1.5K", 2300000 -> "2.3M").
// Used for billed quantities, which are fractional after weighting.
func FormatCompact(n float64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", n/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", n/1_000)
	default:
		return fmt.Sprintf("%.0f", n)
	}
}

// FormatDuration renders active time from milliseconds, e.g.
// 45000 -> "45s", 125000 -> "2m 5s", 3725000 -> "1h 2m 5s".
func FormatDuration(ms int64) string {
	seconds := ms / 1000
	minutes := seconds / 60
	hours := minutes / 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes%60, seconds%60)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds%60)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

// FormatDate renders an ISO-8601 timestamp as "2006-01-02 15:04:05".
// A trailing "Z" is treated as a literal UTC offset. Unparsable input
// is returned unmodified rather than failing the render.
func FormatDate(iso string) string {
	s := iso
	if strings.HasSuffix(s, "Z") {
		s = strings.TrimSuffix(s, "Z") + "+00:00"
	}
	for _, layout := range []string{
		"2006-01-02T15:04:05.999999999-07:00",
		"2006-01-02T15:04:05-07:00",
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04:05",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02 15:04:05")
		}
	}
	return iso
}
