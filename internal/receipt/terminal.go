package receipt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/anomredux/claude-receipt/internal/theme"
)

const termWidth = 44

// RenderTerminal produces a lipgloss-styled receipt for stdout.
// Used by the preview tool and the -print flag; no markup escaping
// applies since the terminal is not a markup target.
func RenderTerminal(d Data) string {
	var b strings.Builder

	center := lipgloss.NewStyle().Width(termWidth).Align(lipgloss.Center)
	b.WriteString(center.Render(theme.LogoStyle.Render("CLAUDE")))
	b.WriteString("\n")
	b.WriteString(center.Render(theme.MutedStyle.Render("SESSION RECEIPT")))
	b.WriteString("\n")
	b.WriteString(theme.MutedStyle.Render(strings.Repeat("=", termWidth)))
	b.WriteString("\n")
	b.WriteString(center.Render(theme.ValueStyle.Render(d.ModelName)))
	b.WriteString("\n\n")

	for _, row := range []struct{ label, value string }{
		{"Location", d.Location},
		{"Session", d.SessionShort},
		{"Date", d.Date},
		{"Duration", d.Duration},
	} {
		b.WriteString(metaRow(row.label, row.value))
	}

	b.WriteString(theme.MutedStyle.Render(strings.Repeat("-", termWidth)))
	b.WriteString("\n")
	b.WriteString(itemRow(theme.LabelStyle, "ITEM", "QTY", "PRICE"))
	for _, it := range d.items() {
		b.WriteString(itemRow(theme.ValueStyle, it.Label, it.Raw, it.Price))
	}
	b.WriteString(metaRow("Total tokens", FormatCompact(float64(d.Breakdown.TotalRaw))))

	b.WriteString(theme.MutedStyle.Render(strings.Repeat("=", termWidth)))
	b.WriteString("\n")
	b.WriteString(itemRow(theme.TotalStyle, "TOTAL", "", FormatCurrency(d.Breakdown.TotalCost)))
	b.WriteString("\n")
	b.WriteString(center.Render(theme.ValueStyle.Render("SERVED BY: " + d.ServedBy)))
	b.WriteString("\n")
	b.WriteString(center.Render(theme.MutedStyle.Render("Thank you for building!")))
	b.WriteString("\n")

	return theme.ReceiptStyle.Render(b.String())
}

func metaRow(label, value string) string {
	pad := termWidth - len(label) - len(value)
	if pad < 1 {
		pad = 1
	}
	return theme.LabelStyle.Render(label) +
		strings.Repeat(" ", pad) +
		theme.ValueStyle.Render(value) + "\n"
}

func itemRow(style lipgloss.Style, label, qty, price string) string {
	line := fmt.Sprintf("%-18s %12s %12s", label, qty, price)
	return style.Render(line) + "\n"
}
