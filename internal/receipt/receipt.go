// Package receipt renders one session's usage and cost figures as a
// stylized receipt document (SVG, HTML, or a terminal preview).
package receipt

import (
	"github.com/anomredux/claude-receipt/internal/domain"
	"github.com/anomredux/claude-receipt/internal/pricing"
)

// Data carries the display fields and billing figures for one receipt.
// Fields are unescaped; each renderer escapes for its own markup.
type Data struct {
	SessionShort string
	Location     string
	ModelName    string
	ServedBy     string
	Date         string // pre-formatted, see FormatDate
	Duration     string // pre-formatted, see FormatDuration

	Breakdown pricing.Breakdown
}

// Build assembles renderer input from a session record and its
// computed cost breakdown.
func Build(s domain.Session, table pricing.Table, b pricing.Breakdown) Data {
	return Data{
		SessionShort: s.ShortID(),
		Location:     s.Location,
		ModelName:    table.DisplayName(s.Model),
		ServedBy:     ServedBy(s.SessionID),
		Date:         FormatDate(s.EndTime),
		Duration:     FormatDuration(s.ActiveTimeMs),
		Breakdown:    b,
	}
}

// item is one rendered line of the ITEM/QTY/BILLED/PRICE table.
type item struct {
	Label  string
	Raw    string
	Billed string
	Price  string
}

// items returns the line items present on the receipt. Input and output
// rows always render; cache rows only when their raw count is positive.
func (d Data) items() []item {
	b := d.Breakdown
	out := []item{
		lineItem("Input tokens", b.Input),
		lineItem("Output tokens", b.Output),
	}
	if b.CacheWrite.Raw > 0 {
		out = append(out, lineItem("Cache write", b.CacheWrite))
	}
	if b.CacheRead.Raw > 0 {
		out = append(out, lineItem("Cache read", b.CacheRead))
	}
	return out
}

func lineItem(label string, l pricing.Line) item {
	return item{
		Label:  label,
		Raw:    FormatNumber(l.Raw),
		Billed: FormatCompact(l.Billed),
		Price:  FormatCurrency(l.Cost),
	}
}
