package receipt

import (
	"fmt"
	"strings"
)

const svgHeader = `<?xml version="1.0" encoding="UTF-8"?>
<svg width="400" height="%d" viewBox="0 0 400 %d" xmlns="http://www.w3.org/2000/svg">
  <defs>
    <style>
      .receipt-bg { fill: #f8f8f8; }
      .text { font-family: 'Courier New', Courier, monospace; font-size: 12px; fill: #333; }
      .text-bold { font-family: 'Courier New', Courier, monospace; font-size: 12px; fill: #333; font-weight: bold; }
      .text-small { font-family: 'Courier New', Courier, monospace; font-size: 10px; fill: #666; }
      .separator { stroke: #333; stroke-width: 2; }
      .light-separator { stroke: #ccc; stroke-width: 1; stroke-dasharray: 2,2; }
      .logo-text { font-family: Arial, sans-serif; font-size: 24px; fill: #333; font-weight: bold; }
      .model-tag { fill: #e8e8e8; }
    </style>
  </defs>

  <rect class="receipt-bg" x="10" y="10" width="380" height="%d" rx="4"/>

  <text x="200" y="55" class="logo-text" text-anchor="middle">CLAUDE</text>
  <text x="200" y="78" class="text-small" text-anchor="middle">SESSION RECEIPT</text>

  <line x1="30" y1="95" x2="370" y2="95" class="separator"/>

  <rect class="model-tag" x="100" y="105" width="200" height="22" rx="3"/>
  <text x="200" y="121" class="text-bold" text-anchor="middle" font-size="11">%s</text>
`

// RenderSVG produces the SVG receipt document. The vertical layout is
// computed incrementally, so omitted cache rows reserve no space.
func RenderSVG(d Data) string {
	items := d.items()

	// Body height grows with the number of line items.
	height := 560 + 20*(len(items)-2)

	var b strings.Builder
	fmt.Fprintf(&b, svgHeader, height+20, height+20, height, EscapeXML(d.ModelName))

	y := 150
	for _, row := range []struct{ label, value string }{
		{"Location", EscapeXML(d.Location)},
		{"Session", EscapeXML(d.SessionShort)},
		{"Date", EscapeXML(d.Date)},
		{"Duration", EscapeXML(d.Duration)},
	} {
		fmt.Fprintf(&b, `
  <text x="30" y="%d" class="text">%s</text>
  <text x="370" y="%d" class="text" text-anchor="end">%s</text>
  <line x1="105" y1="%d" x2="285" y2="%d" class="light-separator"/>
`, y, row.label, y, row.value, y-4, y-4)
		y += 20
	}

	fmt.Fprintf(&b, `
  <line x1="30" y1="%d" x2="370" y2="%d" class="separator"/>

  <text x="30" y="%d" class="text-bold">ITEM</text>
  <text x="185" y="%d" class="text-bold" text-anchor="end">QTY</text>
  <text x="275" y="%d" class="text-bold" text-anchor="end">BILLED</text>
  <text x="370" y="%d" class="text-bold" text-anchor="end">PRICE</text>

  <line x1="30" y1="%d" x2="370" y2="%d" class="light-separator"/>
`, y, y, y+25, y+25, y+25, y+25, y+35, y+35)
	y += 60

	for _, it := range items {
		fmt.Fprintf(&b, `
  <text x="45" y="%d" class="text">%s</text>
  <text x="185" y="%d" class="text" text-anchor="end">%s</text>
  <text x="275" y="%d" class="text" text-anchor="end">%s</text>
  <text x="370" y="%d" class="text" text-anchor="end">%s</text>
`, y, it.Label, y, it.Raw, y, it.Billed, y, it.Price)
		y += 20
	}

	fmt.Fprintf(&b, `
  <text x="45" y="%d" class="text-small">Total tokens</text>
  <text x="185" y="%d" class="text-small" text-anchor="end">%s</text>
`, y, y, FormatCompact(float64(d.Breakdown.TotalRaw)))
	y += 15

	fmt.Fprintf(&b, `
  <line x1="30" y1="%d" x2="370" y2="%d" class="separator"/>

  <text x="30" y="%d" class="text-bold" font-size="14">TOTAL</text>
  <text x="370" y="%d" class="text-bold" font-size="14" text-anchor="end">%s</text>

  <line x1="30" y1="%d" x2="370" y2="%d" class="separator"/>

  <text x="200" y="%d" class="text" text-anchor="middle">SERVED BY: %s</text>

  <text x="200" y="%d" class="text" text-anchor="middle">Thank you for building!</text>

  <line x1="100" y1="%d" x2="300" y2="%d" class="light-separator"/>

  <text x="200" y="%d" class="text-small" text-anchor="middle">claude.ai</text>
</svg>
`, y, y, y+25, y+25, FormatCurrency(d.Breakdown.TotalCost), y+40, y+40,
		y+70, EscapeXML(d.ServedBy), y+100, y+120, y+120, y+140)

	return b.String()
}
