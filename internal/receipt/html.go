package receipt

import (
	"fmt"
	"strings"
)

const htmlHead = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Session Receipt - %s</title>
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }

    body {
      font-family: 'Courier New', Courier, monospace;
      font-size: 14px;
      background: linear-gradient(135deg, #1a1a2e 0%%, #16213e 100%%);
      min-height: 100vh;
      display: flex;
      align-items: center;
      justify-content: center;
      padding: 20px;
    }

    .receipt {
      background: #fafafa;
      width: 420px;
      padding: 30px 25px;
      box-shadow: 0 20px 60px rgba(0, 0, 0, 0.3);
      border-radius: 4px;
    }

    .header {
      text-align: center;
      padding-bottom: 20px;
      border-bottom: 2px solid #333;
    }

    .logo {
      font-family: Arial, sans-serif;
      font-size: 28px;
      font-weight: bold;
      letter-spacing: 4px;
      color: #333;
      margin-bottom: 5px;
    }

    .subtitle { font-size: 11px; color: #666; letter-spacing: 2px; }

    .model-badge {
      background: #333;
      color: #fff;
      padding: 8px 16px;
      border-radius: 20px;
      display: inline-block;
      margin: 20px 0;
      font-size: 12px;
      font-weight: bold;
    }

    .meta { margin: 15px 0; }

    .meta-row {
      display: flex;
      justify-content: space-between;
      padding: 5px 0;
      border-bottom: 1px dashed #ccc;
    }

    .meta-row:last-child { border-bottom: none; }
    .meta-label { color: #666; }
    .meta-value { color: #333; font-weight: 500; }

    .items-header, .item-row {
      display: flex;
      padding: 3px 0;
    }

    .items-header {
      padding: 10px 0;
      font-weight: bold;
      border-top: 2px solid #333;
      border-bottom: 1px dashed #ccc;
      margin-top: 15px;
    }

    .item-row { color: #555; }
    .col-item { flex: 1.4; }
    .col-qty, .col-billed { flex: 1; text-align: right; }
    .col-price { flex: 1; text-align: right; }

    .subtotal { color: #999; font-size: 12px; margin-top: 6px; }

    .total-section {
      border-top: 2px solid #333;
      margin-top: 15px;
      padding-top: 15px;
    }

    .total-row {
      display: flex;
      justify-content: space-between;
      font-size: 18px;
      font-weight: bold;
      padding: 5px 0;
    }

    .footer {
      text-align: center;
      margin-top: 25px;
      padding-top: 20px;
      border-top: 2px dashed #ccc;
    }

    .cashier { color: #333; margin-bottom: 15px; }
    .thank-you { font-size: 13px; color: #333; margin-bottom: 15px; }
    .site-link { font-size: 11px; }
    .site-link a { color: #666; text-decoration: none; }

    @media print {
      body { background: white; }
      .receipt { box-shadow: none; }
    }
  </style>
</head>
<body>
  <div class="receipt">
    <div class="header">
      <div class="logo">CLAUDE</div>
      <div class="subtitle">SESSION RECEIPT</div>
    </div>

    <div style="text-align: center;">
      <span class="model-badge">%s</span>
    </div>
`

// RenderHTML produces the HTML receipt document. Line items mirror the
// SVG rendering; cache rows appear only when their raw count is positive.
func RenderHTML(d Data) string {
	var b strings.Builder
	fmt.Fprintf(&b, htmlHead, EscapeHTML(d.SessionShort), EscapeHTML(d.ModelName))

	b.WriteString(`
    <div class="meta">
`)
	for _, row := range []struct{ label, value string }{
		{"Location", EscapeHTML(d.Location)},
		{"Session", EscapeHTML(d.SessionShort)},
		{"Date", EscapeHTML(d.Date)},
		{"Duration", EscapeHTML(d.Duration)},
	} {
		fmt.Fprintf(&b, `      <div class="meta-row">
        <span class="meta-label">%s</span>
        <span class="meta-value">%s</span>
      </div>
`, row.label, row.value)
	}

	b.WriteString(`    </div>

    <div class="items-header">
      <span class="col-item">ITEM</span>
      <span class="col-qty">QTY</span>
      <span class="col-billed">BILLED</span>
      <span class="col-price">PRICE</span>
    </div>
`)

	for _, it := range d.items() {
		fmt.Fprintf(&b, `    <div class="item-row">
      <span class="col-item">%s</span>
      <span class="col-qty">%s</span>
      <span class="col-billed">%s</span>
      <span class="col-price">%s</span>
    </div>
`, it.Label, it.Raw, it.Billed, it.Price)
	}

	fmt.Fprintf(&b, `    <div class="subtotal">Total tokens: %s</div>

    <div class="total-section">
      <div class="total-row">
        <span>TOTAL</span>
        <span>%s</span>
      </div>
    </div>

    <div class="footer">
      <div class="cashier">SERVED BY: %s</div>
      <div class="thank-you">Thank you for building!</div>
      <div class="site-link"><a href="https://claude.ai" target="_blank">claude.ai</a></div>
    </div>
  </div>
</body>
</html>
`, FormatCompact(float64(d.Breakdown.TotalRaw)),
		FormatCurrency(d.Breakdown.TotalCost), EscapeHTML(d.ServedBy))

	return b.String()
}
