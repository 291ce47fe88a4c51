package pricing

import "github.com/anomredux/claude-receipt/internal/domain"

const (
	// DefaultPricePerMillion is the base price in USD per one million
	// billed tokens.
	DefaultPricePerMillion = 1.0

	// DefaultCacheReadDiscount is the extra weight applied to cache-read
	// tokens on top of the model multiplier. Cache hits bill at a
	// fraction of fresh input.
	DefaultCacheReadDiscount = 0.1
)

// Line is the billing result for one token category.
type Line struct {
	Raw    int     // raw counter from the session settings
	Billed float64 // raw × model multiplier (× cache discount for reads)
	Cost   float64 // Billed / 1M × price per million, USD
}

// Breakdown holds per-category billing figures for one session.
// Recomputed on every invocation, never persisted.
type Breakdown struct {
	Input      Line
	Output     Line
	CacheWrite Line
	CacheRead  Line

	TotalRaw  int     // unadjusted sum of raw counters, display only
	TotalCost float64 // sum of the four category costs, USD
}

// Calculator turns raw token counters into billed costs.
type Calculator struct {
	table           Table
	pricePerMillion float64
	cacheDiscount   float64
}

// NewCalculator builds a Calculator over the given table with the
// default base price and cache-read discount.
func NewCalculator(table Table) *Calculator {
	return &Calculator{
		table:           table,
		pricePerMillion: DefaultPricePerMillion,
		cacheDiscount:   DefaultCacheReadDiscount,
	}
}

// SetRates overrides the base price and cache-read discount.
// Non-positive values keep the defaults.
func (c *Calculator) SetRates(pricePerMillion, cacheDiscount float64) {
	if pricePerMillion > 0 {
		c.pricePerMillion = pricePerMillion
	}
	if cacheDiscount > 0 {
		c.cacheDiscount = cacheDiscount
	}
}

// Breakdown computes the billing figures for one session's counters.
// Unknown models bill at multiplier 1.0; there are no error paths.
func (c *Calculator) Breakdown(model string, u domain.TokenUsage) Breakdown {
	mult := c.table.Multiplier(model)

	b := Breakdown{
		Input:      c.line(u.Input, mult),
		Output:     c.line(u.Output, mult),
		CacheWrite: c.line(u.CacheWrite, mult),
		CacheRead:  c.line(u.CacheRead, mult*c.cacheDiscount),
		TotalRaw:   u.Total(),
	}
	b.TotalCost = b.Input.Cost + b.Output.Cost + b.CacheWrite.Cost + b.CacheRead.Cost
	return b
}

func (c *Calculator) line(raw int, weight float64) Line {
	billed := float64(raw) * weight
	return Line{
		Raw:    raw,
		Billed: billed,
		Cost:   billed / 1_000_000 * c.pricePerMillion,
	}
}
