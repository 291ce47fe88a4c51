// Preview renders a receipt from synthetic session data, for iterating
// on the receipt layout without ending a real session.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/anomredux/claude-receipt/internal/domain"
	"github.com/anomredux/claude-receipt/internal/pricing"
	"github.com/anomredux/claude-receipt/internal/receipt"
)

func main() {
	var (
		model  = flag.String("model", "claude-opus-4-6", "model id for the sample session")
		outDir = flag.String("out", "", "also write sample.svg and sample.html to this directory")
	)
	flag.Parse()

	table, err := pricing.LoadDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load pricing: %v\n", err)
		os.Exit(1)
	}
	calc := pricing.NewCalculator(table)

	session := domain.Session{
		SessionID: uuid.NewString(),
		Location:  domain.NewLocation("claude-receipt"),
		Model:     *model,
		Tokens: domain.TokenUsage{
			Input:      182_340,
			Output:     45_012,
			CacheWrite: 96_500,
			CacheRead:  1_204_000,
		},
		EndTime:      time.Now().UTC().Format(time.RFC3339),
		ActiveTimeMs: 3_725_000,
	}

	data := receipt.Build(session, table, calc.Breakdown(session.Model, session.Tokens))
	fmt.Println(receipt.RenderTerminal(data))

	if *outDir != "" {
		w := receipt.NewWriter(*outDir)
		if path, err := w.WriteSVG("sample", data); err != nil {
			fmt.Fprintf(os.Stderr, "write svg: %v\n", err)
		} else {
			fmt.Println("wrote", path)
		}
		if path, err := w.WriteHTML("sample", data); err != nil {
			fmt.Fprintf(os.Stderr, "write html: %v\n", err)
		} else {
			fmt.Println("wrote", path)
		}
	}
}
