package pricing

import (
	_ "embed"
	"encoding/json"
	"strings"
)

//go:embed pricing.json
var defaultPricingJSON []byte

// Model is one pricing table entry. Multiplier weights raw token counts
// against the base price; DisplayName is the human-readable model name
// shown on receipts.
type Model struct {
	Multiplier  float64 `json:"multiplier"`
	DisplayName string  `json:"display"`
}

// Table maps normalized model identifiers to their pricing entries.
type Table map[string]Model

// LoadDefault parses the embedded pricing table.
func LoadDefault() (Table, error) {
	var table Table
	if err := json.Unmarshal(defaultPricingJSON, &table); err != nil {
		return nil, err
	}
	return table, nil
}

// MergeMultipliers overlays per-model multiplier overrides onto the table.
// Models absent from the table are added with the raw id as display name.
func (t Table) MergeMultipliers(overrides map[string]float64) {
	for id, mult := range overrides {
		id = Normalize(id)
		m, ok := t[id]
		if !ok {
			m = Model{DisplayName: id}
		}
		m.Multiplier = mult
		t[id] = m
	}
}

// Multiplier returns the pricing weight for a model. Unknown models
// bill at the default weight of 1.0; that is policy, not an error.
func (t Table) Multiplier(model string) float64 {
	if m, ok := t[Normalize(model)]; ok {
		return m.Multiplier
	}
	return 1.0
}

// DisplayName returns the human-readable name for a model, falling back
// to the normalized identifier.
func (t Table) DisplayName(model string) string {
	norm := Normalize(model)
	if m, ok := t[norm]; ok && m.DisplayName != "" {
		return m.DisplayName
	}
	return norm
}

// Normalize strips an optional "provider:" style namespace prefix,
// keeping only the segment after the last colon.
func Normalize(model string) string {
	if i := strings.LastIndexByte(model, ':'); i >= 0 {
		return model[i+1:]
	}
	return model
}
