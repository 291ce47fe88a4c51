package pricing

import "testing"

func TestLoadDefault(t *testing.T) {
	table, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault error: %v", err)
	}
	if len(table) == 0 {
		t.Fatal("embedded table is empty")
	}

	m, ok := table["claude-opus-4-6"]
	if !ok {
		t.Fatal("claude-opus-4-6 missing from embedded table")
	}
	if m.Multiplier <= 0 {
		t.Errorf("multiplier = %v, want > 0", m.Multiplier)
	}
	if m.DisplayName != "Claude Opus 4.6" {
		t.Errorf("display name = %q, want %q", m.DisplayName, "Claude Opus 4.6")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"claude-opus-4-6", "claude-opus-4-6"},
		{"anthropic:claude-opus-4-6", "claude-opus-4-6"},
		{"a:b:claude-sonnet-4-5-20250929", "claude-sonnet-4-5-20250929"},
		{"", ""},
		{"trailing:", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestMultiplier_UnknownDefaultsToOne(t *testing.T) {
	table := Table{"known": {Multiplier: 2.0}}
	if got := table.Multiplier("definitely-not-a-model-xyz"); got != 1.0 {
		t.Errorf("unknown model multiplier = %v, want 1.0", got)
	}
	if got := table.Multiplier("known"); got != 2.0 {
		t.Errorf("known model multiplier = %v, want 2.0", got)
	}
	if got := table.Multiplier("provider:known"); got != 2.0 {
		t.Errorf("namespaced model multiplier = %v, want 2.0", got)
	}
}

func TestDisplayName(t *testing.T) {
	table := Table{"glm-5": {Multiplier: 0.5, DisplayName: "GLM-5"}}

	if got := table.DisplayName("glm-5"); got != "GLM-5" {
		t.Errorf("DisplayName = %q, want GLM-5", got)
	}
	// Unknown models display their normalized id.
	if got := table.DisplayName("custom:my-model"); got != "my-model" {
		t.Errorf("DisplayName = %q, want my-model", got)
	}
}

func TestMergeMultipliers(t *testing.T) {
	table := Table{"glm-5": {Multiplier: 0.5, DisplayName: "GLM-5"}}
	table.MergeMultipliers(map[string]float64{
		"glm-5":     0.75,
		"new-model": 2.0,
	})

	if got := table.Multiplier("glm-5"); got != 0.75 {
		t.Errorf("overridden multiplier = %v, want 0.75", got)
	}
	// Override must not clobber the display name.
	if got := table.DisplayName("glm-5"); got != "GLM-5" {
		t.Errorf("display name after merge = %q, want GLM-5", got)
	}
	if got := table.Multiplier("new-model"); got != 2.0 {
		t.Errorf("added multiplier = %v, want 2.0", got)
	}
}
