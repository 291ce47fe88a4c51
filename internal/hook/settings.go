package hook

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/anomredux/claude-receipt/internal/domain"
)

// Expected skip conditions: the host wrote no settings for this
// session, or the settings carry no usage counters. Callers treat both
// as a silent early exit, not a failure.
var (
	ErrNoSettings = errors.New("no session settings file")
	ErrNoTokens   = errors.New("no token usage data")
)

// Settings is the slice of the session settings JSON the receipt needs.
type Settings struct {
	TokenUsage   domain.TokenUsage `json:"tokenUsage"`
	Model        string            `json:"model"`
	ActiveTimeMs int64             `json:"assistantActiveTimeMs"`
}

// LoadSettings reads the session settings file. A missing file returns
// ErrNoSettings; a settings object without a tokenUsage key returns
// ErrNoTokens.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Settings{}, fmt.Errorf("%w: %s", ErrNoSettings, path)
		}
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}

	var raw struct {
		TokenUsage   *domain.TokenUsage `json:"tokenUsage"`
		Model        string             `json:"model"`
		ActiveTimeMs int64              `json:"assistantActiveTimeMs"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	// An empty tokenUsage object means no usage was recorded; treat it
	// the same as an absent key.
	if raw.TokenUsage == nil || raw.TokenUsage.IsZero() {
		return Settings{}, ErrNoTokens
	}

	s := Settings{
		TokenUsage:   *raw.TokenUsage,
		Model:        raw.Model,
		ActiveTimeMs: raw.ActiveTimeMs,
	}
	if s.Model == "" {
		s.Model = "unknown"
	}
	return s, nil
}
