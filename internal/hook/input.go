// Package hook acquires session data for the receipt pipeline: the
// SessionEnd payload on stdin, the session settings JSON, and the end
// timestamp from the transcript log.
package hook

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/anomredux/claude-receipt/internal/domain"
)

// Input is the SessionEnd hook payload delivered on stdin.
type Input struct {
	SessionID      string `json:"session_id"`
	TranscriptPath string `json:"transcript_path"`
	Cwd            string `json:"cwd"`
}

// ReadInput decodes the hook payload and expands a leading "~" in the
// transcript path.
func ReadInput(r io.Reader) (Input, error) {
	var in Input
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return Input{}, fmt.Errorf("decode hook input: %w", err)
	}
	in.TranscriptPath = expandHome(in.TranscriptPath)
	return in, nil
}

// SettingsPath maps a transcript path to its sibling settings file.
func SettingsPath(transcriptPath string) string {
	return strings.TrimSuffix(transcriptPath, ".jsonl") + ".settings.json"
}

// BuildSession assembles the session record from the hook payload and
// its loaded settings. The location label is the base name of the
// working directory.
func BuildSession(in Input, s Settings, endTime string) domain.Session {
	location := ""
	if in.Cwd != "" {
		location = filepath.Base(in.Cwd)
	}
	return domain.Session{
		SessionID:    in.SessionID,
		Location:     domain.NewLocation(location),
		Model:        s.Model,
		Tokens:       s.TokenUsage,
		EndTime:      endTime,
		ActiveTimeMs: s.ActiveTimeMs,
	}
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
