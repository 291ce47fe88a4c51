package domain

// maxLocationLen caps the location label so long directory names
// don't overflow the receipt column.
const maxLocationLen = 30

// TokenUsage holds the raw token counters reported for one session.
// Absent counters stay zero.
type TokenUsage struct {
	Input      int `json:"inputTokens"`
	Output     int `json:"outputTokens"`
	CacheWrite int `json:"cacheCreationTokens"`
	CacheRead  int `json:"cacheReadTokens"`
}

// Total returns the unadjusted sum of all four counters. Display only,
// billing applies per-category weights first.
func (u TokenUsage) Total() int {
	return u.Input + u.Output + u.CacheWrite + u.CacheRead
}

// IsZero reports whether no token data was recorded at all.
func (u TokenUsage) IsZero() bool {
	return u.Total() == 0
}

// Session is the immutable record for one ended session.
type Session struct {
	SessionID    string
	Location     string // short display label, see NewLocation
	Model        string // may carry a "provider:" namespace prefix
	Tokens       TokenUsage
	EndTime      string // raw ISO-8601 string from the transcript
	ActiveTimeMs int64
}

// ShortID returns the first 8 characters of the session id for display.
func (s Session) ShortID() string {
	if len(s.SessionID) >= 8 {
		return s.SessionID[:8]
	}
	return s.SessionID
}

// NewLocation truncates a display label to the receipt column width.
// Truncation counts characters, not bytes, so multibyte labels stay
// valid UTF-8. An empty label becomes "The Cloud".
func NewLocation(label string) string {
	if label == "" {
		return "The Cloud"
	}
	if r := []rune(label); len(r) > maxLocationLen {
		return string(r[:maxLocationLen])
	}
	return label
}
