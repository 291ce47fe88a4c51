package hook

import (
	"bufio"
	"io"
	"os"
	"time"

	"github.com/tidwall/gjson"
)

// LastTimestamp streams the transcript JSONL and returns the timestamp
// field of the chronologically last well-formed line. Malformed lines
// are skipped without aborting the scan. A missing file, an unreadable
// file, or a transcript with no timestamps falls back to the current
// time in RFC3339.
func LastTimestamp(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return time.Now().Format(time.RFC3339)
	}
	defer f.Close()
	return lastTimestamp(f)
}

func lastTimestamp(r io.Reader) string {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 10*1024*1024) // 10MB max line

	var last string
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 || !gjson.ValidBytes(line) {
			continue
		}
		if ts := gjson.GetBytes(line, "timestamp"); ts.Exists() {
			last = ts.String()
		}
	}

	if last == "" {
		return time.Now().Format(time.RFC3339)
	}
	return last
}
