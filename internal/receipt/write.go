package receipt

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer persists rendered receipts under one directory, one file per
// session. A rewrite for the same session overwrites; last writer wins.
type Writer struct {
	dir string
}

// NewWriter returns a Writer rooted at dir.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// DefaultDir is the receipts directory under the user's home.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "receipts")
	}
	return filepath.Join(home, ".claude", "receipts")
}

// WriteSVG renders and stores the SVG receipt, returning its path.
func (w *Writer) WriteSVG(sessionID string, d Data) (string, error) {
	return w.write(sessionID+".svg", RenderSVG(d))
}

// WriteHTML renders and stores the HTML receipt, returning its path.
func (w *Writer) WriteHTML(sessionID string, d Data) (string, error) {
	return w.write(sessionID+".html", RenderHTML(d))
}

func (w *Writer) write(name, content string) (string, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("create receipts dir: %w", err)
	}
	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("write receipt: %w", err)
	}
	return path, nil
}
