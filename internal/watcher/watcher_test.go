package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestInitialScanRegistersExistingFiles(t *testing.T) {
	dir := t.TempDir()

	os.WriteFile(filepath.Join(dir, "sess-1.settings.json"), []byte(`{}`), 0644)
	os.WriteFile(filepath.Join(dir, "sess-1.jsonl"), []byte(`{"type":"user"}`), 0644)

	subdir := filepath.Join(dir, "project-a")
	os.MkdirAll(subdir, 0755)
	os.WriteFile(filepath.Join(subdir, "sess-2.settings.json"), []byte(`{"model":"x"}`), 0644)

	w := New([]string{dir}, 5*time.Second, nil)
	if err := w.InitialScan(); err != nil {
		t.Fatalf("InitialScan error: %v", err)
	}

	w.mu.Lock()
	got := len(w.sizes)
	w.mu.Unlock()
	if got != 2 {
		t.Errorf("registered %d settings files, want 2", got)
	}
}

func TestPollDetectsSettingsWrite(t *testing.T) {
	dir := t.TempDir()
	settingsFile := filepath.Join(dir, "sess-1.settings.json")
	os.WriteFile(settingsFile, []byte(`{"model":"a"}`), 0644)

	var mu sync.Mutex
	var events []string

	w := New([]string{dir}, 100*time.Millisecond, func(path string) {
		mu.Lock()
		events = append(events, path)
		mu.Unlock()
	})

	w.InitialScan()
	w.Start()
	defer w.Stop()

	// Grow the file; the next poll should fire exactly once for it.
	os.WriteFile(settingsFile, []byte(`{"model":"a","tokenUsage":{"inputTokens":10}}`), 0644)
	time.Sleep(300 * time.Millisecond)

	mu.Lock()
	got := len(events)
	mu.Unlock()
	if got == 0 {
		t.Fatal("expected a settings write event")
	}
}

func TestPollIgnoresUnchangedFiles(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "sess-1.settings.json"), []byte(`{"model":"a"}`), 0644)

	var mu sync.Mutex
	count := 0

	w := New([]string{dir}, 50*time.Millisecond, func(string) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	w.InitialScan()
	w.Start()
	defer w.Stop()

	time.Sleep(250 * time.Millisecond)

	mu.Lock()
	got := count
	mu.Unlock()
	if got != 0 {
		t.Errorf("got %d events for an unchanged file, want 0", got)
	}
}
