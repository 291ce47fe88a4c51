// Package watcher detects session settings flushes under the Claude
// projects directory, for hosts without SessionEnd hook support.
package watcher

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const settingsSuffix = ".settings.json"

// Watcher reports writes to .settings.json files. Events fire at most
// once per observed file size, so an unchanged file never refires.
type Watcher struct {
	dirs         []string
	sizes        map[string]int64 // path -> last reported size
	mu           sync.Mutex
	pollInterval time.Duration
	onSettings   func(path string)
	stop         chan struct{}
	wg           sync.WaitGroup
}

func New(dirs []string, pollInterval time.Duration, onSettings func(path string)) *Watcher {
	return &Watcher{
		dirs:         dirs,
		sizes:        make(map[string]int64),
		pollInterval: pollInterval,
		onSettings:   onSettings,
		stop:         make(chan struct{}),
	}
}

// InitialScan registers existing settings files without firing events,
// so only sessions ending after startup produce receipts.
func (w *Watcher) InitialScan() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, dir := range w.dirs {
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return nil // skip unreadable entries
			}
			if !info.IsDir() && strings.HasSuffix(path, settingsSuffix) {
				w.sizes[path] = info.Size()
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Start begins watching with fsnotify plus a polling fallback.
func (w *Watcher) Start() error {
	fsw, err := fsnotify.NewWatcher()
	if err == nil {
		for _, dir := range w.dirs {
			_ = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
				if err == nil && info.IsDir() {
					_ = fsw.Add(path)
				}
				return nil
			})
		}

		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			for {
				select {
				case event, ok := <-fsw.Events:
					if !ok {
						return
					}
					if strings.HasSuffix(event.Name, settingsSuffix) &&
						(event.Op&fsnotify.Write != 0 || event.Op&fsnotify.Create != 0) {
						w.checkFile(event.Name)
					}
				case <-w.stop:
					fsw.Close()
					return
				}
			}
		}()
	}

	// Polling fallback always runs: fsnotify misses files in
	// directories created after startup.
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.pollAll()
			case <-w.stop:
				return
			}
		}
	}()

	return nil
}

// Stop signals goroutines to exit and waits for them to finish.
func (w *Watcher) Stop() {
	close(w.stop)
	w.wg.Wait()
}

func (w *Watcher) checkFile(path string) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}

	w.mu.Lock()
	changed := info.Size() != w.sizes[path]
	w.sizes[path] = info.Size()
	w.mu.Unlock()

	if changed {
		w.onSettings(path)
	}
}

func (w *Watcher) pollAll() {
	type fileInfo struct {
		path string
		size int64
	}
	var files []fileInfo
	for _, dir := range w.dirs {
		_ = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil || info.IsDir() || !strings.HasSuffix(path, settingsSuffix) {
				return nil
			}
			files = append(files, fileInfo{path: path, size: info.Size()})
			return nil
		})
	}

	w.mu.Lock()
	var changed []string
	for _, f := range files {
		if f.size != w.sizes[f.path] {
			changed = append(changed, f.path)
			w.sizes[f.path] = f.size
		}
	}
	w.mu.Unlock()

	for _, path := range changed {
		w.onSettings(path)
	}
}
