package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefault(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output.Format != FormatHTML {
		t.Errorf("default format = %q, want %q", cfg.Output.Format, FormatHTML)
	}
	if cfg.Output.Dir == "" {
		t.Error("default receipts dir should not be empty")
	}
	if cfg.Watch.Interval != 10 {
		t.Errorf("default watch interval = %d, want 10", cfg.Watch.Interval)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := DefaultConfig()
	cfg.Output.Format = FormatBoth
	cfg.Pricing.Multipliers = map[string]float64{"claude-opus-4-6": 4.0}

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Output.Format != FormatBoth {
		t.Errorf("format = %q, want both", loaded.Output.Format)
	}
	if loaded.Pricing.Multipliers["claude-opus-4-6"] != 4.0 {
		t.Errorf("multiplier override = %v, want 4.0", loaded.Pricing.Multipliers["claude-opus-4-6"])
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	os.WriteFile(path, []byte("{{invalid toml}}"), 0644)

	_, err := Load(path)
	if err == nil {
		t.Error("expected error for invalid TOML")
	}
}

func TestLoad_InvalidFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	os.WriteFile(path, []byte("[output]\nformat = \"pdf\"\n"), 0644)

	_, err := Load(path)
	if err == nil {
		t.Error("expected error for unknown output format")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv(EnvFormat, "svg")

	cfg, err := Load("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output.Format != FormatSVG {
		t.Errorf("format = %q, want svg from env", cfg.Output.Format)
	}
}

func TestLoad_EnvOverrideInvalidIgnored(t *testing.T) {
	t.Setenv(EnvFormat, "pdf")

	cfg, err := Load("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output.Format != FormatHTML {
		t.Errorf("format = %q, want default html for invalid env value", cfg.Output.Format)
	}
}

func TestValidFormat(t *testing.T) {
	for _, f := range []string{FormatHTML, FormatSVG, FormatBoth} {
		if !ValidFormat(f) {
			t.Errorf("ValidFormat(%q) = false, want true", f)
		}
	}
	for _, f := range []string{"", "pdf", "HTML", "svg,html"} {
		if ValidFormat(f) {
			t.Errorf("ValidFormat(%q) = true, want false", f)
		}
	}
}

func TestWantFormats(t *testing.T) {
	tests := []struct {
		format   string
		wantHTML bool
		wantSVG  bool
	}{
		{FormatHTML, true, false},
		{FormatSVG, false, true},
		{FormatBoth, true, true},
	}
	for _, tt := range tests {
		cfg := Config{Output: OutputConfig{Format: tt.format}}
		if cfg.WantHTML() != tt.wantHTML {
			t.Errorf("WantHTML(%q) = %v, want %v", tt.format, cfg.WantHTML(), tt.wantHTML)
		}
		if cfg.WantSVG() != tt.wantSVG {
			t.Errorf("WantSVG(%q) = %v, want %v", tt.format, cfg.WantSVG(), tt.wantSVG)
		}
	}
}

func TestSave_FilePermissions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "perms.toml")

	if err := Save(DefaultConfig(), path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	perm := info.Mode().Perm()
	if perm != 0600 {
		t.Errorf("file permissions = %o, want 0600", perm)
	}
}

func TestDefaultPath_NotEmpty(t *testing.T) {
	if DefaultPath() == "" {
		t.Error("DefaultPath should not be empty")
	}
}
