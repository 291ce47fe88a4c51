package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/anomredux/claude-receipt/internal/receipt"
)

// Receipt output formats.
const (
	FormatHTML = "html"
	FormatSVG  = "svg"
	FormatBoth = "both"
)

// EnvFormat overrides output.format when set.
const EnvFormat = "CLAUDE_RECEIPT_FORMAT"

type Config struct {
	Output  OutputConfig  `toml:"output"`
	Pricing PricingConfig `toml:"pricing"`
	Watch   WatchConfig   `toml:"watch"`
}

type OutputConfig struct {
	Format string `toml:"format"` // html, svg, or both
	Dir    string `toml:"dir"`
	Print  bool   `toml:"print"` // also render the receipt to stdout
}

type PricingConfig struct {
	PricePerMillion   float64            `toml:"price_per_million"`
	CacheReadDiscount float64            `toml:"cache_read_discount"`
	Multipliers       map[string]float64 `toml:"multipliers"`
}

type WatchConfig struct {
	Interval int `toml:"interval"` // polling fallback, seconds
}

func DefaultConfig() Config {
	return Config{
		Output: OutputConfig{
			Format: FormatHTML,
			Dir:    receipt.DefaultDir(),
		},
		Pricing: PricingConfig{
			PricePerMillion:   0, // 0 = calculator default
			CacheReadDiscount: 0,
		},
		Watch: WatchConfig{
			Interval: 10,
		},
	}
}

func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "claude-receipt", "config.toml")
}

// Load reads the config file, layering it over defaults and then
// applying the format env override. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg.applyEnv()
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	cfg.applyEnv()
	if !ValidFormat(cfg.Output.Format) {
		return cfg, fmt.Errorf("invalid output format %q (use html, svg, or both)", cfg.Output.Format)
	}
	return cfg, nil
}

func Save(cfg Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// WantSVG reports whether the SVG document should be written.
func (c Config) WantSVG() bool {
	return c.Output.Format == FormatSVG || c.Output.Format == FormatBoth
}

// WantHTML reports whether the HTML document should be written.
func (c Config) WantHTML() bool {
	return c.Output.Format == FormatHTML || c.Output.Format == FormatBoth
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvFormat); v != "" && ValidFormat(v) {
		c.Output.Format = v
	}
}

// ValidFormat reports whether f names a supported output format.
func ValidFormat(f string) bool {
	return f == FormatHTML || f == FormatSVG || f == FormatBoth
}
