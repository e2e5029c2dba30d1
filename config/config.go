package config

import (
	"encoding/json"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

const (
	DefaultFPS        = 3
	DefaultMaxSeconds = 30
	minFPS            = 1
	maxFPS            = 9
	maxMaxSeconds     = 600
)

// Config holds runtime configuration for recording and app behaviour.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`
	// Recording parameters
	FPS        int    `json:"fps"`
	MaxSeconds int    `json:"max_seconds"`
	OutputDir  string `json:"output_dir"`
	Dither     bool   `json:"dither"`

	// Last confirmed selection rectangle
	SelectionX int `json:"selection_x"`
	SelectionY int `json:"selection_y"`
	SelectionW int `json:"selection_w"`
	SelectionH int `json:"selection_h"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		FPS:        DefaultFPS,
		MaxSeconds: DefaultMaxSeconds,
		Dither:     true,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.FPS < minFPS {
		c.FPS = minFPS
	}
	if c.FPS > maxFPS {
		c.FPS = maxFPS
	}
	if c.MaxSeconds <= 0 {
		c.MaxSeconds = DefaultMaxSeconds
	}
	if c.MaxSeconds > maxMaxSeconds {
		c.MaxSeconds = maxMaxSeconds
	}
	if c.SelectionW < 0 || c.SelectionH < 0 {
		c.SelectionW, c.SelectionH = 0, 0
	}
	return nil
}

// MaxDuration is MaxSeconds as a duration.
func (c *Config) MaxDuration() time.Duration {
	return time.Duration(c.MaxSeconds) * time.Second
}

// Selection returns the persisted selection, or nil when none was saved.
func (c *Config) Selection() *image.Rectangle {
	if c.SelectionW <= 0 || c.SelectionH <= 0 {
		return nil
	}
	r := image.Rect(c.SelectionX, c.SelectionY, c.SelectionX+c.SelectionW, c.SelectionY+c.SelectionH)
	return &r
}

// SetSelection stores r; an empty rectangle clears the saved selection.
func (c *Config) SetSelection(r image.Rectangle) {
	if r.Empty() {
		c.SelectionW, c.SelectionH = 0, 0
		return
	}
	c.SelectionX, c.SelectionY = r.Min.X, r.Min.Y
	c.SelectionW, c.SelectionH = r.Dx(), r.Dy()
}

// DefaultPath returns the per-user config file location, creating its directory.
func DefaultPath() (string, error) {
	return xdg.ConfigFile(filepath.Join("snapgif", "config.json"))
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
