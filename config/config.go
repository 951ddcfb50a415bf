package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/soocke/ratio-crop-go/domain/crop"
	"github.com/soocke/ratio-crop-go/domain/cropper"
	"github.com/soocke/ratio-crop-go/domain/editor"
)

// Config holds runtime configuration for the editor and the crop service.
// Fields may be loaded from a JSON file and overridden by environment
// variables.
type Config struct {
	Debug bool `json:"debug"`

	// Crop geometry
	RatioW     int `json:"ratio_w"`
	RatioH     int `json:"ratio_h"`
	MinSize    int `json:"min_size"`
	HandleSize int `json:"handle_size"`

	// Display area cap; images are never upscaled.
	MaxDisplayW int `json:"max_display_w"`
	MaxDisplayH int `json:"max_display_h"`

	// Output
	JPEGQuality    int    `json:"jpeg_quality"`
	OutputSuffix   string `json:"output_suffix"`
	BatchOutputDir string `json:"batch_output_dir"`

	// Logging
	LogLevel  string `json:"log_level"`
	LogFormat string `json:"log_format"`
	LogFile   string `json:"log_file"`

	// Last directory used in the open dialog.
	LastDir string `json:"last_dir"`
}

// Env var names used as overrides.
const (
	EnvLogLevel    = "RATIOCROP_LOG_LEVEL"
	EnvLogFile     = "RATIOCROP_LOG_FILE"
	EnvDebug       = "RATIOCROP_DEBUG"
	EnvJPEGQuality = "RATIOCROP_JPEG_QUALITY"
)

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:          false,
		RatioW:         crop.DefaultRatio.W,
		RatioH:         crop.DefaultRatio.H,
		MinSize:        50,
		HandleSize:     12,
		MaxDisplayW:    800,
		MaxDisplayH:    550,
		JPEGQuality:    95,
		OutputSuffix:   "_cropped",
		BatchOutputDir: "output",
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	def := DefaultConfig()
	if c.RatioW <= 0 || c.RatioH <= 0 {
		c.RatioW, c.RatioH = def.RatioW, def.RatioH
	}
	if c.MinSize < 1 {
		c.MinSize = def.MinSize
	}
	if c.HandleSize < 4 {
		c.HandleSize = def.HandleSize
	}
	if c.MaxDisplayW < c.MinSize {
		c.MaxDisplayW = def.MaxDisplayW
	}
	if c.MaxDisplayH < c.MinSize {
		c.MaxDisplayH = def.MaxDisplayH
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		c.JPEGQuality = def.JPEGQuality
	}
	if strings.TrimSpace(c.BatchOutputDir) == "" {
		c.BatchOutputDir = def.BatchOutputDir
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	if c.LogFormat != "json" {
		c.LogFormat = "text"
	}
	return nil
}

// Ratio returns the configured target ratio.
func (c *Config) Ratio() crop.Ratio { return crop.Ratio{W: c.RatioW, H: c.RatioH} }

// Limits returns the resize limits for an editing session.
func (c *Config) Limits() crop.Limits { return crop.Limits{Ratio: c.Ratio(), MinSize: c.MinSize} }

// EditorOptions returns the options for a new editing session.
func (c *Config) EditorOptions() editor.Options {
	return editor.Options{Limits: c.Limits(), HandleSize: c.HandleSize}
}

// CropperOptions returns the crop service options.
func (c *Config) CropperOptions() cropper.Options {
	return cropper.Options{Ratio: c.Ratio(), JPEGQuality: c.JPEGQuality, Suffix: c.OutputSuffix}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return "ratiocrop.json"
	}
	return filepath.Join(dir, "ratiocrop", "config.json")
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
// Environment overrides are applied in every case.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		applyEnvOverrides(cfg)
		_ = cfg.Validate()
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		cfg = DefaultConfig()
		applyEnvOverrides(cfg)
		return cfg, err
	}
	applyEnvOverrides(cfg)
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

func applyEnvOverrides(c *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		c.LogFile = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvDebug)); v != "" {
		lv := strings.ToLower(v)
		c.Debug = lv == "1" || lv == "true" || lv == "on" || lv == "yes"
	}
	if v := strings.TrimSpace(os.Getenv(EnvJPEGQuality)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.JPEGQuality = n
		}
	}
}
