package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "none.json"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.RatioW != 1206 || cfg.RatioH != 2622 || cfg.MinSize != 50 || cfg.HandleSize != 12 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.MaxDisplayW != 800 || cfg.MaxDisplayH != 550 || cfg.JPEGQuality != 95 {
		t.Fatalf("unexpected display/output defaults: %+v", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")
	cfg := DefaultConfig()
	cfg.LastDir = "/photos"
	cfg.HandleSize = 16
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got.LastDir != "/photos" || got.HandleSize != 16 {
		t.Fatalf("round trip lost fields: %+v", got)
	}
}

func TestValidate_ClampsInvalidValues(t *testing.T) {
	cfg := &Config{RatioW: 0, RatioH: 5, MinSize: -1, JPEGQuality: 300, LogFormat: "xml", LogLevel: " DEBUG "}
	_ = cfg.Validate()
	def := DefaultConfig()
	if cfg.RatioW != def.RatioW || cfg.RatioH != def.RatioH {
		t.Fatalf("ratio not reset: %d:%d", cfg.RatioW, cfg.RatioH)
	}
	if cfg.MinSize != 50 || cfg.JPEGQuality != 95 || cfg.HandleSize != 12 {
		t.Fatalf("limits not reset: %+v", cfg)
	}
	if cfg.LogFormat != "text" || cfg.LogLevel != "debug" {
		t.Fatalf("logging not normalized: format=%q level=%q", cfg.LogFormat, cfg.LogLevel)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "WARN")
	t.Setenv(EnvDebug, "yes")
	t.Setenv(EnvJPEGQuality, "80")
	cfg, err := Load(filepath.Join(t.TempDir(), "none.json"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.LogLevel != "warn" || !cfg.Debug || cfg.JPEGQuality != 80 {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
}

func TestLoad_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if cfg == nil || cfg.RatioW != 1206 {
		t.Fatalf("expected defaults on decode error, got %+v", cfg)
	}
}

func TestRatioAndLimits(t *testing.T) {
	cfg := DefaultConfig()
	lim := cfg.Limits()
	if lim.MinSize != 50 || lim.Ratio.W != 1206 || lim.Ratio.H != 2622 {
		t.Fatalf("Limits() = %+v", lim)
	}
}

func TestDerivedOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HandleSize = 16
	cfg.JPEGQuality = 80
	cfg.OutputSuffix = "_9x19"
	eo := cfg.EditorOptions()
	if eo.HandleSize != 16 || eo.Limits.MinSize != 50 || eo.Limits.Ratio.W != 1206 {
		t.Fatalf("EditorOptions() = %+v", eo)
	}
	co := cfg.CropperOptions()
	if co.JPEGQuality != 80 || co.Suffix != "_9x19" || co.Ratio.H != 2622 {
		t.Fatalf("CropperOptions() = %+v", co)
	}
}
