package app

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultConfig_Limits(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DesktopLimits.Title != 580 || cfg.DesktopLimits.Description != 920 {
		t.Fatalf("desktop limits = %+v", cfg.DesktopLimits)
	}
	if cfg.MobileLimits.Title != 460 || cfg.MobileLimits.Description != 960 {
		t.Fatalf("mobile limits = %+v", cfg.MobileLimits)
	}
	if cfg.Ellipsis != "..." {
		t.Fatalf("ellipsis = %q", cfg.Ellipsis)
	}
	if cfg.Device != "desktop" {
		t.Fatalf("device = %q, want desktop", cfg.Device)
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("LoadConfig(missing file): %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Fatalf("missing file config = %+v, want defaults", cfg)
	}
}

func TestLoadConfig_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig(\"\"): %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Fatalf("empty path config = %+v, want defaults", cfg)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := "device: mobile\n" +
		"desktop_limits:\n  title: 600\n" +
		"char_widths:\n  a: 10\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Device != "mobile" {
		t.Fatalf("device = %q, want mobile", cfg.Device)
	}
	if cfg.DesktopLimits.Title != 600 {
		t.Fatalf("desktop title limit = %v, want 600", cfg.DesktopLimits.Title)
	}
	// Unset values still come from defaults or clamping.
	if cfg.DesktopLimits.Description != 920 {
		t.Fatalf("desktop description limit = %v, want 920", cfg.DesktopLimits.Description)
	}
	if cfg.CharWidths["a"] != 10 {
		t.Fatalf("char width override lost: %v", cfg.CharWidths)
	}

	e := NewEstimator(cfg)
	if got := e.EstimateWidth("a"); got != 10 {
		t.Fatalf("estimator ignored width override: %v", got)
	}
}

func TestLoadConfig_InvalidDeviceFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("device: tablet\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Device != "desktop" {
		t.Fatalf("device = %q, want fallback to desktop", cfg.Device)
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yml")
	cfg := DefaultConfig()
	cfg.Device = "mobile"
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Device != "mobile" {
		t.Fatalf("round-tripped device = %q, want mobile", loaded.Device)
	}
}
