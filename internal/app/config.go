package app

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config carries the tool's tunable constants. The width table and pixel
// limits are empirical, tied to a specific search engine's rendering at a
// point in time, so they live here rather than being hard-coded forever.
type Config struct {
	Device           string             `yaml:"device"`
	DefaultCharWidth float64            `yaml:"default_char_width"`
	Ellipsis         string             `yaml:"ellipsis"`
	DesktopLimits    FieldLimits        `yaml:"desktop_limits"`
	MobileLimits     FieldLimits        `yaml:"mobile_limits"`
	CharWidths       map[string]float64 `yaml:"char_widths"`
}

func DefaultConfig() Config {
	return Config{
		Device:           string(DeviceDesktop),
		DefaultCharWidth: defaultCharWidth,
		Ellipsis:         defaultEllipsis,
		DesktopLimits:    FieldLimits{Title: 580, Description: 920},
		MobileLimits:     FieldLimits{Title: 460, Description: 960},
	}
}

func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.DefaultCharWidth <= 0 {
		cfg.DefaultCharWidth = defaultCharWidth
	}
	if cfg.Ellipsis == "" {
		cfg.Ellipsis = defaultEllipsis
	}
	if cfg.DesktopLimits.Title <= 0 {
		cfg.DesktopLimits.Title = 580
	}
	if cfg.DesktopLimits.Description <= 0 {
		cfg.DesktopLimits.Description = 920
	}
	if cfg.MobileLimits.Title <= 0 {
		cfg.MobileLimits.Title = 460
	}
	if cfg.MobileLimits.Description <= 0 {
		cfg.MobileLimits.Description = 960
	}
	if _, ok := ParseDevice(cfg.Device); !ok {
		cfg.Device = string(DeviceDesktop)
	}
	return cfg, nil
}

func SaveConfig(cfg Config, path string) error {
	if path == "" {
		return errors.New("no path provided for config")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func DefaultConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "serpsim", "config.yml")
}
