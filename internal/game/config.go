package game

import (
	"fmt"
	"os"

	"gridpaint/internal/colorpick"
	"gridpaint/internal/logx"

	"gopkg.in/yaml.v3"
)

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int    `yaml:"fps"`
}

// Config is the whole settings file: a window section read here and a
// picker section read by colorpick.
type Config struct {
	Window WindowConfig
	Picker colorpick.Config
}

func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{Width: 1280, Height: 720, Title: "gridpaint", FPS: 60},
		Picker: colorpick.DefaultConfig(),
	}
}

// ParseConfig decodes a settings file over DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	var f struct {
		Window WindowConfig `yaml:"window"`
	}
	f.Window = cfg.Window
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	for _, key := range colorpick.UnknownKeys(data, []string{"window", "picker"}) {
		logx.Logger().Warn("game: ignoring unknown config key", "key", key)
	}
	for _, key := range colorpick.UnknownKeys(data, []string{"width", "height", "title", "fps"}, "window") {
		logx.Logger().Warn("game: ignoring unknown config key", "key", "window."+key)
	}
	picker, err := colorpick.ParseConfig(data)
	if err != nil {
		return Config{}, err
	}

	d := cfg.Window
	cfg.Window = f.Window
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		logx.Logger().Warn("game: ignoring window size", "width", cfg.Window.Width, "height", cfg.Window.Height)
		cfg.Window.Width, cfg.Window.Height = d.Width, d.Height
	}
	if cfg.Window.FPS <= 0 {
		cfg.Window.FPS = d.FPS
	}
	if cfg.Window.Title == "" {
		cfg.Window.Title = d.Title
	}
	cfg.Picker = picker
	return cfg, nil
}

// LoadConfig reads path. An empty path or a missing file yields the
// defaults.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		logx.Logger().Info("game: no config file, using defaults", "path", path)
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
