package colorpick

import (
	"fmt"
	"os"
	"slices"

	"gridpaint/internal/logx"

	"gopkg.in/yaml.v3"
)

const DefaultHistoryLimit = 50

// Config sizes the picker bitmaps and sets its initial colour.
type Config struct {
	HueTrackWidth  int `yaml:"hue_track_width"`
	HueTrackHeight int `yaml:"hue_track_height"`
	PlaneWidth     int `yaml:"plane_width"`
	PlaneHeight    int `yaml:"plane_height"`
	HistoryLimit   int `yaml:"history_limit"`

	// Default is the colour selected at construction.
	Default HSV `yaml:"-"`
}

func DefaultConfig() Config {
	return Config{
		HueTrackWidth:  DefaultHueTrackWidth,
		HueTrackHeight: DefaultHueTrackHeight,
		PlaneWidth:     DefaultPlaneSize,
		PlaneHeight:    DefaultPlaneSize,
		HistoryLimit:   DefaultHistoryLimit,
		Default:        HSV{H: 0, S: 1, V: 1},
	}
}

// pickerFile is the on-disk layout; only the picker section is read here.
type pickerFile struct {
	Picker struct {
		Config     `yaml:",inline"`
		DefaultHex string    `yaml:"default_hex"`
		DefaultHSV []float64 `yaml:"default_hsv"`
	} `yaml:"picker"`
}

var pickerKeys = []string{
	"hue_track_width", "hue_track_height", "plane_width", "plane_height",
	"history_limit", "default_hex", "default_hsv",
}

// UnknownKeys returns the keys of the YAML mapping found by following path
// from the document root that are not listed in known, in file order.
// Documents that do not parse, or have no mapping at path, yield nil.
func UnknownKeys(data []byte, known []string, path ...string) []string {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil || len(doc.Content) == 0 {
		return nil
	}
	node := doc.Content[0]
	for _, key := range path {
		node = mappingValue(node, key)
		if node == nil {
			return nil
		}
	}
	if node.Kind != yaml.MappingNode {
		return nil
	}
	var unknown []string
	for i := 0; i+1 < len(node.Content); i += 2 {
		if key := node.Content[i].Value; !slices.Contains(known, key) {
			unknown = append(unknown, key)
		}
	}
	return unknown
}

func mappingValue(n *yaml.Node, key string) *yaml.Node {
	if n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}

// ParseConfig decodes the picker section of a YAML document over the
// defaults. Missing or non-positive sizes keep their defaults; unknown keys
// in the section are logged and ignored.
func ParseConfig(data []byte) (Config, error) {
	var f pickerFile
	f.Picker.Config = DefaultConfig()
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Config{}, fmt.Errorf("parse picker config: %w", err)
	}

	for _, key := range UnknownKeys(data, pickerKeys, "picker") {
		logx.Logger().Warn("colorpick: ignoring unknown config key", "key", "picker."+key)
	}

	cfg := f.Picker.Config
	cfg.Default = DefaultConfig().Default
	switch {
	case f.Picker.DefaultHex != "":
		c, err := ParseHex(f.Picker.DefaultHex)
		if err != nil {
			return Config{}, fmt.Errorf("picker.default_hex: %w", err)
		}
		cfg.Default = FromRGB(c, cfg.Default)
	case len(f.Picker.DefaultHSV) == 3:
		cfg.Default = HSV{H: f.Picker.DefaultHSV[0], S: f.Picker.DefaultHSV[1], V: f.Picker.DefaultHSV[2]}.Clamped()
	case len(f.Picker.DefaultHSV) != 0:
		return Config{}, fmt.Errorf("picker.default_hsv: want 3 values, got %d", len(f.Picker.DefaultHSV))
	}
	return cfg.normalized(), nil
}

// LoadConfig reads path. A missing file yields DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read picker config: %w", err)
	}
	return ParseConfig(data)
}

func (c Config) normalized() Config {
	d := DefaultConfig()
	fix := func(v *int, def int, key string) {
		if *v <= 0 {
			if *v < 0 {
				logx.Logger().Warn("colorpick: ignoring non-positive config value", "key", key, "value", *v)
			}
			*v = def
		}
	}
	fix(&c.HueTrackWidth, d.HueTrackWidth, "hue_track_width")
	fix(&c.HueTrackHeight, d.HueTrackHeight, "hue_track_height")
	fix(&c.PlaneWidth, d.PlaneWidth, "plane_width")
	fix(&c.PlaneHeight, d.PlaneHeight, "plane_height")
	fix(&c.HistoryLimit, d.HistoryLimit, "history_limit")
	c.Default = c.Default.Clamped()
	return c
}
