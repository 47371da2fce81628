package colorpick

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"gridpaint/internal/logx"

	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
picker:
  plane_width: 128
  plane_height: 64
  hue_track_width: -5
  default_hex: "#00FF00"
window:
  width: 800
`))
	require.NoError(t, err)
	require.Equal(t, 128, cfg.PlaneWidth)
	require.Equal(t, 64, cfg.PlaneHeight)
	require.Equal(t, DefaultHueTrackWidth, cfg.HueTrackWidth)
	require.Equal(t, DefaultHueTrackHeight, cfg.HueTrackHeight)
	require.Equal(t, DefaultHistoryLimit, cfg.HistoryLimit)
	require.InDelta(t, 1.0/3, cfg.Default.H, 1e-9)
	require.Equal(t, 1.0, cfg.Default.S)
}

func TestParseConfigDefaultHSV(t *testing.T) {
	cfg, err := ParseConfig([]byte("picker:\n  default_hsv: [0.5, 2, 0.25]\n"))
	require.NoError(t, err)
	require.Equal(t, HSV{H: 0.5, S: 1, V: 0.25}, cfg.Default)

	_, err = ParseConfig([]byte("picker:\n  default_hsv: [0.5]\n"))
	require.Error(t, err)
}

func TestParseConfigErrors(t *testing.T) {
	_, err := ParseConfig([]byte("picker:\n  default_hex: nope\n"))
	require.ErrorIs(t, err, ErrInvalidHex)

	_, err = ParseConfig([]byte("picker: [1, 2"))
	require.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)

	path := filepath.Join(dir, "gridpaint.yaml")
	require.NoError(t, os.WriteFile(path, []byte("picker:\n  history_limit: 5\n"), 0o644))
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 5, cfg.HistoryLimit)
}

func TestUnknownKeys(t *testing.T) {
	doc := []byte(`
picker:
  plane_width: 64
  plane_widht: 32
  colour: red
window:
  width: 800
`)
	require.Equal(t, []string{"plane_widht", "colour"}, UnknownKeys(doc, pickerKeys, "picker"))
	require.Equal(t, []string{"picker"}, UnknownKeys(doc, []string{"window"}))
	require.Nil(t, UnknownKeys(doc, nil, "missing"))
	require.Nil(t, UnknownKeys([]byte("picker: [1, 2"), nil, "picker"))
	require.Nil(t, UnknownKeys([]byte("picker: 3"), nil, "picker"))
}

func TestParseConfigWarnsOnUnknownKeys(t *testing.T) {
	var buf bytes.Buffer
	logx.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { logx.SetLogger(nil) })

	cfg, err := ParseConfig([]byte("picker:\n  plane_widht: 32\n  history_limit: 9\n"))
	require.NoError(t, err)
	require.Equal(t, 9, cfg.HistoryLimit)
	require.Equal(t, DefaultPlaneSize, cfg.PlaneWidth)
	require.Contains(t, buf.String(), "key=picker.plane_widht")
}
