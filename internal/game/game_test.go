package game

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"gridpaint/internal/components"
	"gridpaint/internal/engine"
	"gridpaint/internal/logx"
	"gridpaint/internal/world"

	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T, scenePath string) *Game {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Picker.PlaneWidth, cfg.Picker.PlaneHeight = 8, 8
	g, err := New(cfg, scenePath)
	require.NoError(t, err)
	t.Cleanup(g.Close)
	return g
}

func TestSubmitHex(t *testing.T) {
	g := newTestGame(t, "")
	require.Equal(t, "#FF0000", g.hexText)

	g.SubmitHex("  00ff00 ")
	require.Equal(t, "#00FF00", g.Picker.Hex())
	require.Equal(t, "#00FF00", g.hexText)
	undo, _ := g.Picker.HistoryLen()
	require.Equal(t, 1, undo)

	g.SubmitHex("indigo")
	require.Equal(t, "#4B0082", g.Picker.Hex())

	g.SubmitHex("#12")
	require.Equal(t, "#4B0082", g.Picker.Hex(), "bad input leaves the colour alone")
	require.Equal(t, "#4B0082", g.hexText)
	require.Contains(t, g.status, "not a colour")
}

func TestUndoRedo(t *testing.T) {
	g := newTestGame(t, "")
	g.Undo()
	require.Equal(t, "nothing to undo", g.status)

	g.SubmitHex("#0000FF")
	g.Undo()
	require.Equal(t, "#FF0000", g.Picker.Hex())
	require.Equal(t, "#FF0000", g.hexText)
	g.Redo()
	require.Equal(t, "#0000FF", g.Picker.Hex())
	g.Redo()
	require.Equal(t, "nothing to redo", g.status)
}

func TestHexBoxNotOverwrittenWhileEditing(t *testing.T) {
	g := newTestGame(t, "")
	g.hexEditing = true
	g.hexText = "#12"
	g.Picker.SetHue(0.5)
	require.Equal(t, "#12", g.hexText)
}

func TestTogglePanel(t *testing.T) {
	g := newTestGame(t, "")
	g.hexEditing = true
	g.TogglePanel()
	require.False(t, g.demo.Panel.Active)
	require.False(t, g.hexEditing)
	g.TogglePanel()
	require.True(t, g.demo.Panel.Active)
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	g := newTestGame(t, "")
	g.ScenePath = path
	g.Save()
	require.Equal(t, "saved "+path, g.status)

	loaded := newTestGame(t, path)
	require.NotNil(t, loaded.demo.Panel)
	require.NotNil(t, loaded.demo.HexInput)
	plane := engine.GetComponent[*components.UIColorPlane](loaded.World.Scene.FindByName("SVPlane"))
	require.NotNil(t, plane)
	require.Same(t, loaded.Picker, plane.Picker)
	require.Equal(t, world.PickerPanelName, loaded.demo.Panel.Name)
}

func TestNewMissingScene(t *testing.T) {
	_, err := New(DefaultConfig(), filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
window:
  width: 800
  fps: 0
picker:
  plane_width: 64
`))
	require.NoError(t, err)
	require.Equal(t, 800, cfg.Window.Width)
	require.Equal(t, 720, cfg.Window.Height)
	require.Equal(t, 60, cfg.Window.FPS)
	require.Equal(t, "gridpaint", cfg.Window.Title)
	require.Equal(t, 64, cfg.Picker.PlaneWidth)

	cfg, err = ParseConfig([]byte("window:\n  width: -1\n"))
	require.NoError(t, err)
	require.Equal(t, 1280, cfg.Window.Width)

	_, err = ParseConfig([]byte("picker:\n  default_hex: zz\n"))
	require.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)

	path := filepath.Join(t.TempDir(), "gridpaint.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  title: demo\n"), 0o644))
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "demo", cfg.Window.Title)

	require.NoError(t, os.WriteFile(path, []byte("window: [\n"), 0o644))
	_, err = LoadConfig(path)
	require.Error(t, err)
}

func TestParseConfigWarnsOnUnknownKeys(t *testing.T) {
	var buf bytes.Buffer
	logx.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { logx.SetLogger(nil) })

	cfg, err := ParseConfig([]byte("windw:\n  width: 800\nwindow:\n  fullscreen: true\n  fps: 30\n"))
	require.NoError(t, err)
	require.Equal(t, 30, cfg.Window.FPS)
	require.Equal(t, 1280, cfg.Window.Width)
	require.Contains(t, buf.String(), "key=windw")
	require.Contains(t, buf.String(), "key=window.fullscreen")
}
