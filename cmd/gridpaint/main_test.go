package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gridpaint/internal/colorpick"
	"gridpaint/internal/logx"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { logx.SetLogger(nil) })
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConvert(t *testing.T) {
	out, err := execute(t, "convert", "--hex", "#ff0000")
	require.NoError(t, err)
	require.Equal(t, "hex #FF0000\nrgb 255 0 0\nhsv 0.0000 1.0000 1.0000\n", out)

	out, err = execute(t, "convert", "--hsv", "0.3333333333,1,1")
	require.NoError(t, err)
	require.Contains(t, out, "hex #00FF00")

	out, err = execute(t, "convert", "--name", "white")
	require.NoError(t, err)
	require.Contains(t, out, "hsv 0.0000 0.0000 1.0000")
}

func TestConvertErrors(t *testing.T) {
	_, err := execute(t, "convert")
	require.Error(t, err)

	_, err = execute(t, "convert", "--hex", "#12345")
	require.ErrorIs(t, err, colorpick.ErrInvalidHex)

	_, err = execute(t, "convert", "--name", "notacolour")
	require.ErrorIs(t, err, colorpick.ErrUnknownColorName)

	_, err = execute(t, "convert", "--hsv", "1,2")
	require.Error(t, err)

	_, err = execute(t, "convert", "--hex", "#fff", "--name", "red")
	require.Error(t, err)
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "render", "--hue", "0.5", "--out", dir, "--scale", "2")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	f, err := os.Open(filepath.Join(dir, svPlaneFile))
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, 2*colorpick.DefaultPlaneSize, img.Bounds().Dx())

	// Top-right corner of the plane is close to the pure hue: cyan.
	r, g, b, _ := img.At(img.Bounds().Dx()-1, 0).RGBA()
	require.InDelta(t, 0, r>>8, 2)
	require.InDelta(t, 255, g>>8, 2)
	require.InDelta(t, 255, b>>8, 2)

	// Bottom-left is black.
	r, g, b, _ = img.At(0, img.Bounds().Dy()-1).RGBA()
	require.Equal(t, []uint32{0, 0, 0}, []uint32{r, g, b})

	track, err := os.Open(filepath.Join(dir, hueTrackFile))
	require.NoError(t, err)
	defer track.Close()
	cfg, err := png.DecodeConfig(track)
	require.NoError(t, err)
	require.Equal(t, 2*colorpick.DefaultHueTrackWidth, cfg.Width)
	require.Equal(t, 2*colorpick.DefaultHueTrackHeight, cfg.Height)
}

func TestRenderBadScale(t *testing.T) {
	_, err := execute(t, "render", "--out", t.TempDir(), "--scale", "0")
	require.Error(t, err)
}

func TestRunRejectsArgs(t *testing.T) {
	_, err := execute(t, "run", "extra")
	require.Error(t, err)
}

func TestRunPathFlagsResolveAgainstWorkingDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	wd, err := os.Getwd()
	require.NoError(t, err)

	cmd := newRunCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--scene", "my.json"}))
	require.NoError(t, absPathFlags(cmd, "config", "scene"))

	scene, err := cmd.Flags().GetString("scene")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(wd, "my.json"), scene)

	config, err := cmd.Flags().GetString("config")
	require.NoError(t, err)
	require.Equal(t, "gridpaint.yaml", config, "the default stays next to the executable")

	abs := filepath.Join(wd, "other.json")
	cmd = newRunCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--scene", abs, "--config", "cfg/gp.yaml"}))
	require.NoError(t, absPathFlags(cmd, "config", "scene"))
	scene, _ = cmd.Flags().GetString("scene")
	config, _ = cmd.Flags().GetString("config")
	require.Equal(t, abs, scene)
	require.Equal(t, filepath.Join(wd, "cfg", "gp.yaml"), config)
}
