package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultLoggerIsSilent(t *testing.T) {
	require.False(t, Logger().Enabled(t.Context(), slog.LevelError))
}

func TestSetLogger(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	Logger().Warn("picker input ignored", "text", "#zz")
	require.Contains(t, buf.String(), "picker input ignored")

	SetLogger(nil)
	require.False(t, Logger().Enabled(t.Context(), slog.LevelError))
}
