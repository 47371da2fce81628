package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gridpaint/internal/game"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var configPath, scenePath string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the picker window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := absPathFlags(cmd, "config", "scene"); err != nil {
				return err
			}
			chdirToExecutable()
			cfg, err := game.LoadConfig(configPath)
			if err != nil {
				return err
			}
			g, err := game.New(cfg, scenePath)
			if err != nil {
				return err
			}
			return g.Run()
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "gridpaint.yaml", "settings file (default is looked up next to the executable)")
	cmd.Flags().StringVar(&scenePath, "scene", "", "scene file to load instead of the built-in demo; Ctrl+S saves here")
	return cmd
}

// absPathFlags resolves the named path flags the user set against the
// current directory, so they survive chdirToExecutable. Defaults stay
// relative to the executable.
func absPathFlags(cmd *cobra.Command, names ...string) error {
	for _, name := range names {
		f := cmd.Flags().Lookup(name)
		if f == nil || !f.Changed || f.Value.String() == "" {
			continue
		}
		abs, err := filepath.Abs(f.Value.String())
		if err != nil {
			return fmt.Errorf("--%s: %w", name, err)
		}
		if err := f.Value.Set(abs); err != nil {
			return err
		}
	}
	return nil
}

// chdirToExecutable makes relative asset paths work for deployed builds.
// Skipped for "go run", which puts the binary in a temp directory.
func chdirToExecutable() {
	execPath, err := os.Executable()
	if err != nil {
		return
	}
	execDir := filepath.Dir(execPath)
	if !strings.Contains(execDir, "go-build") {
		_ = os.Chdir(execDir)
	}
}
