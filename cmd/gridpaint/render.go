package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"gridpaint/internal/colorpick"
	"gridpaint/internal/logx"

	"github.com/spf13/cobra"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

const (
	hueTrackFile = "hue_track.png"
	svPlaneFile  = "sv_plane.png"
)

func newRenderCmd() *cobra.Command {
	var (
		hue   float64
		out   string
		scale int
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the hue track and saturation/value plane as PNG files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			paths, err := renderGradients(colorpick.DefaultConfig(), hue, out, scale)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&hue, "hue", 0, "hue in [0,1] the plane is rendered for")
	cmd.Flags().StringVarP(&out, "out", "o", ".", "output directory")
	cmd.Flags().IntVar(&scale, "scale", 1, "integer upscaling factor")
	return cmd
}

// renderGradients writes both bitmaps into dir. The encodes run
// concurrently.
func renderGradients(cfg colorpick.Config, hue float64, dir string, scale int) ([]string, error) {
	if scale < 1 {
		return nil, fmt.Errorf("scale must be at least 1, got %d", scale)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	jobs := []struct {
		path string
		img  image.Image
	}{
		{filepath.Join(dir, hueTrackFile), colorpick.HueTrack(cfg.HueTrackWidth, cfg.HueTrackHeight)},
		{filepath.Join(dir, svPlaneFile), colorpick.SVPlane(colorpick.Clamp01(hue), cfg.PlaneWidth, cfg.PlaneHeight)},
	}

	var g errgroup.Group
	paths := make([]string, len(jobs))
	for i, job := range jobs {
		paths[i] = job.path
		g.Go(func() error {
			return writePNG(job.path, upscale(job.img, scale))
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	logx.Logger().Info("render: wrote gradients", "dir", dir, "hue", hue, "scale", scale)
	return paths, nil
}

func upscale(src image.Image, scale int) image.Image {
	if scale == 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
