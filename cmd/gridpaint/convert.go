package main

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gridpaint/internal/colorpick"

	"github.com/spf13/cobra"
)

func newConvertCmd() *cobra.Command {
	var hsvFlag, hexFlag, nameFlag string
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Print a colour as hex, RGB and HSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			hsv, err := parseColorFlags(hsvFlag, hexFlag, nameFlag)
			if err != nil {
				return err
			}
			c := hsv.RGB()
			fmt.Fprintf(cmd.OutOrStdout(), "hex %s\nrgb %d %d %d\nhsv %.4f %.4f %.4f\n",
				colorpick.Hex(c), c.R, c.G, c.B, hsv.H, hsv.S, hsv.V)
			return nil
		},
	}
	cmd.Flags().StringVar(&hsvFlag, "hsv", "", "h,s,v each in [0,1]")
	cmd.Flags().StringVar(&hexFlag, "hex", "", "#RRGGBB or #RGB")
	cmd.Flags().StringVar(&nameFlag, "name", "", "CSS colour name")
	cmd.MarkFlagsMutuallyExclusive("hsv", "hex", "name")
	cmd.MarkFlagsOneRequired("hsv", "hex", "name")
	return cmd
}

func parseColorFlags(hsvFlag, hexFlag, nameFlag string) (colorpick.HSV, error) {
	var c color.RGBA
	var err error
	switch {
	case hsvFlag != "":
		return parseHSV(hsvFlag)
	case hexFlag != "":
		c, err = colorpick.ParseHex(hexFlag)
	case nameFlag != "":
		c, err = colorpick.Named(nameFlag)
	default:
		return colorpick.HSV{}, errors.New("one of --hsv, --hex or --name is required")
	}
	if err != nil {
		return colorpick.HSV{}, err
	}
	return colorpick.FromRGB(c, colorpick.HSV{}), nil
}

func parseHSV(s string) (colorpick.HSV, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return colorpick.HSV{}, fmt.Errorf("--hsv %q: want h,s,v", s)
	}
	var v [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return colorpick.HSV{}, fmt.Errorf("--hsv %q: %w", s, err)
		}
		v[i] = f
	}
	return colorpick.HSV{H: v[0], S: v[1], V: v[2]}.Clamped(), nil
}
