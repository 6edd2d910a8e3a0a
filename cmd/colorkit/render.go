package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/colorkit"
)

type checkerOptions struct {
	width, height int
	color         string
	out           string
	workers       int
}

func newCheckerCmd() *cobra.Command {
	opts := &checkerOptions{}

	cmd := &cobra.Command{
		Use:   "checker",
		Short: "Render the checkerboard shown behind translucent colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := colorkit.ParseHex(opts.color)
			if err != nil {
				return err
			}
			bmp, err := colorkit.CheckeredBackground(cmd.Context(), opts.width, opts.height, c,
				colorkit.WithWorkers(opts.workers))
			if err != nil {
				return err
			}
			return writeBitmap(cmd, bmp, opts.out)
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", 64, "Width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 64, "Height in pixels")
	cmd.Flags().StringVar(&opts.color, "color", "#FFC0C0C0", "Checker color as hex")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "checker.png", "Output file (.png or .bmp)")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "Row bands to render in parallel (0 = GOMAXPROCS)")

	return cmd
}

type spectrumOptions struct {
	size       int
	shape      string
	components string
	color      string
	layer      string
	out        string
	workers    int
}

func newSpectrumCmd() *cobra.Command {
	opts := &spectrumOptions{}

	cmd := &cobra.Command{
		Use:   "spectrum",
		Short: "Render a two-dimensional spectrum layer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSpectrum(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.size, "size", 256, "Edge length in pixels")
	cmd.Flags().StringVar(&opts.shape, "shape", colorkit.Box.String(), "Outline: box or ring")
	cmd.Flags().StringVar(&opts.components, "components", colorkit.HueSaturation.String(), "Axes, e.g. hue-value or saturation-value")
	cmd.Flags().StringVar(&opts.color, "color", "#FFFF0000", "Color supplying the third dimension for the flat layer")
	cmd.Flags().StringVar(&opts.layer, "layer", "flat", "Layer to write: flat, min or max")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "spectrum.png", "Output file (.png or .bmp)")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "Row bands to render in parallel (0 = GOMAXPROCS)")

	return cmd
}

func runSpectrum(cmd *cobra.Command, opts *spectrumOptions) error {
	shape, err := colorkit.ParseShape(opts.shape)
	if err != nil {
		return err
	}
	comps, err := colorkit.ParseComponents(opts.components)
	if err != nil {
		return err
	}
	c, err := colorkit.ParseHex(opts.color)
	if err != nil {
		return err
	}

	s, err := colorkit.RenderSpectrum(cmd.Context(), opts.size, shape, comps, colorkit.DefaultSpectrumBounds(),
		colorkit.WithWorkers(opts.workers))
	if err != nil {
		return err
	}
	if s == nil {
		return writeBitmap(cmd, nil, opts.out)
	}

	var bmp *colorkit.Bitmap
	switch opts.layer {
	case "flat":
		bmp = s.Flatten(c.HSV())
	case "min":
		bmp = s.Min
	case "max":
		bmp = s.Max
	default:
		return fmt.Errorf("invalid layer %q: want flat, min or max", opts.layer)
	}
	return writeBitmap(cmd, bmp, opts.out)
}

func writeBitmap(cmd *cobra.Command, bmp *colorkit.Bitmap, path string) error {
	if bmp == nil {
		return errors.New("nothing to write: image is empty")
	}
	if err := bmp.Save(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d)\n", path, bmp.Width(), bmp.Height())
	return nil
}
