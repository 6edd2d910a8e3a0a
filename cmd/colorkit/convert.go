package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/colorkit"
)

func newHSVCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hsv <color>",
		Short: "Print the HSV projection and name of a hex color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := colorkit.ParseHex(args[0])
			if err != nil {
				return err
			}
			hsv := c.HSV()
			fmt.Fprintf(cmd.OutOrStdout(), "h=%.2f s=%.4f v=%.4f alpha=%.4f name=%q\n",
				hsv.H, hsv.S, hsv.V, c.Alpha(), colorkit.ToDisplayName(c))
			return nil
		},
	}
}

type rgbOptions struct {
	h, s, v, alpha float64
}

func newRGBCmd() *cobra.Command {
	opts := &rgbOptions{}

	cmd := &cobra.Command{
		Use:   "rgb",
		Short: "Print the #aarrggbb color for an HSV triple",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := colorkit.ColorFromRGBA(colorkit.HSVToRGB(colorkit.HSV{H: opts.h, S: opts.s, V: opts.v}), opts.alpha)
			fmt.Fprintln(cmd.OutOrStdout(), c.String())
			return nil
		},
	}

	cmd.Flags().Float64Var(&opts.h, "hue", 0, "Hue in degrees")
	cmd.Flags().Float64Var(&opts.s, "saturation", 1, "Saturation in [0, 1]")
	cmd.Flags().Float64Var(&opts.v, "value", 1, "Value in [0, 1]")
	cmd.Flags().Float64Var(&opts.alpha, "alpha", 1, "Alpha in [0, 1]")

	return cmd
}
