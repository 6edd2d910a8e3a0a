package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/colorkit"
)

type namerFlags struct {
	palette  string
	hexNames bool
	metric   string
}

func (f *namerFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.palette, "palette", "", "YAML palette used to name colors")
	cmd.Flags().BoolVar(&f.hexNames, "hex-names", false, "Name colors by their exact #aarrggbb value")
	cmd.Flags().StringVar(&f.metric, "metric", colorkit.MetricRGB.String(), "Palette distance: rgb, lab or ciede2000")
	cmd.MarkFlagsMutuallyExclusive("palette", "hex-names")
}

// namer returns nil for the default palette namer.
func (f *namerFlags) namer() (colorkit.Namer, error) {
	if f.hexNames {
		return colorkit.HexNamer, nil
	}

	metric, err := colorkit.ParseMetric(f.metric)
	if err != nil {
		return nil, err
	}
	if f.palette == "" && metric == colorkit.MetricRGB {
		return nil, nil
	}

	p := colorkit.DefaultPalette()
	if f.palette != "" {
		if p, err = colorkit.LoadPaletteFile(f.palette); err != nil {
			return nil, err
		}
	}
	return colorkit.NewPaletteNamer(p, colorkit.WithMetric(metric)), nil
}

func newNameCmd() *cobra.Command {
	flags := &namerFlags{}

	cmd := &cobra.Command{
		Use:   "name <color>",
		Short: "Print the display name of a hex color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := colorkit.ParseHex(args[0])
			if err != nil {
				return err
			}
			n, err := flags.namer()
			if err != nil {
				return err
			}
			s := colorkit.NewStepper(colorkit.WithNamer(n))
			fmt.Fprintln(cmd.OutOrStdout(), s.Namer().ColorName(c))
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}
