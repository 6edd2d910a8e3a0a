package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/colorkit"
)

type stepOptions struct {
	channel   string
	direction string
	amount    string
	wrap      bool
	min, max  float64
	namer     namerFlags
}

func newStepCmd() *cobra.Command {
	opts := &stepOptions{}

	cmd := &cobra.Command{
		Use:   "step <color>",
		Short: "Increment one channel of a hex color",
		Long: `Increment one channel of a hex color the way picker keyboard input does.

Bounds default to the full channel range: 0-359 for hue, 0-100 for
saturation and value, 0-1 for alpha.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStep(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.channel, "channel", "hue", "Channel to step: hue, saturation, value or alpha")
	cmd.Flags().StringVar(&opts.direction, "dir", "higher", "Direction: lower or higher")
	cmd.Flags().StringVar(&opts.amount, "amount", "small", "Amount: small or large")
	cmd.Flags().BoolVar(&opts.wrap, "wrap", false, "Wrap around when stepping past a bound")
	cmd.Flags().Float64Var(&opts.min, "min", 0, "Lower bound in channel units")
	cmd.Flags().Float64Var(&opts.max, "max", 0, "Upper bound in channel units")
	opts.namer.register(cmd)

	return cmd
}

func runStep(cmd *cobra.Command, arg string, opts *stepOptions) error {
	c, err := colorkit.ParseHex(arg)
	if err != nil {
		return err
	}
	channel, err := colorkit.ParseChannel(opts.channel)
	if err != nil {
		return err
	}
	dir, err := parseDirection(opts.direction)
	if err != nil {
		return err
	}
	amt, err := parseAmount(opts.amount)
	if err != nil {
		return err
	}

	minBound, maxBound := defaultBounds(channel)
	if cmd.Flags().Changed("min") {
		minBound = opts.min
	}
	if cmd.Flags().Changed("max") {
		maxBound = opts.max
	}

	var out colorkit.Color
	if channel == colorkit.Alpha {
		alpha := colorkit.IncrementAlphaChannel(c.Alpha(), dir, amt, opts.wrap, minBound, maxBound)
		out = colorkit.ColorFromRGBA(c.RGB(), alpha)
		// Keep the color channels byte-exact.
		out.R, out.G, out.B = c.R, c.G, c.B
	} else {
		n, err := opts.namer.namer()
		if err != nil {
			return err
		}
		s := colorkit.NewStepper(colorkit.WithNamer(n))
		hsv, err := s.IncrementColorChannel(c.HSV(), channel, dir, amt, opts.wrap, minBound, maxBound)
		if err != nil {
			return err
		}
		out = colorkit.ColorFromRGBA(colorkit.HSVToRGB(hsv), 1)
		out.A = c.A
	}

	fmt.Fprintln(cmd.OutOrStdout(), out.String())
	return nil
}

func defaultBounds(c colorkit.Channel) (float64, float64) {
	switch c {
	case colorkit.Hue:
		return 0, 359
	case colorkit.Alpha:
		return 0, 1
	default:
		return 0, 100
	}
}

func parseDirection(s string) (colorkit.Direction, error) {
	switch strings.ToLower(s) {
	case "lower":
		return colorkit.Lower, nil
	case "higher":
		return colorkit.Higher, nil
	}
	return 0, fmt.Errorf("invalid direction %q: want lower or higher", s)
}

func parseAmount(s string) (colorkit.Amount, error) {
	switch strings.ToLower(s) {
	case "small":
		return colorkit.Small, nil
	case "large":
		return colorkit.Large, nil
	}
	return 0, fmt.Errorf("invalid amount %q: want small or large", s)
}
