package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/colorkit"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "colorkit",
		Short:         "Convert, step and render picker colors",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.verbose {
				colorkit.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			} else {
				colorkit.SetLogger(nil)
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging on stderr")

	cmd.AddCommand(newHSVCmd())
	cmd.AddCommand(newRGBCmd())
	cmd.AddCommand(newStepCmd())
	cmd.AddCommand(newNameCmd())
	cmd.AddCommand(newCheckerCmd())
	cmd.AddCommand(newSpectrumCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
