// Package cli provides the Cobra command structure for the sexpr tool.
package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/xiam/sexpr-stream/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root sexpr command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var color string

	rootCmd := &cobra.Command{
		Use:   "sexpr",
		Short: "Read S-expressions and print the resulting tree",
		Long: `sexpr reads S-expressions from files or standard input, a chunk at a
time, and prints the tree of lists and tokens it builds together with the
line and column where each of them starts.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if debug {
				logging.FromContext(cmd.Context()).SetLevel(log.DebugLevel)
			}
			switch color {
			case colorAuto, colorAlways, colorNever:
				return nil
			}
			return fmt.Errorf("%w: unknown color mode %q", ErrUsage, color)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&color, "color", colorAuto,
		"colorize output: auto, always, never")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Join(ErrUsage, err)
	})

	rootCmd.AddCommand(newParseCommand(&color))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
