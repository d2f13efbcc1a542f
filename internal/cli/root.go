// Package cli wires the tributebook commands together.
package cli

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root Cobra command for the tributebook CLI.
func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tributebook",
		Short:   "Render a tribute book PDF from a data file",
		Long:    "TributeBook: paginate tribute comments and render them as a print-ready PDF",
		Version: version,
		Example: `  # Render data.json to data.pdf
  tributebook render --data data.json

  # Check a data file without rendering
  tributebook validate --data data.json`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.AddCommand(newRenderCmd(), newValidateCmd())

	return cmd
}

// newLogger builds the console logger for a command, honoring the
// persistent --debug flag.
func newLogger(cmd *cobra.Command) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).Level(level).With().Timestamp().Logger()
}
