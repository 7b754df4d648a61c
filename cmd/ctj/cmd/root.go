package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "ctj",
	Short: "CircuiTikZ Designer markup to JSON scene converter",
	Long: `ctj converts CircuiTikZ/TikZ markup exported by CircuiTikZ Designer into
the designer's JSON scene format.

Examples:
  ctj convert                      # Convert every *.tex document here
  ctj convert schematics/          # Convert a directory of documents
  ctj info input-amplifier.tex     # Summarize one document
  ctj tokens input-amplifier.tex   # Dump extracted statements`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
