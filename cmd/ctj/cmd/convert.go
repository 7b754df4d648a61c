package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/urogers/CircuiTikZ-Designer-to-JSON/pkg/convert"
)

var convertPattern string

var convertCmd = &cobra.Command{
	Use:   "convert [dir]",
	Short: "Convert markup documents to JSON scenes",
	Long: `Convert every matching document in a directory (default: the current
directory). Outputs follow the input-*.tex -> output-*.json naming
convention and overwrite prior results. A document without a drawing
environment produces an error document instead of a scene.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVarP(&convertPattern, "pattern", "p", "*.tex", "glob for input documents")
}

func runConvert(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	batch := convert.NewBatch(convert.BatchConfig{Dir: dir, Pattern: convertPattern})
	n, err := batch.Run()
	if err != nil {
		return fmt.Errorf("batch conversion failed: %w", err)
	}
	fmt.Printf("Converted %d document(s)\n", n)
	return nil
}
