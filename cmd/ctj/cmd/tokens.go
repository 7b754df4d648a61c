package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/urogers/CircuiTikZ-Designer-to-JSON/pkg/tikz"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <document.tex>",
	Short: "Dump extracted statements and their tokens",
	Long: `Show how each statement of a document tokenizes before conversion: the
clauses of node statements and the coordinate/options/turn tokens of draw
and path statements. Debugging aid for markup the converter mishandles.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("error reading document: %w", err)
	}
	body, ok := tikz.ExtractDrawingBlock(string(data))
	if !ok {
		return fmt.Errorf("no drawing environment found in %s", args[0])
	}
	for i, st := range tikz.ExtractStatements(body) {
		fmt.Printf("[%d] %s\n", i, st.StatementKind())
		switch s := st.(type) {
		case *tikz.NodeStatement:
			for j, cl := range s.Clauses {
				fmt.Printf("  clause %d: options=%q", j, cl.Options)
				if cl.HasName {
					fmt.Printf(" name=%q", cl.Name)
				}
				fmt.Printf(" coord=%q label=%q\n", cl.Coord, cl.Label)
			}
		case *tikz.PathStatement:
			for j, tok := range s.Tokens {
				fmt.Printf("  token %d: %-8s %q\n", j, tok.Type, tok.Text)
			}
		}
	}
	return nil
}
