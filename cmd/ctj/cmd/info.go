package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/urogers/CircuiTikZ-Designer-to-JSON/pkg/convert"
	"github.com/urogers/CircuiTikZ-Designer-to-JSON/pkg/scene"
	"github.com/urogers/CircuiTikZ-Designer-to-JSON/pkg/tikz"
)

var infoCmd = &cobra.Command{
	Use:   "info <document.tex>",
	Short: "Show document information",
	Long: `Display a summary of one markup document: the statements recognized in
its drawing environment and the components they convert to.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("error reading document: %w", err)
	}
	body, ok := tikz.ExtractDrawingBlock(string(data))
	if !ok {
		return fmt.Errorf("no drawing environment found in %s", filename)
	}

	fmt.Printf("Document: %s\n", filename)
	if coords := tikz.ParseCoordinates(body); len(coords) > 0 {
		fmt.Printf("Named coordinates: %d (not resolved)\n", len(coords))
	}

	statements := tikz.ExtractStatements(body)
	kinds := make(map[string]int)
	for _, st := range statements {
		kinds[st.StatementKind().String()]++
	}
	fmt.Println()
	fmt.Printf("Statements: %d\n", len(statements))
	for _, kind := range []string{"node", "2node", "3node", "device", "wire", "to"} {
		if kinds[kind] > 0 {
			fmt.Printf("  %-7s %d\n", kind, kinds[kind])
		}
	}

	doc, err := convert.New(convert.DefaultConfig()).Convert(string(data))
	if err != nil {
		return fmt.Errorf("error converting document: %w", err)
	}
	types := make(map[string]int)
	for _, comp := range doc.Components {
		types[componentType(comp)]++
	}
	fmt.Println()
	fmt.Printf("Components: %d\n", len(doc.Components))
	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-7s %d\n", name, types[name])
	}
	return nil
}

func componentType(comp scene.Component) string {
	switch v := comp.(type) {
	case *scene.ShapeComponent:
		return v.Type
	case *scene.DeviceComponent:
		return v.Type
	case *scene.WireComponent:
		return v.Type
	case *scene.PathComponent:
		return v.Type
	}
	return "unknown"
}
