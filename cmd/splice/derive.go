package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"splice/internal/diag"
	"splice/internal/diagfmt"
	"splice/internal/driver"
	"splice/internal/gen"
	"splice/internal/tokentree"
)

var deriveCmd = &cobra.Command{
	Use:   "derive [flags] generator file.mx",
	Short: "Run a declaration generator over a source file",
	Long: `Derive runs one boilerplate generator (module, vtable, export, pin_data,
pinned_drop, zeroable) over the file's token stream and prints the
emitted tokens.`,
	Args: cobra.ExactArgs(2),
	RunE: runDerive,
}

func init() {
	deriveCmd.Flags().String("format", "source", "output format (source|json)")
}

func runDerive(cmd *cobra.Command, args []string) error {
	registry := gen.Default()
	generator, ok := registry.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown generator %q (available: %s)",
			args[0], strings.Join(registry.Names(), ", "))
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	result, err := driver.Expand(args[1], maxDiagnostics(cmd))
	if err != nil {
		return fmt.Errorf("expansion failed: %w", err)
	}
	if !printDeriveDiags(cmd, result) {
		return fmt.Errorf("expansion produced errors")
	}

	bag := diag.NewBag(maxDiagnostics(cmd))
	output, ok := generator.Expand(result.Tree, diag.BagReporter{Bag: bag})
	if bag.Len() > 0 {
		bag.Sort()
		diagfmt.Pretty(os.Stderr, bag, result.FileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			ShowNotes: true,
		})
	}
	if !ok {
		return fmt.Errorf("generator %q failed", generator.Name())
	}

	switch format {
	case "source":
		fmt.Println(tokentree.Render(output))
		return nil
	case "json":
		return diagfmt.FormatTreeJSON(os.Stdout, output)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func printDeriveDiags(cmd *cobra.Command, result *driver.ExpandResult) bool {
	if result.Bag.Len() > 0 {
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			ShowNotes: true,
		})
	}
	return result.Ok()
}
