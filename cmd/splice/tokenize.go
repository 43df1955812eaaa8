package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"splice/internal/diagfmt"
	"splice/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.mx",
	Short: "Tokenize a source file",
	Long:  `Tokenize breaks a source file into its flat lexical tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	result, err := driver.Tokenize(filePath, maxDiagnostics(cmd))
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			ShowNotes: true,
		})
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
