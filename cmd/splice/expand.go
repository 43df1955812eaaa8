package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"splice/internal/diagfmt"
	"splice/internal/driver"
)

var expandCmd = &cobra.Command{
	Use:   "expand [flags] [file.mx ...]",
	Short: "Expand splice markers in source files",
	Long: `Expand resolves [< ... >] splice units into single identifiers and prints
the rewritten source. With no arguments the [expand].include paths of the
nearest splice.toml are expanded.`,
	RunE: runExpand,
}

func init() {
	expandCmd.Flags().String("format", "source", "output format (source|tokens|json)")
	expandCmd.Flags().Int("jobs", 0, "parallel expansion jobs (0 = GOMAXPROCS)")
	expandCmd.Flags().Bool("no-cache", false, "bypass the expansion cache")
}

func runExpand(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "source", "tokens", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if len(args) == 0 {
		return expandFromManifest(cmd, format)
	}

	noCache, _ := cmd.Flags().GetBool("no-cache")
	var cache *driver.ExpandCache
	if !noCache && format == "source" {
		// cache failures degrade to uncached expansion
		cache, _ = driver.OpenExpandCache("splice")
	}

	hadErrors := false
	for _, path := range args {
		if done := expandCached(cache, path); done {
			continue
		}
		result, err := driver.Expand(path, maxDiagnostics(cmd))
		if err != nil {
			return fmt.Errorf("expansion failed: %w", err)
		}
		if !printExpandResult(cmd, result, format) {
			hadErrors = true
			continue
		}
		storeInCache(cache, path, result.Output)
	}
	if hadErrors {
		return fmt.Errorf("expansion produced errors")
	}
	return nil
}

// expandCached replays a cached rendering when the file's content hash
// hits. Only clean source-format results are ever cached.
func expandCached(cache *driver.ExpandCache, path string) bool {
	if cache == nil {
		return false
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	var payload driver.CachePayload
	hit, err := cache.Get(driver.DigestOf(content), &payload)
	if err != nil || !hit {
		return false
	}
	fmt.Println(payload.Output)
	return true
}

func storeInCache(cache *driver.ExpandCache, path, output string) {
	if cache == nil {
		return
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return
	}
	_ = cache.Put(driver.DigestOf(content), &driver.CachePayload{
		Path:   path,
		Output: output,
	})
}

// printExpandResult prints diagnostics to stderr and, when expansion
// succeeded, the result to stdout. Returns false when errors occurred.
func printExpandResult(cmd *cobra.Command, result *driver.ExpandResult, format string) bool {
	if result.Bag.Len() > 0 {
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			ShowNotes: true,
		})
	}
	if !result.Ok() {
		return false
	}

	switch format {
	case "source":
		fmt.Println(result.Output)
	case "tokens", "json":
		if err := diagfmt.FormatTreeJSON(os.Stdout, result.Tree); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return false
		}
	}
	return true
}

// expandFromManifest walks the manifest's include paths, expanding .mx
// files in parallel.
func expandFromManifest(cmd *cobra.Command, format string) error {
	manifest, ok, err := loadManifest(".")
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s", noManifestMessage)
	}
	if format != "source" {
		return fmt.Errorf("manifest expansion supports only --format source")
	}

	jobs, _ := cmd.Flags().GetInt("jobs")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	hadErrors := false
	for _, dir := range manifest.IncludeDirs() {
		fileSet, results, err := driver.ExpandDir(context.Background(), dir, maxDiagnostics(cmd), jobs)
		if err != nil {
			return fmt.Errorf("expansion of %s failed: %w", dir, err)
		}
		for _, res := range results {
			if res.Bag.Len() > 0 {
				res.Bag.Sort()
				diagfmt.Pretty(os.Stderr, res.Bag, fileSet, diagfmt.PrettyOpts{
					Color:     useColor(cmd, os.Stderr),
					ShowNotes: true,
				})
			}
			if res.Bag.HasErrors() {
				hadErrors = true
				continue
			}
			if !quiet {
				fmt.Printf("// %s\n", res.Path)
			}
			fmt.Println(res.Output)
		}
	}
	if hadErrors {
		return fmt.Errorf("expansion produced errors")
	}
	return nil
}
