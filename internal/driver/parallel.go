package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"splice/internal/diag"
	"splice/internal/lexer"
	"splice/internal/paste"
	"splice/internal/source"
	"splice/internal/tokentree"
)

// ExpandDirResult holds the expansion outcome for one file of a directory
// walk. Output is empty when Bag carries errors.
type ExpandDirResult struct {
	Path   string
	FileID source.FileID
	Tree   tokentree.Stream
	Output string
	Bag    *diag.Bag
}

// listSourceFiles returns the sorted list of all *.mx files under dir.
func listSourceFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".mx") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// deterministic order regardless of walk internals
	sort.Strings(files)
	return files, nil
}

// ExpandDir expands all *.mx files under dir in parallel. Each file gets
// its own Bag; a file that fails to load is reported as IOLoadFileError in
// its result rather than aborting the walk. Invocations are independent,
// which is what makes the per-file parallelism safe.
func ExpandDir(ctx context.Context, dir string, maxDiagnostics, jobs int) (*source.FileSet, []ExpandDirResult, error) {
	files, err := listSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return source.NewFileSetWithBase(dir), nil, nil
	}

	// preload sequentially; FileSet mutation is not concurrency-safe
	fileSet := source.NewFileSetWithBase(dir)
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))

	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// indices are unique per goroutine, no mutex needed
	results := make([]ExpandDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(maxDiagnostics)
			results[i] = ExpandDirResult{Path: path, Bag: bag}

			if loadErr, hadError := loadErrors[path]; hadError {
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  "failed to load file: " + loadErr.Error(),
					Primary:  source.Span{},
				})
				return nil
			}

			fileID := fileIDs[path]
			results[i].FileID = fileID
			rep := diag.BagReporter{Bag: bag}

			lx := lexer.New(fileSet.Get(fileID), lexer.Options{Reporter: rep})
			tokens := lx.All()
			if bag.HasErrors() {
				return nil
			}

			tree, ok := tokentree.Build(tokens, rep)
			if !ok {
				return nil
			}
			expanded, ok := paste.Expand(tree, rep)
			if !ok {
				return nil
			}

			results[i].Tree = expanded
			results[i].Output = tokentree.Render(expanded)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
