package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"sable/internal/source"
)

// SourceExt is the extension a checked source file must carry.
const SourceExt = ".sb"

// FileOutcome is the per-file result of a directory check.
type FileOutcome struct {
	Path   string
	Result *CheckResult
}

// DirResult aggregates a directory check in deterministic path order.
type DirResult struct {
	Files []FileOutcome
}

// HasErrors reports whether any file produced an error.
func (r *DirResult) HasErrors() bool {
	for _, f := range r.Files {
		if f.Result.HasErrors() {
			return true
		}
	}
	return false
}

// DirOptions tunes a directory run.
type DirOptions struct {
	Check    CheckOptions
	Workers  int        // 0 selects GOMAXPROCS
	Cache    *DiskCache // nil disables the cache front
	Progress func(done, total int, path string)
}

// ListSourceFiles walks root and returns every source file, sorted.
func ListSourceFiles(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) == SourceExt {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

// CheckDir checks every source file under root concurrently. Files are loaded
// into the shared FileSet up front (FileSet is not safe for concurrent
// writes); the per-file phases then run in parallel.
func CheckDir(ctx context.Context, fileSet *source.FileSet, root string, opts DirOptions) (*DirResult, error) {
	paths, err := ListSourceFiles(root)
	if err != nil {
		return nil, err
	}

	ids := make([]source.FileID, len(paths))
	loadErrs := make([]error, len(paths))
	for i, path := range paths {
		ids[i], loadErrs[i] = fileSet.Load(path)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]*CheckResult, len(paths))
	var mu sync.Mutex
	done := 0

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range paths {
		i := i // per-iteration copy; required for correctness on Go < 1.22
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if loadErrs[i] != nil {
				results[i] = loadFailure(paths[i], loadErrs[i], opts.Check)
			} else {
				results[i] = checkCached(fileSet, ids[i], opts)
			}
			if opts.Progress != nil {
				mu.Lock()
				done++
				opts.Progress(done, len(paths), paths[i])
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &DirResult{Files: make([]FileOutcome, len(paths))}
	for i, path := range paths {
		out.Files[i] = FileOutcome{Path: path, Result: results[i]}
	}
	return out, nil
}

// checkCached fronts CheckSource with the disk cache when one is configured.
// A cache hit returns diagnostics only: File and Bind stay nil.
func checkCached(fileSet *source.FileSet, id source.FileID, opts DirOptions) *CheckResult {
	if opts.Cache == nil {
		return CheckSource(fileSet, id, opts.Check)
	}
	hash := fileSet.Get(id).Hash
	if decl, emit, ok := opts.Cache.Get(hash, id); ok {
		return &CheckResult{FileID: id, DeclBag: decl, EmitBag: emit}
	}
	result := CheckSource(fileSet, id, opts.Check)
	// Best effort; a failed write just means a recheck next run.
	_ = opts.Cache.Put(hash, result)
	return result
}
