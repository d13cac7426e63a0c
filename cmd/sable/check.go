package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"sable/internal/diag"
	"sable/internal/diagfmt"
	"sable/internal/driver"
	"sable/internal/project"
	"sable/internal/source"
	"sable/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.sb|directory>",
	Short: "Check sable source files for declaration and emit diagnostics",
	Long:  `Check runs the front end over a sable source file or all *.sb files within a directory`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().Bool("no-warnings", false, "ignore warnings in diagnostics")
	checkCmd.Flags().Bool("warnings-as-errors", false, "treat warnings as errors")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	checkCmd.Flags().Bool("disk-cache", false, "enable the persistent diagnostics cache")
	checkCmd.Flags().Bool("progress", false, "show interactive progress for directory runs")
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	noWarnings, err := cmd.Flags().GetBool("no-warnings")
	if err != nil {
		return fmt.Errorf("failed to get no-warnings flag: %w", err)
	}
	warningsAsErrors, err := cmd.Flags().GetBool("warnings-as-errors")
	if err != nil {
		return fmt.Errorf("failed to get warnings-as-errors flag: %w", err)
	}
	if noWarnings && warningsAsErrors {
		return fmt.Errorf("no-warnings and warnings-as-errors flags cannot be used together")
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	useDiskCache, err := cmd.Flags().GetBool("disk-cache")
	if err != nil {
		return fmt.Errorf("failed to get disk-cache flag: %w", err)
	}
	showProgress, err := cmd.Flags().GetBool("progress")
	if err != nil {
		return fmt.Errorf("failed to get progress flag: %w", err)
	}

	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot stat %s: %w", path, err)
	}

	// Project manifest supplies defaults for flags the user left untouched.
	startDir := path
	if !st.IsDir() {
		startDir = filepath.Dir(path)
	}
	if manifestPath, found, err := project.FindManifest(startDir); err == nil && found {
		if manifest, err := project.LoadManifest(manifestPath); err == nil {
			if !cmd.Root().PersistentFlags().Changed("max-diagnostics") && manifest.Check.MaxDiagnostics > 0 {
				maxDiagnostics = manifest.Check.MaxDiagnostics
			}
			if !cmd.Flags().Changed("disk-cache") && manifest.Check.Cache {
				useDiskCache = true
			}
		}
	}

	checkOpts := driver.CheckOptions{MaxDiagnostics: maxDiagnostics}
	fileSet := source.NewFileSet()

	merged := diag.NewBag(maxDiagnostics)
	if st.IsDir() {
		dirRes, err := checkDirectory(cmd.Context(), fileSet, path, checkOpts, jobs,
			useDiskCache, showProgress && isTerminal(os.Stderr))
		if err != nil {
			return err
		}
		for _, f := range dirRes.Files {
			merged.Merge(f.Result.Merged())
		}
	} else {
		result := driver.CheckFile(fileSet, path, checkOpts)
		merged.Merge(result.Merged())
	}

	if noWarnings {
		merged = filterSeverity(merged, diag.SevError)
	}
	if warningsAsErrors {
		merged = promoteWarnings(merged)
	}
	merged.Sort()

	pathMode := diagfmt.PathModeAuto
	if fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}

	switch format {
	case "pretty":
		diagfmt.Pretty(os.Stderr, merged, fileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			PathMode:  pathMode,
			ShowNotes: withNotes,
		})
	case "json":
		if err := diagfmt.JSON(os.Stdout, merged, fileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			IncludeNotes:     withNotes,
		}); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if merged.HasErrors() {
		// Diagnostics were already rendered; a silent exit code is enough.
		os.Exit(1)
	}
	return nil
}

// checkDirectory runs the parallel directory check, optionally fronted by the
// disk cache and the interactive progress view.
func checkDirectory(ctx context.Context, fileSet *source.FileSet, root string, checkOpts driver.CheckOptions, jobs int, useDiskCache, showProgress bool) (*driver.DirResult, error) {
	var cache *driver.DiskCache
	if useDiskCache {
		var err error
		cache, err = driver.OpenDiskCache("")
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: disk cache disabled: %v\n", err)
			cache = nil
		}
	}

	dirOpts := driver.DirOptions{Check: checkOpts, Workers: jobs, Cache: cache}

	if !showProgress {
		return driver.CheckDir(ctx, fileSet, root, dirOpts)
	}

	files, err := driver.ListSourceFiles(root)
	if err != nil {
		return nil, err
	}

	events := make(chan ui.Event, len(files)*2)
	dirOpts.Progress = func(done, total int, path string) {
		events <- ui.Event{Path: path, Status: ui.StatusDone}
	}

	var (
		dirRes *driver.DirResult
		runErr error
		wg     sync.WaitGroup
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(events)
		dirRes, runErr = driver.CheckDir(ctx, fileSet, root, dirOpts)
	}()

	prog := tea.NewProgram(ui.NewProgressModel("checking "+root, files, events), tea.WithOutput(os.Stderr))
	if _, err := prog.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: progress view failed: %v\n", err)
	}
	wg.Wait()
	return dirRes, runErr
}

func filterSeverity(bag *diag.Bag, min diag.Severity) *diag.Bag {
	out := diag.NewBag(bag.Len())
	for _, d := range bag.Items() {
		if d.Severity >= min {
			out.Add(d)
		}
	}
	return out
}

func promoteWarnings(bag *diag.Bag) *diag.Bag {
	out := diag.NewBag(bag.Len())
	for _, d := range bag.Items() {
		if d.Severity == diag.SevWarning {
			d.Severity = diag.SevError
		}
		out.Add(d)
	}
	return out
}
