// Package project locates and reads the sable.toml project manifest.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file that marks a project root.
const ManifestName = "sable.toml"

// Manifest is the parsed sable.toml.
type Manifest struct {
	Package PackageSection `toml:"package"`
	Check   CheckSection   `toml:"check"`
}

// PackageSection identifies the project.
type PackageSection struct {
	Name string `toml:"name"`
	Root string `toml:"root"` // source root relative to the manifest, "" means "."
}

// CheckSection tunes the checker for the whole project.
type CheckSection struct {
	MaxDiagnostics int  `toml:"max_diagnostics"`
	Cache          bool `toml:"cache"`
}

// FindManifest walks up from startDir to locate sable.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// FindProjectRoot returns the directory containing sable.toml, if any.
func FindProjectRoot(startDir string) (root string, ok bool, err error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return "", ok, err
	}
	return filepath.Dir(manifestPath), true, nil
}

// LoadManifest decodes the manifest at path.
func LoadManifest(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if m.Package.Name == "" {
		return nil, fmt.Errorf("%s: package.name is required", path)
	}
	return &m, nil
}

// SourceRoot resolves the manifest's source root against the manifest's own
// directory.
func (m *Manifest) SourceRoot(manifestPath string) string {
	base := filepath.Dir(manifestPath)
	if m.Package.Root == "" {
		return base
	}
	if filepath.IsAbs(m.Package.Root) {
		return m.Package.Root
	}
	return filepath.Join(base, m.Package.Root)
}
