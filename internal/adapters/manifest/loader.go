// Package manifest loads and parses the project manifest (wpm.toml).
package manifest

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"go.trai.ch/wpm/internal/core/domain"
	"go.trai.ch/zerr"
)

// State is the three-way outcome of looking for a manifest in a directory.
// Absence and success are both non-error outcomes; downstream logic reacts
// differently to "no manifest" than to "a manifest exists but is broken".
type State uint8

const (
	// StateAbsent indicates no manifest file exists in the directory.
	StateAbsent State = iota
	// StatePresent indicates the manifest was found and parsed.
	StatePresent
	// StateError indicates the manifest exists but could not be read or parsed.
	StateError
)

// Result holds the outcome of Find. Manifest is set only for StatePresent,
// Err only for StateError.
type Result struct {
	State    State
	Manifest *domain.Manifest
	Err      error
}

// manifestFile mirrors the on-disk TOML layout of wpm.toml.
type manifestFile struct {
	Package packageSection  `toml:"package"`
	Modules []moduleSection `toml:"module"`
}

type packageSection struct {
	Name        string `toml:"name"`
	Version     string `toml:"version"`
	Description string `toml:"description"`
}

type moduleSection struct {
	Name   string `toml:"name"`
	Source string `toml:"source"`
}

// Find looks for a manifest in exactly the given directory and parses it.
// A missing file is absence, not an error; unreadable or malformed content is
// an error.
func Find(dir string) Result {
	path := filepath.Join(dir, domain.ManifestFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{State: StateAbsent}
		}
		return Result{State: StateError, Err: zerr.Wrap(err, domain.ErrManifestReadFailed.Error())}
	}

	var file manifestFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return Result{State: StateError, Err: zerr.Wrap(err, domain.ErrManifestParseFailed.Error())}
	}

	if file.Package.Name == "" {
		return Result{State: StateError, Err: zerr.With(zerr.With(domain.ErrManifestParseFailed, "path", path), "missing", "package.name")}
	}
	if _, err := semver.NewVersion(file.Package.Version); err != nil {
		return Result{State: StateError, Err: zerr.With(zerr.With(domain.ErrInvalidPackageVersion, "package", file.Package.Name), "version", file.Package.Version)}
	}

	baseDir, err := filepath.Abs(dir)
	if err != nil {
		return Result{State: StateError, Err: zerr.Wrap(err, domain.ErrManifestReadFailed.Error())}
	}

	m := &domain.Manifest{
		Name:        file.Package.Name,
		Version:     file.Package.Version,
		Description: file.Package.Description,
		BaseDir:     baseDir,
	}
	for _, mod := range file.Modules {
		if mod.Name == "" || mod.Source == "" {
			return Result{State: StateError, Err: zerr.With(zerr.With(domain.ErrManifestParseFailed, "path", path), "missing", "module name or source")}
		}
		m.Modules = append(m.Modules, domain.Module{Name: mod.Name, Source: mod.Source})
	}

	return Result{State: StatePresent, Manifest: m}
}
