// Package lockfile loads and parses the resolved lockfile (wpm.lock).
package lockfile

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

// State is the three-way outcome of looking for a lockfile in a directory.
type State uint8

const (
	// StateAbsent indicates no lockfile exists in the directory.
	StateAbsent State = iota
	// StatePresent indicates the lockfile was found and parsed.
	StatePresent
	// StateError indicates the lockfile exists but could not be read or parsed.
	StateError
)

// Result holds the outcome of Find. Lockfile is set only for StatePresent,
// Err only for StateError.
type Result struct {
	State    State
	Lockfile *domain.Lockfile
	Err      error
}

// lockfileFile mirrors the on-disk TOML layout of wpm.lock: a
// [modules.<package>.<version>.<module>] table tree and a [commands.<name>]
// table.
type lockfileFile struct {
	Modules  map[string]map[string]map[string]moduleEntry `toml:"modules"`
	Commands map[string]commandEntry                      `toml:"commands"`
}

type moduleEntry struct {
	Name               string `toml:"name"`
	PackageName        string `toml:"package_name"`
	PackageVersion     string `toml:"package_version"`
	Source             string `toml:"source"`
	Resolved           string `toml:"resolved"`
	ABI                string `toml:"abi"`
	PrehashedModuleKey string `toml:"prehashed_module_key"`
}

type commandEntry struct {
	Name           string `toml:"name"`
	PackageName    string `toml:"package_name"`
	PackageVersion string `toml:"package_version"`
	Module         string `toml:"module"`
	MainArgs       string `toml:"main_args"`
	IsTopLevel     bool   `toml:"is_top_level_dependency"`
}

// Find looks for a lockfile in exactly the given directory and parses it.
// A missing file is absence, not an error; unreadable or malformed content is
// an error.
func Find(dir string) Result {
	path := filepath.Join(dir, domain.LockfileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{State: StateAbsent}
		}
		return Result{State: StateError, Err: zerr.Wrap(err, domain.ErrLockfileReadFailed.Error())}
	}

	var file lockfileFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return Result{State: StateError, Err: zerr.Wrap(err, domain.ErrLockfileParseFailed.Error())}
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return Result{State: StateError, Err: zerr.Wrap(err, domain.ErrLockfileReadFailed.Error())}
	}

	l := &domain.Lockfile{
		Dir:      absDir,
		Modules:  make(map[string]map[string]map[string]domain.LockfileModule),
		Commands: make(map[string]domain.LockfileCommand, len(file.Commands)),
	}

	for pkgName, versions := range file.Modules {
		for version, mods := range versions {
			if _, err := semver.NewVersion(version); err != nil {
				return Result{State: StateError, Err: zerr.With(zerr.With(domain.ErrInvalidPackageVersion, "package", pkgName), "version", version)}
			}
			for modName, entry := range mods {
				if l.Modules[pkgName] == nil {
					l.Modules[pkgName] = make(map[string]map[string]domain.LockfileModule)
				}
				if l.Modules[pkgName][version] == nil {
					l.Modules[pkgName][version] = make(map[string]domain.LockfileModule)
				}
				l.Modules[pkgName][version][modName] = domain.LockfileModule{
					Name:               entry.Name,
					PackageName:        pkgName,
					PackageVersion:     version,
					Source:             entry.Source,
					Resolved:           entry.Resolved,
					ABI:                entry.ABI,
					PrehashedModuleKey: entry.PrehashedModuleKey,
				}
			}
		}
	}

	for name, entry := range file.Commands {
		if entry.PackageName == "" || entry.Module == "" {
			return Result{State: StateError, Err: zerr.With(zerr.With(domain.ErrLockfileParseFailed, "path", path), "command", name)}
		}
		if _, err := semver.NewVersion(entry.PackageVersion); err != nil {
			return Result{State: StateError, Err: zerr.With(zerr.With(domain.ErrInvalidPackageVersion, "command", name), "version", entry.PackageVersion)}
		}
		l.Commands[name] = domain.LockfileCommand{
			Name:           name,
			PackageName:    entry.PackageName,
			PackageVersion: entry.PackageVersion,
			Module:         entry.Module,
			MainArgs:       entry.MainArgs,
			IsTopLevel:     entry.IsTopLevel,
		}
	}

	return Result{State: StatePresent, Lockfile: l}
}
