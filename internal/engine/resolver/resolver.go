// Package resolver implements command resolution for a single directory: it
// reconciles the manifest (what the project declares) with the lockfile (what
// was actually installed) and maps a command name to an execution descriptor.
package resolver

import (
	"errors"
	"fmt"

	"go.trai.ch/wpm/internal/adapters/lockfile"
	"go.trai.ch/wpm/internal/adapters/manifest"
	"go.trai.ch/wpm/internal/core/domain"
	"go.trai.ch/wpm/internal/core/ports"
	"go.trai.ch/zerr"
)

// Outcome is the three-way result of resolving a command in one directory.
// NotFound and Found are both non-error outcomes; only Error carries a cause.
// Fallback logic must distinguish "nothing here" from "something here but
// broken" with zero ambiguity, so this is never collapsed into an
// error-or-nil pair.
type Outcome uint8

const (
	// OutcomeNotFound indicates the command is not installed in this
	// directory. The caller may try the next search scope.
	OutcomeNotFound Outcome = iota
	// OutcomeFound indicates resolution succeeded for this scope.
	OutcomeFound
	// OutcomeError indicates resolution failed for this scope. The caller
	// must not fall back to another scope on its own.
	OutcomeError
)

// FindResult holds the outcome of Find. Command is populated only for
// OutcomeFound (with IsGlobal left unset — the caller owns scope), Err only
// for OutcomeError.
type FindResult struct {
	Outcome Outcome
	Command domain.Command
	Err     error
}

func notFound() FindResult {
	return FindResult{Outcome: OutcomeNotFound}
}

func found(cmd domain.Command) FindResult {
	return FindResult{Outcome: OutcomeFound, Command: cmd}
}

func failed(err error) FindResult {
	return FindResult{Outcome: OutcomeError, Err: err}
}

// Resolver resolves command names against one directory at a time. It holds
// no state between calls; every Find performs its own filesystem reads.
type Resolver struct {
	logger ports.Logger
}

// New creates a Resolver that reports debug information to the given logger.
func New(logger ports.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// presence is the manifest/lockfile presence pair for one directory. Keeping
// it an explicit value makes the four-branch decision exhaustive.
type presence struct {
	manifest bool
	lockfile bool
}

// Find resolves a command name within a single directory.
//
// A manifest without a lockfile is an internal-consistency fault: lockfile
// generation always runs before resolution, so reaching that state means the
// surrounding installation pipeline is broken. Find panics rather than
// returning an error the caller might silently fall back on.
func (r *Resolver) Find(dir, commandName string) FindResult {
	mres := manifest.Find(dir)
	if mres.State == manifest.StateError {
		return failed(mres.Err)
	}
	lres := lockfile.Find(dir)
	if lres.State == lockfile.StateError {
		return failed(lres.Err)
	}

	switch (presence{mres.State == manifest.StatePresent, lres.State == lockfile.StatePresent}) {
	case presence{manifest: false, lockfile: false}:
		return notFound()
	case presence{manifest: false, lockfile: true}:
		r.logger.Debug("looking for command in the lockfile")
		return r.findInLockfile(commandName, lres.Lockfile)
	case presence{manifest: true, lockfile: false}:
		panic(fmt.Sprintf("manifest exists, but lockfile not found in %s", dir))
	default:
		r.logger.Debug("looking for command in the manifest and lockfile")
		return r.findInManifestAndLockfile(commandName, mres.Manifest, lres.Lockfile)
	}
}

// findInLockfile resolves purely against the lockfile. There is no local
// package to distinguish from here, so a broken module reference means the
// command is unusable in this directory and resolution defers to the next
// scope instead of failing hard.
func (r *Resolver) findInLockfile(commandName string, l *domain.Lockfile) FindResult {
	cmd, err := l.Command(commandName)
	if err != nil {
		return notFound()
	}

	mod, err := l.Module(cmd.PackageName, cmd.PackageVersion, cmd.Module)
	if err != nil {
		return notFound()
	}

	return found(domain.Command{
		Source:            mod.CanonicalSourcePath(l.Dir),
		ManifestDir:       mod.CanonicalManifestDir(l.Dir),
		Args:              cmd.MainArgs,
		ModuleName:        mod.Name,
		PrehashedCacheKey: l.PrehashedCacheKey(cmd),
	})
}

func (r *Resolver) findInManifestAndLockfile(commandName string, m *domain.Manifest, l *domain.Lockfile) FindResult {
	cmd, err := l.Command(commandName)
	if err != nil {
		if errors.Is(err, domain.ErrCommandNotFound) {
			return notFound()
		}
		return failed(err)
	}
	r.logger.Debug(fmt.Sprintf("command %q found in lockfile", cmd.Name))

	if cmd.PackageName == m.Name {
		// The lockfile entry belongs to the project's own package. Its source
		// is read from the manifest, not the lockfile module table: local
		// sources may have changed since the last lock.
		mod := m.ModuleByName(cmd.Module)
		if mod == nil {
			return failed(zerr.Wrap(domain.ErrCommandModuleMissing,
				fmt.Sprintf("command %q exists in lockfile, but corresponding module %q was not found in the manifest", commandName, cmd.Module)))
		}
		return found(domain.Command{
			Source:      domain.CanonicalPath(m.BaseDir, mod.Source),
			ManifestDir: m.BaseDir,
			Args:        cmd.MainArgs,
			ModuleName:  mod.Name,
			// Never trust a prehashed key for local modules.
			PrehashedCacheKey: "",
		})
	}

	r.logger.Debug(fmt.Sprintf("command package %q differs from manifest package %q", cmd.PackageName, m.Name))
	mod, err := l.Module(cmd.PackageName, cmd.PackageVersion, cmd.Module)
	if err != nil {
		return failed(err)
	}

	return found(domain.Command{
		Source:            mod.CanonicalSourcePath(l.Dir),
		ManifestDir:       mod.CanonicalManifestDir(l.Dir),
		Args:              cmd.MainArgs,
		ModuleName:        mod.Name,
		PrehashedCacheKey: l.PrehashedCacheKey(cmd),
	})
}
