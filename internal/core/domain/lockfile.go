package domain

import (
	"go.trai.ch/zerr"
)

// Lockfile is the in-memory form of a wpm.lock: the resolved record of exactly
// which packages, modules and commands are installed in one directory. It is
// produced by the dependency resolver, never by resolution, and is immutable
// once loaded.
type Lockfile struct {
	// Modules indexes installed modules by package name, package version and
	// module name, in that order.
	Modules map[string]map[string]map[string]LockfileModule

	// Commands indexes installed commands by command name.
	Commands map[string]LockfileCommand

	// Dir is the absolute path of the directory the lockfile was loaded from.
	// Recorded paths are relative to it.
	Dir string
}

// LockfileModule is one installed module as recorded by the lockfile.
type LockfileModule struct {
	Name           string
	PackageName    string
	PackageVersion string

	// Source is the module source path, recorded relative to the lockfile's
	// own directory so the installation can be relocated.
	Source string

	// Resolved is the registry URL the module artifact was downloaded from.
	Resolved string

	// ABI names the runtime ABI the module was built against.
	ABI string

	// PrehashedModuleKey is the content-addressed key computed for the module
	// artifact when it was installed. Empty for modules that were never keyed.
	PrehashedModuleKey string
}

// LockfileCommand is one installed command as recorded by the lockfile.
type LockfileCommand struct {
	Name           string
	PackageName    string
	PackageVersion string
	Module         string

	// MainArgs are extra arguments baked into the command invocation. Empty
	// means none were recorded.
	MainArgs string

	// IsTopLevel reports whether the command's package is a direct dependency.
	IsTopLevel bool
}

// CanonicalSourcePath returns the absolute source path of the module,
// re-anchored at the directory the lockfile was loaded from.
func (m *LockfileModule) CanonicalSourcePath(lockfileDir string) string {
	return CanonicalPath(lockfileDir, m.Source)
}

// CanonicalManifestDir returns the absolute working-directory context for the
// module: the package's installation directory under wpm_modules.
func (m *LockfileModule) CanonicalManifestDir(lockfileDir string) string {
	return CanonicalPath(lockfileDir, ModuleInstallDir(m.PackageName, m.PackageVersion))
}

// Command looks up a command entry by name. Absence is ErrCommandNotFound,
// which resolution treats as recoverable.
func (l *Lockfile) Command(name string) (*LockfileCommand, error) {
	cmd, ok := l.Commands[name]
	if !ok {
		return nil, zerr.With(ErrCommandNotFound, "command", name)
	}
	return &cmd, nil
}

// Module looks up a module entry by its (package name, package version, module
// name) key. Absence is ErrModuleNotFound: every command entry must reference
// an existing module, so a miss means the lockfile is corrupted or stale.
func (l *Lockfile) Module(pkgName, pkgVersion, modName string) (*LockfileModule, error) {
	versions, ok := l.Modules[pkgName]
	if !ok {
		return nil, zerr.With(zerr.With(zerr.With(ErrModuleNotFound, "package", pkgName), "version", pkgVersion), "module", modName)
	}
	mods, ok := versions[pkgVersion]
	if !ok {
		return nil, zerr.With(zerr.With(zerr.With(ErrModuleNotFound, "package", pkgName), "version", pkgVersion), "module", modName)
	}
	mod, ok := mods[modName]
	if !ok {
		return nil, zerr.With(zerr.With(zerr.With(ErrModuleNotFound, "package", pkgName), "version", pkgVersion), "module", modName)
	}
	return &mod, nil
}

// PrehashedCacheKey returns the content-addressed key recorded for the module
// a command points at, or the empty string when none was recorded.
func (l *Lockfile) PrehashedCacheKey(cmd *LockfileCommand) string {
	mod, err := l.Module(cmd.PackageName, cmd.PackageVersion, cmd.Module)
	if err != nil {
		return ""
	}
	return mod.PrehashedModuleKey
}
