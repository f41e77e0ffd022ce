package domain

import "path/filepath"

const (
	// ManifestFileName is the name of the project manifest file.
	ManifestFileName = "wpm.toml"

	// LockfileName is the name of the resolved lockfile.
	LockfileName = "wpm.lock"

	// ModulesDirName is the directory that installed dependency modules live
	// under, relative to the lockfile directory.
	ModulesDirName = "wpm_modules"

	// ConfigDirName is the name of the per-user wpm directory.
	ConfigDirName = ".wpm"

	// GlobalsDirName is the name of the global installation scope inside the
	// per-user wpm directory.
	GlobalsDirName = "globals"

	// CacheDirName is the name of the compiled artifact cache directory.
	CacheDirName = "cache"

	// ConfigDirEnvVar overrides the per-user wpm directory location.
	ConfigDirEnvVar = "WPM_DIR"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// ModuleInstallDir returns the installation directory of a locked package,
// relative to the lockfile directory. Dependency modules are unpacked into
// wpm_modules/<package>@<version>.
func ModuleInstallDir(pkgName, pkgVersion string) string {
	return filepath.Join(ModulesDirName, pkgName+"@"+pkgVersion)
}
