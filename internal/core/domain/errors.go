package domain

import "errors"

var (
	// ErrCommandNotFound is returned by the lockfile when a command name has no entry.
	// It is recoverable: resolution falls through to the next search scope.
	ErrCommandNotFound = errors.New("command not found in lockfile")

	// ErrModuleNotFound is returned by the lockfile when a command entry references a
	// module that has no entry in the module table. This indicates a corrupted or
	// stale lockfile.
	ErrModuleNotFound = errors.New("module referenced by command not found in lockfile")

	// ErrCommandModuleMissing is returned when a command exists in the lockfile for
	// the local package, but the manifest has no module with the recorded name. The
	// manifest and lockfile disagree about the project's own modules.
	ErrCommandModuleMissing = errors.New("command exists in lockfile, but corresponding module not found in manifest")

	// ErrManifestReadFailed is returned when the manifest file exists but cannot be read.
	ErrManifestReadFailed = errors.New("failed to read manifest file")

	// ErrManifestParseFailed is returned when the manifest file cannot be parsed.
	ErrManifestParseFailed = errors.New("failed to parse manifest file")

	// ErrLockfileReadFailed is returned when the lockfile exists but cannot be read.
	ErrLockfileReadFailed = errors.New("failed to read lockfile")

	// ErrLockfileParseFailed is returned when the lockfile cannot be parsed.
	ErrLockfileParseFailed = errors.New("failed to parse lockfile")

	// ErrInvalidPackageVersion is returned when a recorded package version is not
	// valid semver.
	ErrInvalidPackageVersion = errors.New("package version is not valid semver")

	// ErrCommandNotFoundAnywhere is the terminal not-found error after both the
	// local and global scopes have been searched.
	ErrCommandNotFoundAnywhere = errors.New("command was not found in the local directory or the global install directory")

	// ErrReadingLocalDirectory is returned when resolution in the local scope fails
	// with a hard error. The global scope is not consulted.
	ErrReadingLocalDirectory = errors.New("could not get command because there was a problem with the local package")

	// ErrReadingGlobalDirectory is returned when the command is absent from the
	// local scope and resolution in the global scope fails with a hard error.
	ErrReadingGlobalDirectory = errors.New("command was not found in the local directory and there was an error reading the global directory")

	// ErrOpeningGlobalsDirectory is returned when the global installation directory
	// itself cannot be resolved or created.
	ErrOpeningGlobalsDirectory = errors.New("failed to open the global installation directory")

	// ErrCannotFindHomeDirectory is returned when neither WPM_DIR nor the user's
	// home directory can be resolved.
	ErrCannotFindHomeDirectory = errors.New("could not resolve the user's home directory while falling back to the default location for WPM_DIR")

	// ErrCannotCreateConfigDirectory is returned when the per-user wpm directory
	// cannot be created.
	ErrCannotCreateConfigDirectory = errors.New("failed to create the wpm config directory")

	// ErrConfigReadFailed is returned when the global config file cannot be read.
	ErrConfigReadFailed = errors.New("failed to read config file")

	// ErrConfigParseFailed is returned when the global config file cannot be parsed.
	ErrConfigParseFailed = errors.New("failed to parse config file")

	// ErrConfigWriteFailed is returned when the global config file cannot be saved.
	ErrConfigWriteFailed = errors.New("failed to write config file")

	// ErrConfigKeyNotFound is returned for an unknown config key.
	ErrConfigKeyNotFound = errors.New("config key not found")

	// ErrConfigValueInvalid is returned when a config value cannot be parsed for its key.
	ErrConfigValueInvalid = errors.New("failed to parse value for config key")

	// ErrTokenWriteOnly is returned when reading registry.token. The token can be
	// set but never read back through the config surface.
	ErrTokenWriteOnly = errors.New("registry.token is write-only and cannot be read back")

	// ErrRegistryRequestFailed is returned when the registry cannot be reached or
	// responds with a non-success status.
	ErrRegistryRequestFailed = errors.New("registry request failed")

	// ErrRegistryCommandUnknown is returned when the registry has no package for
	// the requested command name.
	ErrRegistryCommandUnknown = errors.New("registry has no package for command")

	// ErrSourceHashFailed is returned when a local module source cannot be hashed
	// for cache keying.
	ErrSourceHashFailed = errors.New("failed to hash module source")
)
