package domain

// Command is the execution descriptor resolution hands back to the caller:
// everything the invoker needs to run a command, and nothing it has to re-read.
type Command struct {
	// Source is the absolute path of the module source to execute.
	Source string

	// ManifestDir is the absolute working-directory context for execution.
	ManifestDir string

	// Args are extra arguments recorded for the command. Empty means none.
	Args string

	// ModuleName is the name of the module the command maps to.
	ModuleName string

	// IsGlobal reports whether the command was found in the global scope
	// rather than the local project directory.
	IsGlobal bool

	// PrehashedCacheKey is the content-addressed key of the module artifact,
	// set only for locked dependency modules. Local modules are mutable
	// between lock operations, so their sources are always re-hashed and this
	// field stays empty.
	PrehashedCacheKey string
}

// PackageInfo is the registry's answer to a lookup of a command name: the
// package that provides it and the latest published version.
type PackageInfo struct {
	Command     string
	Version     string
	PackageName string
}
