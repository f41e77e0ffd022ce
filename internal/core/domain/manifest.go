package domain

// Manifest is the in-memory form of a project's wpm.toml: the package the
// project declares itself to be, plus the modules it ships. It is immutable
// once loaded; resolution never writes it back.
type Manifest struct {
	// Name is the declared package name.
	Name string

	// Version is the declared package version (valid semver).
	Version string

	// Description is the optional human-readable package description.
	Description string

	// BaseDir is the absolute path of the directory containing the manifest.
	// It is the working-directory context for the package's own commands.
	BaseDir string

	// Modules are the package's own modules, in declaration order. May be empty.
	Modules []Module
}

// Module is a single module declared by a manifest.
type Module struct {
	// Name identifies the module within its package.
	Name string

	// Source is the module source path, relative to the manifest's BaseDir.
	Source string
}

// ModuleByName returns the declared module with the given name, or nil.
func (m *Manifest) ModuleByName(name string) *Module {
	for i := range m.Modules {
		if m.Modules[i].Name == name {
			return &m.Modules[i]
		}
	}
	return nil
}
