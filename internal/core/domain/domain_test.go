package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wpm/internal/core/domain"
)

func sampleLockfile(dir string) *domain.Lockfile {
	return &domain.Lockfile{
		Dir: dir,
		Modules: map[string]map[string]map[string]domain.LockfileModule{
			"_/sqlite": {
				"0.1.1": {
					"sqlite": {
						Name:               "sqlite",
						PackageName:        "_/sqlite",
						PackageVersion:     "0.1.1",
						Source:             filepath.Join("wpm_modules", "_/sqlite@0.1.1", "sqlite.wasm"),
						PrehashedModuleKey: "ab12cd34",
					},
				},
			},
		},
		Commands: map[string]domain.LockfileCommand{
			"sqlite": {
				Name:           "sqlite",
				PackageName:    "_/sqlite",
				PackageVersion: "0.1.1",
				Module:         "sqlite",
				IsTopLevel:     true,
			},
			"broken": {
				Name:           "broken",
				PackageName:    "_/sqlite",
				PackageVersion: "0.1.1",
				Module:         "missing",
			},
		},
	}
}

func TestLockfile_Command(t *testing.T) {
	l := sampleLockfile("/tmp/project")

	cmd, err := l.Command("sqlite")
	require.NoError(t, err)
	assert.Equal(t, "_/sqlite", cmd.PackageName)
	assert.Equal(t, "sqlite", cmd.Module)

	_, err = l.Command("nope")
	require.ErrorIs(t, err, domain.ErrCommandNotFound)
}

func TestLockfile_Module(t *testing.T) {
	l := sampleLockfile("/tmp/project")

	tests := []struct {
		name    string
		pkg     string
		version string
		module  string
		wantErr bool
	}{
		{name: "existing module", pkg: "_/sqlite", version: "0.1.1", module: "sqlite"},
		{name: "unknown package", pkg: "_/missing", version: "0.1.1", module: "sqlite", wantErr: true},
		{name: "unknown version", pkg: "_/sqlite", version: "9.9.9", module: "sqlite", wantErr: true},
		{name: "unknown module", pkg: "_/sqlite", version: "0.1.1", module: "missing", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mod, err := l.Module(tt.pkg, tt.version, tt.module)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrModuleNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.module, mod.Name)
		})
	}
}

func TestLockfile_PrehashedCacheKey(t *testing.T) {
	l := sampleLockfile("/tmp/project")

	cmd, err := l.Command("sqlite")
	require.NoError(t, err)
	assert.Equal(t, "ab12cd34", l.PrehashedCacheKey(cmd))

	// A command with a dangling module reference yields no key rather than an error.
	broken, err := l.Command("broken")
	require.NoError(t, err)
	assert.Empty(t, l.PrehashedCacheKey(broken))
}

func TestLockfileModule_CanonicalPaths(t *testing.T) {
	l := sampleLockfile(filepath.Join("/", "home", "user", "project"))
	mod, err := l.Module("_/sqlite", "0.1.1", "sqlite")
	require.NoError(t, err)

	assert.Equal(t,
		filepath.Join("/", "home", "user", "project", "wpm_modules", "_/sqlite@0.1.1", "sqlite.wasm"),
		mod.CanonicalSourcePath(l.Dir),
	)
	assert.Equal(t,
		filepath.Join("/", "home", "user", "project", "wpm_modules", "_/sqlite@0.1.1"),
		mod.CanonicalManifestDir(l.Dir),
	)
}

func TestManifest_ModuleByName(t *testing.T) {
	m := &domain.Manifest{
		Name:    "myapp",
		Version: "0.2.0",
		BaseDir: "/home/user/myapp",
		Modules: []domain.Module{
			{Name: "run", Source: "./run.wasm"},
			{Name: "tool", Source: "./tool.wasm"},
		},
	}

	mod := m.ModuleByName("tool")
	require.NotNil(t, mod)
	assert.Equal(t, "./tool.wasm", mod.Source)

	assert.Nil(t, m.ModuleByName("missing"))
}
