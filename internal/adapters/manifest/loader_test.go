package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wpm/internal/adapters/manifest"
	"go.trai.ch/wpm/internal/core/domain"
)

func createFile(t *testing.T, dir, name, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, name), []byte(content), domain.FilePerm)
	require.NoError(t, err)
}

func TestFind_Absent(t *testing.T) {
	res := manifest.Find(t.TempDir())
	assert.Equal(t, manifest.StateAbsent, res.State)
	assert.Nil(t, res.Manifest)
	assert.NoError(t, res.Err)
}

func TestFind_Present(t *testing.T) {
	dir := t.TempDir()
	createFile(t, dir, domain.ManifestFileName, `
[package]
name = "myapp"
version = "0.2.0"
description = "an example package"

[[module]]
name = "run"
source = "./run.wasm"

[[module]]
name = "tool"
source = "bin/tool.wasm"
`)

	res := manifest.Find(dir)
	require.Equal(t, manifest.StatePresent, res.State)
	require.NotNil(t, res.Manifest)

	m := res.Manifest
	assert.Equal(t, "myapp", m.Name)
	assert.Equal(t, "0.2.0", m.Version)
	assert.Equal(t, "an example package", m.Description)
	assert.Equal(t, dir, m.BaseDir)
	require.Len(t, m.Modules, 2)
	assert.Equal(t, "run", m.Modules[0].Name)
	assert.Equal(t, "./run.wasm", m.Modules[0].Source)
	assert.Equal(t, "tool", m.Modules[1].Name)
}

func TestFind_ParseError(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantErr     error
		errContains string
	}{
		{
			name:        "malformed toml",
			content:     "[package\nname = ",
			errContains: "failed to parse manifest",
		},
		{
			name:    "missing package name",
			content: "[package]\nversion = \"1.0.0\"\n",
			wantErr: domain.ErrManifestParseFailed,
		},
		{
			name:    "invalid version",
			content: "[package]\nname = \"myapp\"\nversion = \"not-a-version\"\n",
			wantErr: domain.ErrInvalidPackageVersion,
		},
		{
			name:    "module without source",
			content: "[package]\nname = \"myapp\"\nversion = \"1.0.0\"\n\n[[module]]\nname = \"run\"\n",
			wantErr: domain.ErrManifestParseFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			createFile(t, dir, domain.ManifestFileName, tt.content)

			res := manifest.Find(dir)
			assert.Equal(t, manifest.StateError, res.State)
			require.Error(t, res.Err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, res.Err, tt.wantErr)
			}
			if tt.errContains != "" {
				assert.Contains(t, res.Err.Error(), tt.errContains)
			}
		})
	}
}
