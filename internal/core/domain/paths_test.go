package domain_test

import (
	"path/filepath"
	"testing"

	"go.trai.ch/wpm/internal/core/domain"
)

func TestCanonicalPath(t *testing.T) {
	tests := []struct {
		name     string
		dir      string
		recorded string
		expected string
	}{
		{
			name:     "relative path joined to dir",
			dir:      filepath.Join("/", "projects", "app"),
			recorded: "bar.wasm",
			expected: filepath.Join("/", "projects", "app", "bar.wasm"),
		},
		{
			name:     "dot-relative path cleaned",
			dir:      filepath.Join("/", "projects", "app"),
			recorded: "./bar.wasm",
			expected: filepath.Join("/", "projects", "app", "bar.wasm"),
		},
		{
			name:     "nested module path",
			dir:      filepath.Join("/", "home", "user", ".wpm", "globals"),
			recorded: filepath.Join("wpm_modules", "_/sqlite@0.1.1", "sqlite.wasm"),
			expected: filepath.Join("/", "home", "user", ".wpm", "globals", "wpm_modules", "_/sqlite@0.1.1", "sqlite.wasm"),
		},
		{
			name:     "absolute path only cleaned",
			dir:      filepath.Join("/", "projects", "app"),
			recorded: filepath.Join("/", "opt", "mods", "..", "mods", "a.wasm"),
			expected: filepath.Join("/", "opt", "mods", "a.wasm"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.CanonicalPath(tt.dir, tt.recorded)
			if got != tt.expected {
				t.Errorf("CanonicalPath(%q, %q) = %v, want %v", tt.dir, tt.recorded, got, tt.expected)
			}
		})
	}
}

func TestModuleInstallDir(t *testing.T) {
	got := domain.ModuleInstallDir("_/sqlite", "0.1.1")
	expected := filepath.Join("wpm_modules", "_/sqlite@0.1.1")
	if got != expected {
		t.Errorf("ModuleInstallDir() = %v, want %v", got, expected)
	}
}
