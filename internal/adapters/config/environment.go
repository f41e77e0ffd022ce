package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/wpm/internal/core/domain"
	"go.trai.ch/zerr"
)

// Environment implements ports.Environment against the real process
// environment and filesystem.
type Environment struct{}

// NewEnvironment creates a new Environment.
func NewEnvironment() *Environment {
	return &Environment{}
}

// CurrentDir returns the process's current working directory.
func (e *Environment) CurrentDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", zerr.Wrap(err, "failed to get current directory")
	}
	return dir, nil
}

// Root returns the per-user wpm directory. $WPM_DIR wins when set; otherwise
// the directory is ~/.wpm, created on first use.
func (e *Environment) Root() (string, error) {
	if dir := os.Getenv(domain.ConfigDirEnvVar); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrCannotFindHomeDirectory.Error())
	}

	root := filepath.Join(home, domain.ConfigDirName)
	if err := os.MkdirAll(root, domain.DirPerm); err != nil {
		return "", zerr.Wrap(err, domain.ErrCannotCreateConfigDirectory.Error())
	}
	return root, nil
}

// GlobalsDir returns the global installation scope under the root.
func (e *Environment) GlobalsDir() (string, error) {
	root, err := e.Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, domain.GlobalsDirName), nil
}
