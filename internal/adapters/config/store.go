package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"go.trai.ch/wpm/internal/core/domain"
	"go.trai.ch/wpm/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.ConfigStore over the TOML config file in the wpm
// root directory.
type Store struct {
	env ports.Environment
}

// NewStore creates a Store that resolves the config file through the given
// environment.
func NewStore(env ports.Environment) *Store {
	return &Store{env: env}
}

func (s *Store) fileLocation() (string, error) {
	root, err := s.env.Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, GlobalConfigFileName), nil
}

// Load reads the config file, falling back to defaults when it does not
// exist yet.
func (s *Store) Load() (*Config, error) {
	path, err := s.fileLocation()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return cfg, nil
}

// Save persists the config file.
func (s *Store) Save(cfg *Config) error {
	path, err := s.fileLocation()
	if err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigWriteFailed.Error())
	}
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrConfigWriteFailed.Error())
	}
	return nil
}

// Get returns the value for a config key.
//
// registry.token is write-only: a set token is never echoed back through the
// config surface.
func (s *Store) Get(key string) (string, error) {
	cfg, err := s.Load()
	if err != nil {
		return "", err
	}

	switch key {
	case "registry.url":
		return cfg.Registry.URL, nil
	case "registry.token":
		return "", domain.ErrTokenWriteOnly
	case "proxy.url":
		if cfg.Proxy.URL == "" {
			return "No proxy configured", nil
		}
		return cfg.Proxy.URL, nil
	case "update-notifications.enabled":
		if cfg.UpdateNotifications.Enabled {
			return "true", nil
		}
		return "false", nil
	default:
		return "", zerr.With(domain.ErrConfigKeyNotFound, "key", key)
	}
}

// Set updates a config key and persists the file.
func (s *Store) Set(key, value string) error {
	cfg, err := s.Load()
	if err != nil {
		return err
	}

	switch key {
	case "registry.url":
		if cfg.Registry.URL != value {
			cfg.Registry.URL = value
			// A token is only valid against the registry it was issued by.
			cfg.Registry.Token = ""
		}
	case "registry.token":
		cfg.Registry.Token = value
	case "proxy.url":
		cfg.Proxy.URL = value
	case "update-notifications.enabled":
		switch value {
		case "true":
			cfg.UpdateNotifications.Enabled = true
		case "false":
			cfg.UpdateNotifications.Enabled = false
		default:
			return zerr.With(zerr.With(domain.ErrConfigValueInvalid, "key", key), "value", value)
		}
	default:
		return zerr.With(domain.ErrConfigKeyNotFound, "key", key)
	}

	return s.Save(cfg)
}

// RegistryEndpoint returns the configured GraphQL endpoint and token for
// registry requests.
func (s *Store) RegistryEndpoint() (url, token string, err error) {
	cfg, err := s.Load()
	if err != nil {
		return "", "", err
	}
	return cfg.Registry.GraphqlURL(), cfg.Registry.Token, nil
}
