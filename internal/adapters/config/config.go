// Package config implements the global wpm configuration and the process
// environment adapter.
package config

import "strings"

// GlobalConfigFileName is the name of the per-user config file inside the wpm
// directory.
const GlobalConfigFileName = "wpm.toml"

// DefaultRegistryURL is the registry wpm connects to when none is configured.
const DefaultRegistryURL = "https://registry.wpm.dev"

// Config is the persisted global configuration.
type Config struct {
	// Registry is the registry wpm connects to.
	Registry Registry `toml:"registry"`

	// Proxy is the proxy to use when connecting to the internet.
	Proxy Proxy `toml:"proxy"`

	// UpdateNotifications controls whether new-version notifications are shown.
	UpdateNotifications UpdateNotifications `toml:"update-notifications"`
}

// Registry holds the registry endpoint and credentials.
type Registry struct {
	URL   string `toml:"url"`
	Token string `toml:"token,omitempty"`
}

// Proxy holds the optional proxy URL.
type Proxy struct {
	URL string `toml:"url,omitempty"`
}

// UpdateNotifications controls update notification behavior.
type UpdateNotifications struct {
	Enabled bool `toml:"enabled"`
}

// Default returns the configuration used when no config file exists yet.
func Default() *Config {
	return &Config{
		Registry:            Registry{URL: DefaultRegistryURL},
		UpdateNotifications: UpdateNotifications{Enabled: true},
	}
}

// GraphqlURL returns the registry's GraphQL endpoint.
func (r Registry) GraphqlURL() string {
	return strings.TrimSuffix(r.URL, "/") + "/graphql"
}
