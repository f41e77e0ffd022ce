package ports

// ConfigStore reads and writes the keyed global configuration.
//
//go:generate mockgen -source=config_store.go -destination=mocks/mock_config_store.go -package=mocks
type ConfigStore interface {
	// Get returns the value for a config key.
	Get(key string) (string, error)

	// Set updates a config key and persists the config file.
	Set(key, value string) error
}
