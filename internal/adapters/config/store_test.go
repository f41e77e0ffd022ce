package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wpm/internal/adapters/config"
	"go.trai.ch/wpm/internal/core/domain"
)

func newStore(t *testing.T) (*config.Store, string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(domain.ConfigDirEnvVar, dir)
	return config.NewStore(config.NewEnvironment()), dir
}

func TestStore_Load_Defaults(t *testing.T) {
	store, _ := newStore(t)

	cfg, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultRegistryURL, cfg.Registry.URL)
	assert.Empty(t, cfg.Registry.Token)
	assert.True(t, cfg.UpdateNotifications.Enabled)
}

func TestStore_SaveAndLoad_RoundTrip(t *testing.T) {
	store, dir := newStore(t)

	cfg := config.Default()
	cfg.Registry.URL = "https://registry.example.com"
	cfg.Registry.Token = "secret"
	cfg.Proxy.URL = "http://proxy.example.com:8080"
	require.NoError(t, store.Save(cfg))

	_, err := os.Stat(filepath.Join(dir, config.GlobalConfigFileName))
	require.NoError(t, err)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestStore_Get(t *testing.T) {
	store, _ := newStore(t)
	require.NoError(t, store.Set("registry.token", "secret"))

	tests := []struct {
		name     string
		key      string
		expected string
		wantErr  error
	}{
		{name: "registry url", key: "registry.url", expected: config.DefaultRegistryURL},
		{name: "token is write-only", key: "registry.token", wantErr: domain.ErrTokenWriteOnly},
		{name: "unset proxy", key: "proxy.url", expected: "No proxy configured"},
		{name: "update notifications", key: "update-notifications.enabled", expected: "true"},
		{name: "unknown key", key: "nope.nope", wantErr: domain.ErrConfigKeyNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.Get(tt.key)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestStore_Set_ChangingRegistryURLResetsToken(t *testing.T) {
	store, _ := newStore(t)

	require.NoError(t, store.Set("registry.token", "secret"))
	require.NoError(t, store.Set("registry.url", "https://other.example.com"))

	cfg, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "https://other.example.com", cfg.Registry.URL)
	assert.Empty(t, cfg.Registry.Token, "token must be reset when the registry changes")

	// Setting the same URL again must not clear a fresh token.
	require.NoError(t, store.Set("registry.token", "secret2"))
	require.NoError(t, store.Set("registry.url", "https://other.example.com"))
	cfg, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "secret2", cfg.Registry.Token)
}

func TestStore_Set_InvalidValue(t *testing.T) {
	store, _ := newStore(t)

	err := store.Set("update-notifications.enabled", "maybe")
	require.ErrorIs(t, err, domain.ErrConfigValueInvalid)

	err = store.Set("unknown.key", "v")
	require.ErrorIs(t, err, domain.ErrConfigKeyNotFound)
}

func TestRegistry_GraphqlURL(t *testing.T) {
	assert.Equal(t, "https://r.example.com/graphql", config.Registry{URL: "https://r.example.com"}.GraphqlURL())
	assert.Equal(t, "https://r.example.com/graphql", config.Registry{URL: "https://r.example.com/"}.GraphqlURL())
}

func TestEnvironment_Dirs(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(domain.ConfigDirEnvVar, dir)

	env := config.NewEnvironment()

	root, err := env.Root()
	require.NoError(t, err)
	assert.Equal(t, dir, root)

	globals, err := env.GlobalsDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, domain.GlobalsDirName), globals)

	cwd, err := env.CurrentDir()
	require.NoError(t, err)
	assert.NotEmpty(t, cwd)
}
