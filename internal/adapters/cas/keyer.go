// Package cas implements content-addressed cache keys for compiled modules.
package cas

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/wpm/internal/core/domain"
	"go.trai.ch/zerr"
)

// Keyer derives cache keys for resolved commands.
type Keyer struct{}

// NewKeyer creates a new Keyer.
func NewKeyer() *Keyer {
	return &Keyer{}
}

// KeyFor returns the cache key for a resolved command. Commands installed
// from a registry carry a precomputed key; commands from a local package are
// keyed by hashing the module source on demand, so edits to the source
// invalidate the cache.
func (k *Keyer) KeyFor(cmd domain.Command) (string, error) {
	if cmd.PrehashedCacheKey != "" {
		return cmd.PrehashedCacheKey, nil
	}

	//nolint:gosec // Path comes from the caller's own manifest
	data, err := os.ReadFile(cmd.Source)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrSourceHashFailed.Error())
	}

	return fmt.Sprintf("%016x", xxhash.Sum64(data)), nil
}

// ArtifactPath returns the location under root where the compiled artifact
// for the given key is stored.
func (k *Keyer) ArtifactPath(root, key string) string {
	return filepath.Join(root, domain.CacheDirName, key)
}
