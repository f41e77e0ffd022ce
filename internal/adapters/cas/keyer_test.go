package cas_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wpm/internal/adapters/cas"
	"go.trai.ch/wpm/internal/core/domain"
)

func TestKeyer_KeyFor_Prehashed(t *testing.T) {
	keyer := cas.NewKeyer()

	key, err := keyer.KeyFor(domain.Command{
		Source:            "/does/not/exist.wasm",
		PrehashedCacheKey: "abc123",
	})
	require.NoError(t, err)
	assert.Equal(t, "abc123", key, "prehashed key wins without touching the source")
}

func TestKeyer_KeyFor_HashesSource(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "mod.wasm")
	require.NoError(t, os.WriteFile(source, []byte("wasm bytes"), domain.FilePerm))

	keyer := cas.NewKeyer()

	key1, err := keyer.KeyFor(domain.Command{Source: source})
	require.NoError(t, err)
	assert.Len(t, key1, 16)

	// Same content, same key.
	key2, err := keyer.KeyFor(domain.Command{Source: source})
	require.NoError(t, err)
	assert.Equal(t, key1, key2)

	// Different content, different key.
	require.NoError(t, os.WriteFile(source, []byte("changed bytes"), domain.FilePerm))
	key3, err := keyer.KeyFor(domain.Command{Source: source})
	require.NoError(t, err)
	assert.NotEqual(t, key1, key3)
}

func TestKeyer_KeyFor_MissingSource(t *testing.T) {
	keyer := cas.NewKeyer()

	_, err := keyer.KeyFor(domain.Command{Source: filepath.Join(t.TempDir(), "gone.wasm")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrSourceHashFailed.Error())
}

func TestKeyer_ArtifactPath(t *testing.T) {
	keyer := cas.NewKeyer()

	got := keyer.ArtifactPath("/home/me/.wpm", "deadbeef00000000")
	assert.Equal(t, filepath.Join("/home/me/.wpm", domain.CacheDirName, "deadbeef00000000"), got)
}
