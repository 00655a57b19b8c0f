package assets

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSProvider(t *testing.T) {
	fsys := fstest.MapFS{
		"monsters.toml":     {Data: []byte("[[monsters]]")},
		"IAP/products.yaml": {Data: []byte("configs: []")},
	}
	p := New(fsys)

	data, err := p.Read("monsters.toml")
	require.NoError(t, err)
	assert.Equal(t, "[[monsters]]", string(data))

	data, err = p.Read("/IAP/products.yaml")
	require.NoError(t, err)
	assert.Equal(t, "configs: []", string(data))
	assert.Equal(t, 2, p.Cached())

	delete(fsys, "monsters.toml")
	_, err = p.Read("monsters.toml")
	assert.NoError(t, err, "served from cache")

	_, err = p.Read("levels.toml")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.True(t, p.Exists("IAP/products.yaml"))
	assert.False(t, p.Exists("levels.toml"))
	assert.False(t, p.Exists("../etc/passwd"))
}
