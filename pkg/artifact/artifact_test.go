package artifact

import (
	"testing"

	"github.com/Networkcaretaker/sebastians-sub000/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreRoundTrip(t *testing.T) {
	store := NewLocalStore(t.TempDir(), "http://example.test/public/files/")

	url, err := store.Put("menus/dinner.json", []byte(`{"ok":true}`))
	require.NoError(t, err)
	assert.Equal(t, "http://example.test/public/files/menus/dinner.json", url)

	data, err := store.Get("menus/dinner.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(data))

	require.NoError(t, store.Delete("menus/dinner.json"))
	_, err = store.Get("menus/dinner.json")
	assert.True(t, apperr.IsNotFound(err))
}

func TestLocalStoreDeleteIdempotent(t *testing.T) {
	store := NewLocalStore(t.TempDir(), "http://example.test")
	assert.NoError(t, store.Delete("menus/never-existed.json"))
}

func TestLocalStoreOverwrite(t *testing.T) {
	store := NewLocalStore(t.TempDir(), "http://example.test")

	_, err := store.Put("menus/m.json", []byte(`{"version":1}`))
	require.NoError(t, err)
	_, err = store.Put("menus/m.json", []byte(`{"version":2}`))
	require.NoError(t, err)

	data, err := store.Get("menus/m.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":2}`, string(data))
}
