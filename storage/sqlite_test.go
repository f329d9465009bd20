package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonbook/storage"
)

func TestSQLite_SetGetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	kv, err := storage.OpenSQLite(path)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "salon:uid:profile", `{"id":"uid"}`))
	value, err := kv.Get(ctx, "salon:uid:profile")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"uid"}`, value)
}

func TestSQLite_OverwriteReplacesValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	kv, err := storage.OpenSQLite(path)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "key", "one"))
	require.NoError(t, kv.Set(ctx, "key", "two"))

	value, err := kv.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "two", value)
}

func TestSQLite_MissingKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	kv, err := storage.OpenSQLite(path)
	require.NoError(t, err)

	_, err = kv.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSQLite_Delete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	kv, err := storage.OpenSQLite(path)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "key", "value"))
	require.NoError(t, kv.Delete(ctx, "key"))
	_, err = kv.Get(ctx, "key")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// deleting again is fine
	require.NoError(t, kv.Delete(ctx, "key"))
}

func TestSQLite_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	kv, err := storage.OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "key", "value"))

	reopened, err := storage.OpenSQLite(path)
	require.NoError(t, err)
	value, err := reopened.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "value", value)
}
