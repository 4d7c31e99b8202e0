package state_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"awsctx/internal/state"
)

func openTestStore(t *testing.T) (*state.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.db")
	store, err := state.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func TestSetAndGet(t *testing.T) {
	store, _ := openTestStore(t)

	require.NoError(t, store.Set(context.Background(), "accountId", "123456789012"))

	v, ok := store.Get("accountId")
	require.True(t, ok)
	assert.Equal(t, "123456789012", v)
}

func TestGetMissingKey(t *testing.T) {
	store, _ := openTestStore(t)

	_, ok := store.Get("accountId")
	assert.False(t, ok)
}

func TestSetOverwrites(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "accountId", "111111111111"))
	require.NoError(t, store.Set(ctx, "accountId", "222222222222"))

	v, ok := store.Get("accountId")
	require.True(t, ok)
	assert.Equal(t, "222222222222", v)
}

func TestDelete(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "accountId", "123456789012"))

	require.NoError(t, store.Delete(ctx, "accountId"))

	_, ok := store.Get("accountId")
	assert.False(t, ok)

	// 存在しないキーの削除も成功する
	assert.NoError(t, store.Delete(ctx, "accountId"))
}

func TestValueSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	store, err := state.Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), "accountId", "123456789012"))
	require.NoError(t, store.Close())

	// 再起動相当: 同じパスを開き直しても値が残っている
	reopened, err := state.Open(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	v, ok := reopened.Get("accountId")
	require.True(t, ok)
	assert.Equal(t, "123456789012", v)
}
