package postgres

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"

	"storefront/config"
	"storefront/internal/infra/persistence/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVStore_Integration(t *testing.T) {
	if os.Getenv("STOREFRONT_TEST_POSTGRES") == "" {
		t.Skip("STOREFRONT_TEST_POSTGRES not set")
	}

	cfg, err := config.LoadWithEnv[config.Config]("config", "../../../../config")
	require.NoError(t, err)
	require.NotNil(t, cfg.Postgres)

	db, err := Open(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	ctx := context.Background()
	store, err := NewKVStore(ctx, db)
	require.NoError(t, err)

	require.NoError(t, store.Put(ctx, "it/products", []byte(`[1]`)))
	require.NoError(t, store.Put(ctx, "it/products", []byte(`[2]`)))

	raw, err := store.Get(ctx, "it/products")
	require.NoError(t, err)
	assert.Equal(t, `[2]`, string(raw))

	require.NoError(t, store.Delete(ctx, "it/products"))
	_, err = store.Get(ctx, "it/products")
	assert.ErrorIs(t, err, kv.ErrKeyNotFound)
}
