package firestore

import (
	"context"
	"os"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEmulatorClient(t *testing.T) *firestore.Client {
	t.Helper()
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	client, err := firestore.NewClient(context.Background(), "storefront-test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestCatalogStore_Emulator(t *testing.T) {
	client := newEmulatorClient(t)
	ctx := context.Background()
	store := NewCatalogStore(client)

	require.NoError(t, store.Save(ctx, nil))

	created := time.Now().UTC().Truncate(time.Millisecond)
	id, err := store.Add(ctx, &entity.Product{Title: "Runner", Price: 3000, Images: []string{"a.png"}, CreatedAt: &created})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Runner", got.Title)
	assert.Equal(t, id, got.ID)

	got.Price = 3500
	require.NoError(t, store.Update(ctx, id, got))

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(3500), list[0].Price)

	require.NoError(t, store.Remove(ctx, id))
	_, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)

	require.NoError(t, store.Save(ctx, []entity.Product{{Title: "x"}, {Title: "y"}}))
	list, err = store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestOrderLog_Emulator(t *testing.T) {
	client := newEmulatorClient(t)
	ctx := context.Background()
	log := NewOrderLog(client)

	now := time.Now().UTC()
	_, err := log.Append(ctx, &entity.Order{ID: entity.NewOrderID(now), Name: "Rana", Total: 1800, CreatedAt: now})
	require.NoError(t, err)

	orders, err := log.List(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, orders)
}
