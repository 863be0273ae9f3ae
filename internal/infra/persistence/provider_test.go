package persistence

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpen_FileDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = config.StorageDriverFile
	cfg.Storage.File.Dir = t.TempDir()
	ctx := context.Background()

	b, err := Open(ctx, cfg, quietLogger())
	require.NoError(t, err)
	assert.Nil(t, b.Firestore)

	catalog := b.Catalog(nil)
	outcome, err := catalog.Add(ctx, &entity.Product{Title: "Runner", Price: 3000})
	require.NoError(t, err)
	assert.Equal(t, repository.BackendLocal, outcome.Backend)
	require.NoError(t, b.Close())

	reopened, err := Open(ctx, cfg, quietLogger())
	require.NoError(t, err)
	defer reopened.Close()

	products, _, err := reopened.Catalog(nil).List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Runner", products[0].Title)
}

func TestOpen_UnknownDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = "cassandra"

	_, err := Open(context.Background(), cfg, quietLogger())
	assert.ErrorContains(t, err, "unknown storage driver")
}

func TestOpen_RemoteFailureKeepsLocal(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = config.StorageDriverMemory
	cfg.Firebase = &config.FirebaseConfig{Enabled: true, CredentialsPath: "/nonexistent/credentials.json"}

	b, err := Open(context.Background(), cfg, quietLogger())
	require.NoError(t, err)
	defer b.Close()

	assert.Nil(t, b.Firestore)
	assert.False(t, b.Catalog(nil).RemoteEnabled())
}
