package impl

import (
	"bytes"
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errFirestoreDown = errors.New("rpc error: code = Unavailable desc = connection refused")

func TestCatalogService_CreateStampsCreatedAt(t *testing.T) {
	f := newStorefrontFixtures(t)
	ctx := context.Background()

	result, err := f.admin.CreateProduct(ctx, usecase.ProductInput{
		Title:  "  Shirt ",
		Price:  1000,
		Images: []string{"a.jpg", " ", "b.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, "0", result.ID)
	assert.Equal(t, repository.BackendLocal, result.Backend)
	assert.Empty(t, result.Warning)

	list, err := f.admin.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, list.Products, 1)
	product := list.Products[0]
	assert.Equal(t, "Shirt", product.Title)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, product.Images)
	require.NotNil(t, product.CreatedAt)
	assert.True(t, f.clock.Now().Equal(*product.CreatedAt))
}

func TestCatalogService_UpdateKeepsCreatedAtAndImages(t *testing.T) {
	f := newStorefrontFixtures(t)
	ctx := context.Background()
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	f.seedProducts(t, entity.Product{Title: "Shirt", Price: 1000, Images: []string{"a.jpg"}, CreatedAt: &created})

	_, err := f.admin.UpdateProduct(ctx, "0", usecase.ProductInput{Title: "Shirt v2", Price: 1200})
	require.NoError(t, err)

	product, err := f.browse.GetProduct(ctx, "0")
	require.NoError(t, err)
	assert.Equal(t, "Shirt v2", product.Title)
	assert.Equal(t, int64(1200), product.Price)
	assert.Equal(t, []string{"a.jpg"}, product.Images)
	require.NotNil(t, product.CreatedAt)
	assert.True(t, created.Equal(*product.CreatedAt))

	_, err = f.admin.UpdateProduct(ctx, "0", usecase.ProductInput{Title: "Shirt v3", Images: []string{"c.jpg"}})
	require.NoError(t, err)
	product, err = f.browse.GetProduct(ctx, "0")
	require.NoError(t, err)
	assert.Equal(t, []string{"c.jpg"}, product.Images)
}

func TestCatalogService_StaleIDsAreNotFound(t *testing.T) {
	f := newStorefrontFixtures(t)
	ctx := context.Background()
	f.seedProducts(t, entity.Product{Title: "Shirt", Price: 1000})

	_, err := f.admin.UpdateProduct(ctx, "3", usecase.ProductInput{Title: "x"})
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))

	_, err = f.admin.DeleteProduct(ctx, "3")
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))

	_, err = f.admin.DeleteProduct(ctx, "0")
	require.NoError(t, err)
	_, err = f.admin.DeleteProduct(ctx, "0")
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCatalogService_DeleteStaleRemoteIDIsNotFound(t *testing.T) {
	f := newStorefrontFixtures(t, withRemoteCatalog())
	ctx := context.Background()

	f.remote.EXPECT().Get(ctx, "gone").Return(nil, repository.ErrProductNotFound)

	_, err := f.admin.DeleteProduct(ctx, "gone")

	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
	f.remote.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}

func TestCatalogService_DeleteRemoteProduct(t *testing.T) {
	f := newStorefrontFixtures(t, withRemoteCatalog())
	ctx := context.Background()

	f.remote.EXPECT().Get(ctx, "doc-1").Return(&entity.Product{ID: "doc-1", Title: "Shirt"}, nil)
	f.remote.EXPECT().Remove(ctx, "doc-1").Return(nil)

	result, err := f.admin.DeleteProduct(ctx, "doc-1")

	require.NoError(t, err)
	assert.Equal(t, repository.BackendRemote, result.Backend)
	assert.Empty(t, result.Warning)
}

func TestCatalogService_ClearProducts(t *testing.T) {
	f := newStorefrontFixtures(t)
	ctx := context.Background()
	f.seedProducts(t, entity.Product{Title: "A"}, entity.Product{Title: "B"})

	_, err := f.admin.ClearProducts(ctx)
	require.NoError(t, err)

	list, err := f.admin.ListProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, list.Products)
}

func TestCatalogService_RemoteFailureFallsBackWithWarning(t *testing.T) {
	f := newStorefrontFixtures(t, withRemoteCatalog())
	ctx := context.Background()

	f.remote.EXPECT().Add(ctx, mock.AnythingOfType("*entity.Product")).Return("", errFirestoreDown)

	result, err := f.admin.CreateProduct(ctx, usecase.ProductInput{Title: "Shirt", Price: 1000})

	require.NoError(t, err)
	assert.Equal(t, repository.BackendLocal, result.Backend)
	assert.Equal(t, "0", result.ID)
	assert.Equal(t, writeFallbackWarning, result.Warning)
}

func TestCatalogService_RemoteDocumentUpdateFailureSurfaces(t *testing.T) {
	f := newStorefrontFixtures(t, withRemoteCatalog())
	ctx := context.Background()

	f.remote.EXPECT().Get(ctx, "doc-1").Return(&entity.Product{ID: "doc-1", Title: "Shirt"}, nil)
	f.remote.EXPECT().Update(ctx, "doc-1", mock.AnythingOfType("*entity.Product")).Return(errFirestoreDown)

	_, err := f.admin.UpdateProduct(ctx, "doc-1", usecase.ProductInput{Title: "Shirt v2"})

	var perr *domainerrors.PersistenceError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "update", perr.Op)
	assert.Equal(t, "products", perr.Collection)
}

func TestCatalogService_SyncProducts(t *testing.T) {
	t.Run("remote disabled", func(t *testing.T) {
		f := newStorefrontFixtures(t)

		_, err := f.admin.SyncProducts(context.Background())

		assert.True(t, errors.Is(err, domainerrors.ErrRemoteDisabled))
	})

	t.Run("pushes local products", func(t *testing.T) {
		f := newStorefrontFixtures(t, withRemoteCatalog())
		ctx := context.Background()
		local := []entity.Product{{Title: "A"}, {Title: "B"}}
		f.remote.EXPECT().Save(ctx, mock.Anything).Return(errFirestoreDown).Once()
		f.seedProducts(t, local...)

		f.remote.EXPECT().Add(ctx, mock.AnythingOfType("*entity.Product")).Return("doc", nil).Times(2)

		count, err := f.admin.SyncProducts(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}

func TestCatalogService_ExportAndImport(t *testing.T) {
	f := newStorefrontFixtures(t)
	ctx := context.Background()
	f.seedProducts(t, entity.Product{Title: "Shirt", Price: 1000, Group: "ملابس"})

	var buf bytes.Buffer
	require.NoError(t, f.admin.ExportProducts(ctx, &buf))

	out, err := f.admin.ImportProducts(ctx, bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Equal(t, 1, out.Added)
	assert.Zero(t, out.Skipped)

	list, err := f.admin.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, list.Products, 2)
	assert.Equal(t, "Shirt", list.Products[1].Title)
	assert.Equal(t, "ملابس", list.Products[1].Group)
	assert.NotNil(t, list.Products[1].CreatedAt)

	_, err = f.admin.ImportProducts(ctx, bytes.NewReader([]byte("junk")), 4)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCatalogService_SaveCategoriesDropsBlankNames(t *testing.T) {
	f := newStorefrontFixtures(t)
	ctx := context.Background()

	require.NoError(t, f.admin.SaveCategories(ctx, entity.Categories{
		" احذية ": {"رجالي", " ", "نسائي"},
		"  ":      {"x"},
	}))

	categories, err := f.browse.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.Categories{"احذية": {"رجالي", "نسائي"}}, categories)
}
