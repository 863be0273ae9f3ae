package impl

import (
	"context"
	"math"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartService_AddByProductIDResolvesCatalogFields(t *testing.T) {
	f := newStorefrontFixtures(t)
	f.seedProducts(t,
		entity.Product{Title: "Shirt", Price: 1000, Images: []string{"shirt-1.jpg", "shirt-2.jpg"}},
		entity.Product{Title: "Bag", Price: 5000},
	)
	ctx := context.Background()

	view, err := f.cart.AddItem(ctx, testSession, usecase.AddItemInput{ProductID: "0", Quantity: 2})

	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, entity.CartItem{Title: "Shirt", Price: 1000, Quantity: 2, Img: "shirt-1.jpg"}, view.Items[0])
	assert.Equal(t, 2, view.Count)
	assert.Equal(t, int64(2000), view.Total)
	assert.Equal(t, "2,000 ل.س", view.FormattedTotal)
}

func TestCartService_AddSameItemTwiceMerges(t *testing.T) {
	f := newStorefrontFixtures(t)
	ctx := context.Background()
	item := &entity.CartItem{Title: "Shirt", Price: 1000}

	_, err := f.cart.AddItem(ctx, testSession, usecase.AddItemInput{Item: item, Quantity: 2})
	require.NoError(t, err)
	view, err := f.cart.AddItem(ctx, testSession, usecase.AddItemInput{Item: item, Quantity: 3})
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	assert.Equal(t, 5, view.Items[0].Quantity)

	stored, err := f.carts.Load(ctx, testSession)
	require.NoError(t, err)
	assert.Equal(t, view.Items, stored.Items)

	expected := `
# HELP storefront_cart_mutations_total Cart operations applied
# TYPE storefront_cart_mutations_total counter
storefront_cart_mutations_total{op="add"} 2
`
	assert.NoError(t, testutil.GatherAndCompare(f.metrics.Registry(), strings.NewReader(expected), "storefront_cart_mutations_total"))
}

func TestCartService_AddRejectsUnknownProductAndBlankItem(t *testing.T) {
	f := newStorefrontFixtures(t)
	ctx := context.Background()

	_, err := f.cart.AddItem(ctx, testSession, usecase.AddItemInput{ProductID: "9"})
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))

	_, err = f.cart.AddItem(ctx, testSession, usecase.AddItemInput{Item: &entity.CartItem{Title: "  "}})
	var verr *domainerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "title", verr.Field)

	_, err = f.cart.AddItem(ctx, testSession, usecase.AddItemInput{})
	assert.True(t, errors.As(err, &verr))
}

func TestCartService_QuantityNeverDropsBelowOne(t *testing.T) {
	f := newStorefrontFixtures(t)
	ctx := context.Background()
	_, err := f.cart.AddItem(ctx, testSession, usecase.AddItemInput{Item: &entity.CartItem{Title: "Shirt", Price: 1000}})
	require.NoError(t, err)

	view, err := f.cart.Decrement(ctx, testSession, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Items[0].Quantity)

	view, err = f.cart.SetQuantity(ctx, testSession, 0, -4)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Items[0].Quantity)

	view, err = f.cart.Increment(ctx, testSession, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Items[0].Quantity)

	view, err = f.cart.SetQuantity(ctx, testSession, 0, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7000), view.Total)
}

func TestCartService_RejectsOversizedQuantity(t *testing.T) {
	f := newStorefrontFixtures(t)
	ctx := context.Background()
	item := &entity.CartItem{Title: "Shirt", Price: 1000}

	_, err := f.cart.AddItem(ctx, testSession, usecase.AddItemInput{Item: item, Quantity: math.MaxInt})
	var verr *domainerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "quantity", verr.Field)
	assert.Equal(t, "QUANTITY_TOO_LARGE", verr.Code)

	_, err = f.cart.AddItem(ctx, testSession, usecase.AddItemInput{Item: item, Quantity: entity.MaxQuantity})
	require.NoError(t, err)
	view, err := f.cart.AddItem(ctx, testSession, usecase.AddItemInput{Item: item, Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, entity.MaxQuantity, view.Items[0].Quantity)
	assert.Equal(t, int64(entity.MaxQuantity)*1000, view.Total)

	_, err = f.cart.SetQuantity(ctx, testSession, 0, entity.MaxQuantity+1)
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "quantity", verr.Field)

	stored, err := f.carts.Load(ctx, testSession)
	require.NoError(t, err)
	assert.Equal(t, entity.MaxQuantity, stored.Items[0].Quantity)
}

func TestCartService_RemoveAndClear(t *testing.T) {
	f := newStorefrontFixtures(t)
	ctx := context.Background()
	for _, title := range []string{"A", "B", "C"} {
		_, err := f.cart.AddItem(ctx, testSession, usecase.AddItemInput{Item: &entity.CartItem{Title: title, Price: 100}})
		require.NoError(t, err)
	}

	view, err := f.cart.RemoveItem(ctx, testSession, 1)
	require.NoError(t, err)
	require.Len(t, view.Items, 2)
	assert.Equal(t, "C", view.Items[1].Title)

	_, err = f.cart.RemoveItem(ctx, testSession, 5)
	assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound))

	view, err = f.cart.Clear(ctx, testSession)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, int64(0), view.Total)

	view, err = f.cart.GetCart(ctx, testSession)
	require.NoError(t, err)
	assert.Equal(t, 0, view.Count)
}

func TestCartService_OutOfRangeIndexLeavesCartUntouched(t *testing.T) {
	f := newStorefrontFixtures(t)
	ctx := context.Background()
	_, err := f.cart.AddItem(ctx, testSession, usecase.AddItemInput{Item: &entity.CartItem{Title: "A", Price: 100}})
	require.NoError(t, err)

	for _, index := range []int{-1, 1} {
		_, err = f.cart.Increment(ctx, testSession, index)
		assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound))
	}

	view, err := f.cart.GetCart(ctx, testSession)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Count)
}

func TestCartService_AddReopensSubmittedCheckout(t *testing.T) {
	f := newStorefrontFixtures(t)
	ctx := context.Background()
	require.NoError(t, f.checkouts.Save(ctx, testSession, &entity.CheckoutState{Status: entity.CheckoutSubmitted, OrderID: "ORD-1"}))

	_, err := f.cart.AddItem(ctx, testSession, usecase.AddItemInput{Item: &entity.CartItem{Title: "A", Price: 100}})
	require.NoError(t, err)

	state, err := f.checkouts.Load(ctx, testSession)
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutEditing, state.Status)
}

func TestCartService_SessionsAreIsolated(t *testing.T) {
	f := newStorefrontFixtures(t)
	ctx := context.Background()
	_, err := f.cart.AddItem(ctx, "a", usecase.AddItemInput{Item: &entity.CartItem{Title: "A", Price: 100}})
	require.NoError(t, err)

	view, err := f.cart.GetCart(ctx, "b")
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}
