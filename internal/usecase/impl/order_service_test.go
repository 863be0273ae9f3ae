package impl

import (
	"bytes"
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
)

func TestOrderService_ListNewestFirst(t *testing.T) {
	f := newStorefrontFixtures(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"ORD-a", "ORD-b", "ORD-c"} {
		_, err := f.orders.Append(ctx, &entity.Order{ID: id, CreatedAt: base.Add(time.Duration(i) * time.Minute)})
		require.NoError(t, err)
	}

	list, err := f.orderAdmin.ListOrders(ctx)
	require.NoError(t, err)

	ids := []string{}
	for _, o := range list.Orders {
		ids = append(ids, o.ID)
	}
	assert.Equal(t, []string{"ORD-c", "ORD-b", "ORD-a"}, ids)
	assert.Empty(t, list.Warning)
}

func TestNewestFirst_SameInstantKeepsLatestAppendFirst(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	orders := []entity.Order{{ID: "first", CreatedAt: at}, {ID: "second", CreatedAt: at}}

	out := newestFirst(orders)

	assert.Equal(t, "second", out[0].ID)
	assert.Equal(t, "first", orders[0].ID)
}

func TestOrderService_Export(t *testing.T) {
	f := newStorefrontFixtures(t)
	ctx := context.Background()
	_, err := f.orders.Append(ctx, &entity.Order{ID: "ORD-a", Name: "Rana", Total: 1800, CreatedAt: time.Now()})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.orderAdmin.ExportOrders(ctx, &buf))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Sheets[0].Rows, 2)
	assert.Equal(t, "Rana", file.Sheets[0].Rows[1].Cells[1].String())
}
