// Package local implements the repositories of the local backend as JSON
// documents in a kv.Store.
package local

import (
	"context"
	"encoding/json"
	"log/slog"

	"storefront/internal/errors"
	"storefront/internal/infra/persistence/kv"
)

// Document keys.
const (
	keyProducts   = "products"
	keyOrders     = "orders"
	keyCoupons    = "coupons"
	keyCategories = "categories"
	keyAdmin      = "admin"

	prefixCart     = "cart/"
	prefixFilter   = "filter/"
	prefixCheckout = "checkout/"
)

// documents reads and writes JSON values. A document that fails to decode
// is logged and read as absent.
type documents struct {
	store  kv.Store
	logger *slog.Logger
}

func newDocuments(store kv.Store, logger *slog.Logger) documents {
	if logger == nil {
		logger = slog.Default()
	}

	return documents{store: store, logger: logger}
}

func (d documents) read(ctx context.Context, key string, out any) (bool, error) {
	raw, err := d.store.Get(ctx, key)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(raw, out); err != nil {
		d.logger.WarnContext(ctx, "Discarding unreadable document",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return false, nil
	}

	return true, nil
}

func (d documents) write(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}

	return d.store.Put(ctx, key, raw)
}

func (d documents) remove(ctx context.Context, key string) error {
	return d.store.Delete(ctx, key)
}
