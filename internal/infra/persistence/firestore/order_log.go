package firestore

import (
	"context"
	"slices"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"cloud.google.com/go/firestore"
)

type orderLog struct {
	client *firestore.Client
}

// NewOrderLog returns the remote order backend.
func NewOrderLog(client *firestore.Client) repository.OrderLog {
	return &orderLog{client: client}
}

func (l *orderLog) Append(ctx context.Context, order *entity.Order) (string, error) {
	ref, _, err := l.client.Collection(constants.CollectionOrders).Add(ctx, order)
	if err != nil {
		return "", errors.Wrap(err, "add order")
	}

	return ref.ID, nil
}

// List returns orders oldest first; document order carries no meaning remotely.
func (l *orderLog) List(ctx context.Context) ([]entity.Order, error) {
	docs, err := l.client.Collection(constants.CollectionOrders).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}

	orders := make([]entity.Order, 0, len(docs))
	for _, doc := range docs {
		var o entity.Order
		if err := doc.DataTo(&o); err != nil {
			return nil, errors.Wrapf(err, "decode order %s", doc.Ref.ID)
		}
		if o.ID == "" {
			o.ID = doc.Ref.ID
		}
		orders = append(orders, o)
	}

	slices.SortStableFunc(orders, func(a, b entity.Order) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return orders, nil
}
