package local

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/kv"
)

type couponStore struct {
	docs documents
}

// NewCouponStore returns the coupon store.
func NewCouponStore(store kv.Store, logger *slog.Logger) repository.CouponStore {
	return &couponStore{docs: newDocuments(store, logger)}
}

func (s *couponStore) List(ctx context.Context) ([]entity.Coupon, error) {
	coupons := []entity.Coupon{}
	if _, err := s.docs.read(ctx, keyCoupons, &coupons); err != nil {
		return nil, err
	}

	return coupons, nil
}

func (s *couponStore) Add(ctx context.Context, coupon *entity.Coupon) error {
	coupons, err := s.List(ctx)
	if err != nil {
		return err
	}

	return s.docs.write(ctx, keyCoupons, append(coupons, *coupon))
}

func (s *couponStore) Remove(ctx context.Context, index int) error {
	coupons, err := s.List(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(coupons) {
		return repository.ErrCouponNotFound
	}

	return s.docs.write(ctx, keyCoupons, append(coupons[:index], coupons[index+1:]...))
}
