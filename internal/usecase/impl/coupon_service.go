package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

type couponService struct {
	coupons repository.CouponStore
	clock   service.Clock
	logger  *slog.Logger
}

// CouponServiceParams holds dependencies for CouponService, injected by Fx.
type CouponServiceParams struct {
	fx.In

	Coupons repository.CouponStore
	Clock   service.Clock
	Logger  *slog.Logger
}

// NewCouponService creates the admin coupon service.
func NewCouponService(params CouponServiceParams) usecase.CouponUsecase {
	return &couponService{
		coupons: params.Coupons,
		clock:   params.Clock,
		logger:  params.Logger,
	}
}

func (s *couponService) ListCoupons(ctx context.Context) ([]entity.Coupon, error) {
	coupons, err := s.coupons.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list coupons")
	}

	return coupons, nil
}

func (s *couponService) CreateCoupon(ctx context.Context, input usecase.CouponInput) (*entity.Coupon, error) {
	code := strings.TrimSpace(input.Code)
	if code == "" {
		return nil, domainerrors.NewValidationError("code", "COUPON_CODE_REQUIRED", "ادخل كود الكوبون")
	}

	couponType := entity.CouponType(strings.ToLower(strings.TrimSpace(input.Type)))
	if !couponType.Valid() {
		return nil, domainerrors.NewValidationError("type", "COUPON_TYPE_INVALID", "نوع الكوبون غير صالح")
	}
	if input.Value < 0 {
		return nil, domainerrors.NewValidationError("value", "COUPON_VALUE_INVALID", "قيمة الكوبون غير صالحة")
	}

	now := s.clock.Now()
	coupon := &entity.Coupon{
		Code:      code,
		Type:      couponType,
		Value:     input.Value,
		Active:    input.Active,
		CreatedAt: &now,
	}
	if err := s.coupons.Add(ctx, coupon); err != nil {
		return nil, errors.Wrap(err, "failed to add coupon")
	}

	loggerFor(ctx, s.logger).InfoContext(ctx, "Coupon created", slog.String("code", code), slog.String("type", string(couponType)))

	return coupon, nil
}

func (s *couponService) DeleteCoupon(ctx context.Context, index int) error {
	err := s.coupons.Remove(ctx, index)
	if errors.Is(err, repository.ErrCouponNotFound) {
		return domainerrors.ErrCouponNotFound.WithDetails("index " + strconv.Itoa(index))
	}

	return errors.Wrap(err, "failed to remove coupon")
}
