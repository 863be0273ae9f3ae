package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CouponAdminHandler manages discount codes.
type CouponAdminHandler struct {
	uc usecase.CouponUsecase
}

// NewCouponAdminHandler is the constructor for CouponAdminHandler, injected by Fx.
func NewCouponAdminHandler(uc usecase.CouponUsecase) *CouponAdminHandler {
	return &CouponAdminHandler{uc: uc}
}

// ListCoupons returns every coupon in creation order.
func (h *CouponAdminHandler) ListCoupons(c echo.Context) error {
	coupons, err := h.uc.ListCoupons(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, coupons, "")
}

// CreateCoupon adds a coupon.
func (h *CouponAdminHandler) CreateCoupon(c echo.Context) error {
	var input usecase.CouponInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	coupon, err := h.uc.CreateCoupon(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, coupon, "تمت إضافة الكوبون")
}

// DeleteCoupon removes the coupon at a list position.
func (h *CouponAdminHandler) DeleteCoupon(c echo.Context) error {
	index, err := pathIndex(c, "index")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.uc.DeleteCoupon(c.Request().Context(), index); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "تم حذف الكوبون")
}
