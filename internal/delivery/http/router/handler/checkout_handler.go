package handler

import (
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/checkout"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CheckoutHandler drives the checkout form.
type CheckoutHandler struct {
	uc usecase.CheckoutUsecase
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

type couponRequest struct {
	Code string `json:"code"`
}

// GetState returns the checkout state and the cart being checked out.
func (h *CheckoutHandler) GetState(c echo.Context) error {
	view, err := h.uc.GetState(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// PreviewCoupon prices the cart with the entered code.
func (h *CheckoutHandler) PreviewCoupon(c echo.Context) error {
	var input couponRequest
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	preview, err := h.uc.PreviewCoupon(c.Request().Context(), deliverycontext.GetSessionID(c), input.Code)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, preview, preview.Message)
}

// Submit places the order.
func (h *CheckoutHandler) Submit(c echo.Context) error {
	var form checkout.Form
	if err := bindAndValidate(c, &form); err != nil {
		return response.HandleAppError(c, err)
	}

	confirmation, err := h.uc.Submit(c.Request().Context(), deliverycontext.GetSessionID(c), form)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, confirmation, "تم استلام الطلب")
}

// OrderQR renders the order id as a PNG QR code.
func (h *CheckoutHandler) OrderQR(c echo.Context) error {
	png, err := h.uc.OrderQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
