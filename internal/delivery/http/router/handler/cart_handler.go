package handler

import (
	"context"
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CartHandler exposes the session cart.
type CartHandler struct {
	uc usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart returns the cart with its count and total.
func (h *CartHandler) GetCart(c echo.Context) error {
	view, err := h.uc.GetCart(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// AddItem adds a catalog product or a raw item to the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	var input usecase.AddItemInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := h.uc.AddItem(c.Request().Context(), deliverycontext.GetSessionID(c), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view, "تمت الإضافة إلى السلة")
}

// SetQuantity sets a line's quantity, clamped to at least one and rejected above entity.MaxQuantity.
func (h *CartHandler) SetQuantity(c echo.Context) error {
	index, err := pathIndex(c, "index")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input quantityRequest
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := h.uc.SetQuantity(c.Request().Context(), deliverycontext.GetSessionID(c), index, input.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Increment adds one to a line.
func (h *CartHandler) Increment(c echo.Context) error {
	return h.atIndex(c, h.uc.Increment)
}

// Decrement removes one from a line, never below one.
func (h *CartHandler) Decrement(c echo.Context) error {
	return h.atIndex(c, h.uc.Decrement)
}

// RemoveItem deletes a line.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	return h.atIndex(c, h.uc.RemoveItem)
}

// Clear empties the cart.
func (h *CartHandler) Clear(c echo.Context) error {
	view, err := h.uc.Clear(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

func (h *CartHandler) atIndex(c echo.Context, op func(context.Context, string, int) (*usecase.CartView, error)) error {
	index, err := pathIndex(c, "index")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := op(c.Request().Context(), deliverycontext.GetSessionID(c), index)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view, "")
}
