package handler

import (
	"io"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/infra/export"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// OrderAdminHandler lists and exports placed orders.
type OrderAdminHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderAdminHandler is the constructor for OrderAdminHandler, injected by Fx.
func NewOrderAdminHandler(uc usecase.OrderUsecase) *OrderAdminHandler {
	return &OrderAdminHandler{uc: uc}
}

// ListOrders returns the orders newest first.
func (h *OrderAdminHandler) ListOrders(c echo.Context) error {
	list, err := h.uc.ListOrders(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list, list.Warning)
}

// ExportOrders downloads the orders as a spreadsheet.
func (h *OrderAdminHandler) ExportOrders(c echo.Context) error {
	err := response.Attachment(c, "orders.xlsx", export.ContentType, func(w io.Writer) error {
		return h.uc.ExportOrders(c.Request().Context(), w)
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return nil
}
