package handler

import (
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// BrowseHandler serves the catalog and the session's filter state.
type BrowseHandler struct {
	uc usecase.BrowseUsecase
}

// NewBrowseHandler is the constructor for BrowseHandler, injected by Fx.
func NewBrowseHandler(uc usecase.BrowseUsecase) *BrowseHandler {
	return &BrowseHandler{uc: uc}
}

type searchRequest struct {
	Query string `json:"query"`
}

type filterRequest struct {
	Group       string `json:"group"`
	Subcategory string `json:"subcategory"`
}

type sortRequest struct {
	Mode string `json:"mode"`
}

// ListProducts returns the catalog after the session's search, filter and sort.
func (h *BrowseHandler) ListProducts(c echo.Context) error {
	listing, err := h.uc.ListProducts(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listing, readMessage(listing.Outcome))
}

// GetProduct returns the product detail view.
func (h *BrowseHandler) GetProduct(c echo.Context) error {
	product, err := h.uc.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// Categories returns the category tree.
func (h *BrowseHandler) Categories(c echo.Context) error {
	categories, err := h.uc.Categories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// GetState returns the session's filter state and label.
func (h *BrowseHandler) GetState(c echo.Context) error {
	state, err := h.uc.GetState(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state, state.Label)
}

// SetSearch stores the search query.
func (h *BrowseHandler) SetSearch(c echo.Context) error {
	var input searchRequest
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	state, err := h.uc.SetSearch(c.Request().Context(), deliverycontext.GetSessionID(c), input.Query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state, state.Label)
}

// SetCategory stores the category filter.
func (h *BrowseHandler) SetCategory(c echo.Context) error {
	var input filterRequest
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	state, err := h.uc.SetCategory(c.Request().Context(), deliverycontext.GetSessionID(c), input.Group, input.Subcategory)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state, state.Label)
}

// ClearCategory removes the category filter.
func (h *BrowseHandler) ClearCategory(c echo.Context) error {
	state, err := h.uc.ClearCategory(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state, state.Label)
}

// SetSort stores the sort mode.
func (h *BrowseHandler) SetSort(c echo.Context) error {
	var input sortRequest
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	state, err := h.uc.SetSort(c.Request().Context(), deliverycontext.GetSessionID(c), input.Mode)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state, state.Label)
}
