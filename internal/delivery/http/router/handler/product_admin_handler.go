package handler

import (
	"io"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/export"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ProductAdminHandler manages the catalog from the admin panel.
type ProductAdminHandler struct {
	uc usecase.CatalogUsecase
}

// NewProductAdminHandler is the constructor for ProductAdminHandler, injected by Fx.
func NewProductAdminHandler(uc usecase.CatalogUsecase) *ProductAdminHandler {
	return &ProductAdminHandler{uc: uc}
}

type syncResponse struct {
	Pushed int `json:"pushed"`
}

// ListProducts returns every product with the backend that served it.
func (h *ProductAdminHandler) ListProducts(c echo.Context) error {
	list, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list, list.Warning)
}

// CreateProduct adds a product.
func (h *ProductAdminHandler) CreateProduct(c echo.Context) error {
	var input usecase.ProductInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.uc.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result, writeMessage(result, "تمت إضافة المنتج"))
}

// UpdateProduct edits a product in place.
func (h *ProductAdminHandler) UpdateProduct(c echo.Context) error {
	var input usecase.ProductInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.uc.UpdateProduct(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, writeMessage(result, "تم تحديث المنتج"))
}

// DeleteProduct removes a product.
func (h *ProductAdminHandler) DeleteProduct(c echo.Context) error {
	result, err := h.uc.DeleteProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, writeMessage(result, "تم حذف المنتج"))
}

// ClearProducts removes every product.
func (h *ProductAdminHandler) ClearProducts(c echo.Context) error {
	result, err := h.uc.ClearProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, writeMessage(result, "تم حذف جميع المنتجات"))
}

// SyncProducts copies the local catalog to Firebase.
func (h *ProductAdminHandler) SyncProducts(c echo.Context) error {
	pushed, err := h.uc.SyncProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, syncResponse{Pushed: pushed}, "تمت مزامنة المنتجات مع Firebase")
}

// ExportProducts downloads the catalog as a spreadsheet.
func (h *ProductAdminHandler) ExportProducts(c echo.Context) error {
	err := response.Attachment(c, "products.xlsx", export.ContentType, func(w io.Writer) error {
		return h.uc.ExportProducts(c.Request().Context(), w)
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return nil
}

// ImportProducts appends the rows of an uploaded spreadsheet.
func (h *ProductAdminHandler) ImportProducts(c echo.Context) error {
	header, err := c.FormFile("file")
	if err != nil {
		return response.HandleAppError(c, domainerrors.NewValidationError("file", "FILE_REQUIRED", "الرجاء اختيار ملف Excel"))
	}

	file, err := header.Open()
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer file.Close()

	output, err := h.uc.ImportProducts(c.Request().Context(), file, header.Size)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	message := output.Warning
	if message == "" {
		message = "تم استيراد المنتجات"
	}

	return response.Success(c, http.StatusOK, output, message)
}

// SaveCategories replaces the category tree.
func (h *ProductAdminHandler) SaveCategories(c echo.Context) error {
	var categories entity.Categories
	if err := c.Bind(&categories); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("malformed category tree"))
	}

	if err := h.uc.SaveCategories(c.Request().Context(), categories); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "تم حفظ التصنيفات")
}

func writeMessage(result *usecase.WriteResult, success string) string {
	if result.Warning != "" {
		return result.Warning
	}

	return success
}
