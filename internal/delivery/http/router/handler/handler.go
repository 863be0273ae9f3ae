// Package handler contains the HTTP handlers for the storefront and the admin panel.
package handler

import (
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/labstack/echo/v4"
)

const localOnlyWarning = "تم عرض البيانات المحلية (تعذر الاتصال بـ Firebase)"

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// bindAndValidate binds the request body into input and runs the struct validator.
func bindAndValidate(c echo.Context, input any) error {
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(input)
}

// pathIndex parses a non-negative list position from the path.
func pathIndex(c echo.Context, name string) (int, error) {
	index, err := strconv.Atoi(c.Param(name))
	if err != nil || index < 0 {
		return 0, domainerrors.NewValidationError(name, "INVALID_INDEX", "رقم العنصر غير صالح")
	}

	return index, nil
}

// readMessage is the success message of a read that may have fallen back.
func readMessage(outcome repository.Outcome) string {
	if outcome.FellBack() {
		return localOnlyWarning
	}

	return ""
}
