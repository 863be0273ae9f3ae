package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AdminHandler handles the admin login and credential changes.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{uc: uc, logger: logger}
}

// Login exchanges the admin username and password for an access token.
func (h *AdminHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output, "تم تسجيل الدخول")
}

// ChangeCredentials replaces the stored admin username and password.
func (h *AdminHandler) ChangeCredentials(c echo.Context) error {
	var input usecase.CredentialsInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.uc.ChangeCredentials(c.Request().Context(), input); err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Admin credentials changed",
		slog.String("by", deliverycontext.GetAdmin(c)),
	)

	return response.Success(c, http.StatusOK, nil, "تم تحديث بيانات الدخول")
}
