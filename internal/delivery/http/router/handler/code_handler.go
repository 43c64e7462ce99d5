package handler

import (
	"log/slog"
	"net/http"

	"referral/internal/delivery/http/response"
	"referral/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CodeHandler holds dependencies for code registry handlers.
type CodeHandler struct {
	uc     usecase.CodeUsecase
	logger *slog.Logger
}

// NewCodeHandler is the constructor for CodeHandler, injected by Fx.
func NewCodeHandler(uc usecase.CodeUsecase, logger *slog.Logger) *CodeHandler {
	return &CodeHandler{
		uc:     uc,
		logger: logger,
	}
}

type codeLookupResponse struct {
	Code        string `json:"code"`
	OwnerUserID string `json:"owner_user_id"`
}

// Lookup resolves a referral code to its owning user.
func (h *CodeHandler) Lookup(c echo.Context) error {
	code := c.Param("code")
	if code == "" {
		return response.BadRequest(c, "INVALID_INPUT", "code is required")
	}

	output, err := h.uc.Lookup(c.Request().Context(), code)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, codeLookupResponse{
		Code:        output.Code,
		OwnerUserID: output.OwnerUserID.String(),
	}, "Code resolved")
}

// GenerateQR streams the user's referral code as a PNG QR image.
func (h *CodeHandler) GenerateQR(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "user id must be a UUID")
	}

	qrBytes, err := h.uc.GenerateCodeQR(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", qrBytes)
}
