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

// AdminHandler holds dependencies for privileged operations.
type AdminHandler struct {
	codeUC     usecase.CodeUsecase
	referralUC usecase.ReferralUsecase
	logger     *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(codeUC usecase.CodeUsecase, referralUC usecase.ReferralUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		codeUC:     codeUC,
		referralUC: referralUC,
		logger:     logger,
	}
}

type reassignCodeRequest struct {
	NewCode string `json:"new_code" validate:"required,min=4,max=16"`
}

// ReassignCode replaces a user's referral code with an admin-chosen one.
func (h *AdminHandler) ReassignCode(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "user id must be a UUID")
	}

	var req reassignCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reassignment input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.codeUC.ReassignCode(c.Request().Context(), userID, req.NewCode); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"user_id": userID.String(),
		"code":    req.NewCode,
	}, "Referral code reassigned")
}

type reconcileResponse struct {
	UpdatedUsers int `json:"updated_users"`
}

// ReconcileRewards rebuilds every reward accumulator from the ledger.
func (h *AdminHandler) ReconcileRewards(c echo.Context) error {
	output, err := h.referralUC.ReconcileRewards(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reconcileResponse{
		UpdatedUsers: output.UpdatedUsers,
	}, "Rewards reconciled")
}
