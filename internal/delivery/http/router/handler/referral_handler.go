// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"referral/internal/delivery/http/response"
	"referral/internal/domain/entity"
	"referral/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ReferralHandler holds dependencies for referral-related handlers.
type ReferralHandler struct {
	uc     usecase.ReferralUsecase
	logger *slog.Logger
}

// NewReferralHandler is the constructor for ReferralHandler, injected by Fx.
func NewReferralHandler(uc usecase.ReferralUsecase, logger *slog.Logger) *ReferralHandler {
	return &ReferralHandler{
		uc:     uc,
		logger: logger,
	}
}

type signupRequest struct {
	UserID       string `json:"user_id" validate:"required,uuid"`
	Name         string `json:"name" validate:"required,max=100"`
	ReferralCode string `json:"referral_code"`
}

type signupResponse struct {
	UserID             string `json:"user_id"`
	ReferralCode       string `json:"referral_code"`
	ReferralAttributed bool   `json:"referral_attributed"`
}

// Signup handles the user registration request.
func (h *ReferralHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "user_id must be a UUID")
	}

	output, err := h.uc.Signup(c.Request().Context(), usecase.SignupInput{
		UserID:       userID,
		Name:         req.Name,
		ReferralCode: req.ReferralCode,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, signupResponse{
		UserID:             output.User.ID.String(),
		ReferralCode:       output.ReferralCode,
		ReferralAttributed: output.ReferralAttributed,
	}, "User registered successfully")
}

type qualifyingPurchaseRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	Amount string `json:"amount" validate:"required"`
}

type qualifyingPurchaseResponse struct {
	Applied        bool   `json:"applied"`
	RewardAmount   string `json:"reward_amount,omitempty"`
	DiscountAmount string `json:"discount_amount,omitempty"`
}

// CompleteQualifyingPurchase handles first-purchase completion notifications.
func (h *ReferralHandler) CompleteQualifyingPurchase(c echo.Context) error {
	var req qualifyingPurchaseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid purchase input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "user_id must be a UUID")
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return response.BadRequest(c, "INVALID_AMOUNT", "amount must be a decimal number")
	}

	output, err := h.uc.CompleteQualifyingPurchase(c.Request().Context(), usecase.QualifyingPurchaseInput{
		UserID: userID,
		Amount: amount,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	resp := qualifyingPurchaseResponse{Applied: output.Applied}
	if output.Applied {
		resp.RewardAmount = output.RewardAmount.String()
		resp.DiscountAmount = output.DiscountAmount.String()
	}

	return response.Success(c, http.StatusOK, resp, "Purchase processed")
}

type referralEntryResponse struct {
	ID             string `json:"id"`
	ReferredUserID string `json:"referred_user_id"`
	CodeUsed       string `json:"code_used"`
	Status         string `json:"status"`
	RewardAmount   string `json:"reward_amount"`
	CreatedAt      string `json:"created_at"`
	CompletedAt    string `json:"completed_at,omitempty"`
}

type referralSummaryResponse struct {
	UserID          string                  `json:"user_id"`
	Name            string                  `json:"name"`
	ReferralCode    string                  `json:"referral_code"`
	ReferralRewards string                  `json:"referral_rewards"`
	UsedCodes       []string                `json:"used_referral_codes,omitempty"`
	Entries         []referralEntryResponse `json:"entries"`
}

// GetReferralSummary returns the user's code, accumulated rewards and their
// outbound referral entries.
func (h *ReferralHandler) GetReferralSummary(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "user id must be a UUID")
	}

	output, err := h.uc.GetReferralSummary(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSummaryResponse(output), "Referral summary retrieved")
}

func toSummaryResponse(output *usecase.ReferralSummaryOutput) referralSummaryResponse {
	entries := make([]referralEntryResponse, 0, len(output.Entries))
	for _, entry := range output.Entries {
		entries = append(entries, toEntryResponse(entry))
	}

	return referralSummaryResponse{
		UserID:          output.User.ID.String(),
		Name:            output.User.Name,
		ReferralCode:    output.User.ReferralCode,
		ReferralRewards: output.User.ReferralRewards.String(),
		UsedCodes:       output.User.UsedReferralCodes,
		Entries:         entries,
	}
}

func toEntryResponse(entry *entity.ReferralEntry) referralEntryResponse {
	resp := referralEntryResponse{
		ID:             entry.ID.String(),
		ReferredUserID: entry.ReferredUserID.String(),
		CodeUsed:       entry.CodeUsed,
		Status:         string(entry.Status),
		RewardAmount:   entry.RewardAmount.String(),
		CreatedAt:      entry.CreatedAt.UTC().Format(time.RFC3339),
	}
	if entry.CompletedAt != nil {
		resp.CompletedAt = entry.CompletedAt.UTC().Format(time.RFC3339)
	}

	return resp
}

type deviceTokenRequest struct {
	Token string `json:"token" validate:"max=512"`
}

// RegisterDeviceToken records the user's push notification target. An empty
// token clears the registration.
func (h *ReferralHandler) RegisterDeviceToken(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "user id must be a UUID")
	}

	var req deviceTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device token input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.RegisterDeviceToken(c.Request().Context(), userID, req.Token); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"user_id": userID.String()}, "Device token registered")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
