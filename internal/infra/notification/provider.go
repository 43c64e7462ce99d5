package notification

import (
	"context"
	"log/slog"

	"referral/config"
	"referral/internal/domain/service"

	"go.uber.org/fx"
)

// noopNotificationService is a no-op implementation when Firebase is disabled
type noopNotificationService struct {
	logger *slog.Logger
}

func (s *noopNotificationService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	s.logger.Debug("[NoopNotification] Push notifications disabled, skipping",
		slog.String("title", title),
	)

	return nil
}

// ProviderParams holds dependencies for NotificationService, injected by Fx
type ProviderParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationService creates a NotificationService based on configuration
func NewNotificationService(params ProviderParams) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	logger := params.Logger

	// If Firebase is not configured, return a no-op service
	if cfg == nil || cfg.CredentialsPath == "" {
		logger.Info("Firebase not configured, using no-op notification service")

		return &noopNotificationService{logger: logger}, nil
	}

	logger.Info("Using Firebase notification service",
		slog.String("project_id", cfg.ProjectID),
	)

	return NewFirebaseService(params.Ctx, cfg.CredentialsPath)
}
