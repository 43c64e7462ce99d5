package service

import (
	"context"
)

// ReferralCompletedEvent is published after a referral entry transitions to
// completed, for downstream consumers (analytics, payouts).
type ReferralCompletedEvent struct {
	RequestID      string `json:"request_id,omitempty"` // For distributed tracing
	EntryID        string `json:"entry_id"`
	ReferrerUserID string `json:"referrer_user_id"`
	ReferredUserID string `json:"referred_user_id"`
	RewardAmount   string `json:"reward_amount"`
	DiscountAmount string `json:"discount_amount"`
	CompletedAt    string `json:"completed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishReferralCompleted publishes a completion event for async processing
	PublishReferralCompleted(ctx context.Context, event *ReferralCompletedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
