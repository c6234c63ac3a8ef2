package database

import (
	"context"
	"fmt"

	"github.com/example/wordomikuji/pkg/models"
)

// SubscriberRepository handles database operations for notification
// subscribers
type SubscriberRepository struct{}

// NewSubscriberRepository creates a new repository instance
func NewSubscriberRepository() *SubscriberRepository {
	return &SubscriberRepository{}
}

// Subscribe enables daily notifications for a chat at the given local hour,
// replacing any previous subscription
func (r *SubscriberRepository) Subscribe(ctx context.Context, chatID int64, hour int) error {
	query := rebind(`
		INSERT INTO subscribers (chat_id, notification_hour, enabled)
		VALUES (?, ?, true)
		ON CONFLICT (chat_id) DO UPDATE SET
			notification_hour = excluded.notification_hour,
			enabled = true
	`)
	if _, err := DB.ExecContext(ctx, query, chatID, hour); err != nil {
		return fmt.Errorf("failed to subscribe chat: %w", err)
	}
	return nil
}

// Unsubscribe disables daily notifications for a chat
func (r *SubscriberRepository) Unsubscribe(ctx context.Context, chatID int64) error {
	query := rebind("UPDATE subscribers SET enabled = false WHERE chat_id = ?")
	if _, err := DB.ExecContext(ctx, query, chatID); err != nil {
		return fmt.Errorf("failed to unsubscribe chat: %w", err)
	}
	return nil
}

// GetDueForHour returns the enabled subscribers whose notification hour
// matches the given local hour
func (r *SubscriberRepository) GetDueForHour(ctx context.Context, hour int) ([]models.Subscriber, error) {
	query := rebind(`
		SELECT chat_id, notification_hour, enabled
		FROM subscribers
		WHERE enabled = true AND notification_hour = ?
		ORDER BY chat_id
	`)
	var subs []models.Subscriber
	if err := DB.SelectContext(ctx, &subs, query, hour); err != nil {
		return nil, fmt.Errorf("failed to get due subscribers: %w", err)
	}
	return subs, nil
}
