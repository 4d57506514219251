package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/rivsy/rivsy/pkg/domain"
)

// SubscriptionRepository handles subscription-related database operations
type SubscriptionRepository struct {
	db *sqlx.DB
}

// subscriptionSQL represents a subscription for SQL operations
type subscriptionSQL struct {
	ID        int64     `db:"id"`
	UserID    string    `db:"user_id"`
	FeedID    int64     `db:"feed_id"`
	Category  string    `db:"category"`
	CreatedAt time.Time `db:"created_at"`
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(database *sqlx.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: database}
}

// CreateSubscription links a user to a feed. Returns ErrDuplicate when the
// user is already subscribed.
func (r *SubscriptionRepository) CreateSubscription(ctx context.Context, sub *domain.Subscription) error {
	query := `
		INSERT INTO subscriptions (user_id, feed_id, category)
		VALUES (?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query, sub.UserID, sub.FeedID, sub.Category)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("subscription user %s feed %d: %w", sub.UserID, sub.FeedID, ErrDuplicate)
		}
		return fmt.Errorf("create subscription: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}
	sub.ID = id
	return nil
}

// DeleteSubscription removes a user's subscription to a feed, returns
// ErrNotFound if the subscription doesn't exist
func (r *SubscriptionRepository) DeleteSubscription(ctx context.Context, userID string, feedID int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM subscriptions WHERE user_id = ? AND feed_id = ?", userID, feedID)
	if err != nil {
		return fmt.Errorf("delete subscription: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete subscription rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// HasSubscriptions reports whether any subscriber references the feed
func (r *SubscriptionRepository) HasSubscriptions(ctx context.Context, feedID int64) (bool, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM subscriptions WHERE feed_id = ?", feedID); err != nil {
		return false, fmt.Errorf("count subscriptions: %w", err)
	}
	return count > 0, nil
}

// GetUserSubscriptions returns all subscriptions of a user
func (r *SubscriptionRepository) GetUserSubscriptions(ctx context.Context, userID string) ([]domain.Subscription, error) {
	var sqlSubs []subscriptionSQL
	err := r.db.SelectContext(ctx, &sqlSubs,
		"SELECT * FROM subscriptions WHERE user_id = ? ORDER BY created_at", userID)
	if err != nil {
		return nil, fmt.Errorf("get user subscriptions: %w", err)
	}

	subs := make([]domain.Subscription, len(sqlSubs))
	for i, s := range sqlSubs {
		subs[i] = domain.Subscription{
			ID:        s.ID,
			UserID:    s.UserID,
			FeedID:    s.FeedID,
			Category:  s.Category,
			CreatedAt: s.CreatedAt,
		}
	}
	return subs, nil
}

// IsSubscribed reports whether the user can see articles of the feed
func (r *SubscriptionRepository) IsSubscribed(ctx context.Context, userID string, feedID int64) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM subscriptions WHERE user_id = ? AND feed_id = ?", userID, feedID)
	if err != nil {
		return false, fmt.Errorf("check subscription: %w", err)
	}
	return count > 0, nil
}
