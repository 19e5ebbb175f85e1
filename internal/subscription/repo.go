package subscription

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bonesy512/situationship/internal/models"
	"github.com/uptrace/bun"
)

type Repository interface {
	InitializeDatabase(ctx context.Context) error
	Upsert(ctx context.Context, sub *models.Subscription) error
	UpdateBySubscriptionID(ctx context.Context, stripeSubscriptionID, stripePriceID string, status models.SubscriptionStatus, periodEnd time.Time) error
	MarkCanceled(ctx context.Context, stripeSubscriptionID string, periodEnd time.Time) error
	GetByUserID(ctx context.Context, userID string) (*models.Subscription, error)
	MarkEventProcessed(ctx context.Context, eventID, eventType string) (bool, error)
}

type SubscriptionRepository struct {
	db *bun.DB
}

func NewSubscriptionRepository(db *bun.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) InitializeDatabase(ctx context.Context) error {
	_, err := r.db.NewCreateTable().
		Model((*models.SubscriptionDB)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return err
	}

	_, err = r.db.NewCreateIndex().
		Model((*models.SubscriptionDB)(nil)).
		Index("idx_subscriptions_stripe_subscription_id").
		Column("stripe_subscription_id").
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return err
	}

	_, err = r.db.NewCreateTable().
		Model((*models.StripeEventDB)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}

// Upsert writes the user's subscription row, keyed on user_id. A user has at
// most one subscription; a repeat checkout replaces the Stripe identifiers
// rather than adding a second row.
func (r *SubscriptionRepository) Upsert(ctx context.Context, sub *models.Subscription) error {
	now := time.Now()
	subDB := models.SubscriptionFromDomain(sub)
	subDB.CreatedAt = now
	subDB.UpdatedAt = now

	_, err := r.db.NewInsert().
		Model(subDB).
		On("CONFLICT (user_id) DO UPDATE").
		Set("stripe_customer_id = EXCLUDED.stripe_customer_id").
		Set("stripe_subscription_id = EXCLUDED.stripe_subscription_id").
		Set("stripe_price_id = EXCLUDED.stripe_price_id").
		Set("status = EXCLUDED.status").
		Set("current_period_end = EXCLUDED.current_period_end").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return err
}

func (r *SubscriptionRepository) UpdateBySubscriptionID(ctx context.Context, stripeSubscriptionID, stripePriceID string, status models.SubscriptionStatus, periodEnd time.Time) error {
	res, err := r.db.NewUpdate().
		Model((*models.SubscriptionDB)(nil)).
		Set("stripe_price_id = ?", stripePriceID).
		Set("status = ?", status).
		Set("current_period_end = ?", periodEnd).
		Set("updated_at = ?", time.Now()).
		Where("stripe_subscription_id = ?", stripeSubscriptionID).
		Exec(ctx)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *SubscriptionRepository) MarkCanceled(ctx context.Context, stripeSubscriptionID string, periodEnd time.Time) error {
	res, err := r.db.NewUpdate().
		Model((*models.SubscriptionDB)(nil)).
		Set("status = ?", models.SubscriptionCanceled).
		Set("current_period_end = ?", periodEnd).
		Set("updated_at = ?", time.Now()).
		Where("stripe_subscription_id = ?", stripeSubscriptionID).
		Exec(ctx)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *SubscriptionRepository) GetByUserID(ctx context.Context, userID string) (*models.Subscription, error) {
	subDB := new(models.SubscriptionDB)
	err := r.db.NewSelect().
		Model(subDB).
		Where("user_id = ?", userID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return subDB.ToSubscription(), nil
}

// MarkEventProcessed claims a Stripe event ID for processing. It returns true
// if this call claimed the event, false if a prior delivery already did.
// Stripe redelivers webhooks; callers skip state changes on a false return.
func (r *SubscriptionRepository) MarkEventProcessed(ctx context.Context, eventID, eventType string) (bool, error) {
	event := &models.StripeEventDB{
		ID:          eventID,
		Type:        eventType,
		ProcessedAt: time.Now(),
	}
	res, err := r.db.NewInsert().
		Model(event).
		On("CONFLICT (id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
