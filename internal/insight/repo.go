package insight

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bonesy512/situationship/internal/models"
	"github.com/uptrace/bun"
)

type Repository interface {
	InitializeDatabase(ctx context.Context) error
	CreateWithDebit(ctx context.Context, insight *models.Insight, cost int64) error
	ListRecent(ctx context.Context, userID string, limit int) ([]*models.Insight, error)
}

type InsightRepository struct {
	db *bun.DB
}

func NewInsightRepository(db *bun.DB) *InsightRepository {
	return &InsightRepository{db: db}
}

func (r *InsightRepository) InitializeDatabase(ctx context.Context) error {
	_, err := r.db.NewCreateTable().
		Model((*models.InsightDB)(nil)).
		IfNotExists().
		ForeignKey(`("user_id") REFERENCES "users" ("id") ON DELETE CASCADE`).
		Exec(ctx)
	if err != nil {
		return err
	}

	_, err = r.db.NewCreateIndex().
		Model((*models.InsightDB)(nil)).
		Index("idx_insights_user_created").
		Column("user_id", "created_at").
		IfNotExists().
		Exec(ctx)
	return err
}

// CreateWithDebit records the insight and debits its token cost in one
// transaction. The decrement is conditional on the balance so concurrent
// generations can never drive tokens negative.
func (r *InsightRepository) CreateWithDebit(ctx context.Context, insight *models.Insight, cost int64) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().
			Model((*models.UserDB)(nil)).
			Set("tokens = tokens - ?", cost).
			Set("updated_at = ?", time.Now()).
			Where("id = ?", insight.UserID).
			Where("tokens >= ?", cost).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to debit tokens: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			// Either the user vanished or the balance ran out between
			// the pre-check and here.
			exists, err := tx.NewSelect().
				Model((*models.UserDB)(nil)).
				Where("id = ?", insight.UserID).
				Exists(ctx)
			if err != nil {
				return err
			}
			if !exists {
				return models.ErrNotFound
			}
			return models.ErrInsufficientTokens
		}

		row := &models.InsightDB{
			ID:        insight.ID,
			UserID:    insight.UserID,
			Type:      insight.Type,
			Content:   insight.Content,
			TokenUsed: true,
			CreatedAt: insight.CreatedAt,
		}
		if _, err := tx.NewInsert().Model(row).Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert insight: %w", err)
		}
		return nil
	})
}

func (r *InsightRepository) ListRecent(ctx context.Context, userID string, limit int) ([]*models.Insight, error) {
	var rows []*models.InsightDB
	err := r.db.NewSelect().
		Model(&rows).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	insights := make([]*models.Insight, len(rows))
	for i, row := range rows {
		insights[i] = row.ToInsight()
	}
	return insights, nil
}
