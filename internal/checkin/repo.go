package checkin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bonesy512/situationship/internal/models"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type Repository interface {
	InitializeDatabase(ctx context.Context) error
	RecordCheckIn(ctx context.Context, checkIn *models.CheckIn, now time.Time) (*models.User, error)
	ListRecent(ctx context.Context, userID string, limit int) ([]*models.CheckIn, error)
	ListSince(ctx context.Context, userID string, since time.Time) ([]*models.CheckIn, error)
}

type CheckInRepository struct {
	db *bun.DB
}

func NewCheckInRepository(db *bun.DB) *CheckInRepository {
	return &CheckInRepository{db: db}
}

func (r *CheckInRepository) InitializeDatabase(ctx context.Context) error {
	_, err := r.db.NewCreateTable().
		Model((*models.CheckInDB)(nil)).
		IfNotExists().
		ForeignKey(`("user_id") REFERENCES "users" ("id") ON DELETE CASCADE`).
		Exec(ctx)
	if err != nil {
		return err
	}

	_, err = r.db.NewCreateIndex().
		Model((*models.CheckInDB)(nil)).
		Index("idx_check_ins_user_created").
		Column("user_id", "created_at").
		IfNotExists().
		Exec(ctx)
	return err
}

// RecordCheckIn inserts the check-in row and applies the streak/token update
// in one transaction. The user row is locked for the duration so two
// concurrent submissions cannot both count as the day's first.
func (r *CheckInRepository) RecordCheckIn(ctx context.Context, checkIn *models.CheckIn, now time.Time) (*models.User, error) {
	var updated models.UserDB

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		userDB := new(models.UserDB)
		err := tx.NewSelect().
			Model(userDB).
			Where("id = ?", checkIn.UserID).
			For("UPDATE").
			Scan(ctx)
		if errors.Is(err, sql.ErrNoRows) {
			return models.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to load user: %w", err)
		}

		result := ComputeStreak(userDB.LastCheckIn, userDB.StreakDays, now)

		row := &models.CheckInDB{
			ID:            uuid.New().String(),
			UserID:        checkIn.UserID,
			Mood:          checkIn.Mood,
			Connection:    checkIn.Connection,
			Communication: checkIn.Communication,
			Highlight:     checkIn.Highlight,
			Challenge:     checkIn.Challenge,
			CreatedAt:     now,
		}
		if _, err := tx.NewInsert().Model(row).Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert check-in: %w", err)
		}

		tokenDelta := int64(0)
		if result.NewDay {
			tokenDelta = 1
		}

		err = tx.NewUpdate().
			Model(&updated).
			Set("last_check_in = ?", now).
			Set("streak_days = ?", result.StreakDays).
			Set("tokens = tokens + ?", tokenDelta).
			Set("updated_at = ?", now).
			Where("id = ?", checkIn.UserID).
			Returning("*").
			Scan(ctx)
		if err != nil {
			return fmt.Errorf("failed to update streak state: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated.ToUser(), nil
}

func (r *CheckInRepository) ListRecent(ctx context.Context, userID string, limit int) ([]*models.CheckIn, error) {
	var rows []*models.CheckInDB
	err := r.db.NewSelect().
		Model(&rows).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return toCheckIns(rows), nil
}

func (r *CheckInRepository) ListSince(ctx context.Context, userID string, since time.Time) ([]*models.CheckIn, error) {
	var rows []*models.CheckInDB
	err := r.db.NewSelect().
		Model(&rows).
		Where("user_id = ?", userID).
		Where("created_at >= ?", since).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return toCheckIns(rows), nil
}

func toCheckIns(rows []*models.CheckInDB) []*models.CheckIn {
	checkIns := make([]*models.CheckIn, len(rows))
	for i, row := range rows {
		checkIns[i] = row.ToCheckIn()
	}
	return checkIns
}
