package milestone

import (
	"context"
	"fmt"
	"time"

	"github.com/bonesy512/situationship/internal/models"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type Repository interface {
	InitializeDatabase(ctx context.Context) error
	Create(ctx context.Context, m *models.Milestone) (*models.Milestone, error)
	ListByUser(ctx context.Context, userID string) ([]models.Milestone, error)
	Delete(ctx context.Context, userID, id string) error
}

type MilestoneRepository struct {
	db *bun.DB
}

func NewMilestoneRepository(db *bun.DB) *MilestoneRepository {
	return &MilestoneRepository{db: db}
}

func (r *MilestoneRepository) InitializeDatabase(ctx context.Context) error {
	_, err := r.db.NewCreateTable().
		Model((*models.MilestoneDB)(nil)).
		IfNotExists().
		ForeignKey(`("user_id") REFERENCES "users" ("id") ON DELETE CASCADE`).
		Exec(ctx)
	if err != nil {
		return err
	}

	_, err = r.db.NewCreateIndex().
		Model((*models.MilestoneDB)(nil)).
		Index("idx_milestones_user_date").
		Column("user_id", "date").
		IfNotExists().
		Exec(ctx)
	return err
}

func (r *MilestoneRepository) Create(ctx context.Context, m *models.Milestone) (*models.Milestone, error) {
	row := &models.MilestoneDB{
		ID:          uuid.New().String(),
		UserID:      m.UserID,
		Date:        m.Date,
		Description: m.Description,
		Type:        m.Type,
		CreatedAt:   time.Now(),
	}
	if _, err := r.db.NewInsert().Model(row).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to insert milestone: %w", err)
	}
	return row.ToMilestone(), nil
}

func (r *MilestoneRepository) ListByUser(ctx context.Context, userID string) ([]models.Milestone, error) {
	var rows []*models.MilestoneDB
	err := r.db.NewSelect().
		Model(&rows).
		Where("user_id = ?", userID).
		Order("date ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	milestones := make([]models.Milestone, len(rows))
	for i, row := range rows {
		milestones[i] = *row.ToMilestone()
	}
	return milestones, nil
}

func (r *MilestoneRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.NewDelete().
		Model((*models.MilestoneDB)(nil)).
		Where("id = ?", id).
		Where("user_id = ?", userID).
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
