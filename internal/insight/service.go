package insight

import (
	"context"
	"fmt"
	"time"

	"github.com/bonesy512/situationship/internal/checkin"
	"github.com/bonesy512/situationship/internal/logger"
	"github.com/bonesy512/situationship/internal/milestone"
	"github.com/bonesy512/situationship/internal/models"
	"github.com/bonesy512/situationship/internal/user"
	"github.com/google/uuid"
)

// fallbackContent stands in when generation fails. Producing it still
// counts as a successful generation: the debit goes through either way.
const fallbackContent = "We couldn't generate a personalized insight at this time. Please try again later."

type Service struct {
	insights   Repository
	users      user.Repository
	checkIns   checkin.Repository
	milestones milestone.Repository
	generator  Generator
}

func NewService(insights Repository, users user.Repository, checkIns checkin.Repository, milestones milestone.Repository, generator Generator) *Service {
	return &Service{
		insights:   insights,
		users:      users,
		checkIns:   checkIns,
		milestones: milestones,
		generator:  generator,
	}
}

// Generate produces one insight for the user and debits its token cost.
// Order matters: the balance is checked up front (cheap 402 without an AI
// call), content is produced, and only then does the conditional debit +
// insert transaction run.
func (s *Service) Generate(ctx context.Context, userID string, insightType models.InsightType) (*models.Insight, error) {
	if insightType == "" {
		return nil, fmt.Errorf("%w: insight type is required", models.ErrInvalidInput)
	}

	cost := CostForType(insightType)

	usr, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if usr.Tokens < cost {
		return nil, models.ErrInsufficientTokens
	}

	data := s.fetchPromptData(ctx, userID, insightType)
	prompt := buildPrompt(insightType, data)

	content, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		logger.Log.Error("insight generation failed, using fallback", "user_id", userID, "type", insightType, "error", err)
		content = fallbackContent
	}

	record := &models.Insight{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      insightType,
		Content:   content,
		TokenUsed: true,
		CreatedAt: time.Now(),
	}
	if err := s.insights.CreateWithDebit(ctx, record, cost); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *Service) ListRecent(ctx context.Context, userID string, limit int) ([]*models.Insight, error) {
	return s.insights.ListRecent(ctx, userID, limit)
}

// fetchPromptData pulls the history slice each insight type looks at.
// Lookup failures degrade to an empty slice rather than failing the
// generation.
func (s *Service) fetchPromptData(ctx context.Context, userID string, insightType models.InsightType) promptData {
	var data promptData
	var err error

	switch insightType {
	case models.InsightWeekly:
		data.CheckIns, err = s.checkIns.ListSince(ctx, userID, time.Now().AddDate(0, 0, -7))
	case models.InsightCommunication:
		data.CheckIns, err = s.checkIns.ListRecent(ctx, userID, 10)
	case models.InsightMilestone:
		data.Milestones, err = s.milestones.ListByUser(ctx, userID)
	default:
		data.CheckIns, err = s.checkIns.ListRecent(ctx, userID, 3)
	}
	if err != nil {
		logger.Log.Warn("failed to fetch insight context", "user_id", userID, "type", insightType, "error", err)
	}
	return data
}
