package insight

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bonesy512/situationship/internal/models"
)

type fakeUserRepo struct {
	user *models.User
}

func (f *fakeUserRepo) InitializeDatabase(ctx context.Context) error { return nil }

func (f *fakeUserRepo) GetByID(ctx context.Context, userID string) (*models.User, error) {
	if f.user == nil || f.user.ID != userID {
		return nil, models.ErrNotFound
	}
	return f.user, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error { return nil }

func (f *fakeUserRepo) GetOrCreate(ctx context.Context, userID, email, firstName, lastName string) (*models.User, error) {
	return f.GetByID(ctx, userID)
}

func (f *fakeUserRepo) AddTokens(ctx context.Context, userID string, amount int64) error {
	return nil
}

func (f *fakeUserRepo) UpdateStripeCustomerID(ctx context.Context, userID, stripeCustomerID string) error {
	return nil
}

type fakeInsightRepo struct {
	created   *models.Insight
	debited   int64
	debitErr  error
	listItems []*models.Insight
}

func (f *fakeInsightRepo) InitializeDatabase(ctx context.Context) error { return nil }

func (f *fakeInsightRepo) CreateWithDebit(ctx context.Context, insight *models.Insight, cost int64) error {
	if f.debitErr != nil {
		return f.debitErr
	}
	f.created = insight
	f.debited = cost
	return nil
}

func (f *fakeInsightRepo) ListRecent(ctx context.Context, userID string, limit int) ([]*models.Insight, error) {
	return f.listItems, nil
}

type fakeCheckInRepo struct {
	checkIns []*models.CheckIn
}

func (f *fakeCheckInRepo) InitializeDatabase(ctx context.Context) error { return nil }

func (f *fakeCheckInRepo) RecordCheckIn(ctx context.Context, checkIn *models.CheckIn, now time.Time) (*models.User, error) {
	return nil, nil
}

func (f *fakeCheckInRepo) ListRecent(ctx context.Context, userID string, limit int) ([]*models.CheckIn, error) {
	return f.checkIns, nil
}

func (f *fakeCheckInRepo) ListSince(ctx context.Context, userID string, since time.Time) ([]*models.CheckIn, error) {
	return f.checkIns, nil
}

type fakeMilestoneRepo struct {
	milestones []models.Milestone
}

func (f *fakeMilestoneRepo) InitializeDatabase(ctx context.Context) error { return nil }

func (f *fakeMilestoneRepo) Create(ctx context.Context, m *models.Milestone) (*models.Milestone, error) {
	return m, nil
}

func (f *fakeMilestoneRepo) ListByUser(ctx context.Context, userID string) ([]models.Milestone, error) {
	return f.milestones, nil
}

func (f *fakeMilestoneRepo) Delete(ctx context.Context, userID, id string) error { return nil }

type fakeGenerator struct {
	content string
	err     error
	prompt  string
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.content, nil
}

func newTestService(tokens int64, gen *fakeGenerator, repo *fakeInsightRepo) *Service {
	users := &fakeUserRepo{user: &models.User{ID: "user-1", Tokens: tokens}}
	return NewService(repo, users, &fakeCheckInRepo{}, &fakeMilestoneRepo{}, gen)
}

func TestGenerateDebitsTypeCost(t *testing.T) {
	repo := &fakeInsightRepo{}
	gen := &fakeGenerator{content: "generated insight"}
	svc := newTestService(5, gen, repo)

	got, err := svc.Generate(context.Background(), "user-1", models.InsightWeekly)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if repo.debited != 3 {
		t.Errorf("debited = %d, want 3", repo.debited)
	}
	if got.Content != "generated insight" {
		t.Errorf("Content = %q, want generated text", got.Content)
	}
	if got.Type != models.InsightWeekly {
		t.Errorf("Type = %q, want weekly", got.Type)
	}
	if !got.TokenUsed {
		t.Error("TokenUsed = false, want true")
	}
}

func TestGenerateInsufficientTokens(t *testing.T) {
	repo := &fakeInsightRepo{}
	svc := newTestService(2, &fakeGenerator{content: "x"}, repo)

	_, err := svc.Generate(context.Background(), "user-1", models.InsightWeekly)
	if !errors.Is(err, models.ErrInsufficientTokens) {
		t.Fatalf("Generate() error = %v, want ErrInsufficientTokens", err)
	}
	if repo.created != nil {
		t.Error("insight was recorded despite insufficient balance")
	}
}

func TestGenerateUnknownUserFails(t *testing.T) {
	svc := newTestService(5, &fakeGenerator{content: "x"}, &fakeInsightRepo{})

	_, err := svc.Generate(context.Background(), "nobody", models.InsightDaily)
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("Generate() error = %v, want ErrNotFound", err)
	}
}

func TestGenerateMissingType(t *testing.T) {
	svc := newTestService(5, &fakeGenerator{content: "x"}, &fakeInsightRepo{})

	_, err := svc.Generate(context.Background(), "user-1", "")
	if !errors.Is(err, models.ErrInvalidInput) {
		t.Fatalf("Generate() error = %v, want ErrInvalidInput", err)
	}
}

func TestGenerateFallsBackOnAIFailure(t *testing.T) {
	repo := &fakeInsightRepo{}
	gen := &fakeGenerator{err: errors.New("model unavailable")}
	svc := newTestService(5, gen, repo)

	got, err := svc.Generate(context.Background(), "user-1", models.InsightDaily)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if got.Content != fallbackContent {
		t.Errorf("Content = %q, want fallback message", got.Content)
	}
	if repo.debited != 1 {
		t.Errorf("debited = %d, want 1 (fallback still counts as production)", repo.debited)
	}
}

func TestGenerateUnknownTypeUsesDefaultCost(t *testing.T) {
	repo := &fakeInsightRepo{}
	svc := newTestService(1, &fakeGenerator{content: "x"}, repo)

	_, err := svc.Generate(context.Background(), "user-1", models.InsightType("horoscope"))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if repo.debited != 1 {
		t.Errorf("debited = %d, want 1", repo.debited)
	}
}
