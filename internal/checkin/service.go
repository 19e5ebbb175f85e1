package checkin

import (
	"context"
	"fmt"
	"time"

	"github.com/bonesy512/situationship/internal/models"
)

type SubmitRequest struct {
	Mood          *int    `json:"mood"`
	Connection    *int    `json:"connection"`
	Communication *int    `json:"communication"`
	Highlight     *string `json:"highlight,omitempty"`
	Challenge     *string `json:"challenge,omitempty"`
}

// Validate rejects the submission before any write happens.
func (req *SubmitRequest) Validate() error {
	for name, v := range map[string]*int{
		"mood":          req.Mood,
		"connection":    req.Connection,
		"communication": req.Communication,
	} {
		if v == nil {
			return fmt.Errorf("%w: missing required field %q", models.ErrInvalidInput, name)
		}
		if *v < 1 || *v > 10 {
			return fmt.Errorf("%w: %q must be between 1 and 10", models.ErrInvalidInput, name)
		}
	}
	return nil
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) RecordCheckIn(ctx context.Context, userID string, req *SubmitRequest, now time.Time) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	checkIn := &models.CheckIn{
		UserID:        userID,
		Mood:          *req.Mood,
		Connection:    *req.Connection,
		Communication: *req.Communication,
		Highlight:     req.Highlight,
		Challenge:     req.Challenge,
	}

	return s.repo.RecordCheckIn(ctx, checkIn, now)
}
