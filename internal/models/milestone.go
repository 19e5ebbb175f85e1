package models

import "time"

type MilestoneType string

const (
	MilestonePositive    MilestoneType = "positive"
	MilestoneNeutral     MilestoneType = "neutral"
	MilestoneChallenging MilestoneType = "challenging"
	MilestoneNegative    MilestoneType = "negative"
)

func (t MilestoneType) Valid() bool {
	switch t {
	case MilestonePositive, MilestoneNeutral, MilestoneChallenging, MilestoneNegative:
		return true
	}
	return false
}

// Milestone is a user-logged dated relationship event with a valence type.
type Milestone struct {
	ID          string        `json:"id"`
	UserID      string        `json:"user_id,omitempty"`
	Date        time.Time     `json:"date"`
	Description string        `json:"description"`
	Type        MilestoneType `json:"type"`
	CreatedAt   time.Time     `json:"created_at"`
}
