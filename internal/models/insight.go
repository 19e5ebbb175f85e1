package models

import "time"

type InsightType string

const (
	InsightDaily         InsightType = "daily"
	InsightWeekly        InsightType = "weekly"
	InsightCommunication InsightType = "communication"
	InsightMilestone     InsightType = "milestone"
)

type Insight struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	Type      InsightType `json:"type"`
	Content   string      `json:"content"`
	TokenUsed bool        `json:"token_used"`
	CreatedAt time.Time   `json:"created_at"`
}
