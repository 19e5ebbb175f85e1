package models

import "time"

// CheckIn is a single daily mood/connection/communication record.
// Immutable once created.
type CheckIn struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Mood          int       `json:"mood"`
	Connection    int       `json:"connection"`
	Communication int       `json:"communication"`
	Highlight     *string   `json:"highlight,omitempty"`
	Challenge     *string   `json:"challenge,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
