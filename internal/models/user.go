package models

import "time"

type User struct {
	ID               string     `json:"id"`
	Email            string     `json:"email"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	StripeCustomerID *string    `json:"stripe_customer_id,omitempty"`
	Tokens           int64      `json:"tokens"`
	StreakDays       int        `json:"streak_days"`
	LastCheckIn      *time.Time `json:"last_check_in,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
