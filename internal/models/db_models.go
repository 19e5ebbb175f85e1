package models

import (
	"time"

	"github.com/uptrace/bun"
)

type UserDB struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID               string     `bun:"id,pk" json:"id"`
	Email            string     `bun:"email,notnull" json:"email"`
	FirstName        string     `bun:"first_name" json:"first_name"`
	LastName         string     `bun:"last_name" json:"last_name"`
	StripeCustomerID *string    `bun:"stripe_customer_id" json:"stripe_customer_id,omitempty"`
	Tokens           int64      `bun:"tokens,notnull,default:0" json:"tokens"`
	StreakDays       int        `bun:"streak_days,notnull,default:0" json:"streak_days"`
	LastCheckIn      *time.Time `bun:"last_check_in" json:"last_check_in,omitempty"`
	CreatedAt        time.Time  `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt        time.Time  `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
}

func (u *UserDB) ToUser() *User {
	return &User{
		ID:               u.ID,
		Email:            u.Email,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		StripeCustomerID: u.StripeCustomerID,
		Tokens:           u.Tokens,
		StreakDays:       u.StreakDays,
		LastCheckIn:      u.LastCheckIn,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

func UserFromDomain(u *User) *UserDB {
	return &UserDB{
		ID:               u.ID,
		Email:            u.Email,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		StripeCustomerID: u.StripeCustomerID,
		Tokens:           u.Tokens,
		StreakDays:       u.StreakDays,
		LastCheckIn:      u.LastCheckIn,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

type CheckInDB struct {
	bun.BaseModel `bun:"table:check_ins,alias:ci"`

	ID            string    `bun:"id,pk,type:uuid" json:"id"`
	UserID        string    `bun:"user_id,notnull" json:"user_id"`
	Mood          int       `bun:"mood,notnull" json:"mood"`
	Connection    int       `bun:"connection,notnull" json:"connection"`
	Communication int       `bun:"communication,notnull" json:"communication"`
	Highlight     *string   `bun:"highlight" json:"highlight,omitempty"`
	Challenge     *string   `bun:"challenge" json:"challenge,omitempty"`
	CreatedAt     time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}

func (c *CheckInDB) ToCheckIn() *CheckIn {
	return &CheckIn{
		ID:            c.ID,
		UserID:        c.UserID,
		Mood:          c.Mood,
		Connection:    c.Connection,
		Communication: c.Communication,
		Highlight:     c.Highlight,
		Challenge:     c.Challenge,
		CreatedAt:     c.CreatedAt,
	}
}

type InsightDB struct {
	bun.BaseModel `bun:"table:insights,alias:i"`

	ID        string      `bun:"id,pk,type:uuid" json:"id"`
	UserID    string      `bun:"user_id,notnull" json:"user_id"`
	Type      InsightType `bun:"type,notnull" json:"type"`
	Content   string      `bun:"content,notnull" json:"content"`
	TokenUsed bool        `bun:"token_used,notnull,default:false" json:"token_used"`
	CreatedAt time.Time   `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}

func (i *InsightDB) ToInsight() *Insight {
	return &Insight{
		ID:        i.ID,
		UserID:    i.UserID,
		Type:      i.Type,
		Content:   i.Content,
		TokenUsed: i.TokenUsed,
		CreatedAt: i.CreatedAt,
	}
}

type SubscriptionDB struct {
	bun.BaseModel `bun:"table:subscriptions,alias:s"`

	UserID               string             `bun:"user_id,pk" json:"user_id"`
	StripeCustomerID     string             `bun:"stripe_customer_id" json:"stripe_customer_id"`
	StripeSubscriptionID string             `bun:"stripe_subscription_id" json:"stripe_subscription_id"`
	StripePriceID        string             `bun:"stripe_price_id" json:"stripe_price_id"`
	Status               SubscriptionStatus `bun:"status,notnull,default:'inactive'" json:"status"`
	CurrentPeriodEnd     time.Time          `bun:"current_period_end" json:"current_period_end"`
	CreatedAt            time.Time          `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt            time.Time          `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
}

func (s *SubscriptionDB) ToSubscription() *Subscription {
	return &Subscription{
		UserID:               s.UserID,
		StripeCustomerID:     s.StripeCustomerID,
		StripeSubscriptionID: s.StripeSubscriptionID,
		StripePriceID:        s.StripePriceID,
		Status:               s.Status,
		CurrentPeriodEnd:     s.CurrentPeriodEnd,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}

func SubscriptionFromDomain(sub *Subscription) *SubscriptionDB {
	return &SubscriptionDB{
		UserID:               sub.UserID,
		StripeCustomerID:     sub.StripeCustomerID,
		StripeSubscriptionID: sub.StripeSubscriptionID,
		StripePriceID:        sub.StripePriceID,
		Status:               sub.Status,
		CurrentPeriodEnd:     sub.CurrentPeriodEnd,
		CreatedAt:            sub.CreatedAt,
		UpdatedAt:            sub.UpdatedAt,
	}
}

type MilestoneDB struct {
	bun.BaseModel `bun:"table:milestones,alias:m"`

	ID          string        `bun:"id,pk,type:uuid" json:"id"`
	UserID      string        `bun:"user_id,notnull" json:"user_id"`
	Date        time.Time     `bun:"date,notnull" json:"date"`
	Description string        `bun:"description,notnull" json:"description"`
	Type        MilestoneType `bun:"type,notnull" json:"type"`
	CreatedAt   time.Time     `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}

func (m *MilestoneDB) ToMilestone() *Milestone {
	return &Milestone{
		ID:          m.ID,
		UserID:      m.UserID,
		Date:        m.Date,
		Description: m.Description,
		Type:        m.Type,
		CreatedAt:   m.CreatedAt,
	}
}

// StripeEventDB records webhook events that mutated state, keyed by the
// Stripe event ID. Payment processors redeliver events; inserting here with
// a conflict check makes credit grants idempotent.
type StripeEventDB struct {
	bun.BaseModel `bun:"table:stripe_events,alias:se"`

	ID          string    `bun:"id,pk" json:"id"`
	Type        string    `bun:"type,notnull" json:"type"`
	ProcessedAt time.Time `bun:"processed_at,notnull,default:current_timestamp" json:"processed_at"`
}
