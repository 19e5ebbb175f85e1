package api

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/bonesy512/situationship/internal/models"
	"github.com/stripe/stripe-go/v84"
)

func TestParseCheckoutSessionEvent(t *testing.T) {
	raw := `{
		"id": "cs_test_123",
		"mode": "payment",
		"customer": "cus_abc",
		"subscription": "",
		"metadata": {
			"userId": "user-1",
			"tokenAmount": "5",
			"type": "token_purchase"
		}
	}`
	event := &stripe.Event{
		ID:   "evt_1",
		Type: "checkout.session.completed",
		Data: &stripe.EventData{Raw: json.RawMessage(raw)},
	}

	session, err := parseEventData[checkoutSession](event)
	if err != nil {
		t.Fatalf("parseEventData() error = %v", err)
	}

	if session.ID != "cs_test_123" {
		t.Errorf("ID = %q, want cs_test_123", session.ID)
	}
	if session.Mode != "payment" {
		t.Errorf("Mode = %q, want payment", session.Mode)
	}
	if session.Customer != "cus_abc" {
		t.Errorf("Customer = %q, want cus_abc", session.Customer)
	}
	if session.Metadata["type"] != "token_purchase" {
		t.Errorf("Metadata[type] = %q, want token_purchase", session.Metadata["type"])
	}
	if session.Metadata["tokenAmount"] != "5" {
		t.Errorf("Metadata[tokenAmount] = %q, want 5", session.Metadata["tokenAmount"])
	}
}

func TestParseInvoiceEvent(t *testing.T) {
	raw := `{"customer":"cus_abc","subscription":"sub_123","billing_reason":"subscription_cycle"}`
	event := &stripe.Event{
		Type: "invoice.payment_succeeded",
		Data: &stripe.EventData{Raw: json.RawMessage(raw)},
	}

	invoice, err := parseEventData[invoiceEvent](event)
	if err != nil {
		t.Fatalf("parseEventData() error = %v", err)
	}
	if invoice.Subscription != "sub_123" {
		t.Errorf("Subscription = %q, want sub_123", invoice.Subscription)
	}
	if invoice.BillingReason != "subscription_cycle" {
		t.Errorf("BillingReason = %q, want subscription_cycle", invoice.BillingReason)
	}
}

func TestParseEventDataMalformed(t *testing.T) {
	event := &stripe.Event{
		Data: &stripe.EventData{Raw: json.RawMessage(`{not json`)},
	}
	if _, err := parseEventData[checkoutSession](event); err == nil {
		t.Fatal("parseEventData() expected error for malformed payload")
	}
}

func TestSubscriptionPeriodEnd(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	trialEnd := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		sub  *stripe.Subscription
		want time.Time
	}{
		{
			name: "item period end wins",
			sub: &stripe.Subscription{
				TrialEnd: trialEnd.Unix(),
				Items: &stripe.SubscriptionItemList{
					Data: []*stripe.SubscriptionItem{{CurrentPeriodEnd: periodEnd.Unix()}},
				},
			},
			want: periodEnd,
		},
		{
			name: "trial end when no items",
			sub:  &stripe.Subscription{TrialEnd: trialEnd.Unix()},
			want: trialEnd,
		},
		{
			name: "thirty days out when stripe reports neither",
			sub:  &stripe.Subscription{},
			want: now.AddDate(0, 0, 30),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := subscriptionPeriodEnd(tt.sub, now)
			if !got.Equal(tt.want) {
				t.Errorf("subscriptionPeriodEnd() = %v, want %v", got, tt.want)
			}
		})
	}
}

type fakeUserRepo struct {
	credits map[string]int64
	calls   int
}

func (f *fakeUserRepo) InitializeDatabase(ctx context.Context) error { return nil }

func (f *fakeUserRepo) GetByID(ctx context.Context, userID string) (*models.User, error) {
	return &models.User{ID: userID, Tokens: f.credits[userID]}, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error { return nil }

func (f *fakeUserRepo) GetOrCreate(ctx context.Context, userID, email, firstName, lastName string) (*models.User, error) {
	return f.GetByID(ctx, userID)
}

func (f *fakeUserRepo) AddTokens(ctx context.Context, userID string, amount int64) error {
	if f.credits == nil {
		f.credits = map[string]int64{}
	}
	f.credits[userID] += amount
	f.calls++
	return nil
}

func (f *fakeUserRepo) UpdateStripeCustomerID(ctx context.Context, userID, stripeCustomerID string) error {
	return nil
}

type fakeSubscriptionRepo struct {
	claimed map[string]bool
	upserts []*models.Subscription
}

func (f *fakeSubscriptionRepo) InitializeDatabase(ctx context.Context) error { return nil }

func (f *fakeSubscriptionRepo) Upsert(ctx context.Context, sub *models.Subscription) error {
	f.upserts = append(f.upserts, sub)
	return nil
}

func (f *fakeSubscriptionRepo) UpdateBySubscriptionID(ctx context.Context, stripeSubscriptionID, stripePriceID string, status models.SubscriptionStatus, periodEnd time.Time) error {
	return nil
}

func (f *fakeSubscriptionRepo) MarkCanceled(ctx context.Context, stripeSubscriptionID string, periodEnd time.Time) error {
	return nil
}

func (f *fakeSubscriptionRepo) GetByUserID(ctx context.Context, userID string) (*models.Subscription, error) {
	return nil, models.ErrNotFound
}

func (f *fakeSubscriptionRepo) MarkEventProcessed(ctx context.Context, eventID, eventType string) (bool, error) {
	if f.claimed == nil {
		f.claimed = map[string]bool{}
	}
	if f.claimed[eventID] {
		return false, nil
	}
	f.claimed[eventID] = true
	return true, nil
}

func tokenPurchaseEvent(t *testing.T, eventID string) *stripe.Event {
	t.Helper()
	raw := `{
		"id": "cs_test_456",
		"mode": "payment",
		"customer": "cus_abc",
		"metadata": {"userId": "user-1", "tokenAmount": "5", "type": "token_purchase"}
	}`
	return &stripe.Event{
		ID:   eventID,
		Type: "checkout.session.completed",
		Data: &stripe.EventData{Raw: json.RawMessage(raw)},
	}
}

func TestTokenPurchaseCreditedOncePerEvent(t *testing.T) {
	users := &fakeUserRepo{}
	subs := &fakeSubscriptionRepo{}
	h := NewCheckoutHandler(nil, users, subs)

	event := tokenPurchaseEvent(t, "evt_redelivered")
	for i := 0; i < 3; i++ {
		if err := h.handleCheckoutCompleted(context.Background(), event); err != nil {
			t.Fatalf("delivery %d: handleCheckoutCompleted() error = %v", i+1, err)
		}
	}

	if users.calls != 1 {
		t.Errorf("AddTokens called %d times, want 1", users.calls)
	}
	if got := users.credits["user-1"]; got != 5 {
		t.Errorf("credits = %d, want 5", got)
	}
}

func TestDistinctPurchaseEventsEachCredit(t *testing.T) {
	users := &fakeUserRepo{}
	subs := &fakeSubscriptionRepo{}
	h := NewCheckoutHandler(nil, users, subs)

	if err := h.handleCheckoutCompleted(context.Background(), tokenPurchaseEvent(t, "evt_1")); err != nil {
		t.Fatalf("handleCheckoutCompleted() error = %v", err)
	}
	if err := h.handleCheckoutCompleted(context.Background(), tokenPurchaseEvent(t, "evt_2")); err != nil {
		t.Fatalf("handleCheckoutCompleted() error = %v", err)
	}

	if got := users.credits["user-1"]; got != 10 {
		t.Errorf("credits = %d, want 10", got)
	}
}
