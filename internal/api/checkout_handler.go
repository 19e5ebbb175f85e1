package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/bonesy512/situationship/internal/billing"
	"github.com/bonesy512/situationship/internal/logger"
	"github.com/bonesy512/situationship/internal/models"
	"github.com/bonesy512/situationship/internal/subscription"
	"github.com/bonesy512/situationship/internal/user"
	"github.com/stripe/stripe-go/v84"
)

type CheckoutHandler struct {
	billing *billing.Billing
	users   user.Repository
	subs    subscription.Repository
}

func NewCheckoutHandler(b *billing.Billing, users user.Repository, subs subscription.Repository) *CheckoutHandler {
	return &CheckoutHandler{billing: b, users: users, subs: subs}
}

type createSubscriptionRequest struct {
	Price string `json:"price"`
}

type purchaseTokensRequest struct {
	TokenAmount int64  `json:"tokenAmount"`
	PriceID     string `json:"priceId"`
}

type checkoutResponse struct {
	URL string `json:"url"`
}

func (h *CheckoutHandler) CreateSubscriptionCheckout(w http.ResponseWriter, r *http.Request) {
	dbUser, ok := user.GetDBUserFromContext(r.Context())
	if !ok {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	if !h.billing.Enabled() {
		writeError(w, models.ErrPaymentsNotConfigured)
		return
	}

	var req createSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Price == "" {
		http.Error(w, "price is required", http.StatusBadRequest)
		return
	}

	session, err := h.billing.CreateSubscriptionCheckout(r.Context(), dbUser.ID, req.Price)
	if err != nil {
		logger.Log.Error("failed to create subscription checkout", "user_id", dbUser.ID, "error", err)
		writeError(w, err)
		return
	}

	writeJSON(w, checkoutResponse{URL: session.URL})
}

func (h *CheckoutHandler) PurchaseTokens(w http.ResponseWriter, r *http.Request) {
	dbUser, ok := user.GetDBUserFromContext(r.Context())
	if !ok {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	if !h.billing.Enabled() {
		writeError(w, models.ErrPaymentsNotConfigured)
		return
	}

	var req purchaseTokensRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.TokenAmount <= 0 {
		http.Error(w, "tokenAmount must be positive", http.StatusBadRequest)
		return
	}

	session, err := h.billing.CreateTokenCheckout(r.Context(), dbUser.ID, req.TokenAmount)
	if err != nil {
		logger.Log.Error("failed to create token checkout", "user_id", dbUser.ID, "error", err)
		writeError(w, err)
		return
	}

	writeJSON(w, checkoutResponse{URL: session.URL})
}

type subscriptionStatusResponse struct {
	Status       models.SubscriptionStatus `json:"status"`
	IsSubscribed bool                      `json:"isSubscribed"`
	Tokens       int64                     `json:"tokens"`
}

func (h *CheckoutHandler) GetSubscription(w http.ResponseWriter, r *http.Request) {
	dbUser, ok := user.GetDBUserFromContext(r.Context())
	if !ok {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	resp := subscriptionStatusResponse{
		Status: models.SubscriptionInactive,
		Tokens: dbUser.Tokens,
	}

	sub, err := h.subs.GetByUserID(r.Context(), dbUser.ID)
	switch {
	case err == nil:
		resp.Status = sub.Status
		resp.IsSubscribed = sub.IsActive(time.Now())
	case errors.Is(err, models.ErrNotFound):
		// no subscription row yet, report inactive
	default:
		writeError(w, err)
		return
	}

	writeJSON(w, resp)
}

func (h *CheckoutHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read body", http.StatusBadRequest)
		return
	}

	signature := r.Header.Get("Stripe-Signature")
	event, err := h.billing.VerifyWebhookSignature(payload, signature)
	if err != nil {
		logger.Log.Warn("webhook signature verification failed", "error", err)
		http.Error(w, "Invalid signature", http.StatusBadRequest)
		return
	}

	var handleErr error
	switch event.Type {
	case "checkout.session.completed":
		handleErr = h.handleCheckoutCompleted(r.Context(), event)
	case "invoice.payment_succeeded":
		handleErr = h.handleInvoicePaid(r.Context(), event)
	case "customer.subscription.deleted":
		handleErr = h.handleSubscriptionDeleted(r.Context(), event)
	}

	if handleErr != nil {
		logger.Log.Error("webhook handling failed", "type", event.Type, "event_id", event.ID, "error", handleErr)
		http.Error(w, "Webhook handling failed", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *CheckoutHandler) handleCheckoutCompleted(ctx context.Context, event *stripe.Event) error {
	session, err := parseEventData[checkoutSession](event)
	if err != nil {
		return fmt.Errorf("failed to parse checkout session: %w", err)
	}

	switch session.Mode {
	case "payment":
		return h.creditTokenPurchase(ctx, event, session)
	case "subscription":
		return h.activateSubscription(ctx, session)
	}
	return nil
}

// creditTokenPurchase grants the purchased tokens exactly once per Stripe
// event. Stripe redelivers webhooks, and a token grant is additive, so the
// event ID is claimed in stripe_events before any balance change.
func (h *CheckoutHandler) creditTokenPurchase(ctx context.Context, event *stripe.Event, session *checkoutSession) error {
	if session.Metadata["type"] != "token_purchase" {
		return nil
	}

	userID := session.Metadata["userId"]
	if userID == "" {
		return fmt.Errorf("token purchase session %s has no userId metadata", session.ID)
	}

	tokenAmount, err := strconv.ParseInt(session.Metadata["tokenAmount"], 10, 64)
	if err != nil || tokenAmount <= 0 {
		return fmt.Errorf("token purchase session %s has invalid tokenAmount %q", session.ID, session.Metadata["tokenAmount"])
	}

	claimed, err := h.subs.MarkEventProcessed(ctx, event.ID, string(event.Type))
	if err != nil {
		return fmt.Errorf("failed to claim event %s: %w", event.ID, err)
	}
	if !claimed {
		logger.Log.Info("skipping already processed webhook event", "event_id", event.ID)
		return nil
	}

	if err := h.users.AddTokens(ctx, userID, tokenAmount); err != nil {
		return fmt.Errorf("failed to credit %d tokens to user %s: %w", tokenAmount, userID, err)
	}

	if session.Customer != "" {
		if err := h.users.UpdateStripeCustomerID(ctx, userID, session.Customer); err != nil {
			logger.Log.Error("failed to record stripe customer id", "user_id", userID, "error", err)
		}
	}

	logger.Log.Info("credited purchased tokens", "user_id", userID, "tokens", tokenAmount)
	return nil
}

func (h *CheckoutHandler) activateSubscription(ctx context.Context, session *checkoutSession) error {
	userID := session.Metadata["userId"]
	if userID == "" {
		return fmt.Errorf("subscription session %s has no userId metadata", session.ID)
	}
	if session.Subscription == "" {
		return fmt.Errorf("subscription session %s has no subscription id", session.ID)
	}

	sub, err := h.billing.GetSubscription(ctx, session.Subscription)
	if err != nil {
		return fmt.Errorf("failed to retrieve subscription %s: %w", session.Subscription, err)
	}

	priceID := session.Metadata["priceId"]
	if priceID == "" {
		priceID = subscriptionPriceID(sub)
	}

	record := &models.Subscription{
		UserID:               userID,
		StripeCustomerID:     session.Customer,
		StripeSubscriptionID: session.Subscription,
		StripePriceID:        priceID,
		Status:               models.SubscriptionActive,
		CurrentPeriodEnd:     subscriptionPeriodEnd(sub, time.Now()),
	}
	if err := h.subs.Upsert(ctx, record); err != nil {
		return fmt.Errorf("failed to upsert subscription for user %s: %w", userID, err)
	}

	if session.Customer != "" {
		if err := h.users.UpdateStripeCustomerID(ctx, userID, session.Customer); err != nil {
			logger.Log.Error("failed to record stripe customer id", "user_id", userID, "error", err)
		}
	}

	logger.Log.Info("subscription activated", "user_id", userID, "subscription_id", session.Subscription)
	return nil
}

func (h *CheckoutHandler) handleInvoicePaid(ctx context.Context, event *stripe.Event) error {
	invoice, err := parseEventData[invoiceEvent](event)
	if err != nil {
		return fmt.Errorf("failed to parse invoice: %w", err)
	}

	if invoice.Subscription == "" || invoice.BillingReason == "subscription_create" {
		return nil
	}

	sub, err := h.billing.GetSubscription(ctx, invoice.Subscription)
	if err != nil {
		return fmt.Errorf("failed to retrieve subscription %s: %w", invoice.Subscription, err)
	}

	err = h.subs.UpdateBySubscriptionID(ctx, invoice.Subscription, subscriptionPriceID(sub),
		subscriptionStatus(sub.Status), subscriptionPeriodEnd(sub, time.Now()))
	if errors.Is(err, models.ErrNotFound) {
		logger.Log.Warn("invoice paid for unknown subscription", "subscription_id", invoice.Subscription)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to extend subscription %s: %w", invoice.Subscription, err)
	}

	logger.Log.Info("subscription period extended", "subscription_id", invoice.Subscription)
	return nil
}

func (h *CheckoutHandler) handleSubscriptionDeleted(ctx context.Context, event *stripe.Event) error {
	sub, err := parseEventData[subscriptionEvent](event)
	if err != nil {
		return fmt.Errorf("failed to parse subscription: %w", err)
	}

	err = h.subs.MarkCanceled(ctx, sub.ID, time.Now())
	if errors.Is(err, models.ErrNotFound) {
		logger.Log.Warn("cancellation for unknown subscription", "subscription_id", sub.ID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to mark subscription %s canceled: %w", sub.ID, err)
	}

	logger.Log.Info("subscription canceled", "subscription_id", sub.ID)
	return nil
}

func subscriptionStatus(s stripe.SubscriptionStatus) models.SubscriptionStatus {
	switch s {
	case stripe.SubscriptionStatusActive, stripe.SubscriptionStatusTrialing:
		return models.SubscriptionActive
	case stripe.SubscriptionStatusPastDue:
		return models.SubscriptionPastDue
	case stripe.SubscriptionStatusCanceled:
		return models.SubscriptionCanceled
	default:
		return models.SubscriptionInactive
	}
}

func subscriptionPriceID(sub *stripe.Subscription) string {
	if sub.Items == nil || len(sub.Items.Data) == 0 || sub.Items.Data[0].Price == nil {
		return ""
	}
	return sub.Items.Data[0].Price.ID
}

// subscriptionPeriodEnd picks the paid-through date: the item's current
// period end, the trial end during a trial, or 30 days out when Stripe
// reports neither.
func subscriptionPeriodEnd(sub *stripe.Subscription, now time.Time) time.Time {
	if sub.Items != nil && len(sub.Items.Data) > 0 && sub.Items.Data[0].CurrentPeriodEnd > 0 {
		return time.Unix(sub.Items.Data[0].CurrentPeriodEnd, 0)
	}
	if sub.TrialEnd > 0 {
		return time.Unix(sub.TrialEnd, 0)
	}
	return now.AddDate(0, 0, 30)
}

func parseEventData[T any](event *stripe.Event) (*T, error) {
	var data T
	if err := json.Unmarshal(event.Data.Raw, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

type checkoutSession struct {
	ID           string            `json:"id"`
	Mode         string            `json:"mode"`
	Customer     string            `json:"customer"`
	Subscription string            `json:"subscription"`
	Metadata     map[string]string `json:"metadata"`
}

type invoiceEvent struct {
	Customer      string `json:"customer"`
	Subscription  string `json:"subscription"`
	BillingReason string `json:"billing_reason"`
}

type subscriptionEvent struct {
	ID       string `json:"id"`
	Customer string `json:"customer"`
}
