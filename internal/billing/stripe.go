package billing

import (
	"context"
	"fmt"

	"github.com/bonesy512/situationship/internal/config"
	"github.com/bonesy512/situationship/internal/models"
	"github.com/stripe/stripe-go/v84"
	"github.com/stripe/stripe-go/v84/webhook"
)

type Billing struct {
	sc              *stripe.Client
	webhookSecret   string
	appBaseURL      string
	tokenPriceCents int64
}

func NewBilling(cfg *config.Config) *Billing {
	b := &Billing{
		webhookSecret:   cfg.StripeWebhookSecret,
		appBaseURL:      cfg.AppBaseURL,
		tokenPriceCents: int64(cfg.TokenPriceCents),
	}
	if cfg.StripeSecretKey != "" {
		b.sc = stripe.NewClient(cfg.StripeSecretKey)
	}
	return b
}

// Enabled reports whether a Stripe secret key was configured. Handlers
// answer 503 when it wasn't, instead of failing deep inside a Stripe call.
func (b *Billing) Enabled() bool {
	return b.sc != nil
}

func (b *Billing) CreateSubscriptionCheckout(ctx context.Context, userID, priceID string) (*stripe.CheckoutSession, error) {
	if !b.Enabled() {
		return nil, models.ErrPaymentsNotConfigured
	}

	params := &stripe.CheckoutSessionCreateParams{
		PaymentMethodTypes: []*string{stripe.String("card")},
		LineItems: []*stripe.CheckoutSessionCreateLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		SuccessURL: stripe.String(b.appBaseURL + "/dashboard?checkout=success"),
		CancelURL:  stripe.String(b.appBaseURL + "/pricing"),
		Metadata: map[string]string{
			"userId":  userID,
			"priceId": priceID,
		},
	}
	return b.sc.V1CheckoutSessions.Create(ctx, params)
}

func (b *Billing) CreateTokenCheckout(ctx context.Context, userID string, tokenAmount int64) (*stripe.CheckoutSession, error) {
	if !b.Enabled() {
		return nil, models.ErrPaymentsNotConfigured
	}

	params := &stripe.CheckoutSessionCreateParams{
		PaymentMethodTypes: []*string{stripe.String("card")},
		LineItems: []*stripe.CheckoutSessionCreateLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionCreateLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionCreateLineItemPriceDataProductDataParams{
						Name:        stripe.String(fmt.Sprintf("%d Insight Tokens", tokenAmount)),
						Description: stripe.String("Tokens for generating personalized relationship insights"),
					},
					UnitAmount: stripe.Int64(b.tokenPriceCents),
				},
				Quantity: stripe.Int64(tokenAmount),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(b.appBaseURL + "/dashboard?purchase=success"),
		CancelURL:  stripe.String(b.appBaseURL + "/dashboard"),
		Metadata: map[string]string{
			"userId":      userID,
			"tokenAmount": fmt.Sprintf("%d", tokenAmount),
			"type":        "token_purchase",
		},
	}
	return b.sc.V1CheckoutSessions.Create(ctx, params)
}

func (b *Billing) GetSubscription(ctx context.Context, subscriptionID string) (*stripe.Subscription, error) {
	if !b.Enabled() {
		return nil, models.ErrPaymentsNotConfigured
	}
	return b.sc.V1Subscriptions.Retrieve(ctx, subscriptionID, &stripe.SubscriptionRetrieveParams{})
}

func (b *Billing) VerifyWebhookSignature(payload []byte, signature string) (*stripe.Event, error) {
	event, err := webhook.ConstructEvent(payload, signature, b.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("webhook signature verification failed: %w", err)
	}
	return &event, nil
}
