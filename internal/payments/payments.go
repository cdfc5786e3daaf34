// Package payments wraps the Stripe client. Whenever the provider is not
// configured or a registration cannot be resolved, it falls back to demo-mode
// identifiers instead of failing; this is a sandbox product first.
package payments

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"github.com/stripe/stripe-go/v76/webhook"

	"dentalSummit/internal/config"
)

const demoIntentPrefix = "pi_demo_"

type Intent struct {
	ID           string
	ClientSecret string
	Demo         bool
}

type Client struct {
	log            *slog.Logger
	secretKey      string
	publishableKey string
	webhookSecret  string
}

func New(log *slog.Logger, cfg config.Stripe) *Client {
	stripe.Key = cfg.SecretKey

	return &Client{
		log:            log,
		secretKey:      cfg.SecretKey,
		publishableKey: cfg.PublishableKey,
		webhookSecret:  cfg.WebhookSecret,
	}
}

func (c *Client) Configured() bool {
	return c.secretKey != ""
}

func (c *Client) PublishableKey() string {
	return c.publishableKey
}

func IsDemoIntent(intentID string) bool {
	return strings.HasPrefix(intentID, demoIntentPrefix)
}

// NewDemoIntent issues a synthetic intent that never touches the provider.
func NewDemoIntent() Intent {
	id := demoIntentPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")
	return Intent{
		ID:           id,
		ClientSecret: id + "_secret_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		Demo:         true,
	}
}

// CreateIntent creates a real payment intent for the registration. Amount is
// whole dollars; Stripe wants cents.
func (c *Client) CreateIntent(amount int, registrationID, confirmationNumber string) (Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(amount) * 100),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Metadata: map[string]string{
			"registration_id":     registrationID,
			"confirmation_number": confirmationNumber,
		},
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return Intent{}, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return Intent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

func (c *Client) RetrieveIntent(intentID string) (*stripe.PaymentIntent, error) {
	pi, err := paymentintent.Get(intentID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payment intent: %w", err)
	}

	return pi, nil
}

// ConstructWebhookEvent verifies the provider signature against the shared
// webhook secret.
func (c *Client) ConstructWebhookEvent(payload []byte, signature string) (stripe.Event, error) {
	event, err := webhook.ConstructEvent(payload, signature, c.webhookSecret)
	if err != nil {
		return stripe.Event{}, fmt.Errorf("webhook signature verification failed: %w", err)
	}

	return event, nil
}
