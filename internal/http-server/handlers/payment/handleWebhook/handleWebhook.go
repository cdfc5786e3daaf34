package handleWebhook

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/stripe/stripe-go/v76"

	"dentalSummit/internal/lib/api/response"
	"dentalSummit/internal/lib/logger/sl"
	"dentalSummit/internal/models"
	"dentalSummit/internal/storage"
)

const (
	eventPaymentSucceeded = "payment_intent.succeeded"
	eventPaymentFailed    = "payment_intent.payment_failed"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=WebhookVerifier
type WebhookVerifier interface {
	ConstructWebhookEvent(payload []byte, signature string) (stripe.Event, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegistrationReconciler
type RegistrationReconciler interface {
	GetRegistrationByPaymentIntent(intentID string) (*models.Registration, error)
	CompletePayment(id string, paidAt time.Time) error
	FailPayment(id string) error
}

// New handles provider-signed webhook callbacks. The handler reads the raw
// body itself because signature verification needs the exact bytes. Unknown
// event types and unknown intents are accepted and ignored; replays of a
// known event set the same status again.
func New(log *slog.Logger, provider WebhookVerifier, registrations RegistrationReconciler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.payment.handleWebhook.New"

		log = log.With(slog.String("op", op))

		payload, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("failed to read webhook body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to read request body"))
			return
		}

		event, err := provider.ConstructWebhookEvent(payload, r.Header.Get("Stripe-Signature"))
		if err != nil {
			log.Warn("webhook signature rejected", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid signature"))
			return
		}

		switch string(event.Type) {
		case eventPaymentSucceeded, eventPaymentFailed:
		default:
			log.Info("ignoring webhook event", slog.String("type", string(event.Type)))
			render.JSON(w, r, response.OK())
			return
		}

		var intent stripe.PaymentIntent
		if err = json.Unmarshal(event.Data.Raw, &intent); err != nil {
			log.Error("failed to decode webhook payload", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode event"))
			return
		}

		reg, err := registrations.GetRegistrationByPaymentIntent(intent.ID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				log.Warn("webhook for unknown payment intent", slog.String("intent_id", intent.ID))
				render.JSON(w, r, response.OK())
				return
			}

			log.Error("failed to look up registration", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to process event"))
			return
		}

		switch string(event.Type) {
		case eventPaymentSucceeded:
			err = registrations.CompletePayment(reg.ID, time.Now())
		case eventPaymentFailed:
			err = registrations.FailPayment(reg.ID)
		}
		if err != nil {
			log.Error("failed to apply payment transition", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to process event"))
			return
		}

		log.Info("webhook processed",
			slog.String("type", string(event.Type)),
			slog.String("registration_id", reg.ID),
		)

		render.JSON(w, r, response.OK())
	}
}
