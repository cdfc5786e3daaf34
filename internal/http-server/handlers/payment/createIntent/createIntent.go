package createIntent

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"dentalSummit/internal/lib/api/response"
	"dentalSummit/internal/lib/logger/sl"
	"dentalSummit/internal/models"
	"dentalSummit/internal/payments"
	"dentalSummit/internal/storage"
)

type IntentRequest struct {
	RegistrationID string `json:"registration_id"`
	Amount         int    `json:"amount"`
}

type IntentResponse struct {
	response.Response
	IntentID     string `json:"intent_id"`
	ClientSecret string `json:"client_secret"`
	DemoMode     bool   `json:"demo_mode"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegistrationGetter
type RegistrationGetter interface {
	GetRegistrationByID(id string) (*models.Registration, error)
	SetPaymentIntent(id, intentID string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=IntentCreator
type IntentCreator interface {
	Configured() bool
	CreateIntent(amount int, registrationID, confirmationNumber string) (payments.Intent, error)
}

// New creates a payment intent for a registration. Demo mode is the universal
// fallback, never an error: an unconfigured provider, a missing registration
// id, or an unresolvable registration all yield a synthetic secret.
func New(log *slog.Logger, registrations RegistrationGetter, provider IntentCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.payment.createIntent.New"

		log = log.With(slog.String("op", op))

		var req IntentRequest

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if !provider.Configured() || req.RegistrationID == "" {
			respondDemo(w, r, log)
			return
		}

		reg, err := registrations.GetRegistrationByID(req.RegistrationID)
		if err != nil {
			if !errors.Is(err, storage.ErrNotFound) {
				log.Warn("failed to resolve registration", sl.Err(err))
			}
			respondDemo(w, r, log)
			return
		}

		amount := req.Amount
		if amount <= 0 {
			amount = reg.Pricing.Total
		}

		intent, err := provider.CreateIntent(amount, reg.ID, reg.ConfirmationNumber)
		if err != nil {
			log.Warn("provider rejected intent, falling back to demo", sl.Err(err))
			respondDemo(w, r, log)
			return
		}

		if err = registrations.SetPaymentIntent(reg.ID, intent.ID); err != nil {
			// The intent exists either way; confirm still works by explicit id.
			log.Error("failed to store payment intent id", sl.Err(err))
		}

		log.Info("payment intent created",
			slog.String("registration_id", reg.ID),
			slog.String("intent_id", intent.ID),
		)

		render.JSON(w, r, IntentResponse{
			Response:     response.OK(),
			IntentID:     intent.ID,
			ClientSecret: intent.ClientSecret,
			DemoMode:     false,
		})
	}
}

func respondDemo(w http.ResponseWriter, r *http.Request, log *slog.Logger) {
	intent := payments.NewDemoIntent()

	log.Info("issued demo payment intent", slog.String("intent_id", intent.ID))

	render.JSON(w, r, IntentResponse{
		Response:     response.OK(),
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		DemoMode:     true,
	})
}
