package confirmPayment

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/stripe/stripe-go/v76"

	"dentalSummit/internal/lib/api/response"
	"dentalSummit/internal/lib/logger/sl"
	"dentalSummit/internal/models"
	"dentalSummit/internal/payments"
	"dentalSummit/internal/storage"
)

type ConfirmRequest struct {
	RegistrationID  string `json:"registration_id"`
	PaymentIntentID string `json:"payment_intent_id" validate:"required"`
}

type ConfirmResponse struct {
	response.Response
	ConfirmationNumber string `json:"confirmation_number,omitempty"`
	PaymentStatus      string `json:"payment_status"`
	Reason             string `json:"reason,omitempty"`
	DemoMode           bool   `json:"demo_mode,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegistrationReconciler
type RegistrationReconciler interface {
	GetRegistrationByID(id string) (*models.Registration, error)
	GetRegistrationByPaymentIntent(intentID string) (*models.Registration, error)
	CompletePayment(id string, paidAt time.Time) error
	FailPayment(id string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=IntentRetriever
type IntentRetriever interface {
	RetrieveIntent(intentID string) (*stripe.PaymentIntent, error)
}

// New reconciles a registration with the outcome of its payment intent.
// Replays are harmless: the transition is a status set, not an increment.
func New(log *slog.Logger, registrations RegistrationReconciler, provider IntentRetriever) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.payment.confirmPayment.New"

		log = log.With(slog.String("op", op))

		var req ConfirmRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		if payments.IsDemoIntent(req.PaymentIntentID) {
			confirmDemo(w, r, log, registrations, req.RegistrationID)
			return
		}

		intent, err := provider.RetrieveIntent(req.PaymentIntentID)
		if err != nil {
			log.Error("failed to retrieve payment intent", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to confirm payment"))
			return
		}

		reg, err := resolveRegistration(registrations, req.RegistrationID, req.PaymentIntentID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("registration not found"))
				return
			}

			log.Error("failed to resolve registration", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to confirm payment"))
			return
		}

		if intent.Status != stripe.PaymentIntentStatusSucceeded {
			if err = registrations.FailPayment(reg.ID); err != nil {
				log.Error("failed to mark payment failed", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to confirm payment"))
				return
			}

			render.Status(r, http.StatusPaymentRequired)
			render.JSON(w, r, ConfirmResponse{
				Response:      response.Error("payment not completed"),
				PaymentStatus: models.PaymentStatusFailed,
				Reason:        failureReason(intent),
			})
			return
		}

		if err = registrations.CompletePayment(reg.ID, time.Now()); err != nil {
			log.Error("failed to complete payment", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to confirm payment"))
			return
		}

		log.Info("payment confirmed",
			slog.String("registration_id", reg.ID),
			slog.String("intent_id", req.PaymentIntentID),
		)

		render.JSON(w, r, ConfirmResponse{
			Response:           response.OK(),
			ConfirmationNumber: reg.ConfirmationNumber,
			PaymentStatus:      models.PaymentStatusCompleted,
		})
	}
}

// confirmDemo never fails: a resolvable registration gets a real transition,
// anything else gets a freshly generated confirmation number.
func confirmDemo(w http.ResponseWriter, r *http.Request, log *slog.Logger, registrations RegistrationReconciler, registrationID string) {
	if registrationID != "" {
		reg, err := registrations.GetRegistrationByID(registrationID)
		if err == nil {
			if err = registrations.CompletePayment(reg.ID, time.Now()); err != nil {
				log.Error("failed to complete demo payment", sl.Err(err))
			} else {
				render.JSON(w, r, ConfirmResponse{
					Response:           response.OK(),
					ConfirmationNumber: reg.ConfirmationNumber,
					PaymentStatus:      models.PaymentStatusCompleted,
					DemoMode:           true,
				})
				return
			}
		}
	}

	render.JSON(w, r, ConfirmResponse{
		Response:           response.OK(),
		ConfirmationNumber: models.NewConfirmationNumber(time.Now()),
		PaymentStatus:      models.PaymentStatusCompleted,
		DemoMode:           true,
	})
}

func resolveRegistration(registrations RegistrationReconciler, registrationID, intentID string) (*models.Registration, error) {
	if registrationID != "" {
		return registrations.GetRegistrationByID(registrationID)
	}

	return registrations.GetRegistrationByPaymentIntent(intentID)
}

func failureReason(intent *stripe.PaymentIntent) string {
	if intent.LastPaymentError != nil && intent.LastPaymentError.Msg != "" {
		return intent.LastPaymentError.Msg
	}

	return "payment intent status: " + string(intent.Status)
}
