package handleWebhook

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"

	"dentalSummit/internal/http-server/handlers/payment/handleWebhook/mocks"
	"dentalSummit/internal/lib/logger/handlers/slogdiscard"
	"dentalSummit/internal/models"
	"dentalSummit/internal/storage"
)

func stripeEvent(eventType, intentID string) stripe.Event {
	raw, _ := json.Marshal(map[string]string{"id": intentID})

	return stripe.Event{
		Type: stripe.EventType(eventType),
		Data: &stripe.EventData{Raw: raw},
	}
}

func TestHandleWebhook(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	reg := &models.Registration{
		ID:              "reg1",
		PaymentIntentID: "pi_123",
	}

	testCases := []struct {
		name           string
		signature      string
		mockSetup      func(provider *mocks.WebhookVerifier, regs *mocks.RegistrationReconciler)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:      "Succeeded event completes the payment",
			signature: "sig_valid",
			mockSetup: func(provider *mocks.WebhookVerifier, regs *mocks.RegistrationReconciler) {
				provider.On("ConstructWebhookEvent", mock.Anything, "sig_valid").
					Return(stripeEvent("payment_intent.succeeded", "pi_123"), nil)
				regs.On("GetRegistrationByPaymentIntent", "pi_123").Return(reg, nil)
				regs.On("CompletePayment", "reg1", mock.AnythingOfType("time.Time")).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:      "Failed event marks the payment failed",
			signature: "sig_valid",
			mockSetup: func(provider *mocks.WebhookVerifier, regs *mocks.RegistrationReconciler) {
				provider.On("ConstructWebhookEvent", mock.Anything, "sig_valid").
					Return(stripeEvent("payment_intent.payment_failed", "pi_123"), nil)
				regs.On("GetRegistrationByPaymentIntent", "pi_123").Return(reg, nil)
				regs.On("FailPayment", "reg1").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:      "Invalid signature is rejected without side effects",
			signature: "sig_forged",
			mockSetup: func(provider *mocks.WebhookVerifier, regs *mocks.RegistrationReconciler) {
				provider.On("ConstructWebhookEvent", mock.Anything, "sig_forged").
					Return(stripe.Event{}, errors.New("signature mismatch"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid signature"}`,
		},
		{
			name:      "Unrelated event type is acknowledged and ignored",
			signature: "sig_valid",
			mockSetup: func(provider *mocks.WebhookVerifier, regs *mocks.RegistrationReconciler) {
				provider.On("ConstructWebhookEvent", mock.Anything, "sig_valid").
					Return(stripeEvent("invoice.paid", "in_123"), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:      "Unknown payment intent is acknowledged and ignored",
			signature: "sig_valid",
			mockSetup: func(provider *mocks.WebhookVerifier, regs *mocks.RegistrationReconciler) {
				provider.On("ConstructWebhookEvent", mock.Anything, "sig_valid").
					Return(stripeEvent("payment_intent.succeeded", "pi_unknown"), nil)
				regs.On("GetRegistrationByPaymentIntent", "pi_unknown").Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:      "Store failure on lookup",
			signature: "sig_valid",
			mockSetup: func(provider *mocks.WebhookVerifier, regs *mocks.RegistrationReconciler) {
				provider.On("ConstructWebhookEvent", mock.Anything, "sig_valid").
					Return(stripeEvent("payment_intent.succeeded", "pi_123"), nil)
				regs.On("GetRegistrationByPaymentIntent", "pi_123").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to process event"}`,
		},
		{
			name:      "Store failure on transition",
			signature: "sig_valid",
			mockSetup: func(provider *mocks.WebhookVerifier, regs *mocks.RegistrationReconciler) {
				provider.On("ConstructWebhookEvent", mock.Anything, "sig_valid").
					Return(stripeEvent("payment_intent.payment_failed", "pi_123"), nil)
				regs.On("GetRegistrationByPaymentIntent", "pi_123").Return(reg, nil)
				regs.On("FailPayment", "reg1").Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to process event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			provider := mocks.NewWebhookVerifier(t)
			regs := mocks.NewRegistrationReconciler(t)
			tc.mockSetup(provider, regs)

			handler := New(logger, provider, regs)

			req, err := http.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewBufferString(`{"raw":"payload"}`))
			require.NoError(t, err)
			req.Header.Set("Stripe-Signature", tc.signature)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}

// The verifier must see the exact bytes the client sent, not a re-encoded
// copy.
func TestHandleWebhookPassesRawBody(t *testing.T) {
	t.Parallel()

	payload := `{ "spacing":  "matters" }`

	provider := mocks.NewWebhookVerifier(t)
	regs := mocks.NewRegistrationReconciler(t)

	provider.On("ConstructWebhookEvent", []byte(payload), "sig").
		Return(stripeEvent("invoice.paid", "in_1"), nil)

	handler := New(slogdiscard.NewDiscardLogger(), provider, regs)

	req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewBufferString(payload))
	req.Header.Set("Stripe-Signature", "sig")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

// A redelivered event repeats the same status set and is acknowledged the
// same way; nothing is incremented on the replay.
func TestHandleWebhookReplay(t *testing.T) {
	t.Parallel()

	provider := mocks.NewWebhookVerifier(t)
	regs := mocks.NewRegistrationReconciler(t)

	provider.On("ConstructWebhookEvent", mock.Anything, "sig_valid").
		Return(stripeEvent("payment_intent.succeeded", "pi_123"), nil).Twice()
	regs.On("GetRegistrationByPaymentIntent", "pi_123").Return(&models.Registration{
		ID:              "reg1",
		PaymentIntentID: "pi_123",
	}, nil).Twice()
	regs.On("CompletePayment", "reg1", mock.AnythingOfType("time.Time")).Return(nil).Twice()

	handler := New(slogdiscard.NewDiscardLogger(), provider, regs)

	deliver := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewBufferString(`{"raw":"payload"}`))
		req.Header.Set("Stripe-Signature", "sig_valid")

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		return rr
	}

	first := deliver()
	second := deliver()

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
	assert.JSONEq(t, `{"status":"OK"}`, first.Body.String())
	assert.JSONEq(t, first.Body.String(), second.Body.String())

	regs.AssertNumberOfCalls(t, "CompletePayment", 2)
	regs.AssertNotCalled(t, "FailPayment", mock.Anything)
}
