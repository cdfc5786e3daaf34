package createIntent

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dentalSummit/internal/http-server/handlers/payment/createIntent/mocks"
	"dentalSummit/internal/lib/logger/handlers/slogdiscard"
	"dentalSummit/internal/models"
	"dentalSummit/internal/payments"
	"dentalSummit/internal/pricing"
	"dentalSummit/internal/storage"
)

func TestCreateIntentHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	reg := &models.Registration{
		ID:                 "reg1",
		ConfirmationNumber: "DS-2026-4F7A2C",
		Pricing:            pricing.Breakdown{Total: 749},
	}

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(regs *mocks.RegistrationGetter, provider *mocks.IntentCreator)
		expectedStatus int
		expectDemo     bool
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Real intent for a resolvable registration",
			requestBody: `{"registration_id": "reg1"}`,
			mockSetup: func(regs *mocks.RegistrationGetter, provider *mocks.IntentCreator) {
				provider.On("Configured").Return(true)
				regs.On("GetRegistrationByID", "reg1").Return(reg, nil)
				provider.On("CreateIntent", 749, "reg1", "DS-2026-4F7A2C").Return(payments.Intent{
					ID:           "pi_123",
					ClientSecret: "pi_123_secret_abc",
				}, nil)
				regs.On("SetPaymentIntent", "reg1", "pi_123").Return(nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp IntentResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "pi_123", resp.IntentID)
				assert.Equal(t, "pi_123_secret_abc", resp.ClientSecret)
				assert.False(t, resp.DemoMode)
			},
		},
		{
			name:        "Explicit amount overrides the snapshot",
			requestBody: `{"registration_id": "reg1", "amount": 900}`,
			mockSetup: func(regs *mocks.RegistrationGetter, provider *mocks.IntentCreator) {
				provider.On("Configured").Return(true)
				regs.On("GetRegistrationByID", "reg1").Return(reg, nil)
				provider.On("CreateIntent", 900, "reg1", "DS-2026-4F7A2C").Return(payments.Intent{
					ID:           "pi_123",
					ClientSecret: "pi_123_secret_abc",
				}, nil)
				regs.On("SetPaymentIntent", "reg1", "pi_123").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "Unconfigured provider falls back to demo",
			requestBody: `{"registration_id": "reg1"}`,
			mockSetup: func(regs *mocks.RegistrationGetter, provider *mocks.IntentCreator) {
				provider.On("Configured").Return(false)
			},
			expectedStatus: http.StatusOK,
			expectDemo:     true,
		},
		{
			name:        "Missing registration id falls back to demo",
			requestBody: `{}`,
			mockSetup: func(regs *mocks.RegistrationGetter, provider *mocks.IntentCreator) {
				provider.On("Configured").Return(true)
			},
			expectedStatus: http.StatusOK,
			expectDemo:     true,
		},
		{
			name:        "Unknown registration falls back to demo",
			requestBody: `{"registration_id": "ghost"}`,
			mockSetup: func(regs *mocks.RegistrationGetter, provider *mocks.IntentCreator) {
				provider.On("Configured").Return(true)
				regs.On("GetRegistrationByID", "ghost").Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusOK,
			expectDemo:     true,
		},
		{
			name:        "Provider rejection falls back to demo",
			requestBody: `{"registration_id": "reg1"}`,
			mockSetup: func(regs *mocks.RegistrationGetter, provider *mocks.IntentCreator) {
				provider.On("Configured").Return(true)
				regs.On("GetRegistrationByID", "reg1").Return(reg, nil)
				provider.On("CreateIntent", 749, "reg1", "DS-2026-4F7A2C").
					Return(payments.Intent{}, errors.New("stripe unavailable"))
			},
			expectedStatus: http.StatusOK,
			expectDemo:     true,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			mockSetup:      func(regs *mocks.RegistrationGetter, provider *mocks.IntentCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"failed to decode request"}`, body)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			regs := mocks.NewRegistrationGetter(t)
			provider := mocks.NewIntentCreator(t)
			tc.mockSetup(regs, provider)

			handler := New(logger, regs, provider)

			req, err := http.NewRequest(http.MethodPost, "/api/payments/create-intent", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectDemo {
				var resp IntentResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

				assert.True(t, resp.DemoMode)
				assert.True(t, strings.HasPrefix(resp.IntentID, "pi_demo_"), "intent id %q", resp.IntentID)
				assert.NotEmpty(t, resp.ClientSecret)
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
