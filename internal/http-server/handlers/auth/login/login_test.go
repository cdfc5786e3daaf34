package login

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dentalSummit/internal/auth"
	"dentalSummit/internal/http-server/handlers/auth/login/mocks"
	"dentalSummit/internal/lib/logger/handlers/slogdiscard"
)

func TestLoginHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(tokens *mocks.TokenIssuer)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: `{"email": "admin@dentalsummit.example", "password": "demo-password"}`,
			mockSetup: func(tokens *mocks.TokenIssuer) {
				tokens.On("Login", "admin@dentalsummit.example", "demo-password").
					Return("signed.jwt.token", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","token":"signed.jwt.token"}`,
		},
		{
			name:        "Wrong credentials",
			requestBody: `{"email": "admin@dentalsummit.example", "password": "guess"}`,
			mockSetup: func(tokens *mocks.TokenIssuer) {
				tokens.On("Login", "admin@dentalsummit.example", "guess").
					Return("", auth.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
		{
			name:           "Missing fields",
			requestBody:    `{}`,
			mockSetup:      func(tokens *mocks.TokenIssuer) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Email")
				assert.Contains(t, body, "Password")
			},
		},
		{
			name:           "Malformed email",
			requestBody:    `{"email": "not-an-email", "password": "demo-password"}`,
			mockSetup:      func(tokens *mocks.TokenIssuer) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Email")
			},
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			mockSetup:      func(tokens *mocks.TokenIssuer) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:        "Signing failure",
			requestBody: `{"email": "admin@dentalsummit.example", "password": "demo-password"}`,
			mockSetup: func(tokens *mocks.TokenIssuer) {
				tokens.On("Login", "admin@dentalsummit.example", "demo-password").
					Return("", errors.New("signing error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to login"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tokens := mocks.NewTokenIssuer(t)
			tc.mockSetup(tokens)

			handler := New(logger, tokens)

			req, err := http.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
