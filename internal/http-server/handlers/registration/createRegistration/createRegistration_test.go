package createRegistration

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dentalSummit/internal/http-server/handlers/registration/createRegistration/mocks"
	"dentalSummit/internal/lib/logger/handlers/slogdiscard"
	"dentalSummit/internal/models"
	"dentalSummit/internal/storage"
)

func TestCreateRegistrationHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	openEvent := &models.Event{
		ID:                   "evt1",
		Name:                 "Digital Dentistry Summit 2026",
		MaxCapacity:          100,
		CurrentRegistrations: 10,
	}

	usablePromo := &models.PromoCode{
		Code:          "SAVE10",
		DiscountType:  models.DiscountTypePercentage,
		DiscountValue: 10,
		IsActive:      true,
		UsageLimit:    100,
		CurrentUses:   5,
	}

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(store *mocks.RegistrationStore)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			requestBody: `{
				"first_name": "Anna",
				"last_name": "Petrova",
				"email": "anna@clinic.example",
				"accommodation_type": "single",
				"food_preference": "standard",
				"materials_kit": true
			}`,
			mockSetup: func(store *mocks.RegistrationStore) {
				store.On("GetUpcomingEvent").Return(openEvent, nil)
				store.On("SaveRegistration", mock.AnythingOfType("*models.Registration")).Return(nil)
				store.On("IncrementRegistrations", "evt1").Return(nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				var resp RegistrationResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				assert.NotEmpty(t, resp.RegistrationID)
				assert.Regexp(t, `^DS-\d{4}-[0-9A-F]{6}$`, resp.ConfirmationNumber)
				assert.Equal(t, 824, resp.Pricing.Total)
			},
		},
		{
			name: "Success with percentage promo",
			requestBody: `{
				"first_name": "Anna",
				"last_name": "Petrova",
				"email": "anna@clinic.example",
				"promo_code": "SAVE10"
			}`,
			mockSetup: func(store *mocks.RegistrationStore) {
				store.On("GetPromoCode", "SAVE10").Return(usablePromo, nil)
				store.On("GetUpcomingEvent").Return(openEvent, nil)
				store.On("RedeemPromoCode", "SAVE10").Return(nil)
				store.On("SaveRegistration", mock.AnythingOfType("*models.Registration")).Return(nil)
				store.On("IncrementRegistrations", "evt1").Return(nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				var resp RegistrationResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, 50, resp.Pricing.Discount)
				assert.Equal(t, 449, resp.Pricing.Total)
			},
		},
		{
			name: "Success without resolvable event",
			requestBody: `{
				"first_name": "Anna",
				"last_name": "Petrova",
				"email": "anna@clinic.example"
			}`,
			mockSetup: func(store *mocks.RegistrationStore) {
				store.On("GetUpcomingEvent").Return(nil, storage.ErrNotFound)
				store.On("SaveRegistration", mock.AnythingOfType("*models.Registration")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				var resp RegistrationResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				assert.Equal(t, 449, resp.Pricing.Total)
			},
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			mockSetup:      func(store *mocks.RegistrationStore) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing required fields",
			requestBody:    `{"phone": "+1 555 0100"}`,
			mockSetup:      func(store *mocks.RegistrationStore) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "FirstName")
				assert.Contains(t, body, "LastName")
				assert.Contains(t, body, "Email")
			},
		},
		{
			name: "Invalid email",
			requestBody: `{
				"first_name": "Anna",
				"last_name": "Petrova",
				"email": "not-an-email"
			}`,
			mockSetup:      func(store *mocks.RegistrationStore) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Email")
			},
		},
		{
			name: "Invalid accommodation type",
			requestBody: `{
				"first_name": "Anna",
				"last_name": "Petrova",
				"email": "anna@clinic.example",
				"accommodation_type": "penthouse"
			}`,
			mockSetup:      func(store *mocks.RegistrationStore) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "AccommodationType")
			},
		},
		{
			name: "Unknown promo code",
			requestBody: `{
				"first_name": "Anna",
				"last_name": "Petrova",
				"email": "anna@clinic.example",
				"promo_code": "NOSUCH"
			}`,
			mockSetup: func(store *mocks.RegistrationStore) {
				store.On("GetPromoCode", "NOSUCH").Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field PromoCode is not a known promo code"}`,
		},
		{
			name: "Deactivated promo code",
			requestBody: `{
				"first_name": "Anna",
				"last_name": "Petrova",
				"email": "anna@clinic.example",
				"promo_code": "OLD"
			}`,
			mockSetup: func(store *mocks.RegistrationStore) {
				store.On("GetPromoCode", "OLD").Return(&models.PromoCode{
					Code:          "OLD",
					DiscountType:  models.DiscountTypeFixed,
					DiscountValue: 25,
					IsActive:      false,
					UsageLimit:    100,
				}, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field PromoCode is expired or exhausted"}`,
		},
		{
			name: "Promo code lost redemption race",
			requestBody: `{
				"first_name": "Anna",
				"last_name": "Petrova",
				"email": "anna@clinic.example",
				"promo_code": "SAVE10"
			}`,
			mockSetup: func(store *mocks.RegistrationStore) {
				store.On("GetPromoCode", "SAVE10").Return(usablePromo, nil)
				store.On("GetUpcomingEvent").Return(nil, storage.ErrNotFound)
				store.On("RedeemPromoCode", "SAVE10").Return(storage.ErrPromoExhausted)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"promo code expired or exhausted"}`,
		},
		{
			name: "Event already full",
			requestBody: `{
				"first_name": "Anna",
				"last_name": "Petrova",
				"email": "anna@clinic.example",
				"event_id": "evt1"
			}`,
			mockSetup: func(store *mocks.RegistrationStore) {
				store.On("GetEvent", "evt1").Return(&models.Event{
					ID:                   "evt1",
					MaxCapacity:          100,
					CurrentRegistrations: 100,
					IsFull:               true,
				}, nil)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"event is full"}`,
		},
		{
			name: "Event fills up during registration",
			requestBody: `{
				"first_name": "Anna",
				"last_name": "Petrova",
				"email": "anna@clinic.example",
				"event_id": "evt1"
			}`,
			mockSetup: func(store *mocks.RegistrationStore) {
				store.On("GetEvent", "evt1").Return(openEvent, nil)
				store.On("SaveRegistration", mock.AnythingOfType("*models.Registration")).Return(nil)
				store.On("IncrementRegistrations", "evt1").Return(storage.ErrEventFull)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"event is full"}`,
		},
		{
			name: "Save failure",
			requestBody: `{
				"first_name": "Anna",
				"last_name": "Petrova",
				"email": "anna@clinic.example"
			}`,
			mockSetup: func(store *mocks.RegistrationStore) {
				store.On("GetUpcomingEvent").Return(nil, storage.ErrNotFound)
				store.On("SaveRegistration", mock.AnythingOfType("*models.Registration")).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to create registration"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			store := mocks.NewRegistrationStore(t)
			tc.mockSetup(store)

			handler := New(logger, store)

			req, err := http.NewRequest(http.MethodPost, "/api/registrations", bytes.NewBufferString(tc.requestBody))
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

// seatLimitedStore enforces capacity the way the SQL layer does, with the
// check and the increment under one lock.
type seatLimitedStore struct {
	mu       sync.Mutex
	capacity int
	taken    int
	saved    int
}

func (s *seatLimitedStore) GetPromoCode(code string) (*models.PromoCode, error) {
	return nil, storage.ErrNotFound
}

func (s *seatLimitedStore) RedeemPromoCode(code string) error { return nil }

func (s *seatLimitedStore) GetEvent(id string) (*models.Event, error) {
	return &models.Event{ID: id, MaxCapacity: s.capacity}, nil
}

func (s *seatLimitedStore) GetUpcomingEvent() (*models.Event, error) {
	return s.GetEvent("evt1")
}

func (s *seatLimitedStore) SaveRegistration(reg *models.Registration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.saved++

	return nil
}

func (s *seatLimitedStore) IncrementRegistrations(eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.taken >= s.capacity {
		return storage.ErrEventFull
	}
	s.taken++

	return nil
}

func TestCreateRegistrationNoOverbooking(t *testing.T) {
	t.Parallel()

	const (
		capacity = 3
		attempts = 20
	)

	store := &seatLimitedStore{capacity: capacity}
	handler := New(slogdiscard.NewDiscardLogger(), store)

	body := `{
		"first_name": "Anna",
		"last_name": "Petrova",
		"email": "anna@clinic.example",
		"event_id": "evt1"
	}`

	codes := make(chan int, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := httptest.NewRequest(http.MethodPost, "/api/registrations", bytes.NewBufferString(body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)
			codes <- rr.Code
		}()
	}
	wg.Wait()
	close(codes)

	created, conflicts := 0, 0
	for code := range codes {
		switch code {
		case http.StatusCreated:
			created++
		case http.StatusConflict:
			conflicts++
		default:
			t.Fatalf("unexpected status code %d", code)
		}
	}

	assert.Equal(t, capacity, created)
	assert.Equal(t, attempts-capacity, conflicts)
	assert.Equal(t, capacity, store.taken)
}
