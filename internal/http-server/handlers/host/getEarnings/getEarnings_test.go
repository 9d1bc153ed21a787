package getEarnings

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"parkingBooker/internal/http-server/handlers/host/getEarnings/mocks"
	"parkingBooker/internal/lib/logger/handlers/slogdiscard"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetEarningsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		hostID         string
		mockSetup      func(m *mocks.EarningsGetter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Host with bookings",
			hostID: "1",
			mockSetup: func(m *mocks.EarningsGetter) {
				m.On("TotalEarnings", mock.Anything, int64(1)).Return(12.5, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","host_id":1,"total_earnings":12.5}`,
		},
		{
			name:   "Host without bookings",
			hostID: "2",
			mockSetup: func(m *mocks.EarningsGetter) {
				m.On("TotalEarnings", mock.Anything, int64(2)).Return(0.0, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","host_id":2,"total_earnings":0}`,
		},
		{
			name:           "Invalid host ID format",
			hostID:         "two",
			mockSetup:      func(m *mocks.EarningsGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid host id format"}`,
		},
		{
			name:   "Storage error",
			hostID: "1",
			mockSetup: func(m *mocks.EarningsGetter) {
				m.On("TotalEarnings", mock.Anything, int64(1)).Return(0.0, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get earnings"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewEarningsGetter(t)
			tc.mockSetup(mockGetter)

			router := chi.NewRouter()
			router.Get("/hosts/{id}/earnings", New(logger, mockGetter))

			req := httptest.NewRequest(http.MethodGet, "/hosts/"+tc.hostID+"/earnings", nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
