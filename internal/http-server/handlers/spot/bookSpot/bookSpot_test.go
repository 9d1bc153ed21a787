package bookSpot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"parkingBooker/internal/http-server/handlers/spot/bookSpot/mocks"
	"parkingBooker/internal/lib/api/response"
	"parkingBooker/internal/lib/logger/handlers/slogdiscard"
	"parkingBooker/internal/models"
	"parkingBooker/internal/parking"
	"parkingBooker/internal/storage"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBookSpotHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		spotID         string
		requestBody    string
		mockSetup      func(m *mocks.SpotBooker)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			spotID:      "1",
			requestBody: `{"hours": 3, "rate": 2.5}`,
			mockSetup: func(m *mocks.SpotBooker) {
				m.On("Book", mock.Anything, int64(1), 3, 2.5).
					Return(&models.Booking{ID: 10, SpotID: 1, Hours: 3, TotalCost: 7.5}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","booking_id":10,"total_cost":7.5}`,
		},
		{
			name:           "Missing spot ID",
			spotID:         "",
			requestBody:    `{"hours": 3, "rate": 2.5}`,
			mockSetup:      func(m *mocks.SpotBooker) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"spot id is required"}`,
		},
		{
			name:           "Invalid spot ID format",
			spotID:         "abc",
			requestBody:    `{"hours": 3, "rate": 2.5}`,
			mockSetup:      func(m *mocks.SpotBooker) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid spot id format"}`,
		},
		{
			name:           "Invalid JSON",
			spotID:         "1",
			requestBody:    `invalid json`,
			mockSetup:      func(m *mocks.SpotBooker) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Negative rate",
			spotID:         "1",
			requestBody:    `{"hours": 3, "rate": -1}`,
			mockSetup:      func(m *mocks.SpotBooker) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Rate must be at least 0"}`,
		},
		{
			name:           "Missing rate",
			spotID:         "1",
			requestBody:    `{"hours": 3}`,
			mockSetup:      func(m *mocks.SpotBooker) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Rate is a required field"}`,
		},
		{
			name:        "Zero rate is allowed",
			spotID:      "2",
			requestBody: `{"hours": 3, "rate": 0}`,
			mockSetup: func(m *mocks.SpotBooker) {
				m.On("Book", mock.Anything, int64(2), 3, 0.0).
					Return(&models.Booking{ID: 11, SpotID: 2, Hours: 3, TotalCost: 0}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","booking_id":11,"total_cost":0}`,
		},
		{
			name:        "Zero hours",
			spotID:      "1",
			requestBody: `{"hours": 0, "rate": 1.0}`,
			mockSetup: func(m *mocks.SpotBooker) {
				m.On("Book", mock.Anything, int64(1), 0, 1.0).
					Return(nil, fmt.Errorf("parking.Engine.Book: %w", parking.ErrInvalidHours))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"hours must be positive"}`,
		},
		{
			name:        "Spot already booked",
			spotID:      "1",
			requestBody: `{"hours": 2, "rate": 1.5}`,
			mockSetup: func(m *mocks.SpotBooker) {
				m.On("Book", mock.Anything, int64(1), 2, 1.5).
					Return(nil, fmt.Errorf("parking.Engine.Book: %w", storage.ErrSpotAlreadyBooked))
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"spot already booked"}`,
		},
		{
			name:        "Spot not found",
			spotID:      "99",
			requestBody: `{"hours": 2, "rate": 1.5}`,
			mockSetup: func(m *mocks.SpotBooker) {
				m.On("Book", mock.Anything, int64(99), 2, 1.5).
					Return(nil, fmt.Errorf("parking.Engine.Book: %w", storage.ErrSpotNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"spot not found"}`,
		},
		{
			name:        "Internal server error",
			spotID:      "1",
			requestBody: `{"hours": 2, "rate": 1.5}`,
			mockSetup: func(m *mocks.SpotBooker) {
				m.On("Book", mock.Anything, int64(1), 2, 1.5).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to book spot"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockBooker := mocks.NewSpotBooker(t)
			tc.mockSetup(mockBooker)

			handler := New(logger, mockBooker)

			url := "/spots/book"
			if tc.spotID != "" {
				url = "/spots/" + tc.spotID + "/book"
			}

			req, err := http.NewRequest(http.MethodPost, url, bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			router := chi.NewRouter()
			router.Route("/spots", func(r chi.Router) {
				r.Route("/{id}", func(r chi.Router) {
					r.Post("/book", handler)
				})
				r.Post("/book", handler)
			})

			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

func TestResponseOK(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rr := httptest.NewRecorder()

	responseOK(rr, req, &models.Booking{ID: 5, TotalCost: 12.25})

	assert.Equal(t, http.StatusOK, rr.Code)

	var actualResponse BookingResponse
	err := json.Unmarshal(rr.Body.Bytes(), &actualResponse)
	require.NoError(t, err)

	assert.Equal(t, response.StatusOK, actualResponse.Status)
	assert.Empty(t, actualResponse.Error)
	assert.Equal(t, int64(5), actualResponse.BookingID)
	assert.Equal(t, 12.25, actualResponse.TotalCost)
}

func TestHandlerWithChiContext(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	mockBooker := mocks.NewSpotBooker(t)
	handler := New(logger, mockBooker)

	req, err := http.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"hours": 1, "rate": 4}`))
	require.NoError(t, err)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "123")

	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	req = req.WithContext(ctx)

	rr := httptest.NewRecorder()

	mockBooker.On("Book", mock.Anything, int64(123), 1, 4.0).
		Return(&models.Booking{ID: 1, SpotID: 123, Hours: 1, TotalCost: 4}, nil)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"OK","booking_id":1,"total_cost":4}`, rr.Body.String())
}

func TestHandlerWithoutChiContext(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	mockBooker := mocks.NewSpotBooker(t)
	handler := New(logger, mockBooker)

	req, err := http.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"hours": 1, "rate": 4}`))
	require.NoError(t, err)

	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "spot id is required")
}
