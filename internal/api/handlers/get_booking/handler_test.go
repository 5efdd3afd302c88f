package get_booking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/LifeCare-BookingService/internal/service/bookings"
	"github.com/m04kA/LifeCare-BookingService/internal/service/bookings/models"
	"github.com/m04kA/LifeCare-BookingService/pkg/logger"
)

type fakeService struct {
	booking *models.BookingResponse
	err     error
}

func (s *fakeService) GetByID(_ context.Context, id int64) (*models.BookingResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	b := *s.booking
	b.ID = id
	return &b, nil
}

func serve(svc BookingService, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/bookings/{id}", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		svc        *fakeService
		wantStatus int
		wantBody   string
	}{
		{
			name:       "found",
			path:       "/api/v1/bookings/5",
			svc:        &fakeService{booking: &models.BookingResponse{Name: "Asha", Status: "pending"}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "not found",
			path:       "/api/v1/bookings/6",
			svc:        &fakeService{err: bookings.ErrBookingNotFound},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"success":false,"message":"Booking not found"}`,
		},
		{
			name:       "bad id",
			path:       "/api/v1/bookings/abc",
			svc:        &fakeService{},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success":false,"message":"Invalid booking ID"}`,
		},
		{
			name:       "internal",
			path:       "/api/v1/bookings/7",
			svc:        &fakeService{err: errors.New("boom")},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(tt.svc, tt.path)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}

	rec := serve(&fakeService{booking: &models.BookingResponse{Name: "Asha"}}, "/api/v1/bookings/5")
	assert.Contains(t, rec.Body.String(), `"id":5`)
}
