package get_review

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/LifeCare-BookingService/internal/service/reviews"
	"github.com/m04kA/LifeCare-BookingService/internal/service/reviews/models"
	"github.com/m04kA/LifeCare-BookingService/pkg/logger"
)

type fakeService map[int64]*models.ReviewResponse

func (s fakeService) GetPublic(_ context.Context, id int64) (*models.ReviewResponse, error) {
	r, ok := s[id]
	if !ok {
		return nil, reviews.ErrReviewNotFound
	}
	return r, nil
}

func TestHandle(t *testing.T) {
	router := mux.NewRouter()
	svc := fakeService{1: {ID: 1, Name: "Meena", Rating: 5, Status: "approved"}}
	router.HandleFunc("/api/v1/reviews/{id}", NewHandler(svc, logger.NewNop()).Handle)

	tests := []struct {
		path       string
		wantStatus int
	}{
		{path: "/api/v1/reviews/1", wantStatus: http.StatusOK},
		{path: "/api/v1/reviews/2", wantStatus: http.StatusNotFound},
		{path: "/api/v1/reviews/x", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
		assert.Equal(t, tt.wantStatus, rec.Code, tt.path)
	}
}
