package update_review_status

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/LifeCare-BookingService/internal/service/reviews"
	"github.com/m04kA/LifeCare-BookingService/internal/service/reviews/models"
	"github.com/m04kA/LifeCare-BookingService/pkg/logger"
	"github.com/m04kA/LifeCare-BookingService/pkg/validation"
)

type fakeService struct{}

func (fakeService) UpdateStatus(_ context.Context, id int64, req *models.UpdateStatusRequest) (*models.ReviewResponse, error) {
	switch {
	case id == 404:
		return nil, reviews.ErrReviewNotFound
	case req.Status != "approved" && req.Status != "rejected" && req.Status != "pending":
		return nil, fmt.Errorf("%w: %w", reviews.ErrInvalidInput, validation.FieldErr("status", "status must be one of: pending approved rejected"))
	}
	return &models.ReviewResponse{ID: id, Status: req.Status}, nil
}

func TestHandle(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/reviews/{id}/status", NewHandler(fakeService{}, logger.NewNop()).Handle).Methods(http.MethodPut)

	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
		contains   string
	}{
		{name: "approve", path: "/api/v1/reviews/3/status", body: `{"status":"approved"}`, wantStatus: http.StatusOK, contains: `"message":"Review approved"`},
		{name: "invalid", path: "/api/v1/reviews/3/status", body: `{"status":"hidden"}`, wantStatus: http.StatusBadRequest, contains: `"field":"status"`},
		{name: "missing", path: "/api/v1/reviews/404/status", body: `{"status":"approved"}`, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, tt.path, strings.NewReader(tt.body)))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.contains != "" {
				assert.Contains(t, rec.Body.String(), tt.contains)
			}
		})
	}
}
