package reply_review

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/LifeCare-BookingService/internal/service/reviews"
	"github.com/m04kA/LifeCare-BookingService/internal/service/reviews/models"
	"github.com/m04kA/LifeCare-BookingService/pkg/logger"
	"github.com/m04kA/LifeCare-BookingService/pkg/validation"
)

type fakeService struct{}

func (fakeService) Reply(_ context.Context, id int64, req *models.ReplyRequest) (*models.ReviewResponse, error) {
	if id == 404 {
		return nil, reviews.ErrReviewNotFound
	}
	if strings.TrimSpace(req.Reply) == "" {
		return nil, fmt.Errorf("%w: %w", reviews.ErrInvalidInput, validation.FieldErr("reply", "reply is required"))
	}
	return &models.ReviewResponse{
		ID:         id,
		AdminReply: &models.AdminReply{Content: req.Reply, Date: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
	}, nil
}

func TestHandle(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/reviews/{id}/reply", NewHandler(fakeService{}, logger.NewNop()).Handle).Methods(http.MethodPost)

	serve := func(path, body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, strings.NewReader(body)))
		return rec
	}

	rec := serve("/api/v1/reviews/3/reply", `{"reply":"Thank you!"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"adminReply":{"content":"Thank you!","date":"2026-03-01T00:00:00Z"}`)

	rec = serve("/api/v1/reviews/3/reply", `{"reply":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve("/api/v1/reviews/404/reply", `{"reply":"Hi"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
