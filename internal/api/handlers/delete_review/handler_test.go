package delete_review

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/LifeCare-BookingService/internal/service/reviews"
	"github.com/m04kA/LifeCare-BookingService/pkg/logger"
)

type fakeService map[int64]bool

func (s fakeService) Delete(_ context.Context, id int64) error {
	if !s[id] {
		return reviews.ErrReviewNotFound
	}
	delete(s, id)
	return nil
}

func TestHandle(t *testing.T) {
	svc := fakeService{5: true}
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/reviews/{id}", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodDelete)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/reviews/5", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Review deleted successfully"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/reviews/5", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
