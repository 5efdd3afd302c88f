package list_reviews

import (
	"net/http"

	"github.com/m04kA/LifeCare-BookingService/internal/api/handlers"
	"github.com/m04kA/LifeCare-BookingService/internal/service/reviews/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(r *http.Request) *models.ListReviewsRequest {
	q := r.URL.Query()
	return &models.ListReviewsRequest{
		Page:    handlers.QueryInt(r, "page"),
		Limit:   handlers.QueryInt(r, "limit"),
		Status:  q.Get("status"),
		Service: q.Get("service"),
		Rating:  q.Get("rating"),
		SortBy:  q.Get("sortBy"),
	}
}
