package list_bookings

import (
	"net/http"

	"github.com/m04kA/LifeCare-BookingService/internal/api/handlers"
	"github.com/m04kA/LifeCare-BookingService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров.
// Некорректные page/limit заменяются значениями по умолчанию.
func ToServiceRequest(r *http.Request) *models.ListBookingsRequest {
	q := r.URL.Query()
	return &models.ListBookingsRequest{
		Page:      handlers.QueryInt(r, "page"),
		Limit:     handlers.QueryInt(r, "limit"),
		Status:    q.Get("status"),
		Service:   q.Get("service"),
		StartDate: q.Get("startDate"),
		EndDate:   q.Get("endDate"),
	}
}
