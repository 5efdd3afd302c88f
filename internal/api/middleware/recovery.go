package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/m04kA/LifeCare-BookingService/internal/api/handlers"
)

// Recovery перехватывает панику в обработчике и отвечает 500
func Recovery(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if p := recover(); p != nil {
					id, _ := GetRequestID(r.Context())
					log.Error("panic in %s %s (request_id=%s): %v\n%s", r.Method, r.URL.Path, id, p, debug.Stack())
					handlers.RespondInternalError(w)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
