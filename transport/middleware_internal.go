package transport

import (
	"crypto/subtle"
	"net/http"

	"github.com/muhammadheryan/car-showroom/constant"
	"github.com/muhammadheryan/car-showroom/utils/errors"
	"github.com/muhammadheryan/car-showroom/utils/logger"
	"go.uber.org/zap"
)

// InternalMiddleware guards service-to-service routes, such as the payment
// expiration callback, with the shared key sent as "Bearer <key>". An
// unset key rejects every call.
func InternalMiddleware(apiKey string) func(http.Handler) http.Handler {
	want := []byte("Bearer " + apiKey)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := []byte(r.Header.Get("Authorization"))
			if apiKey == "" || subtle.ConstantTimeCompare(got, want) != 1 {
				logger.Warn("[InternalMiddleware] rejected internal call",
					zap.String("path", r.URL.Path),
					zap.String("remote_addr", r.RemoteAddr))
				writeError(w, errors.SetCustomError(constant.ErrForbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
