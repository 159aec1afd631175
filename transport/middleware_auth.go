package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/car-showroom/application/user"
	"github.com/muhammadheryan/car-showroom/constant"
	utilsContext "github.com/muhammadheryan/car-showroom/utils/context"
	"github.com/muhammadheryan/car-showroom/utils/errors"
	"github.com/muhammadheryan/car-showroom/utils/logger"
	"go.uber.org/zap"
)

// SessionMiddleware resolves the session of a request when it carries one,
// from the Authorization header or the session cookie. Requests without a
// valid session pass through as guests.
func SessionMiddleware(userApp user.UserApp, cookieName string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := sessionToken(r, cookieName)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			userID, sessionID, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := utilsContext.WithSession(r.Context(), userID, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionToken(r *http.Request, cookieName string) string {
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	if cookieName == "" {
		return ""
	}
	if c, err := r.Cookie(cookieName); err == nil {
		return c.Value
	}
	return ""
}

// RequireAuth rejects guests with ErrUnauthorize.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utilsContext.GetUserID(r.Context()); !ok {
			writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// AdminMiddleware lets through only authenticated administrators.
func AdminMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utilsContext.GetUserID(r.Context())
			if !ok {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			isAdmin, err := userApp.IsAdmin(r.Context(), userID)
			if err != nil {
				logger.Error("[AdminMiddleware] err userApp.IsAdmin", zap.String("error", err.Error()))
				writeError(w, err)
				return
			}
			if !isAdmin {
				writeError(w, errors.SetCustomError(constant.ErrForbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
