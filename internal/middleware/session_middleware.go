package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/EvgeniyBudaev/gravity/client-service/internal/api"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/utils"
)

type contextKey string

const (
	ContextKeyUserID = contextKey("userID")
	ContextKeyLng    = contextKey("lng")

	// Cookie names follow the __Host- prefix rule (no Domain attribute allowed)
	AccessTokenCookieName = "__Host-accessToken"
)

var parser = jwt.NewParser()

// SessionMiddleware reads the access token from the cookie or from a Bearer
// header. Requests without one pass through untouched. The signature is
// checked by the backend; here an unreadable or expired token is rejected.
func SessionMiddleware(now func() time.Time) func(http.Handler) http.Handler {
	if now == nil {
		now = time.Now
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := extractAccessToken(r)
			if tokenStr == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims := jwt.MapClaims{}
			if _, _, err := parser.ParseUnverified(tokenStr, claims); err != nil {
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid token", nil, err,
				)
				return
			}
			exp, err := claims.GetExpirationTime()
			if err != nil {
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid claims", nil, err,
				)
				return
			}
			if exp != nil && !now().Before(exp.Time) {
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeTokenExpired, "Token expired", nil,
					errors.Join(utils.ErrTokenExpired, jwt.ErrTokenExpired),
				)
				return
			}

			ctx := api.ContextWithToken(r.Context(), tokenStr)
			if sub, err := claims.GetSubject(); err == nil && sub != "" {
				ctx = context.WithValue(ctx, ContextKeyUserID, sub)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext returns the token subject, or "".
func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ContextKeyUserID).(string)
	return id
}

// cookie first, then Authorization: Bearer ...
func extractAccessToken(r *http.Request) string {
	if c, err := r.Cookie(AccessTokenCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}
