package middleware

import (
	"context"
	"net/http"

	"github.com/EvgeniyBudaev/gravity/client-service/internal/i18n"
)

// LanguageMiddleware stores the detected request language in the context.
func LanguageMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), ContextKeyLng, i18n.Detect(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LanguageFromContext returns the stored language, or the fallback one.
func LanguageFromContext(ctx context.Context) string {
	if lng, ok := ctx.Value(ContextKeyLng).(string); ok && lng != "" {
		return lng
	}
	return i18n.FallbackLng
}
