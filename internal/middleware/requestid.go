package middleware

import (
	"net/http"

	"luxew/internal/reqctx"

	"github.com/google/uuid"
)

// RequestID attache un identifiant unique à chaque requête ; repris de
// l'en-tête X-Request-ID s'il est fourni par le client.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", rid)

		ctx := reqctx.WithRequestID(r.Context(), rid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
