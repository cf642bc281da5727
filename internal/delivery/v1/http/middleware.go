package http

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/zelezara-doo/shop-backend/pkg/logger"
)

// AdminOnly пропускает запрос дальше только при верном статическом токене
// в заголовке X-Admin-Token.
func AdminOnly(token string, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get("X-Admin-Token")
			if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				log.Warnf("%d unauthorized admin request: %s %s", http.StatusUnauthorized, r.Method, r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(NewErrorResponse(http.StatusUnauthorized, "unauthorized"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
