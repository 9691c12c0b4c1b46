package middlewares

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"github.com/anuntech/expense-backend/internal/logger"
)

func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				logger.L().WithFields(map[string]any{
					"method":     r.Method,
					"path":       r.URL.Path,
					"request_id": RequestIdFromContext(r.Context()),
					"stack":      string(debug.Stack()),
				}).Errorf("panic: %v", err)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)

				errorResponse := map[string]string{
					"error": "an unexpected error occurred, please try again",
				}

				_ = json.NewEncoder(w).Encode(errorResponse)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
