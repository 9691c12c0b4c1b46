package middlewares

import "net/http"

// NoStoreHeader keeps clients and proxies from caching reports and statistics,
// which change with every write.
func NoStoreHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}
