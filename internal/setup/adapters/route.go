package adapters

import (
	"io"
	"net/http"

	"github.com/anuntech/expense-backend/internal/logger"
	"github.com/anuntech/expense-backend/internal/presentation/protocols"
)

// AdaptRoute turns a controller into an http.Handler.
func AdaptRoute(controller protocols.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := controller.Handle(protocols.HttpRequest{
			Body:      r.Body,
			Header:    r.Header,
			UrlParams: r.URL.Query(),
			Req:       r,
		})

		for key, values := range response.Header {
			for _, value := range values {
				w.Header().Add(key, value)
			}
		}
		w.WriteHeader(response.StatusCode)

		if response.Body == nil {
			return
		}
		defer response.Body.Close()
		if _, err := io.Copy(w, response.Body); err != nil {
			logger.L().WithError(err).Warnf("write response for %s %s", r.Method, r.URL.Path)
		}
	}
}
