package routes

import (
	"net/http"

	"github.com/anuntech/expense-backend/internal/presentation/helpers"
	"github.com/anuntech/expense-backend/internal/presentation/protocols"
	"github.com/anuntech/expense-backend/internal/setup/adapters"
)

type healthController struct{}

func (healthController) Handle(protocols.HttpRequest) *protocols.HttpResponse {
	return helpers.CreateResponse(map[string]string{"status": "ok"}, http.StatusOK)
}

func HealthRoutes(server *http.ServeMux) {
	server.Handle("GET /healthz", adapters.AdaptRoute(healthController{}))
}
