package config

import (
	"net/http"

	"github.com/anuntech/expense-backend/internal/setup/factory"
	"github.com/anuntech/expense-backend/internal/setup/routes"
)

func SetupRoutes(server *http.ServeMux, deps *factory.Deps) {
	apiServer := http.NewServeMux()
	routes.ExpenseRoutes(apiServer, deps)
	routes.ReportRoutes(apiServer, deps)

	routes.HealthRoutes(server)
	server.Handle("/api/", http.StripPrefix("/api", apiServer))
}
