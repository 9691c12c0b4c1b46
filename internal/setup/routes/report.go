package routes

import (
	"net/http"

	"github.com/anuntech/expense-backend/internal/domain/models"
	"github.com/anuntech/expense-backend/internal/setup/adapters"
	"github.com/anuntech/expense-backend/internal/setup/factory"
)

func ReportRoutes(server *http.ServeMux, deps *factory.Deps) {
	server.Handle("GET /expenses/report/excel", adapters.AdaptRoute(factory.MakeExportReportController(deps, models.ReportSpreadsheet)))
	server.Handle("GET /expenses/report/pdf", adapters.AdaptRoute(factory.MakeExportReportController(deps, models.ReportDocument)))
	server.Handle("GET /expenses/report/archive/{key}", adapters.AdaptRoute(factory.MakeGetArchivedReportController(deps)))
}
