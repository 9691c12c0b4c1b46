package factory

import (
	"github.com/anuntech/expense-backend/internal/domain/models"
	controllers "github.com/anuntech/expense-backend/internal/presentation/controllers/report"
)

func MakeExportReportController(deps *Deps, format models.ReportFormat) *controllers.ExportReportController {
	return controllers.NewExportReportController(deps.Expenses, deps.Renderers, deps.Archive, format, deps.Now)
}

func MakeGetArchivedReportController(deps *Deps) *controllers.GetArchivedReportController {
	return controllers.NewGetArchivedReportController(deps.Archive)
}
