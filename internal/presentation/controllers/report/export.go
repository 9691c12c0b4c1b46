package report

import (
	"errors"
	"net/http"
	"time"

	"github.com/anuntech/expense-backend/internal/domain/models"
	"github.com/anuntech/expense-backend/internal/domain/statistics"
	"github.com/anuntech/expense-backend/internal/domain/usecase"
	"github.com/anuntech/expense-backend/internal/logger"
	"github.com/anuntech/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/expense-backend/internal/presentation/protocols"
)

// ReportKeyHeader carries the archive key of a freshly rendered report.
const ReportKeyHeader = "X-Report-Key"

// ExportReportController renders every window into one artifact of a fixed format.
// Archive is optional; when set, artifacts are also kept for a later download.
type ExportReportController struct {
	FindExpensesRepository usecase.FindExpensesRepository
	Renderers              usecase.ReportRendererRegistry
	Archive                usecase.ReportArchiveRepository
	Format                 models.ReportFormat
	Now                    func() time.Time
}

func NewExportReportController(
	findExpensesRepository usecase.FindExpensesRepository,
	renderers usecase.ReportRendererRegistry,
	archive usecase.ReportArchiveRepository,
	format models.ReportFormat,
	now func() time.Time,
) *ExportReportController {
	return &ExportReportController{
		FindExpensesRepository: findExpensesRepository,
		Renderers:              renderers,
		Archive:                archive,
		Format:                 format,
		Now:                    now,
	}
}

func (c *ExportReportController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	renderer, err := c.Renderers.Get(c.Format)
	if err != nil {
		return helpers.CreateErrorResponse(err.Error(), http.StatusNotFound)
	}

	expenses, err := c.FindExpensesRepository.List(r.Req.Context())
	if err != nil {
		logger.L().WithError(err).Error("list expenses for report")
		return helpers.CreateErrorResponse("an error occurred when retrieving expenses", http.StatusInternalServerError)
	}

	input, err := statistics.BuildReportInput(expenses, c.Now())
	if err != nil {
		logger.L().WithError(err).Error("build report input")
		return helpers.CreateErrorResponse("an error occurred when computing statistics", http.StatusInternalServerError)
	}

	payload, err := renderer.Render(input)
	if err != nil {
		var missing *models.MissingAggregateError
		if errors.As(err, &missing) {
			logger.L().WithError(err).Error("report input is incomplete")
		} else {
			logger.L().WithError(err).Errorf("render %s report", c.Format)
		}
		return helpers.CreateErrorResponse("an error occurred when rendering report", http.StatusInternalServerError)
	}

	response := helpers.CreateFileResponse(payload, c.Format.ContentType(), c.Format.FileName())

	if c.Archive != nil {
		// the download still succeeds when the archive is unreachable
		key, err := c.Archive.Save(r.Req.Context(), c.Format, payload)
		if err != nil {
			logger.L().WithError(err).Warn("archive report")
		} else {
			response.Header.Set(ReportKeyHeader, key)
		}
	}

	return response
}
