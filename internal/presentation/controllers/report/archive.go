package report

import (
	"errors"
	"net/http"

	"github.com/anuntech/expense-backend/internal/domain/models"
	"github.com/anuntech/expense-backend/internal/domain/usecase"
	"github.com/anuntech/expense-backend/internal/logger"
	"github.com/anuntech/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/expense-backend/internal/presentation/protocols"
)

// GetArchivedReportController downloads a previously archived artifact by key.
type GetArchivedReportController struct {
	Archive usecase.ReportArchiveRepository
}

func NewGetArchivedReportController(archive usecase.ReportArchiveRepository) *GetArchivedReportController {
	return &GetArchivedReportController{
		Archive: archive,
	}
}

func (c *GetArchivedReportController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	if c.Archive == nil {
		return helpers.CreateErrorResponse("report archive is disabled", http.StatusNotFound)
	}

	key := r.Req.PathValue("key")
	format, payload, err := c.Archive.Find(r.Req.Context(), key)
	if errors.Is(err, models.ErrReportNotFound) {
		return helpers.CreateErrorResponse("report not found or expired", http.StatusNotFound)
	}
	if err != nil {
		logger.L().WithError(err).Errorf("find archived report %s", key)
		return helpers.CreateErrorResponse("an error occurred when retrieving report", http.StatusInternalServerError)
	}

	response := helpers.CreateFileResponse(payload, format.ContentType(), format.FileName())
	response.Header.Set(ReportKeyHeader, key)
	return response
}
