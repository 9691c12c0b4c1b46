package usecase

import (
	"context"

	"github.com/anuntech/expense-backend/internal/domain/models"
)

type ReportRenderer interface {
	Format() models.ReportFormat
	Render(input models.ReportInput) ([]byte, error)
}

// ReportArchiveRepository keeps rendered artifacts around for a later download.
type ReportArchiveRepository interface {
	Save(ctx context.Context, format models.ReportFormat, payload []byte) (key string, err error)
	Find(ctx context.Context, key string) (models.ReportFormat, []byte, error)
}

type ReportRendererRegistry interface {
	Get(format models.ReportFormat) (ReportRenderer, error)
}
