package setup

import (
	"context"
	"fmt"
	"time"

	"github.com/anuntech/expense-backend/internal/domain/models"
	"github.com/anuntech/expense-backend/internal/domain/statistics"
	"github.com/anuntech/expense-backend/internal/setup/factory"
)

// RenderReport produces the artifact the export routes serve, for use outside HTTP.
func RenderReport(ctx context.Context, deps *factory.Deps, format models.ReportFormat, now time.Time) ([]byte, error) {
	renderer, err := deps.Renderers.Get(format)
	if err != nil {
		return nil, err
	}

	expenses, err := deps.Expenses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}

	input, err := statistics.BuildReportInput(expenses, now)
	if err != nil {
		return nil, err
	}

	return renderer.Render(input)
}
