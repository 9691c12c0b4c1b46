package factory

import (
	"time"

	"github.com/anuntech/expense-backend/internal/domain/usecase"
)

// Deps is everything the controllers are built from.
// Archive is nil when report archiving is disabled.
type Deps struct {
	Expenses  usecase.ExpenseRepository
	Renderers usecase.ReportRendererRegistry
	Archive   usecase.ReportArchiveRepository
	Location  *time.Location

	// Clock overrides time.Now, mostly for tests.
	Clock func() time.Time
}

// Now is the current time in the configured location, which decides where windows start.
func (d *Deps) Now() time.Time {
	now := time.Now()
	if d.Clock != nil {
		now = d.Clock()
	}
	if d.Location == nil {
		return now
	}
	return now.In(d.Location)
}
