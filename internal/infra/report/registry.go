// Package report turns aggregated window statistics into downloadable artifacts.
package report

import (
	"fmt"

	"github.com/anuntech/expense-backend/internal/domain/models"
	"github.com/anuntech/expense-backend/internal/domain/usecase"
)

// Registry looks renderers up by format.
type Registry struct {
	renderers map[models.ReportFormat]usecase.ReportRenderer
}

// NewRegistry registers the given renderers; a later renderer replaces an earlier one
// for the same format.
func NewRegistry(renderers ...usecase.ReportRenderer) *Registry {
	r := &Registry{renderers: make(map[models.ReportFormat]usecase.ReportRenderer, len(renderers))}
	for _, renderer := range renderers {
		r.Register(renderer)
	}
	return r
}

// NewDefaultRegistry holds the spreadsheet and document renderers.
func NewDefaultRegistry(pageSize string) *Registry {
	return NewRegistry(NewSpreadsheet(), NewDocument(pageSize))
}

func (r *Registry) Register(renderer usecase.ReportRenderer) {
	r.renderers[renderer.Format()] = renderer
}

func (r *Registry) Get(format models.ReportFormat) (usecase.ReportRenderer, error) {
	renderer, ok := r.renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownReportFormat, format)
	}
	return renderer, nil
}

// Render is a lookup followed by Render on the matching renderer.
func (r *Registry) Render(format models.ReportFormat, input models.ReportInput) ([]byte, error) {
	renderer, err := r.Get(format)
	if err != nil {
		return nil, err
	}
	return renderer.Render(input)
}
