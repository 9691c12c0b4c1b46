package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type ReportFormat string

const (
	ReportSpreadsheet ReportFormat = "spreadsheet"
	ReportDocument    ReportFormat = "document"
)

var (
	ErrUnknownReportFormat = errors.New("unknown report format")
	ErrReportNotFound      = errors.New("report not found or expired")
)

// ParseReportFormat accepts the canonical names plus the file-type aliases used in URLs.
func ParseReportFormat(name string) (ReportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "spreadsheet", "excel", "xlsx":
		return ReportSpreadsheet, nil
	case "document", "pdf":
		return ReportDocument, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownReportFormat, name)
}

func (f ReportFormat) ContentType() string {
	switch f {
	case ReportSpreadsheet:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case ReportDocument:
		return "application/pdf"
	}
	return "application/octet-stream"
}

func (f ReportFormat) Extension() string {
	switch f {
	case ReportSpreadsheet:
		return "xlsx"
	case ReportDocument:
		return "pdf"
	}
	return "bin"
}

func (f ReportFormat) FileName() string {
	return "expense-report." + f.Extension()
}

// ReportInput is everything a renderer needs. GeneratedAt only feeds the
// timestamp cell/line and document metadata, never the totals.
type ReportInput struct {
	GeneratedAt time.Time
	Windows     StatisticsSet
	Records     []Expense
}

// Sections returns the window snapshots in report order, failing when one is absent.
func (in ReportInput) Sections() ([]WindowStatistics, error) {
	sections := make([]WindowStatistics, 0, len(WindowKinds))
	for _, kind := range WindowKinds {
		section, ok := in.Windows[kind]
		if !ok {
			return nil, &MissingAggregateError{Kind: kind}
		}
		sections = append(sections, section)
	}
	return sections, nil
}

// RecordsIn returns the records whose date falls in w, preserving input order.
func (in ReportInput) RecordsIn(w Window) []Expense {
	var matched []Expense
	for _, record := range in.Records {
		if w.Contains(record.Date) {
			matched = append(matched, record)
		}
	}
	return matched
}

type MissingAggregateError struct {
	Kind WindowKind
}

func (e *MissingAggregateError) Error() string {
	return fmt.Sprintf("missing %s statistics: weekly, monthly and yearly snapshots are all required", e.Kind)
}
