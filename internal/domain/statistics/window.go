// Package statistics resolves reporting windows and aggregates expenses into them.
// Everything here is a pure function of its arguments.
package statistics

import (
	"errors"
	"fmt"
	"time"

	"github.com/anuntech/expense-backend/internal/domain/models"
)

var ErrInvalidWindowKind = errors.New("invalid window kind")

func ParseWindowKind(name string) (models.WindowKind, error) {
	for _, kind := range models.WindowKinds {
		if string(kind) == name {
			return kind, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidWindowKind, name)
}

// ResolveWindow returns the window of the given kind that contains now, in now's location.
// Weeks start on Monday 00:00.
func ResolveWindow(kind models.WindowKind, now time.Time) (models.Window, error) {
	year, month, day := now.Date()
	loc := now.Location()

	var start, end time.Time
	switch kind {
	case models.WindowWeekly:
		offset := (int(now.Weekday()) + 6) % 7
		start = time.Date(year, month, day-offset, 0, 0, 0, 0, loc)
		end = time.Date(year, month, day-offset+7, 0, 0, 0, 0, loc)
	case models.WindowMonthly:
		start = time.Date(year, month, 1, 0, 0, 0, 0, loc)
		end = time.Date(year, month+1, 1, 0, 0, 0, 0, loc)
	case models.WindowYearly:
		start = time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
		end = time.Date(year+1, time.January, 1, 0, 0, 0, 0, loc)
	default:
		return models.Window{}, fmt.Errorf("%w: %q", ErrInvalidWindowKind, kind)
	}

	return models.Window{Kind: kind, Start: start, End: end}, nil
}

// Next returns the window of the same kind that starts where w ends.
func Next(w models.Window) (models.Window, error) {
	return ResolveWindow(w.Kind, w.End)
}
