// Package reporting turns injury, user, assignment and checklist snapshots into
// chart-ready summaries. Every function is pure and never fails: records with an
// unknown severity or a missing report date are skipped where those fields matter.
package reporting

import (
	"fmt"
	"strings"
	"time"

	"github.com/yigit/injurydesk/internal/app/models"
	"github.com/yigit/injurydesk/internal/pkg/apperrors"
)

// All is the filter value meaning "no constraint"
const All = "all"

const dateLayout = "2006-01-02"

// Filter narrows an injury set. Nil bounds and empty or "all" strings impose no constraint.
type Filter struct {
	Start    *time.Time
	End      *time.Time
	Sport    string
	Severity string
}

// IsEmpty reports whether the filter constrains nothing
func (f Filter) IsEmpty() bool {
	return f.Start == nil && f.End == nil && unconstrained(f.Sport) && unconstrained(f.Severity)
}

// View is the filter as echoed back to clients, in URL query form
type View struct {
	Start    string `json:"start,omitempty"`
	End      string `json:"end,omitempty"`
	Sport    string `json:"sport,omitempty"`
	Severity string `json:"severity,omitempty"`
}

// View returns the filter in the shape it was parsed from
func (f Filter) View() View {
	v := View{}
	if f.Start != nil {
		v.Start = f.Start.Format(dateLayout)
	}
	if f.End != nil {
		v.End = f.End.Format(dateLayout)
	}
	if !unconstrained(f.Sport) {
		v.Sport = f.Sport
	}
	if !unconstrained(f.Severity) {
		v.Severity = f.Severity
	}
	return v
}

func unconstrained(s string) bool {
	return s == "" || s == All
}

// ParseFilter builds a Filter from URL query values.
// Dates are YYYY-MM-DD or RFC3339; an unknown severity is rejected.
func ParseFilter(start, end, sport, severity string) (Filter, error) {
	var f Filter

	if start = strings.TrimSpace(start); start != "" {
		t, err := parseDate(start)
		if err != nil {
			return Filter{}, apperrors.NewValidationError(fmt.Sprintf("invalid start date %q", start))
		}
		f.Start = &t
	}

	if end = strings.TrimSpace(end); end != "" {
		t, err := parseDate(end)
		if err != nil {
			return Filter{}, apperrors.NewValidationError(fmt.Sprintf("invalid end date %q", end))
		}
		f.End = &t
	}

	if f.Start != nil && f.End != nil && f.Start.After(*f.End) {
		return Filter{}, apperrors.NewValidationError("start date must not be after end date")
	}

	f.Sport = strings.TrimSpace(sport)
	f.Severity = strings.TrimSpace(severity)
	if !unconstrained(f.Severity) && !models.Severity(f.Severity).Valid() {
		return Filter{}, apperrors.NewValidationError(fmt.Sprintf("unknown severity %q", f.Severity))
	}

	return f, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return calendarDay(t), nil
}

// calendarDay truncates t to midnight UTC of its UTC date
func calendarDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FilterInjuries returns the injuries satisfying every constraint of f.
// Date bounds are inclusive and compared on the UTC calendar day of date_reported.
// Sport is matched through the reporting student's record.
// An empty filter returns injuries itself.
func FilterInjuries(injuries []models.Injury, students []models.User, f Filter) []models.Injury {
	if f.IsEmpty() {
		return injuries
	}

	var sports map[string]string
	if !unconstrained(f.Sport) {
		sports = sportIndex(students)
	}

	var start, end time.Time
	if f.Start != nil {
		start = calendarDay(*f.Start)
	}
	if f.End != nil {
		end = calendarDay(*f.End)
	}

	out := make([]models.Injury, 0, len(injuries))
	for _, injury := range injuries {
		if f.Start != nil || f.End != nil {
			if injury.DateReported.IsZero() {
				continue
			}
			reported := calendarDay(injury.DateReported)
			if f.Start != nil && reported.Before(start) {
				continue
			}
			if f.End != nil && reported.After(end) {
				continue
			}
		}

		if !unconstrained(f.Severity) && string(injury.Severity) != f.Severity {
			continue
		}

		if !unconstrained(f.Sport) && sports[injury.StudentID] != f.Sport {
			continue
		}

		out = append(out, injury)
	}

	return out
}

func sportIndex(students []models.User) map[string]string {
	index := make(map[string]string, len(students))
	for i := range students {
		if sport := students[i].SportName(); sport != "" {
			index[students[i].ID] = sport
		}
	}
	return index
}
