package reporting

import (
	"math"
	"sort"
	"time"

	"github.com/yigit/injurydesk/internal/app/models"
)

// UnknownSport is the bucket for injuries whose student has no sport on record
const UnknownSport = "Unknown"

const monthLayout = "2006-01"

// SeverityColors maps each severity onto its chart color
var SeverityColors = map[models.Severity]string{
	models.SeverityMild:     "#f59e0b",
	models.SeverityModerate: "#f97316",
	models.SeveritySevere:   "#ef4444",
	models.SeverityCritical: "#991b1b",
}

// TrendPoint is the injury count of one calendar month
type TrendPoint struct {
	Month    string `json:"month"`
	Injuries int    `json:"injuries"`
}

// SeverityBucket is one slice of the severity distribution
type SeverityBucket struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// SportCount is the injury count of one sport
type SportCount struct {
	Sport    string `json:"sport"`
	Injuries int    `json:"injuries"`
}

// TimeLoss is the total days lost for one severity
type TimeLoss struct {
	Severity string `json:"severity"`
	DaysLost int    `json:"daysLost"`
}

// WorkloadEntry is the active caseload of one practitioner
type WorkloadEntry struct {
	PractitionerID string `json:"practitionerId"`
	Name           string `json:"name"`
	Active         int    `json:"active"`
}

// MonthlyTrend counts injuries per year-month of date_reported, ascending by month.
// Months without injuries are omitted; see ZeroFill.
func MonthlyTrend(injuries []models.Injury) []TrendPoint {
	counts := make(map[string]int)
	for i := range injuries {
		if injuries[i].DateReported.IsZero() {
			continue
		}
		counts[injuries[i].DateReported.UTC().Format(monthLayout)]++
	}

	points := make([]TrendPoint, 0, len(counts))
	for month, n := range counts {
		points = append(points, TrendPoint{Month: month, Injuries: n})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Month < points[j].Month })

	return points
}

// ZeroFill inserts zero-count points for every month missing between the first and last point.
// points must be ascending, as MonthlyTrend returns them.
func ZeroFill(points []TrendPoint) []TrendPoint {
	if len(points) < 2 {
		return points
	}

	first, err := time.Parse(monthLayout, points[0].Month)
	if err != nil {
		return points
	}
	last, err := time.Parse(monthLayout, points[len(points)-1].Month)
	if err != nil {
		return points
	}

	have := make(map[string]int, len(points))
	for _, p := range points {
		have[p.Month] = p.Injuries
	}

	dense := make([]TrendPoint, 0, len(points))
	for m := first; !m.After(last); m = m.AddDate(0, 1, 0) {
		key := m.Format(monthLayout)
		dense = append(dense, TrendPoint{Month: key, Injuries: have[key]})
	}

	return dense
}

// SeverityDistribution counts injuries per severity in rank order. Absent severities produce no bucket.
func SeverityDistribution(injuries []models.Injury) []SeverityBucket {
	counts := make(map[models.Severity]int)
	for i := range injuries {
		if injuries[i].Severity.Valid() {
			counts[injuries[i].Severity]++
		}
	}

	buckets := make([]SeverityBucket, 0, len(counts))
	for _, severity := range models.Severities {
		if n := counts[severity]; n > 0 {
			buckets = append(buckets, SeverityBucket{
				Name:  string(severity),
				Value: n,
				Color: SeverityColors[severity],
			})
		}
	}

	return buckets
}

// IncidenceBySport counts injuries per sport of the reporting student, ordered by sport name
func IncidenceBySport(injuries []models.Injury, students []models.User) []SportCount {
	sports := sportIndex(students)

	counts := make(map[string]int)
	for i := range injuries {
		sport, ok := sports[injuries[i].StudentID]
		if !ok {
			sport = UnknownSport
		}
		counts[sport]++
	}

	out := make([]SportCount, 0, len(counts))
	for sport, n := range counts {
		out = append(out, SportCount{Sport: sport, Injuries: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Sport < out[j].Sport })

	return out
}

// DaysLost returns the recorded days_lost, else the whole days between the injury
// (or its report) and the return date, else 0. The result is never negative.
func DaysLost(injury models.Injury) int {
	if injury.DaysLost != nil {
		return max(0, *injury.DaysLost)
	}
	if injury.DateReturned == nil {
		return 0
	}

	from := injury.DateReported
	if injury.DateOccurred != nil {
		from = *injury.DateOccurred
	}
	if from.IsZero() {
		return 0
	}

	days := math.Round(injury.DateReturned.Sub(from).Hours() / 24)
	return max(0, int(days))
}

// TimeLossBySeverity sums DaysLost per severity present, in rank order
func TimeLossBySeverity(injuries []models.Injury) []TimeLoss {
	totals := make(map[models.Severity]int)
	present := make(map[models.Severity]bool)
	for i := range injuries {
		severity := injuries[i].Severity
		if !severity.Valid() {
			continue
		}
		present[severity] = true
		totals[severity] += DaysLost(injuries[i])
	}

	out := make([]TimeLoss, 0, len(present))
	for _, severity := range models.Severities {
		if present[severity] {
			out = append(out, TimeLoss{Severity: string(severity), DaysLost: totals[severity]})
		}
	}

	return out
}

type recurrenceKey struct {
	studentID  string
	injuryType string
}

// RecurrenceRate is the number of (student, injury type) pairs seen more than once
// as a rounded percentage of all injuries. Callers pass the unfiltered set.
func RecurrenceRate(injuries []models.Injury) int {
	if len(injuries) == 0 {
		return 0
	}

	seen := make(map[recurrenceKey]int)
	for i := range injuries {
		seen[recurrenceKey{injuries[i].StudentID, injuries[i].InjuryType}]++
	}

	recurring := 0
	for _, n := range seen {
		if n > 1 {
			recurring++
		}
	}

	return percent(recurring, len(injuries))
}

// AverageRTPDays is the mean clearance time in whole days over cleared checklists, or nil when none are cleared
func AverageRTPDays(checklists []models.RTPChecklist) *int {
	var total float64
	var n int
	for i := range checklists {
		c := checklists[i]
		if c.Status != models.ChecklistCleared || c.ClearedAt == nil {
			continue
		}
		total += c.ClearedAt.Sub(c.CreatedAt).Hours() / 24
		n++
	}

	if n == 0 {
		return nil
	}

	avg := int(math.Round(total / float64(n)))
	return &avg
}

// PractitionerWorkload counts active assignments per practitioner, busiest first then by name.
// Practitioners missing from the lookup keep their raw id as name.
func PractitionerWorkload(assignments []models.Assignment, practitioners []models.User) []WorkloadEntry {
	names := make(map[string]string, len(practitioners))
	for i := range practitioners {
		names[practitioners[i].ID] = practitioners[i].DisplayName()
	}

	counts := make(map[string]int)
	for i := range assignments {
		if assignments[i].Active {
			counts[assignments[i].PractitionerID]++
		}
	}

	out := make([]WorkloadEntry, 0, len(counts))
	for id, n := range counts {
		name, ok := names[id]
		if !ok {
			name = id
		}
		out = append(out, WorkloadEntry{PractitionerID: id, Name: name, Active: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Active != out[j].Active {
			return out[i].Active > out[j].Active
		}
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].PractitionerID < out[j].PractitionerID
	})

	return out
}

// RecoveryRate is the share of resolved injuries as a rounded percentage, 0 for an empty set
func RecoveryRate(injuries []models.Injury) int {
	if len(injuries) == 0 {
		return 0
	}

	resolved := 0
	for i := range injuries {
		if injuries[i].Status == models.InjuryStatusResolved {
			resolved++
		}
	}

	return percent(resolved, len(injuries))
}

func percent(part, total int) int {
	return int(math.Round(100 * float64(part) / float64(total)))
}
