package reporting

import "github.com/yigit/injurydesk/internal/app/models"

// Dataset is the snapshot an analytics report is computed from
type Dataset struct {
	Injuries      []models.Injury
	Students      []models.User
	Practitioners []models.User
	Assignments   []models.Assignment
	Checklists    []models.RTPChecklist
}

// Report is the full analytics view for one filter
type Report struct {
	Filter               View             `json:"filter"`
	TotalInjuries        int              `json:"totalInjuries"`
	FilteredInjuries     int              `json:"filteredInjuries"`
	OpenInjuries         int              `json:"openInjuries"`
	MonthlyTrend         []TrendPoint     `json:"monthlyTrend"`
	SeverityDistribution []SeverityBucket `json:"severityDistribution"`
	IncidenceBySport     []SportCount     `json:"incidenceBySport"`
	TimeLossBySeverity   []TimeLoss       `json:"timeLossBySeverity"`
	RecurrenceRate       int              `json:"recurrenceRate"`
	RecoveryRate         int              `json:"recoveryRate"`
	AverageRTPDays       *int             `json:"averageRtpDays"`
	Workload             []WorkloadEntry  `json:"workload"`
}

// Build computes every summary for f. Recurrence and recovery rates use the
// unfiltered injury set so changing the filter never moves them.
func Build(ds Dataset, f Filter, dense bool) Report {
	filtered := FilterInjuries(ds.Injuries, ds.Students, f)

	trend := MonthlyTrend(filtered)
	if dense {
		trend = ZeroFill(trend)
	}

	open := 0
	for i := range filtered {
		if filtered[i].Status != models.InjuryStatusResolved {
			open++
		}
	}

	return Report{
		Filter:               f.View(),
		TotalInjuries:        len(ds.Injuries),
		FilteredInjuries:     len(filtered),
		OpenInjuries:         open,
		MonthlyTrend:         trend,
		SeverityDistribution: SeverityDistribution(filtered),
		IncidenceBySport:     IncidenceBySport(filtered, ds.Students),
		TimeLossBySeverity:   TimeLossBySeverity(filtered),
		RecurrenceRate:       RecurrenceRate(ds.Injuries),
		RecoveryRate:         RecoveryRate(ds.Injuries),
		AverageRTPDays:       AverageRTPDays(ds.Checklists),
		Workload:             PractitionerWorkload(ds.Assignments, ds.Practitioners),
	}
}
