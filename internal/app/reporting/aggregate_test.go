package reporting

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/injurydesk/internal/app/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dayPtr(s string) *time.Time {
	t := day(s)
	return &t
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func injury(id string, severity models.Severity, reported string) models.Injury {
	return models.Injury{ID: id, StudentID: "s1", Severity: severity, DateReported: day(reported), Status: models.InjuryStatusReported}
}

func TestMonthlyTrendAndSeverityExample(t *testing.T) {
	injuries := []models.Injury{
		injury("i1", models.SeverityMild, "2024-01-05"),
		injury("i2", models.SeverityMild, "2024-02-10"),
		injury("i3", models.SeveritySevere, "2024-02-15"),
	}

	assert.Equal(t, []TrendPoint{
		{Month: "2024-01", Injuries: 1},
		{Month: "2024-02", Injuries: 2},
	}, MonthlyTrend(injuries))

	assert.Equal(t, []SeverityBucket{
		{Name: "mild", Value: 2, Color: "#f59e0b"},
		{Name: "severe", Value: 1, Color: "#ef4444"},
	}, SeverityDistribution(injuries))
}

func TestMonthlyTrendKeysAscendingAndWellFormed(t *testing.T) {
	injuries := []models.Injury{
		injury("a", models.SeverityMild, "2024-11-30"),
		injury("b", models.SeverityMild, "2023-02-01"),
		injury("c", models.SeverityMild, "2024-03-09"),
		injury("d", models.SeverityMild, "2023-12-31"),
		{ID: "zero", Severity: models.SeverityMild},
	}

	points := MonthlyTrend(injuries)
	require.Len(t, points, 4)

	pattern := regexp.MustCompile(`^\d{4}-\d{2}$`)
	for i, p := range points {
		assert.Regexp(t, pattern, p.Month)
		if i > 0 {
			assert.Less(t, points[i-1].Month, p.Month)
		}
	}
}

func TestZeroFill(t *testing.T) {
	sparse := []TrendPoint{{Month: "2023-11", Injuries: 2}, {Month: "2024-02", Injuries: 1}}

	assert.Equal(t, []TrendPoint{
		{Month: "2023-11", Injuries: 2},
		{Month: "2023-12", Injuries: 0},
		{Month: "2024-01", Injuries: 0},
		{Month: "2024-02", Injuries: 1},
	}, ZeroFill(sparse))

	assert.Empty(t, ZeroFill(nil))
	single := []TrendPoint{{Month: "2024-01", Injuries: 3}}
	assert.Equal(t, single, ZeroFill(single))
}

func TestSeverityDistributionOmitsEmptyAndInvalid(t *testing.T) {
	injuries := []models.Injury{
		injury("a", models.SeverityCritical, "2024-01-01"),
		injury("b", models.Severity("catastrophic"), "2024-01-01"),
		injury("c", models.SeverityModerate, "2024-01-01"),
	}

	buckets := SeverityDistribution(injuries)
	assert.Equal(t, []SeverityBucket{
		{Name: "moderate", Value: 1, Color: "#f97316"},
		{Name: "critical", Value: 1, Color: "#991b1b"},
	}, buckets)
	for _, b := range buckets {
		assert.Positive(t, b.Value)
	}

	assert.Empty(t, SeverityDistribution(nil))
}

func TestIncidenceBySport(t *testing.T) {
	students := []models.User{
		{ID: "s1", Sport: strPtr("Rugby")},
		{ID: "s2", Sport: strPtr("Athletics")},
		{ID: "s3"},
	}
	injuries := []models.Injury{
		{ID: "a", StudentID: "s1"},
		{ID: "b", StudentID: "s1"},
		{ID: "c", StudentID: "s2"},
		{ID: "d", StudentID: "s3"},
		{ID: "e", StudentID: "ghost"},
	}

	assert.Equal(t, []SportCount{
		{Sport: "Athletics", Injuries: 1},
		{Sport: "Rugby", Injuries: 2},
		{Sport: UnknownSport, Injuries: 2},
	}, IncidenceBySport(injuries, students))
}

func TestDaysLost(t *testing.T) {
	tests := []struct {
		name   string
		injury models.Injury
		want   int
	}{
		{name: "recorded value wins", injury: models.Injury{DaysLost: intPtr(7), DateReported: day("2024-01-01"), DateReturned: dayPtr("2024-03-01")}, want: 7},
		{name: "from occurrence to return", injury: models.Injury{DateOccurred: dayPtr("2024-01-01"), DateReported: day("2024-01-03"), DateReturned: dayPtr("2024-01-11")}, want: 10},
		{name: "from report to return", injury: models.Injury{DateReported: day("2024-01-03"), DateReturned: dayPtr("2024-01-11")}, want: 8},
		{name: "rounds half days", injury: models.Injury{DateReported: day("2024-01-01"), DateReturned: func() *time.Time { t := day("2024-01-03").Add(12 * time.Hour); return &t }()}, want: 3},
		{name: "return before report clamps to zero", injury: models.Injury{DateReported: day("2024-01-10"), DateReturned: dayPtr("2024-01-01")}, want: 0},
		{name: "no return date", injury: models.Injury{DateReported: day("2024-01-10")}, want: 0},
		{name: "negative recorded value", injury: models.Injury{DaysLost: intPtr(-3)}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysLost(tt.injury))
		})
	}
}

func TestTimeLossBySeverity(t *testing.T) {
	injuries := []models.Injury{
		{Severity: models.SeveritySevere, DaysLost: intPtr(20)},
		{Severity: models.SeverityMild, DaysLost: intPtr(2)},
		{Severity: models.SeveritySevere, DateReported: day("2024-01-01"), DateReturned: dayPtr("2024-01-06")},
		{Severity: models.SeverityModerate},
		{Severity: "unknown", DaysLost: intPtr(100)},
	}

	assert.Equal(t, []TimeLoss{
		{Severity: "mild", DaysLost: 2},
		{Severity: "moderate", DaysLost: 0},
		{Severity: "severe", DaysLost: 25},
	}, TimeLossBySeverity(injuries))
}

func TestRecurrenceRate(t *testing.T) {
	injuries := []models.Injury{
		{StudentID: "s1", InjuryType: "Sprain", DateReported: day("2024-01-01")},
		{StudentID: "s1", InjuryType: "Sprain", DateReported: day("2024-05-01")},
		{StudentID: "s1", InjuryType: "Fracture", DateReported: day("2024-06-01")},
		{StudentID: "s2", InjuryType: "Sprain", DateReported: day("2024-07-01")},
	}

	// one recurring pair over four injuries
	assert.Equal(t, 25, RecurrenceRate(injuries))
	assert.Equal(t, 0, RecurrenceRate(nil))
}

func TestRecurrenceRateIgnoresFilter(t *testing.T) {
	injuries := []models.Injury{
		{ID: "a", StudentID: "s1", InjuryType: "Sprain", Severity: models.SeverityMild, DateReported: day("2024-01-01")},
		{ID: "b", StudentID: "s1", InjuryType: "Sprain", Severity: models.SeveritySevere, DateReported: day("2024-05-01")},
		{ID: "c", StudentID: "s2", InjuryType: "Strain", Severity: models.SeverityMild, DateReported: day("2024-06-01")},
	}
	ds := Dataset{Injuries: injuries}

	unfiltered := Build(ds, Filter{}, false)
	narrowed := Build(ds, Filter{Severity: "severe", Start: dayPtr("2024-04-01")}, false)

	assert.Equal(t, 1, narrowed.FilteredInjuries)
	assert.Equal(t, unfiltered.RecurrenceRate, narrowed.RecurrenceRate)
	assert.Equal(t, unfiltered.RecoveryRate, narrowed.RecoveryRate)
}

func TestAverageRTPDays(t *testing.T) {
	assert.Nil(t, AverageRTPDays(nil))
	assert.Nil(t, AverageRTPDays([]models.RTPChecklist{
		{Status: models.ChecklistCleared},
		{Status: models.ChecklistPending, CreatedAt: day("2024-01-01"), ClearedAt: dayPtr("2024-01-05")},
	}))

	avg := AverageRTPDays([]models.RTPChecklist{
		{Status: models.ChecklistCleared, CreatedAt: day("2024-01-01"), ClearedAt: dayPtr("2024-01-11")},
		{Status: models.ChecklistCleared, CreatedAt: day("2024-02-01"), ClearedAt: dayPtr("2024-02-06")},
		{Status: models.ChecklistInProgress, CreatedAt: day("2024-02-01")},
	})
	require.NotNil(t, avg)
	// (10 + 5) / 2 = 7.5 rounds away from zero
	assert.Equal(t, 8, *avg)
}

func TestPractitionerWorkload(t *testing.T) {
	practitioners := []models.User{
		{ID: "p1", FullName: "Dana Physio"},
		{ID: "p2", FullName: "Alex Medic"},
		{ID: "p3", FullName: "Unused"},
	}
	assignments := []models.Assignment{
		{PractitionerID: "p1", Active: true},
		{PractitionerID: "p2", Active: true},
		{PractitionerID: "p1", Active: true},
		{PractitionerID: "p2", Active: false},
		{PractitionerID: "p9", Active: true},
		{PractitionerID: "p2", Active: true},
	}

	assert.Equal(t, []WorkloadEntry{
		{PractitionerID: "p2", Name: "Alex Medic", Active: 2},
		{PractitionerID: "p1", Name: "Dana Physio", Active: 2},
		{PractitionerID: "p9", Name: "p9", Active: 1},
	}, PractitionerWorkload(assignments, practitioners))
}

func TestRecoveryRate(t *testing.T) {
	assert.Equal(t, 0, RecoveryRate(nil))
	assert.Equal(t, 0, RecoveryRate([]models.Injury{}))

	injuries := []models.Injury{
		{Status: models.InjuryStatusResolved},
		{Status: models.InjuryStatusReported},
		{Status: models.InjuryStatusResolved},
	}
	// round(100 * 2 / 3)
	assert.Equal(t, 67, RecoveryRate(injuries))
}

func TestAggregatesIgnoreInputOrder(t *testing.T) {
	students := []models.User{{ID: "s1", Sport: strPtr("Rugby")}, {ID: "s2", Sport: strPtr("Hockey")}}
	injuries := []models.Injury{
		{ID: "a", StudentID: "s1", Severity: models.SeverityMild, DateReported: day("2024-03-01"), InjuryType: "Sprain"},
		{ID: "b", StudentID: "s2", Severity: models.SeverityCritical, DateReported: day("2024-01-01"), InjuryType: "Sprain"},
		{ID: "c", StudentID: "s1", Severity: models.SeverityMild, DateReported: day("2024-01-20"), InjuryType: "Sprain"},
	}
	reversed := []models.Injury{injuries[2], injuries[1], injuries[0]}

	assert.Equal(t, MonthlyTrend(injuries), MonthlyTrend(reversed))
	assert.Equal(t, SeverityDistribution(injuries), SeverityDistribution(reversed))
	assert.Equal(t, IncidenceBySport(injuries, students), IncidenceBySport(reversed, students))
	assert.Equal(t, TimeLossBySeverity(injuries), TimeLossBySeverity(reversed))
	assert.Equal(t, RecurrenceRate(injuries), RecurrenceRate(reversed))
}
