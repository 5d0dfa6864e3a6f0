package services

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appauth "github.com/yigit/injurydesk/internal/app/auth"
	"github.com/yigit/injurydesk/internal/app/models"
	"github.com/yigit/injurydesk/internal/app/reporting"
	"github.com/yigit/injurydesk/internal/app/repositories"
	"github.com/yigit/injurydesk/internal/pkg/apperrors"
	"github.com/yigit/injurydesk/internal/seed"
)

func newDashboardService(gw *repositories.Gateway) *DashboardService {
	authz := appauth.NewAuthorizationService(gw)
	svc := NewDashboardService(
		gw,
		authz,
		NewAnalyticsService(gw, nop()),
		NewAssignmentService(gw, nil, nop()),
		NewMessageService(gw, nil, nop()),
		nop(),
	)
	svc.now = fixedClock
	return svc
}

func TestAnalyticsReport(t *testing.T) {
	gw := demoGateway(t)
	svc := NewAnalyticsService(gw, nop())
	ctx := context.Background()

	report, err := svc.Report(ctx, sessionFor(t, gw, seed.AdminID), reporting.Filter{}, true)
	require.NoError(t, err)
	assert.Equal(t, 7, report.TotalInjuries)
	assert.Equal(t, 7, report.FilteredInjuries)
	assert.Equal(t, 5, report.OpenInjuries)
	assert.Positive(t, report.RecurrenceRate)
	assert.Len(t, report.MonthlyTrend, 4)

	filter, err := reporting.ParseFilter("2024-03-01", "2024-03-31", "", "")
	require.NoError(t, err)
	report, err = svc.Report(ctx, sessionFor(t, gw, seed.AdminID), filter, false)
	require.NoError(t, err)
	assert.Equal(t, 2, report.FilteredInjuries)
	assert.Equal(t, "2024-03-01", report.Filter.Start)

	_, err = svc.Report(ctx, sessionFor(t, gw, seed.PhysioID), reporting.Filter{}, false)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestAnalyticsExport(t *testing.T) {
	gw := demoGateway(t)
	svc := NewAnalyticsService(gw, nop())
	filter, err := reporting.ParseFilter("", "", "", "mild")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.Export(context.Background(), sessionFor(t, gw, seed.AdminID), filter, &buf))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, strings.Join(reporting.ExportColumns, ","), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], `"inj-002",`))
	assert.True(t, strings.HasPrefix(lines[2], `"inj-004",`))
	assert.True(t, strings.HasPrefix(lines[3], `"inj-007",`))

	buf.Reset()
	err = svc.Export(context.Background(), sessionFor(t, gw, seed.StudentAlexID), filter, &buf)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	assert.Zero(t, buf.Len())
}

func TestStudentDashboard(t *testing.T) {
	gw := demoGateway(t)
	svc := newDashboardService(gw)

	dashboard, err := svc.Get(context.Background(), sessionFor(t, gw, seed.StudentAlexID))
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, dashboard.Role)
	assert.Nil(t, dashboard.Practitioner)
	assert.Nil(t, dashboard.Admin)

	d := dashboard.Student
	require.NotNil(t, d)
	assert.Len(t, d.Injuries, 2)
	require.Len(t, d.UpcomingAppointments, 1)
	assert.Equal(t, "apt-001", d.UpcomingAppointments[0].ID)
	require.Len(t, d.ActivePlans, 1)
	assert.Equal(t, "plan-001", d.ActivePlans[0].ID)
	assert.Empty(t, d.OpenChecklists)
}

func TestPractitionerDashboard(t *testing.T) {
	gw := demoGateway(t)
	svc := newDashboardService(gw)

	dashboard, err := svc.Get(context.Background(), sessionFor(t, gw, seed.SportsMedID))
	require.NoError(t, err)
	d := dashboard.Practitioner
	require.NotNil(t, d)
	require.Len(t, d.Caseload, 2)
	for _, entry := range d.Caseload {
		require.NotNil(t, entry.Injury)
		require.NotNil(t, entry.Student)
		assert.Equal(t, entry.Assignment.StudentID, entry.Student.ID)
	}
	require.Len(t, d.UpcomingAppointments, 1)
	assert.Equal(t, "apt-002", d.UpcomingAppointments[0].ID)
	assert.Zero(t, d.UnreadMessages)

	dashboard, err = svc.Get(context.Background(), sessionFor(t, gw, seed.PhysioID))
	require.NoError(t, err)
	assert.Equal(t, 1, dashboard.Practitioner.UnreadMessages)
}

func TestAdminDashboard(t *testing.T) {
	gw := demoGateway(t)
	svc := newDashboardService(gw)

	dashboard, err := svc.Get(context.Background(), sessionFor(t, gw, seed.AdminID))
	require.NoError(t, err)
	d := dashboard.Admin
	require.NotNil(t, d)
	assert.Equal(t, 7, d.TotalInjuries)
	assert.Equal(t, 5, d.OpenInjuries)
	assert.Equal(t, 2, d.UnassignedInjuries)
	assert.Positive(t, d.RecurrenceRate)
	assert.Len(t, d.Workload, 2)
	require.NotNil(t, d.Suggestion)
	assert.Equal(t, "inj-006", d.Suggestion.InjuryID)
}
