package seed

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/injurydesk/internal/app/models"
	"github.com/yigit/injurydesk/internal/app/reporting"
	"github.com/yigit/injurydesk/internal/app/repositories"
	"github.com/yigit/injurydesk/internal/pkg/auth"
)

func TestDemoDataIsConsistent(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	data, err := DemoData(now)
	require.NoError(t, err)

	users := make(map[string]models.User)
	for _, u := range data.Users {
		users[u.ID] = u
		assert.True(t, auth.CheckPassword(u.Password, DemoPassword), u.Email)
	}

	for _, injury := range data.Injuries {
		assert.Equal(t, models.RoleStudent, users[injury.StudentID].RoleType, injury.ID)
		assert.True(t, injury.Severity.Valid(), injury.ID)
	}
	for _, a := range data.Assignments {
		assert.Equal(t, models.RolePractitioner, users[a.PractitionerID].RoleType, a.ID)
	}

	// one appointment lands inside the default reminder window
	upcoming := 0
	for _, a := range data.Appointments {
		if a.Status == models.AppointmentScheduled && !a.ScheduledAt.Before(now) && !a.ScheduledAt.After(now.Add(time.Hour)) {
			upcoming++
		}
	}
	assert.Equal(t, 1, upcoming)

	// the repeat hamstring strain makes the recurrence rate non-zero
	assert.Positive(t, reporting.RecurrenceRate(data.Injuries))
}

func TestCreateDefaultDataIsIdempotent(t *testing.T) {
	gw := repositories.NewMemoryGateway(repositories.FixtureData{})
	ctx := context.Background()

	require.NoError(t, CreateDefaultData(ctx, gw, "", zerolog.Nop()))
	require.NoError(t, CreateDefaultData(ctx, gw, "", zerolog.Nop()))

	users, err := gw.Users.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, models.RoleAdmin, users[0].RoleType)
	assert.True(t, auth.CheckPassword(users[0].Password, DemoPassword))
}
