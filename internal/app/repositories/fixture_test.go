package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/injurydesk/internal/app/models"
	"github.com/yigit/injurydesk/internal/pkg/apperrors"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func intPtr(v int) *int { return &v }

func testData() FixtureData {
	return FixtureData{
		Users: []models.User{
			{ID: "s1", Email: "s1@uni.edu", RoleType: models.RoleStudent},
			{ID: "p1", Email: "p1@uni.edu", RoleType: models.RolePractitioner},
		},
		Injuries: []models.Injury{
			{ID: "i1", StudentID: "s1", Severity: models.SeverityMild, DateReported: day("2024-01-15"), Status: models.InjuryStatusReported},
			{ID: "i2", StudentID: "s1", Severity: models.SeveritySevere, DateReported: day("2024-03-02"), Status: models.InjuryStatusResolved, DaysLost: intPtr(12)},
			{ID: "i3", StudentID: "s2", Severity: models.SeverityMild, DateReported: day("2024-02-10"), Status: models.InjuryStatusReported},
		},
		Assignments: []models.Assignment{
			{ID: "a1", StudentID: "s1", PractitionerID: "p1", InjuryID: "i1", Active: true},
		},
	}
}

func TestFixtureReads(t *testing.T) {
	gw := NewFixtureGateway(testData(), 0)
	ctx := context.Background()

	assert.Equal(t, ModeFixture, gw.Mode())
	assert.True(t, gw.IsFixture())

	all, err := gw.Injuries.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	got, err := gw.Injuries.Get(ctx, "i2")
	require.NoError(t, err)
	assert.Equal(t, models.SeveritySevere, got.Severity)

	_, err = gw.Injuries.Get(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestFixtureFilter(t *testing.T) {
	gw := NewFixtureGateway(testData(), 0)
	ctx := context.Background()

	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{
			name:  "equality on named string type",
			query: Query{Where: []Cond{Eq("severity", models.SeverityMild)}},
			want:  []string{"i1", "i3"},
		},
		{
			name:  "date range is inclusive",
			query: Query{Where: []Cond{Gte("date_reported", day("2024-01-15")), Lte("date_reported", day("2024-02-10"))}},
			want:  []string{"i1", "i3"},
		},
		{
			name:  "order descending with limit",
			query: Query{OrderBy: "date_reported", Desc: true, Limit: 2},
			want:  []string{"i2", "i3"},
		},
		{
			name:  "nullable int compared against plain int",
			query: Query{Where: []Cond{Gte("days_lost", 10)}},
			want:  []string{"i2"},
		},
		{
			name:  "null equality",
			query: Query{Where: []Cond{Eq("days_lost", nil)}, OrderBy: "id"},
			want:  []string{"i1", "i3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := gw.Injuries.Filter(ctx, tt.query)
			require.NoError(t, err)

			ids := make([]string, 0, len(rows))
			for _, r := range rows {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestFixtureFilterRejectsUnknownColumn(t *testing.T) {
	gw := NewFixtureGateway(testData(), 0)

	_, err := gw.Injuries.Filter(context.Background(), Query{Where: []Cond{Eq("nope", 1)}})
	assert.ErrorIs(t, err, apperrors.ErrUnknownColumn)

	_, err = gw.Injuries.Filter(context.Background(), Query{OrderBy: "nope"})
	assert.ErrorIs(t, err, apperrors.ErrUnknownColumn)
}

func TestFixtureUpdatesRequireBackend(t *testing.T) {
	gw := NewFixtureGateway(testData(), 0)
	ctx := context.Background()

	_, err := gw.Injuries.Update(ctx, "i1", Changes{"status": models.InjuryStatusAssigned})
	assert.ErrorIs(t, err, apperrors.ErrBackendRequired)

	_, err = gw.Assignments.Update(ctx, "a1", Changes{"active": false})
	assert.ErrorIs(t, err, apperrors.ErrBackendRequired)

	// The row is untouched
	got, err := gw.Injuries.Get(ctx, "i1")
	require.NoError(t, err)
	assert.Equal(t, models.InjuryStatusReported, got.Status)
}

func TestFixtureCreate(t *testing.T) {
	gw := NewFixtureGateway(testData(), 5*time.Millisecond)
	ctx := context.Background()

	created, err := gw.Injuries.Create(ctx, models.Injury{StudentID: "s1", Severity: models.SeverityModerate, InjuryType: "Sprain"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.InjuryStatusReported, created.Status)
	assert.False(t, created.DateReported.IsZero())

	all, err := gw.Injuries.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	_, err = gw.Assignments.Create(ctx, models.Assignment{StudentID: "s1", PractitionerID: "p1", InjuryID: "i3"})
	assert.ErrorIs(t, err, apperrors.ErrBackendRequired)

	_, err = gw.Users.Create(ctx, models.User{Email: "S1@uni.edu", RoleType: models.RoleStudent})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestFixtureCreateHonoursCancellation(t *testing.T) {
	gw := NewFixtureGateway(testData(), time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gw.Injuries.Create(ctx, models.Injury{StudentID: "s1", Severity: models.SeverityMild})
	assert.ErrorIs(t, err, context.Canceled)

	assert.ErrorIs(t, gw.Simulate(ctx), context.Canceled)
}

func TestFixtureListReturnsCopies(t *testing.T) {
	gw := NewFixtureGateway(testData(), 0)
	ctx := context.Background()

	rows, err := gw.Injuries.List(ctx)
	require.NoError(t, err)
	rows[0].Status = models.InjuryStatusResolved

	again, err := gw.Injuries.Get(ctx, rows[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.InjuryStatusReported, again.Status)
}

func TestMemoryGatewayUpdates(t *testing.T) {
	gw := NewMemoryGateway(testData())
	ctx := context.Background()
	assert.Equal(t, ModeMemory, gw.Mode())
	assert.False(t, gw.IsFixture())

	returned := day("2024-03-20")
	updated, err := gw.Injuries.Update(ctx, "i1", Changes{
		"status":        "recovering",
		"days_lost":     7,
		"date_returned": returned,
	})
	require.NoError(t, err)
	assert.Equal(t, models.InjuryStatusRecovering, updated.Status)
	require.NotNil(t, updated.DaysLost)
	assert.Equal(t, 7, *updated.DaysLost)
	require.NotNil(t, updated.DateReturned)
	assert.True(t, returned.Equal(*updated.DateReturned))
	assert.False(t, updated.UpdatedAt.IsZero())

	cleared, err := gw.Injuries.Update(ctx, "i1", Changes{"days_lost": nil})
	require.NoError(t, err)
	assert.Nil(t, cleared.DaysLost)

	deactivated, err := gw.Assignments.Update(ctx, "a1", Changes{"active": false})
	require.NoError(t, err)
	assert.False(t, deactivated.Active)
}

func TestMemoryGatewayUpdateErrors(t *testing.T) {
	gw := NewMemoryGateway(testData())
	ctx := context.Background()

	_, err := gw.Injuries.Update(ctx, "missing", Changes{"status": "resolved"})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	_, err = gw.Injuries.Update(ctx, "i1", Changes{"nope": 1})
	assert.ErrorIs(t, err, apperrors.ErrUnknownColumn)

	_, err = gw.Injuries.Update(ctx, "i1", Changes{"id": "other"})
	assert.ErrorIs(t, err, apperrors.ErrUnknownColumn)

	_, err = gw.Injuries.Update(ctx, "i1", Changes{"injury_type": 42})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	same, err := gw.Injuries.Update(ctx, "i1", Changes{})
	require.NoError(t, err)
	assert.Equal(t, "i1", same.ID)
}
