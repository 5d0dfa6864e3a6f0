package assignment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/injurydesk/internal/app/models"
	"github.com/yigit/injurydesk/internal/pkg/apperrors"
)

func specialty(s string) *string { return &s }

func TestSuggestPrefersPhysio(t *testing.T) {
	practitioners := []models.User{
		{ID: "p1", Specialization: specialty("Physiotherapy")},
		{ID: "p2", Specialization: specialty("Sports Medicine")},
	}
	injuries := []models.Injury{{ID: "i1", Status: models.InjuryStatusReported}}

	got, ok := Suggest(injuries, practitioners, nil, DefaultCriteria)
	require.True(t, ok)
	assert.Equal(t, "i1", got.InjuryID)
	assert.Equal(t, "p1", got.PractitionerID)
	assert.Equal(t, 0, got.Scores[0].Total)
	assert.Equal(t, 1, got.Scores[1].Total)
}

func TestSuggestCandidateInjury(t *testing.T) {
	practitioners := []models.User{{ID: "p1"}}

	got, ok := Suggest([]models.Injury{
		{ID: "i1", Status: models.InjuryStatusAssigned},
		{ID: "i2", Status: models.InjuryStatusReported},
		{ID: "i3", Status: models.InjuryStatusReported},
	}, practitioners, nil, DefaultCriteria)
	require.True(t, ok)
	assert.Equal(t, "i2", got.InjuryID)

	got, ok = Suggest([]models.Injury{
		{ID: "i1", Status: models.InjuryStatusResolved},
		{ID: "i2", Status: models.InjuryStatusAssigned},
	}, practitioners, nil, DefaultCriteria)
	require.True(t, ok)
	assert.Equal(t, "i1", got.InjuryID)
}

func TestSuggestNothingToSuggest(t *testing.T) {
	_, ok := Suggest(nil, []models.User{{ID: "p1"}}, nil, DefaultCriteria)
	assert.False(t, ok)

	_, ok = Suggest([]models.Injury{{ID: "i1"}}, nil, nil, DefaultCriteria)
	assert.False(t, ok)
}

func TestSuggestTiesKeepInputOrder(t *testing.T) {
	practitioners := []models.User{
		{ID: "p1", Specialization: specialty("Orthopaedics")},
		{ID: "p2", Specialization: specialty("PHYSIO lead")},
		{ID: "p3", Specialization: specialty("physiotherapist")},
	}

	got, ok := Suggest([]models.Injury{{ID: "i1"}}, practitioners, nil, DefaultCriteria)
	require.True(t, ok)
	assert.Equal(t, "p2", got.PractitionerID)
}

func TestSuggestWithActiveLoad(t *testing.T) {
	practitioners := []models.User{
		{ID: "p1", Specialization: specialty("Physiotherapy")},
		{ID: "p2", Specialization: specialty("Sports Medicine")},
	}
	active := []models.Assignment{
		{PractitionerID: "p1", Active: true},
		{PractitionerID: "p1", Active: true},
		{PractitionerID: "p1", Active: false},
	}
	injuries := []models.Injury{{ID: "i1", Status: models.InjuryStatusReported}}

	// specialization-only ignores the caseload
	got, _ := Suggest(injuries, practitioners, active, DefaultCriteria)
	assert.Equal(t, "p1", got.PractitionerID)
	assert.Equal(t, 2, got.Scores[0].ActiveAssignments)
	assert.Equal(t, 0, got.Scores[0].Total)

	combined, _ := Suggest(injuries, practitioners, active, Criteria{Specialization: true, ActiveLoad: true})
	assert.Equal(t, "p2", combined.PractitionerID)
	assert.Equal(t, 2, combined.Scores[0].Total)
	assert.Equal(t, 1, combined.Scores[1].Total)

	loadOnly, _ := Suggest(injuries, practitioners, active, Criteria{ActiveLoad: true})
	assert.Equal(t, "p2", loadOnly.PractitionerID)
	assert.Equal(t, 0, loadOnly.Scores[1].SpecializationScore)
}

func TestParseCriteria(t *testing.T) {
	tests := []struct {
		raw     string
		want    Criteria
		wantErr bool
	}{
		{raw: "", want: DefaultCriteria},
		{raw: "specialization", want: Criteria{Specialization: true}},
		{raw: "workload", want: Criteria{ActiveLoad: true}},
		{raw: "specialization, workload", want: Criteria{Specialization: true, ActiveLoad: true}},
		{raw: "seniority", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseCriteria(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
