package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/injurydesk/internal/app/models"
	"github.com/yigit/injurydesk/internal/pkg/apperrors"
)

func TestPostgresSelectBuilder(t *testing.T) {
	c := NewPostgresCollection[models.Injury](nil, InjurySchema)

	builder, err := c.selectFor(Query{
		Where:   []Cond{Eq("student_id", "s1"), Gte("date_reported", day("2024-01-01"))},
		OrderBy: "date_reported",
		Desc:    true,
		Limit:   10,
	})
	require.NoError(t, err)

	sql, args, err := builder.ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "FROM injuries")
	assert.Contains(t, sql, "WHERE student_id = $1 AND date_reported >= $2")
	assert.Contains(t, sql, "ORDER BY date_reported DESC")
	assert.Contains(t, sql, "LIMIT 10")
	assert.Equal(t, []interface{}{"s1", day("2024-01-01")}, args)
}

func TestPostgresSelectBuilderRejectsUnknownColumns(t *testing.T) {
	c := NewPostgresCollection[models.Injury](nil, InjurySchema)

	_, err := c.selectFor(Query{Where: []Cond{Eq("password; DROP TABLE users", "x")}})
	assert.ErrorIs(t, err, apperrors.ErrUnknownColumn)

	_, err = c.selectFor(Query{OrderBy: "created_at; --"})
	assert.ErrorIs(t, err, apperrors.ErrUnknownColumn)
}

func TestSchemasAreAligned(t *testing.T) {
	check := func(t *testing.T, columns int, values, targets []any) {
		t.Helper()
		assert.Len(t, values, columns)
		assert.Len(t, targets, columns)
	}

	check(t, len(UserSchema.Columns), UserSchema.Values(&models.User{}), UserSchema.Targets(&models.User{}))
	check(t, len(InjurySchema.Columns), InjurySchema.Values(&models.Injury{}), InjurySchema.Targets(&models.Injury{}))
	check(t, len(AssignmentSchema.Columns), AssignmentSchema.Values(&models.Assignment{}), AssignmentSchema.Targets(&models.Assignment{}))
	check(t, len(AppointmentSchema.Columns), AppointmentSchema.Values(&models.Appointment{}), AppointmentSchema.Targets(&models.Appointment{}))
	check(t, len(MessageSchema.Columns), MessageSchema.Values(&models.Message{}), MessageSchema.Targets(&models.Message{}))
	check(t, len(RecoveryLogSchema.Columns), RecoveryLogSchema.Values(&models.RecoveryLog{}), RecoveryLogSchema.Targets(&models.RecoveryLog{}))
	check(t, len(TreatmentTemplateSchema.Columns), TreatmentTemplateSchema.Values(&models.TreatmentTemplate{}), TreatmentTemplateSchema.Targets(&models.TreatmentTemplate{}))
	check(t, len(TreatmentPlanSchema.Columns), TreatmentPlanSchema.Values(&models.TreatmentPlan{}), TreatmentPlanSchema.Targets(&models.TreatmentPlan{}))
	check(t, len(RTPChecklistSchema.Columns), RTPChecklistSchema.Values(&models.RTPChecklist{}), RTPChecklistSchema.Targets(&models.RTPChecklist{}))
	check(t, len(FileSchema.Columns), FileSchema.Values(&models.File{}), FileSchema.Targets(&models.File{}))
}
