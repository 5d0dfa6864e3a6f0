package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appauth "github.com/yigit/injurydesk/internal/app/auth"
	"github.com/yigit/injurydesk/internal/app/models"
	"github.com/yigit/injurydesk/internal/app/models/dto"
	"github.com/yigit/injurydesk/internal/app/repositories"
	"github.com/yigit/injurydesk/internal/pkg/apperrors"
	"github.com/yigit/injurydesk/internal/seed"
)

func newTreatmentService(gw *repositories.Gateway) *TreatmentService {
	return NewTreatmentService(gw, appauth.NewAuthorizationService(gw), nop())
}

func TestTemplates(t *testing.T) {
	gw := demoGateway(t)
	svc := newTreatmentService(gw)
	ctx := context.Background()

	created, err := svc.CreateTemplate(ctx, sessionFor(t, gw, seed.PhysioID), &dto.CreateTemplateRequest{
		Name:  "Ankle sprain",
		Steps: []string{" Balance board ", "", "Hopping"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Balance board", "Hopping"}, created.Steps)
	assert.Equal(t, seed.PhysioID, created.CreatedBy)

	templates, err := svc.ListTemplates(ctx)
	require.NoError(t, err)
	require.Len(t, templates, 2)
	assert.Equal(t, "Ankle sprain", templates[0].Name)

	_, err = svc.CreateTemplate(ctx, sessionFor(t, gw, seed.StudentAlexID), &dto.CreateTemplateRequest{Name: "x", Steps: []string{"y"}})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = svc.CreateTemplate(ctx, sessionFor(t, gw, seed.PhysioID), &dto.CreateTemplateRequest{Name: "x", Steps: []string{"  "}})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreatePlanFromTemplate(t *testing.T) {
	gw := demoGateway(t)
	svc := newTreatmentService(gw)
	ctx := context.Background()

	plan, err := svc.CreatePlan(ctx, sessionFor(t, gw, seed.SportsMedID), &dto.CreatePlanRequest{
		InjuryID:   "inj-005",
		TemplateID: strPtr("tpl-001"),
		Title:      "Return to contact",
	})
	require.NoError(t, err)
	assert.Equal(t, seed.StudentDrewID, plan.StudentID)
	assert.Equal(t, []string{"Isometric holds", "Nordic curls", "Tempo runs", "Full sprint"}, plan.Steps)
	assert.Equal(t, models.PlanActive, plan.Status)

	injury, err := gw.Injuries.Get(ctx, "inj-005")
	require.NoError(t, err)
	assert.Equal(t, models.InjuryStatusInTreatment, injury.Status)

	_, err = svc.CreatePlan(ctx, sessionFor(t, gw, seed.PhysioID), &dto.CreatePlanRequest{InjuryID: "inj-003", Title: "x"})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = svc.CreatePlan(ctx, sessionFor(t, gw, seed.AdminID), &dto.CreatePlanRequest{InjuryID: "inj-003", Title: "x"})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestGetPlan(t *testing.T) {
	gw := demoGateway(t)
	svc := newTreatmentService(gw)
	ctx := context.Background()

	detail, err := svc.GetPlan(ctx, sessionFor(t, gw, seed.StudentAlexID), "plan-001")
	require.NoError(t, err)
	require.NotNil(t, detail.Template)
	assert.Equal(t, "tpl-001", detail.Template.ID)
	assert.False(t, detail.HasDraft)

	_, err = svc.GetPlan(ctx, sessionFor(t, gw, seed.StudentBlairID), "plan-001")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = svc.GetPlan(ctx, sessionFor(t, gw, seed.AdminID), "plan-404")
	assert.ErrorIs(t, err, apperrors.ErrPlanNotFound)
}

func TestPlanDraftHistory(t *testing.T) {
	gw := demoGateway(t)
	svc := newTreatmentService(gw)
	ctx := context.Background()
	physio := sessionFor(t, gw, seed.PhysioID)

	draft, err := svc.GetDraft(ctx, physio, "plan-001")
	require.NoError(t, err)
	assert.Equal(t, "Hamstring rehab (repeat)", draft.Draft.Title)
	assert.False(t, draft.CanUndo)
	assert.False(t, draft.CanRedo)

	_, err = svc.UndoDraft(ctx, physio, "plan-001")
	assert.ErrorIs(t, err, apperrors.ErrNothingToUndo)

	_, err = svc.PutDraft(ctx, physio, "plan-001", &dto.PlanDraftRequest{Title: "v1", Steps: []string{"a"}})
	require.NoError(t, err)
	draft, err = svc.PutDraft(ctx, physio, "plan-001", &dto.PlanDraftRequest{Title: "v2", Steps: []string{"a", "b"}})
	require.NoError(t, err)
	assert.Equal(t, 2, draft.UndoDepth)

	draft, err = svc.UndoDraft(ctx, physio, "plan-001")
	require.NoError(t, err)
	assert.Equal(t, "v1", draft.Draft.Title)
	assert.True(t, draft.CanRedo)

	draft, err = svc.RedoDraft(ctx, physio, "plan-001")
	require.NoError(t, err)
	assert.Equal(t, "v2", draft.Draft.Title)

	_, err = svc.RedoDraft(ctx, physio, "plan-001")
	assert.ErrorIs(t, err, apperrors.ErrNothingToRedo)

	// a new edit after undo drops the redo branch
	_, err = svc.UndoDraft(ctx, physio, "plan-001")
	require.NoError(t, err)
	draft, err = svc.PutDraft(ctx, physio, "plan-001", &dto.PlanDraftRequest{Title: "v3", Steps: []string{"c"}})
	require.NoError(t, err)
	assert.False(t, draft.CanRedo)

	detail, err := svc.GetPlan(ctx, physio, "plan-001")
	require.NoError(t, err)
	assert.True(t, detail.HasDraft)

	plan, err := svc.CommitDraft(ctx, physio, "plan-001")
	require.NoError(t, err)
	assert.Equal(t, "v3", plan.Title)
	assert.Equal(t, []string{"c"}, plan.Steps)

	_, err = svc.UndoDraft(ctx, physio, "plan-001")
	assert.ErrorIs(t, err, apperrors.ErrNoDraft)
	_, err = svc.CommitDraft(ctx, physio, "plan-001")
	assert.ErrorIs(t, err, apperrors.ErrNoDraft)
}

func TestPlanDraftAccess(t *testing.T) {
	gw := demoGateway(t)
	svc := newTreatmentService(gw)

	_, err := svc.GetDraft(context.Background(), sessionFor(t, gw, seed.StudentAlexID), "plan-001")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = svc.GetDraft(context.Background(), sessionFor(t, gw, seed.AdminID), "plan-001")
	assert.NoError(t, err)
}

func TestCommitDraftKeepsDraftWhenStoreRejects(t *testing.T) {
	gw := fixtureGateway(t)
	svc := newTreatmentService(gw)
	ctx := context.Background()
	physio := sessionFor(t, gw, seed.PhysioID)

	_, err := svc.PutDraft(ctx, physio, "plan-001", &dto.PlanDraftRequest{Title: "offline edit"})
	require.NoError(t, err)

	_, err = svc.CommitDraft(ctx, physio, "plan-001")
	assert.ErrorIs(t, err, apperrors.ErrBackendRequired)

	draft, err := svc.GetDraft(ctx, physio, "plan-001")
	require.NoError(t, err)
	assert.Equal(t, "offline edit", draft.Draft.Title)
}

func TestRTPClearResolvesInjury(t *testing.T) {
	gw := demoGateway(t)
	pub := &recordingPublisher{}
	svc := NewRTPService(gw, appauth.NewAuthorizationService(gw), pub, nop())
	svc.now = fixedClock
	ctx := context.Background()
	sportsMed := sessionFor(t, gw, seed.SportsMedID)

	_, err := svc.Clear(ctx, sessionFor(t, gw, seed.PhysioID), "rtp-002")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	clearance, err := svc.Clear(ctx, sportsMed, "rtp-002")
	require.NoError(t, err)
	assert.Equal(t, models.ChecklistCleared, clearance.Checklist.Status)
	require.NotNil(t, clearance.Checklist.ClearedAt)
	assert.Equal(t, testNow, *clearance.Checklist.ClearedAt)
	assert.Equal(t, models.InjuryStatusResolved, clearance.Injury.Status)
	require.NotNil(t, clearance.Injury.DateReturned)
	assert.Equal(t, 82, clearance.DaysToClear)
	assert.Len(t, pub.ofType(EventInjuryUpdated), 1)

	_, err = svc.Clear(ctx, sportsMed, "rtp-002")
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	_, err = svc.Clear(ctx, sportsMed, "rtp-404")
	assert.ErrorIs(t, err, apperrors.ErrChecklistNotFound)
}

func TestRTPCreateAndList(t *testing.T) {
	gw := demoGateway(t)
	svc := NewRTPService(gw, appauth.NewAuthorizationService(gw), nil, nop())
	ctx := context.Background()
	sportsMed := sessionFor(t, gw, seed.SportsMedID)

	created, err := svc.Create(ctx, sportsMed, &dto.CreateChecklistRequest{InjuryID: "inj-005", Items: []string{"Symptom free", " Graded exertion "}})
	require.NoError(t, err)
	assert.Equal(t, models.ChecklistPending, created.Status)
	assert.Equal(t, seed.StudentDrewID, created.StudentID)
	assert.Equal(t, []string{"Symptom free", "Graded exertion"}, created.Items)

	_, err = svc.Create(ctx, sportsMed, &dto.CreateChecklistRequest{InjuryID: "inj-005", Items: []string{""}})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.Create(ctx, sessionFor(t, gw, seed.StudentDrewID), &dto.CreateChecklistRequest{InjuryID: "inj-005", Items: []string{"x"}})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	rows, err := svc.List(ctx, sessionFor(t, gw, seed.StudentDrewID))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, created.ID, rows[0].ID)
}
