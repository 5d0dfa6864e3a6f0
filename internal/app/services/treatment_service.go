package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	appauth "github.com/yigit/injurydesk/internal/app/auth"
	"github.com/yigit/injurydesk/internal/app/models"
	"github.com/yigit/injurydesk/internal/app/models/dto"
	"github.com/yigit/injurydesk/internal/app/repositories"
	"github.com/yigit/injurydesk/internal/pkg/apperrors"
	"github.com/yigit/injurydesk/internal/pkg/history"
)

// TreatmentService manages treatment templates, plans and plan drafts.
// Drafts live in process memory and are lost on restart.
type TreatmentService struct {
	gw     *repositories.Gateway
	authz  *appauth.AuthorizationService
	logger zerolog.Logger

	mu     sync.Mutex
	drafts map[string]history.History[dto.PlanDraft]
}

// NewTreatmentService creates a new TreatmentService
func NewTreatmentService(gw *repositories.Gateway, authz *appauth.AuthorizationService, logger zerolog.Logger) *TreatmentService {
	return &TreatmentService{
		gw:     gw,
		authz:  authz,
		logger: logger,
		drafts: make(map[string]history.History[dto.PlanDraft]),
	}
}

func cleanSteps(steps []string) []string {
	out := make([]string, 0, len(steps))
	for _, step := range steps {
		if step = strings.TrimSpace(step); step != "" {
			out = append(out, step)
		}
	}
	return out
}

// ListTemplates returns every template ordered by name
func (s *TreatmentService) ListTemplates(ctx context.Context) ([]models.TreatmentTemplate, error) {
	rows, err := s.gw.TreatmentTemplates.Filter(ctx, repositories.Query{OrderBy: "name"})
	if err != nil {
		return nil, fmt.Errorf("error listing treatment templates: %w", err)
	}
	return rows, nil
}

// CreateTemplate stores a reusable protocol
func (s *TreatmentService) CreateTemplate(ctx context.Context, session appauth.Session, req *dto.CreateTemplateRequest) (*models.TreatmentTemplate, error) {
	if err := requireRole(session, models.RolePractitioner, models.RoleAdmin); err != nil {
		return nil, err
	}
	steps := cleanSteps(req.Steps)
	if len(steps) == 0 {
		return nil, apperrors.NewValidationError("a template needs at least one step")
	}

	created, err := s.gw.TreatmentTemplates.Create(ctx, models.TreatmentTemplate{
		Name:        strings.TrimSpace(req.Name),
		InjuryType:  strings.TrimSpace(req.InjuryType),
		Description: strings.TrimSpace(req.Description),
		Steps:       steps,
		CreatedBy:   session.UserID,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("Error creating treatment template")
		return nil, fmt.Errorf("error creating treatment template: %w", err)
	}
	return &created, nil
}

// ListPlans returns the plans visible to the session, newest first
func (s *TreatmentService) ListPlans(ctx context.Context, session appauth.Session) ([]models.TreatmentPlan, error) {
	rows, err := scopedList(ctx, session, s.gw.TreatmentPlans, "created_at")
	if err != nil {
		return nil, fmt.Errorf("error listing treatment plans: %w", err)
	}
	return rows, nil
}

// CreatePlan starts a plan for an assigned injury. Steps default to the
// template's steps, and an assigned injury moves to in_treatment.
func (s *TreatmentService) CreatePlan(ctx context.Context, session appauth.Session, req *dto.CreatePlanRequest) (*models.TreatmentPlan, error) {
	if err := requireRole(session, models.RolePractitioner); err != nil {
		return nil, err
	}

	injury, err := s.gw.Injuries.Get(ctx, req.InjuryID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrInjuryNotFound, "injury not found")
	}
	if err := s.authz.CanAccessInjury(ctx, session, injury); err != nil {
		return nil, err
	}

	steps := cleanSteps(req.Steps)
	if req.TemplateID != nil {
		template, err := s.gw.TreatmentTemplates.Get(ctx, *req.TemplateID)
		if err != nil {
			return nil, notFound(err, apperrors.ErrResourceNotFound, "treatment template not found")
		}
		if len(steps) == 0 {
			steps = append([]string(nil), template.Steps...)
		}
	}

	created, err := s.gw.TreatmentPlans.Create(ctx, models.TreatmentPlan{
		InjuryID:       injury.ID,
		StudentID:      injury.StudentID,
		PractitionerID: session.UserID,
		TemplateID:     req.TemplateID,
		Title:          strings.TrimSpace(req.Title),
		Steps:          steps,
		Status:         models.PlanActive,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("injuryID", injury.ID).Msg("Error creating treatment plan")
		return nil, fmt.Errorf("error creating treatment plan: %w", err)
	}

	if injury.Status == models.InjuryStatusAssigned {
		if _, err := s.gw.Injuries.Update(ctx, injury.ID, repositories.Changes{"status": models.InjuryStatusInTreatment}); err != nil {
			return nil, fmt.Errorf("error updating injury status: %w", err)
		}
	}
	return &created, nil
}

// loadPlan fetches a plan the session may read
func (s *TreatmentService) loadPlan(ctx context.Context, session appauth.Session, id string) (models.TreatmentPlan, error) {
	plan, err := s.gw.TreatmentPlans.Get(ctx, id)
	if err != nil {
		return models.TreatmentPlan{}, notFound(err, apperrors.ErrPlanNotFound, "treatment plan not found")
	}
	if plan.PractitionerID == session.UserID {
		return plan, nil
	}

	injury, err := s.gw.Injuries.Get(ctx, plan.InjuryID)
	if err != nil {
		return models.TreatmentPlan{}, notFound(err, apperrors.ErrInjuryNotFound, "injury not found")
	}
	if err := s.authz.CanAccessInjury(ctx, session, injury); err != nil {
		return models.TreatmentPlan{}, err
	}
	return plan, nil
}

// editablePlan fetches a plan the session may edit: its practitioner or an admin
func (s *TreatmentService) editablePlan(ctx context.Context, session appauth.Session, id string) (models.TreatmentPlan, error) {
	plan, err := s.loadPlan(ctx, session, id)
	if err != nil {
		return models.TreatmentPlan{}, err
	}
	if plan.PractitionerID != session.UserID && !session.IsAdmin() {
		return models.TreatmentPlan{}, apperrors.NewForbiddenError("only the plan's practitioner can edit it")
	}
	return plan, nil
}

// GetPlan returns a plan with its template
func (s *TreatmentService) GetPlan(ctx context.Context, session appauth.Session, id string) (*dto.PlanDetail, error) {
	plan, err := s.loadPlan(ctx, session, id)
	if err != nil {
		return nil, err
	}

	detail := &dto.PlanDetail{Plan: plan}
	if plan.TemplateID != nil {
		if template, err := s.gw.TreatmentTemplates.Get(ctx, *plan.TemplateID); err == nil {
			detail.Template = &template
		}
	}

	s.mu.Lock()
	_, detail.HasDraft = s.drafts[plan.ID]
	s.mu.Unlock()
	return detail, nil
}

func draftOf(plan models.TreatmentPlan) dto.PlanDraft {
	return dto.PlanDraft{Title: plan.Title, Steps: append([]string{}, plan.Steps...)}
}

func draftResponse(planID string, h history.History[dto.PlanDraft]) *dto.PlanDraftResponse {
	undo, redo := h.Depth()
	present := h.Present()
	return &dto.PlanDraftResponse{
		PlanID:    planID,
		Draft:     dto.PlanDraft{Title: present.Title, Steps: append([]string{}, present.Steps...)},
		CanUndo:   h.CanUndo(),
		CanRedo:   h.CanRedo(),
		UndoDepth: undo,
		RedoDepth: redo,
	}
}

// GetDraft returns the plan's working copy, opening one from the stored plan if needed
func (s *TreatmentService) GetDraft(ctx context.Context, session appauth.Session, planID string) (*dto.PlanDraftResponse, error) {
	plan, err := s.editablePlan(ctx, session, planID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.drafts[plan.ID]
	if !ok {
		h = history.New(draftOf(plan))
		s.drafts[plan.ID] = h
	}
	return draftResponse(plan.ID, h), nil
}

// PutDraft records a new working copy; anything undone is discarded
func (s *TreatmentService) PutDraft(ctx context.Context, session appauth.Session, planID string, req *dto.PlanDraftRequest) (*dto.PlanDraftResponse, error) {
	plan, err := s.editablePlan(ctx, session, planID)
	if err != nil {
		return nil, err
	}
	next := dto.PlanDraft{Title: strings.TrimSpace(req.Title), Steps: cleanSteps(req.Steps)}
	if next.Title == "" {
		return nil, apperrors.NewValidationError("title cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.drafts[plan.ID]
	if !ok {
		h = history.New(draftOf(plan))
	}
	h = h.Push(next)
	s.drafts[plan.ID] = h
	return draftResponse(plan.ID, h), nil
}

// UndoDraft steps the working copy back
func (s *TreatmentService) UndoDraft(ctx context.Context, session appauth.Session, planID string) (*dto.PlanDraftResponse, error) {
	return s.stepDraft(ctx, session, planID, history.History[dto.PlanDraft].Undo, apperrors.ErrNothingToUndo)
}

// RedoDraft re-applies the last undone change
func (s *TreatmentService) RedoDraft(ctx context.Context, session appauth.Session, planID string) (*dto.PlanDraftResponse, error) {
	return s.stepDraft(ctx, session, planID, history.History[dto.PlanDraft].Redo, apperrors.ErrNothingToRedo)
}

func (s *TreatmentService) stepDraft(
	ctx context.Context,
	session appauth.Session,
	planID string,
	step func(history.History[dto.PlanDraft]) (history.History[dto.PlanDraft], bool),
	nothing error,
) (*dto.PlanDraftResponse, error) {
	plan, err := s.editablePlan(ctx, session, planID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.drafts[plan.ID]
	if !ok {
		return nil, apperrors.ErrNoDraft
	}
	next, moved := step(h)
	if !moved {
		return nil, nothing
	}
	s.drafts[plan.ID] = next
	return draftResponse(plan.ID, next), nil
}

// CommitDraft writes the working copy to the plan and closes the draft.
// The draft survives a failed write.
func (s *TreatmentService) CommitDraft(ctx context.Context, session appauth.Session, planID string) (*models.TreatmentPlan, error) {
	plan, err := s.editablePlan(ctx, session, planID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.drafts[plan.ID]
	if !ok {
		return nil, apperrors.ErrNoDraft
	}
	draft := h.Present()

	updated, err := s.gw.TreatmentPlans.Update(ctx, plan.ID, repositories.Changes{
		"title": draft.Title,
		"steps": draft.Steps,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("planID", plan.ID).Msg("Error committing plan draft")
		return nil, fmt.Errorf("error saving treatment plan: %w", err)
	}

	delete(s.drafts, plan.ID)
	s.logger.Info().Str("planID", plan.ID).Int("steps", len(updated.Steps)).Msg("Plan draft committed")
	return &updated, nil
}
