package services

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	appauth "github.com/yigit/injurydesk/internal/app/auth"
	"github.com/yigit/injurydesk/internal/app/models"
	"github.com/yigit/injurydesk/internal/app/reporting"
	"github.com/yigit/injurydesk/internal/app/repositories"
)

// AnalyticsService builds admin reports and CSV exports
type AnalyticsService struct {
	gw     *repositories.Gateway
	logger zerolog.Logger
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(gw *repositories.Gateway, logger zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{gw: gw, logger: logger}
}

// Dataset loads the snapshot every report is computed from
func (s *AnalyticsService) Dataset(ctx context.Context) (reporting.Dataset, error) {
	var ds reporting.Dataset
	var err error

	if ds.Injuries, err = s.gw.Injuries.Filter(ctx, repositories.Query{OrderBy: "date_reported"}); err != nil {
		return ds, fmt.Errorf("error loading injuries: %w", err)
	}
	if ds.Students, err = usersByRole(ctx, s.gw, models.RoleStudent); err != nil {
		return ds, err
	}
	if ds.Practitioners, err = usersByRole(ctx, s.gw, models.RolePractitioner); err != nil {
		return ds, err
	}
	if ds.Assignments, err = s.gw.Assignments.List(ctx); err != nil {
		return ds, fmt.Errorf("error loading assignments: %w", err)
	}
	if ds.Checklists, err = s.gw.RTPChecklists.List(ctx); err != nil {
		return ds, fmt.Errorf("error loading checklists: %w", err)
	}
	return ds, nil
}

// Report computes the analytics view for filter
func (s *AnalyticsService) Report(ctx context.Context, session appauth.Session, filter reporting.Filter, dense bool) (*reporting.Report, error) {
	if err := requireRole(session, models.RoleAdmin); err != nil {
		return nil, err
	}

	ds, err := s.Dataset(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error loading analytics dataset")
		return nil, err
	}
	report := reporting.Build(ds, filter, dense)
	return &report, nil
}

// Export writes the filtered injuries as CSV for an admin
func (s *AnalyticsService) Export(ctx context.Context, session appauth.Session, filter reporting.Filter, w io.Writer) error {
	if err := requireRole(session, models.RoleAdmin); err != nil {
		return err
	}
	return s.WriteExport(ctx, filter, w)
}

// WriteExport writes the filtered injuries as CSV, oldest report first
func (s *AnalyticsService) WriteExport(ctx context.Context, filter reporting.Filter, w io.Writer) error {
	ds, err := s.Dataset(ctx)
	if err != nil {
		return err
	}
	filtered := reporting.FilterInjuries(ds.Injuries, ds.Students, filter)
	if err := reporting.WriteInjuryCSV(w, filtered); err != nil {
		return fmt.Errorf("error writing export: %w", err)
	}
	s.logger.Info().Int("rows", len(filtered)).Msg("Injury export written")
	return nil
}
