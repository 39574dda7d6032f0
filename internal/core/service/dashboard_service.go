package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"github.com/dashgrid/dashgrid-api/internal/core/domain"
	"github.com/dashgrid/dashgrid-api/internal/core/ports"
)

// DashboardService implements dashboard CRUD and the sharing state machine.
// Every owner-facing operation goes through an owner-scoped repository call.
type DashboardService struct {
	dashboards ports.DashboardRepository
	sources    ports.SourceRepository
	hasher     ports.PasswordHasher
	now        func() time.Time
	logger     zerolog.Logger
}

func NewDashboardService(dashboards ports.DashboardRepository, sources ports.SourceRepository, hasher ports.PasswordHasher, logger zerolog.Logger) *DashboardService {
	return &DashboardService{
		dashboards: dashboards,
		sources:    sources,
		hasher:     hasher,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *DashboardService) ListDashboards(ctx context.Context, owner string) ([]ports.DashboardSummary, error) {
	found, err := s.dashboards.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	out := make([]ports.DashboardSummary, 0, len(found))
	for _, d := range found {
		out = append(out, ports.DashboardSummary{ID: d.ID, Name: d.Name, Views: d.Views})
	}
	return out, nil
}

func (s *DashboardService) CreateDashboard(ctx context.Context, owner, name string) error {
	if err := s.ensureNameFree(ctx, owner, name); err != nil {
		return err
	}
	d := domain.NewDashboard(owner, name, s.now().UTC())
	if err := s.dashboards.Create(ctx, d); err != nil {
		return err
	}
	s.logger.Info().Str("dashboard_id", d.ID).Str("owner", owner).Msg("dashboard created")
	return nil
}

func (s *DashboardService) DeleteDashboard(ctx context.Context, owner, id string) error {
	if err := s.dashboards.DeleteOwned(ctx, id, owner); err != nil {
		return err
	}
	s.logger.Info().Str("dashboard_id", id).Str("owner", owner).Msg("dashboard deleted")
	return nil
}

// GetDashboard returns the editing view of an owned dashboard together with
// the names of every source the owner has.
func (s *DashboardService) GetDashboard(ctx context.Context, owner, id string) (*ports.DashboardDetail, error) {
	d, err := s.dashboards.FindOwned(ctx, id, owner)
	if err != nil {
		return nil, err
	}
	owned, err := s.sources.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(owned))
	for _, src := range owned {
		names = append(names, src.Name)
	}
	return &ports.DashboardDetail{
		ID:      d.ID,
		Name:    d.Name,
		Layout:  d.Layout,
		Items:   d.Items,
		NextID:  d.NextID,
		Sources: names,
	}, nil
}

// SaveDashboard replaces layout, items and nextId. nextId may not go below
// 1 or below the stored value.
func (s *DashboardService) SaveDashboard(ctx context.Context, owner string, in ports.SaveDashboardInput) error {
	d, err := s.dashboards.FindOwned(ctx, in.ID, owner)
	if err != nil {
		return err
	}
	if in.NextID < 1 || in.NextID < d.NextID {
		return domain.ErrInvalidNextID
	}
	update := domain.LayoutUpdate{Layout: in.Layout, Items: in.Items, NextID: in.NextID}
	if update.Layout == nil {
		update.Layout = []any{}
	}
	if update.Items == nil {
		update.Items = map[string]any{}
	}
	return s.dashboards.UpdateLayout(ctx, in.ID, owner, update)
}

// CloneDashboard copies layout, items and nextId of an owned dashboard into a
// new private dashboard without a password.
func (s *DashboardService) CloneDashboard(ctx context.Context, owner, dashboardID, name string) error {
	if err := s.ensureNameFree(ctx, owner, name); err != nil {
		return err
	}
	src, err := s.dashboards.FindOwned(ctx, dashboardID, owner)
	if err != nil {
		return err
	}
	clone := domain.NewDashboard(owner, name, s.now().UTC())
	clone.Layout = src.Layout
	clone.Items = src.Items
	clone.NextID = src.NextID
	if err := s.dashboards.Create(ctx, clone); err != nil {
		return err
	}
	s.logger.Info().Str("dashboard_id", clone.ID).Str("cloned_from", src.ID).Msg("dashboard cloned")
	return nil
}

// CheckPasswordNeeded decides what requester may see of a dashboard. The
// requester is empty for anonymous callers. Views are counted only on the
// paths that return content.
func (s *DashboardService) CheckPasswordNeeded(ctx context.Context, dashboardID, requester string) (_ *ports.AccessResult, err error) {
	ctx, span := startSpan(ctx, "DashboardService.CheckPasswordNeeded", attribute.String("dashboard.id", dashboardID))
	defer func() { endSpan(span, err) }()

	d, err := s.dashboards.FindByID(ctx, dashboardID)
	if err != nil {
		return nil, err
	}

	switch {
	case d.OwnedBy(requester):
		if err := s.recordView(ctx, d); err != nil {
			return nil, err
		}
		hasPassword := d.HasPassword()
		return &ports.AccessResult{
			Owner:       domain.OwnerSelf,
			Shared:      d.Shared,
			HasPassword: &hasPassword,
			Dashboard:   viewOf(d),
		}, nil
	case !d.Shared:
		return &ports.AccessResult{Shared: false}, nil
	case !d.HasPassword():
		if err := s.recordView(ctx, d); err != nil {
			return nil, err
		}
		needed := false
		return &ports.AccessResult{
			Owner:          d.Owner,
			Shared:         true,
			PasswordNeeded: &needed,
			Dashboard:      viewOf(d),
		}, nil
	default:
		needed := true
		return &ports.AccessResult{Shared: true, PasswordNeeded: &needed}, nil
	}
}

// CheckPassword answers a password challenge. A wrong password is a normal
// negative result and leaves the view counter untouched.
func (s *DashboardService) CheckPassword(ctx context.Context, dashboardID, password string) (_ *ports.PasswordCheckResult, err error) {
	ctx, span := startSpan(ctx, "DashboardService.CheckPassword", attribute.String("dashboard.id", dashboardID))
	defer func() { endSpan(span, err) }()

	d, err := s.dashboards.FindByID(ctx, dashboardID)
	if err != nil {
		return nil, err
	}
	if !s.hasher.Compare(d.PasswordHash, password) {
		return &ports.PasswordCheckResult{Correct: false}, nil
	}
	if err := s.recordView(ctx, d); err != nil {
		return nil, err
	}
	return &ports.PasswordCheckResult{Correct: true, Owner: d.Owner, Dashboard: viewOf(d)}, nil
}

// ToggleShare flips the shared flag of an owned dashboard and returns the new value.
func (s *DashboardService) ToggleShare(ctx context.Context, owner, dashboardID string) (_ bool, err error) {
	ctx, span := startSpan(ctx, "DashboardService.ToggleShare", attribute.String("dashboard.id", dashboardID))
	defer func() { endSpan(span, err) }()

	d, err := s.dashboards.FindOwned(ctx, dashboardID, owner)
	if err != nil {
		return false, err
	}
	d.Shared = !d.Shared
	if err := s.dashboards.Save(ctx, d); err != nil {
		return false, err
	}
	s.logger.Info().Str("dashboard_id", d.ID).Bool("shared", d.Shared).Msg("dashboard sharing changed")
	return d.Shared, nil
}

// ChangePassword sets the viewer password of an owned dashboard. An empty
// password removes protection.
func (s *DashboardService) ChangePassword(ctx context.Context, owner, dashboardID, password string) (err error) {
	ctx, span := startSpan(ctx, "DashboardService.ChangePassword", attribute.String("dashboard.id", dashboardID))
	defer func() { endSpan(span, err) }()

	d, err := s.dashboards.FindOwned(ctx, dashboardID, owner)
	if err != nil {
		return err
	}
	d.PasswordHash = ""
	if password != "" {
		hash, err := s.hasher.Digest(password)
		if err != nil {
			return fmt.Errorf("hash dashboard password: %w", err)
		}
		d.PasswordHash = hash
	}
	return s.dashboards.Save(ctx, d)
}

func (s *DashboardService) ensureNameFree(ctx context.Context, owner, name string) error {
	_, err := s.dashboards.FindOwnedByName(ctx, owner, name)
	switch {
	case err == nil:
		return domain.ErrDashboardExists
	case errors.Is(err, domain.ErrDashboardNotFound):
		return nil
	default:
		return err
	}
}

// recordView is a read-modify-write on the dashboard document; concurrent
// viewers may lose increments.
func (s *DashboardService) recordView(ctx context.Context, d *domain.Dashboard) error {
	d.RecordView()
	return s.dashboards.Save(ctx, d)
}

func viewOf(d *domain.Dashboard) *ports.DashboardView {
	return &ports.DashboardView{Name: d.Name, Layout: d.Layout, Items: d.Items}
}
