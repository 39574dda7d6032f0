package ports

import (
	"context"
)

// DashboardSummary is the list-view item for a dashboard.
type DashboardSummary struct {
	ID    string
	Name  string
	Views int64
}

// DashboardView is the content exposed to viewers of a dashboard.
type DashboardView struct {
	Name   string
	Layout []any
	Items  map[string]any
}

// DashboardDetail is the owner's editing view plus the owner's source names.
type DashboardDetail struct {
	ID      string
	Name    string
	Layout  []any
	Items   map[string]any
	NextID  int
	Sources []string
}

// SaveDashboardInput carries the editable parts of a dashboard.
type SaveDashboardInput struct {
	ID     string
	Layout []any
	Items  map[string]any
	NextID int
}

// AccessResult is the outcome of the sharing check for one requester.
// HasPassword is only set on the owner path and PasswordNeeded only on the
// non-owner shared paths. Dashboard is nil whenever content is withheld.
type AccessResult struct {
	Owner          string
	Shared         bool
	HasPassword    *bool
	PasswordNeeded *bool
	Dashboard      *DashboardView
}

// PasswordCheckResult is the outcome of a password challenge.
type PasswordCheckResult struct {
	Correct   bool
	Owner     string
	Dashboard *DashboardView
}

// DashboardService covers dashboard CRUD and the sharing state machine.
type DashboardService interface {
	ListDashboards(ctx context.Context, owner string) ([]DashboardSummary, error)
	CreateDashboard(ctx context.Context, owner, name string) error
	DeleteDashboard(ctx context.Context, owner, id string) error
	GetDashboard(ctx context.Context, owner, id string) (*DashboardDetail, error)
	SaveDashboard(ctx context.Context, owner string, input SaveDashboardInput) error
	CloneDashboard(ctx context.Context, owner, dashboardID, name string) error

	CheckPasswordNeeded(ctx context.Context, dashboardID, requester string) (*AccessResult, error)
	CheckPassword(ctx context.Context, dashboardID, password string) (*PasswordCheckResult, error)
	ToggleShare(ctx context.Context, owner, dashboardID string) (bool, error)
	ChangePassword(ctx context.Context, owner, dashboardID, password string) error
}
