package ports

import (
	"context"

	"github.com/dashgrid/dashgrid-api/internal/core/domain"
)

// DashboardRepository defines persistence operations for dashboards.
// Every method taking an owner filters on both id and owner, so a
// dashboard belonging to someone else is indistinguishable from a missing one.
type DashboardRepository interface {
	// Create inserts d and sets its ID. A duplicate (owner, name) pair
	// surfaces as domain.ErrDashboardExists.
	Create(ctx context.Context, d *domain.Dashboard) error
	ListByOwner(ctx context.Context, owner string) ([]*domain.Dashboard, error)
	FindOwned(ctx context.Context, id, owner string) (*domain.Dashboard, error)
	FindOwnedByName(ctx context.Context, owner, name string) (*domain.Dashboard, error)
	// FindByID is unscoped and includes the password digest. It is reserved
	// for the sharing flow, which applies its own visibility rules.
	FindByID(ctx context.Context, id string) (*domain.Dashboard, error)
	UpdateLayout(ctx context.Context, id, owner string, update domain.LayoutUpdate) error
	// Save writes back name, layout, items, nextId, password, shared and views
	// of d, matching on d.ID and d.Owner.
	Save(ctx context.Context, d *domain.Dashboard) error
	DeleteOwned(ctx context.Context, id, owner string) error
}
