package ports

import (
	"context"

	"github.com/dashgrid/dashgrid-api/internal/core/domain"
)

// SourceRepository defines persistence operations for sources.
type SourceRepository interface {
	// Create inserts s and sets its ID. A duplicate (owner, name) pair
	// surfaces as domain.ErrSourceExists.
	Create(ctx context.Context, s *domain.Source) error
	ListByOwner(ctx context.Context, owner string) ([]*domain.Source, error)
	FindOwned(ctx context.Context, id, owner string) (*domain.Source, error)
	// FindOwnedByName looks a source up by name within owner. When excludeID
	// is non-empty the source with that id is skipped (rename checks).
	FindOwnedByName(ctx context.Context, owner, name, excludeID string) (*domain.Source, error)
	// Update replaces the mutable fields of s, matching on s.ID and s.Owner.
	Update(ctx context.Context, s *domain.Source) error
	DeleteOwned(ctx context.Context, id, owner string) error
}

// StatsRepository computes platform totals with count and sum aggregations.
type StatsRepository interface {
	Totals(ctx context.Context) (*domain.Statistics, error)
}
