package ports

import (
	"context"

	"github.com/dashgrid/dashgrid-api/internal/core/domain"
)

// SourceInput carries the editable fields of a source.
type SourceInput struct {
	Name     string
	Type     string
	URL      string
	Login    string
	Passcode string
	VHost    string
}

// SourceService covers source CRUD and name reconciliation.
type SourceService interface {
	ListSources(ctx context.Context, owner string) ([]*domain.Source, error)
	CreateSource(ctx context.Context, owner string, input SourceInput) error
	ChangeSource(ctx context.Context, owner, id string, input SourceInput) error
	DeleteSource(ctx context.Context, owner, id string) error
	// GetSource resolves ownerRef ("self" or an account id) against the
	// requester and returns the named source only if requester owns it.
	GetSource(ctx context.Context, requester, ownerRef, name string) (*domain.Source, error)
	// CheckSources creates every name not yet owned and returns the created names.
	CheckSources(ctx context.Context, owner string, names []string) ([]string, error)
}

// StatsService reports platform-wide totals.
type StatsService interface {
	Statistics(ctx context.Context) (*domain.Statistics, error)
}
