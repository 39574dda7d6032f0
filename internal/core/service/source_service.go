package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/dashgrid/dashgrid-api/internal/core/domain"
	"github.com/dashgrid/dashgrid-api/internal/core/ports"
)

type SourceService struct {
	repo   ports.SourceRepository
	logger zerolog.Logger
}

func NewSourceService(repo ports.SourceRepository, logger zerolog.Logger) *SourceService {
	return &SourceService{repo: repo, logger: logger}
}

func (s *SourceService) ListSources(ctx context.Context, owner string) ([]*domain.Source, error) {
	return s.repo.ListByOwner(ctx, owner)
}

func (s *SourceService) CreateSource(ctx context.Context, owner string, in ports.SourceInput) error {
	_, err := s.repo.FindOwnedByName(ctx, owner, in.Name, "")
	switch {
	case err == nil:
		return domain.ErrSourceExists
	case !errors.Is(err, domain.ErrSourceNotFound):
		return err
	}

	src := applySourceInput(&domain.Source{Owner: owner}, in)
	if err := s.repo.Create(ctx, src); err != nil {
		return err
	}
	s.logger.Info().Str("source_id", src.ID).Str("owner", owner).Msg("source created")
	return nil
}

// ChangeSource rewrites an owned source. Renaming onto the name of another
// owned source fails with ErrSourceExists.
func (s *SourceService) ChangeSource(ctx context.Context, owner, id string, in ports.SourceInput) error {
	src, err := s.repo.FindOwned(ctx, id, owner)
	if err != nil {
		return err
	}

	_, err = s.repo.FindOwnedByName(ctx, owner, in.Name, id)
	switch {
	case err == nil:
		return domain.ErrSourceExists
	case !errors.Is(err, domain.ErrSourceNotFound):
		return err
	}

	return s.repo.Update(ctx, applySourceInput(src, in))
}

func (s *SourceService) DeleteSource(ctx context.Context, owner, id string) error {
	if err := s.repo.DeleteOwned(ctx, id, owner); err != nil {
		return err
	}
	s.logger.Info().Str("source_id", id).Str("owner", owner).Msg("source deleted")
	return nil
}

// GetSource resolves ownerRef against requester. Only the requester's own
// sources are reachable; any other owner reference is reported as not found.
func (s *SourceService) GetSource(ctx context.Context, requester, ownerRef, name string) (*domain.Source, error) {
	if requester == "" || (ownerRef != domain.OwnerSelf && ownerRef != requester) {
		return nil, domain.ErrSourceNotFound
	}
	return s.repo.FindOwnedByName(ctx, requester, name, "")
}

// CheckSources creates a placeholder for every requested name the owner
// does not have yet and returns the created names in request order.
func (s *SourceService) CheckSources(ctx context.Context, owner string, names []string) ([]string, error) {
	created := make([]string, 0)
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		_, err := s.repo.FindOwnedByName(ctx, owner, name, "")
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrSourceNotFound) {
			return nil, err
		}
		if err := s.repo.Create(ctx, domain.NewPlaceholderSource(owner, name)); err != nil {
			if errors.Is(err, domain.ErrSourceExists) {
				continue
			}
			return nil, err
		}
		created = append(created, name)
	}
	if len(created) > 0 {
		s.logger.Info().Str("owner", owner).Strs("sources", created).Msg("placeholder sources created")
	}
	return created, nil
}

func applySourceInput(src *domain.Source, in ports.SourceInput) *domain.Source {
	src.Name = in.Name
	src.Type = in.Type
	src.URL = in.URL
	src.Login = in.Login
	src.Passcode = in.Passcode
	src.VHost = in.VHost
	return src
}
