package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dashgrid/dashgrid-api/internal/core/domain"
	"github.com/dashgrid/dashgrid-api/internal/core/ports"
)

// StatsCache stores the latest statistics snapshot. Implementations may
// return (nil, nil) on a miss.
type StatsCache interface {
	Get(ctx context.Context) (*domain.Statistics, error)
	Set(ctx context.Context, stats *domain.Statistics) error
}

// StatsService serves platform totals, reading through an optional cache.
// Cache failures are logged and never fail the request.
type StatsService struct {
	repo   ports.StatsRepository
	cache  StatsCache
	logger zerolog.Logger
}

// NewStatsService returns a StatsService; cache may be nil.
func NewStatsService(repo ports.StatsRepository, cache StatsCache, logger zerolog.Logger) *StatsService {
	return &StatsService{repo: repo, cache: cache, logger: logger}
}

func (s *StatsService) Statistics(ctx context.Context) (*domain.Statistics, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("statistics cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	stats, err := s.repo.Totals(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, stats); err != nil {
			s.logger.Warn().Err(err).Msg("statistics cache write failed")
		}
	}
	return stats, nil
}
