// Package memory is a process-local store implementing every repository
// port. It backs the "memory" storage mode and the HTTP scenario tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dashgrid/dashgrid-api/internal/core/domain"
	"github.com/dashgrid/dashgrid-api/internal/core/ports"
)

type Store struct {
	mu  sync.Mutex
	seq int64

	accounts   map[string]*accountRecord
	resets     []domain.ResetToken
	dashboards map[string]*dashboardRecord
	sources    map[string]*sourceRecord
}

type accountRecord struct {
	seq     int64
	account domain.Account
}

type dashboardRecord struct {
	seq       int64
	dashboard domain.Dashboard
}

type sourceRecord struct {
	seq    int64
	source domain.Source
}

func NewStore() *Store {
	return &Store{
		accounts:   make(map[string]*accountRecord),
		dashboards: make(map[string]*dashboardRecord),
		sources:    make(map[string]*sourceRecord),
	}
}

// Accounts returns the account view of the store.
func (s *Store) Accounts() ports.AccountRepository { return &accountRepo{s} }

func (s *Store) Resets() ports.ResetRepository { return &resetRepo{s} }

func (s *Store) Dashboards() ports.DashboardRepository { return &dashboardRepo{s} }

func (s *Store) Sources() ports.SourceRepository { return &sourceRepo{s} }

func (s *Store) Stats() ports.StatsRepository { return &statsRepo{s} }

// next must be called with mu held. Ids share the ObjectID hex format used
// by the mongo store so clients see the same shape in either mode.
func (s *Store) next() (string, int64) {
	s.seq++
	return primitive.NewObjectID().Hex(), s.seq
}

func sortedBySeq[T any](items []T, seq func(T) int64) {
	sort.Slice(items, func(i, j int) bool { return seq(items[i]) < seq(items[j]) })
}

type statsRepo struct{ s *Store }

func (r *statsRepo) Totals(_ context.Context) (*domain.Statistics, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stats := &domain.Statistics{
		Users:      int64(len(r.s.accounts)),
		Dashboards: int64(len(r.s.dashboards)),
		Sources:    int64(len(r.s.sources)),
	}
	for _, rec := range r.s.dashboards {
		stats.Views += rec.dashboard.Views
	}
	return stats, nil
}
