package memory

import (
	"context"

	"github.com/dashgrid/dashgrid-api/internal/core/domain"
)

type sourceRepo struct{ s *Store }

// nameTaken must be called with mu held.
func (r *sourceRepo) nameTaken(owner, name, excludeID string) *sourceRecord {
	for id, rec := range r.s.sources {
		if id != excludeID && rec.source.Owner == owner && rec.source.Name == name {
			return rec
		}
	}
	return nil
}

func (r *sourceRepo) Create(_ context.Context, src *domain.Source) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.nameTaken(src.Owner, src.Name, "") != nil {
		return domain.ErrSourceExists
	}
	id, seq := r.s.next()
	src.ID = id
	r.s.sources[id] = &sourceRecord{seq: seq, source: *src}
	return nil
}

func (r *sourceRepo) ListByOwner(_ context.Context, owner string) ([]*domain.Source, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	recs := make([]*sourceRecord, 0)
	for _, rec := range r.s.sources {
		if rec.source.Owner == owner {
			recs = append(recs, rec)
		}
	}
	sortedBySeq(recs, func(rec *sourceRecord) int64 { return rec.seq })

	out := make([]*domain.Source, 0, len(recs))
	for _, rec := range recs {
		src := rec.source
		out = append(out, &src)
	}
	return out, nil
}

func (r *sourceRepo) FindOwned(_ context.Context, id, owner string) (*domain.Source, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.sources[id]
	if !ok || rec.source.Owner != owner {
		return nil, domain.ErrSourceNotFound
	}
	src := rec.source
	return &src, nil
}

func (r *sourceRepo) FindOwnedByName(_ context.Context, owner, name, excludeID string) (*domain.Source, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec := r.nameTaken(owner, name, excludeID)
	if rec == nil {
		return nil, domain.ErrSourceNotFound
	}
	src := rec.source
	return &src, nil
}

func (r *sourceRepo) Update(_ context.Context, src *domain.Source) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.sources[src.ID]
	if !ok || rec.source.Owner != src.Owner {
		return domain.ErrSourceNotFound
	}
	if r.nameTaken(src.Owner, src.Name, src.ID) != nil {
		return domain.ErrSourceExists
	}
	rec.source = *src
	return nil
}

func (r *sourceRepo) DeleteOwned(_ context.Context, id, owner string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.sources[id]
	if !ok || rec.source.Owner != owner {
		return domain.ErrSourceNotFound
	}
	delete(r.s.sources, id)
	return nil
}
