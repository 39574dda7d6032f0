package memory

import (
	"context"

	"github.com/dashgrid/dashgrid-api/internal/core/domain"
)

type dashboardRepo struct{ s *Store }

func (r *dashboardRepo) Create(_ context.Context, d *domain.Dashboard) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, rec := range r.s.dashboards {
		if rec.dashboard.Owner == d.Owner && rec.dashboard.Name == d.Name {
			return domain.ErrDashboardExists
		}
	}
	id, seq := r.s.next()
	d.ID = id
	r.s.dashboards[id] = &dashboardRecord{seq: seq, dashboard: copyDashboard(*d)}
	return nil
}

func (r *dashboardRepo) ListByOwner(_ context.Context, owner string) ([]*domain.Dashboard, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	recs := make([]*dashboardRecord, 0)
	for _, rec := range r.s.dashboards {
		if rec.dashboard.Owner == owner {
			recs = append(recs, rec)
		}
	}
	sortedBySeq(recs, func(rec *dashboardRecord) int64 { return rec.seq })

	out := make([]*domain.Dashboard, 0, len(recs))
	for _, rec := range recs {
		d := copyDashboard(rec.dashboard)
		out = append(out, &d)
	}
	return out, nil
}

// owned must be called with mu held.
func (r *dashboardRepo) owned(id, owner string) (*dashboardRecord, error) {
	rec, ok := r.s.dashboards[id]
	if !ok || rec.dashboard.Owner != owner {
		return nil, domain.ErrDashboardNotFound
	}
	return rec, nil
}

func (r *dashboardRepo) FindOwned(_ context.Context, id, owner string) (*domain.Dashboard, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, err := r.owned(id, owner)
	if err != nil {
		return nil, err
	}
	d := copyDashboard(rec.dashboard)
	return &d, nil
}

func (r *dashboardRepo) FindOwnedByName(_ context.Context, owner, name string) (*domain.Dashboard, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, rec := range r.s.dashboards {
		if rec.dashboard.Owner == owner && rec.dashboard.Name == name {
			d := copyDashboard(rec.dashboard)
			return &d, nil
		}
	}
	return nil, domain.ErrDashboardNotFound
}

func (r *dashboardRepo) FindByID(_ context.Context, id string) (*domain.Dashboard, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.dashboards[id]
	if !ok {
		return nil, domain.ErrDashboardNotFound
	}
	d := copyDashboard(rec.dashboard)
	return &d, nil
}

func (r *dashboardRepo) UpdateLayout(_ context.Context, id, owner string, update domain.LayoutUpdate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, err := r.owned(id, owner)
	if err != nil {
		return err
	}
	rec.dashboard.Layout = copyJSON(update.Layout).([]any)
	rec.dashboard.Items = copyJSON(update.Items).(map[string]any)
	rec.dashboard.NextID = update.NextID
	return nil
}

func (r *dashboardRepo) Save(_ context.Context, d *domain.Dashboard) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, err := r.owned(d.ID, d.Owner)
	if err != nil {
		return err
	}
	for id, other := range r.s.dashboards {
		if id != d.ID && other.dashboard.Owner == d.Owner && other.dashboard.Name == d.Name {
			return domain.ErrDashboardExists
		}
	}
	createdAt := rec.dashboard.CreatedAt
	rec.dashboard = copyDashboard(*d)
	rec.dashboard.CreatedAt = createdAt
	return nil
}

func (r *dashboardRepo) DeleteOwned(_ context.Context, id, owner string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, err := r.owned(id, owner); err != nil {
		return err
	}
	delete(r.s.dashboards, id)
	return nil
}

// copyDashboard detaches Layout and Items from the caller so stored records
// never alias values handed out or received.
func copyDashboard(d domain.Dashboard) domain.Dashboard {
	if d.Layout != nil {
		d.Layout = copyJSON(d.Layout).([]any)
	}
	if d.Items != nil {
		d.Items = copyJSON(d.Items).(map[string]any)
	}
	return d
}

// copyJSON deep-copies decoded JSON values. Nil slices and maps keep their type.
func copyJSON(v any) any {
	switch t := v.(type) {
	case map[string]any:
		if t == nil {
			return t
		}
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = copyJSON(e)
		}
		return out
	case []any:
		if t == nil {
			return t
		}
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = copyJSON(e)
		}
		return out
	default:
		return v
	}
}
