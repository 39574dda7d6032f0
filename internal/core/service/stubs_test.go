package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dashgrid/dashgrid-api/internal/core/domain"
	"github.com/dashgrid/dashgrid-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Accounts and resets
// ---------------------------------------------------------------------------

type stubAccountRepo struct {
	byID      map[string]*domain.Account
	seq       int
	updateErr error
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{byID: make(map[string]*domain.Account)}
}

func cloneAccount(a *domain.Account) *domain.Account {
	c := *a
	return &c
}

func (r *stubAccountRepo) Create(_ context.Context, a *domain.Account) (*domain.Account, error) {
	for _, existing := range r.byID {
		if existing.Username == a.Username || existing.Email == a.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.seq++
	c := cloneAccount(a)
	c.ID = fmt.Sprintf("acct-%d", r.seq)
	r.byID[c.ID] = c
	return cloneAccount(c), nil
}

func (r *stubAccountRepo) FindByUsername(_ context.Context, username string) (*domain.Account, error) {
	for _, a := range r.byID {
		if a.Username == username {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAccountRepo) FindByUsernameOrEmail(_ context.Context, username, email string) (*domain.Account, error) {
	for _, a := range r.byID {
		if a.Username == username || a.Email == email {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAccountRepo) UpdatePassword(_ context.Context, id, hash string) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	a, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	a.PasswordHash = hash
	return nil
}

type stubResetRepo struct {
	records map[string][]*domain.ResetToken
}

func newStubResetRepo() *stubResetRepo {
	return &stubResetRepo{records: make(map[string][]*domain.ResetToken)}
}

func (r *stubResetRepo) Create(_ context.Context, reset *domain.ResetToken) error {
	c := *reset
	r.records[reset.Username] = append(r.records[reset.Username], &c)
	return nil
}

func (r *stubResetRepo) DeleteByUsername(_ context.Context, username string) error {
	delete(r.records, username)
	return nil
}

func (r *stubResetRepo) TakeByUsername(_ context.Context, username string, now time.Time) (*domain.ResetToken, error) {
	list := r.records[username]
	for i, rec := range list {
		if !rec.Expired(now) {
			r.records[username] = append(list[:i:i], list[i+1:]...)
			return rec, nil
		}
	}
	return nil, domain.ErrResetExpired
}

func (r *stubResetRepo) live(username string, now time.Time) int {
	n := 0
	for _, rec := range r.records[username] {
		if !rec.Expired(now) {
			n++
		}
	}
	return n
}

// ---------------------------------------------------------------------------
// Dashboards and sources
// ---------------------------------------------------------------------------

type stubDashboardRepo struct {
	byID    map[string]*domain.Dashboard
	seq     int
	saveErr error
	saves   int
}

func newStubDashboardRepo() *stubDashboardRepo {
	return &stubDashboardRepo{byID: make(map[string]*domain.Dashboard)}
}

func cloneDashboard(d *domain.Dashboard) *domain.Dashboard {
	c := *d
	return &c
}

func (r *stubDashboardRepo) Create(_ context.Context, d *domain.Dashboard) error {
	for _, existing := range r.byID {
		if existing.Owner == d.Owner && existing.Name == d.Name {
			return domain.ErrDashboardExists
		}
	}
	r.seq++
	d.ID = fmt.Sprintf("dash-%d", r.seq)
	r.byID[d.ID] = cloneDashboard(d)
	return nil
}

func (r *stubDashboardRepo) ListByOwner(_ context.Context, owner string) ([]*domain.Dashboard, error) {
	var out []*domain.Dashboard
	for i := 1; i <= r.seq; i++ {
		if d, ok := r.byID[fmt.Sprintf("dash-%d", i)]; ok && d.Owner == owner {
			out = append(out, cloneDashboard(d))
		}
	}
	return out, nil
}

func (r *stubDashboardRepo) FindOwned(_ context.Context, id, owner string) (*domain.Dashboard, error) {
	d, ok := r.byID[id]
	if !ok || d.Owner != owner {
		return nil, domain.ErrDashboardNotFound
	}
	return cloneDashboard(d), nil
}

func (r *stubDashboardRepo) FindOwnedByName(_ context.Context, owner, name string) (*domain.Dashboard, error) {
	for _, d := range r.byID {
		if d.Owner == owner && d.Name == name {
			return cloneDashboard(d), nil
		}
	}
	return nil, domain.ErrDashboardNotFound
}

func (r *stubDashboardRepo) FindByID(_ context.Context, id string) (*domain.Dashboard, error) {
	d, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrDashboardNotFound
	}
	return cloneDashboard(d), nil
}

func (r *stubDashboardRepo) UpdateLayout(_ context.Context, id, owner string, u domain.LayoutUpdate) error {
	d, ok := r.byID[id]
	if !ok || d.Owner != owner {
		return domain.ErrDashboardNotFound
	}
	d.Layout, d.Items, d.NextID = u.Layout, u.Items, u.NextID
	return nil
}

func (r *stubDashboardRepo) Save(_ context.Context, d *domain.Dashboard) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	existing, ok := r.byID[d.ID]
	if !ok || existing.Owner != d.Owner {
		return domain.ErrDashboardNotFound
	}
	r.saves++
	r.byID[d.ID] = cloneDashboard(d)
	return nil
}

func (r *stubDashboardRepo) DeleteOwned(_ context.Context, id, owner string) error {
	d, ok := r.byID[id]
	if !ok || d.Owner != owner {
		return domain.ErrDashboardNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubSourceRepo struct {
	items     []*domain.Source
	seq       int
	createErr error
}

func newStubSourceRepo() *stubSourceRepo {
	return &stubSourceRepo{}
}

func cloneSource(s *domain.Source) *domain.Source {
	c := *s
	return &c
}

func (r *stubSourceRepo) Create(_ context.Context, s *domain.Source) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.items {
		if existing.Owner == s.Owner && existing.Name == s.Name {
			return domain.ErrSourceExists
		}
	}
	r.seq++
	s.ID = fmt.Sprintf("src-%d", r.seq)
	r.items = append(r.items, cloneSource(s))
	return nil
}

func (r *stubSourceRepo) ListByOwner(_ context.Context, owner string) ([]*domain.Source, error) {
	out := []*domain.Source{}
	for _, s := range r.items {
		if s.Owner == owner {
			out = append(out, cloneSource(s))
		}
	}
	return out, nil
}

func (r *stubSourceRepo) FindOwned(_ context.Context, id, owner string) (*domain.Source, error) {
	for _, s := range r.items {
		if s.ID == id && s.Owner == owner {
			return cloneSource(s), nil
		}
	}
	return nil, domain.ErrSourceNotFound
}

func (r *stubSourceRepo) FindOwnedByName(_ context.Context, owner, name, excludeID string) (*domain.Source, error) {
	for _, s := range r.items {
		if s.Owner == owner && s.Name == name && s.ID != excludeID {
			return cloneSource(s), nil
		}
	}
	return nil, domain.ErrSourceNotFound
}

func (r *stubSourceRepo) Update(_ context.Context, s *domain.Source) error {
	for i, existing := range r.items {
		if existing.ID == s.ID && existing.Owner == s.Owner {
			r.items[i] = cloneSource(s)
			return nil
		}
	}
	return domain.ErrSourceNotFound
}

func (r *stubSourceRepo) DeleteOwned(_ context.Context, id, owner string) error {
	for i, s := range r.items {
		if s.ID == id && s.Owner == owner {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrSourceNotFound
}

// ---------------------------------------------------------------------------
// Collaborators
// ---------------------------------------------------------------------------

type fakeHasher struct{}

func (fakeHasher) Digest(secret string) (string, error) { return "digest:" + secret, nil }

func (fakeHasher) Compare(digest, secret string) bool {
	return digest != "" && digest == "digest:"+secret
}

type fakeTokens struct {
	issued []domain.Claims
}

func (f *fakeTokens) IssueSession(c domain.Claims) (string, error) {
	f.issued = append(f.issued, c)
	return "session." + c.Username, nil
}

func (f *fakeTokens) IssueReset(username string) (string, error) {
	f.issued = append(f.issued, domain.Claims{Username: username})
	return "reset." + username, nil
}

type recordingMailer struct {
	sent []ports.MailMessage
}

func (m *recordingMailer) Send(msg ports.MailMessage) {
	m.sent = append(m.sent, msg)
}

type fakeComposer struct{}

func (fakeComposer) ResetPassword(to, token string) (ports.MailMessage, error) {
	return ports.MailMessage{
		To:      to,
		Subject: "Forgot Password",
		HTML:    "<a href=\"/reset?token=" + token + "\">reset</a>",
	}, nil
}

func containsToken(msg ports.MailMessage, token string) bool {
	return strings.Contains(msg.HTML, token)
}
