package memory

import (
	"context"
	"time"

	"github.com/dashgrid/dashgrid-api/internal/core/domain"
)

type accountRepo struct{ s *Store }

func (r *accountRepo) Create(_ context.Context, a *domain.Account) (*domain.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, rec := range r.s.accounts {
		if rec.account.Username == a.Username || rec.account.Email == a.Email {
			return nil, domain.ErrUserExists
		}
	}
	id, seq := r.s.next()
	created := *a
	created.ID = id
	r.s.accounts[id] = &accountRecord{seq: seq, account: created}
	return &created, nil
}

func (r *accountRepo) FindByUsername(_ context.Context, username string) (*domain.Account, error) {
	return r.find(func(a *domain.Account) bool { return a.Username == username })
}

func (r *accountRepo) FindByUsernameOrEmail(_ context.Context, username, email string) (*domain.Account, error) {
	return r.find(func(a *domain.Account) bool { return a.Username == username || a.Email == email })
}

// find returns the earliest-registered account matching fn.
func (r *accountRepo) find(fn func(*domain.Account) bool) (*domain.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var found *accountRecord
	for _, rec := range r.s.accounts {
		if fn(&rec.account) && (found == nil || rec.seq < found.seq) {
			found = rec
		}
	}
	if found == nil {
		return nil, domain.ErrUserNotFound
	}
	a := found.account
	return &a, nil
}

func (r *accountRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.accounts[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	rec.account.PasswordHash = passwordHash
	return nil
}

type resetRepo struct{ s *Store }

func (r *resetRepo) Create(_ context.Context, reset *domain.ResetToken) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.resets = append(r.s.resets, *reset)
	return nil
}

func (r *resetRepo) DeleteByUsername(_ context.Context, username string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	kept := r.s.resets[:0]
	for _, rec := range r.s.resets {
		if rec.Username != username {
			kept = append(kept, rec)
		}
	}
	r.s.resets = kept
	return nil
}

func (r *resetRepo) TakeByUsername(_ context.Context, username string, now time.Time) (*domain.ResetToken, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, rec := range r.s.resets {
		if rec.Username != username || rec.Expired(now) {
			continue
		}
		r.s.resets = append(r.s.resets[:i], r.s.resets[i+1:]...)
		return &rec, nil
	}
	return nil, domain.ErrResetExpired
}
