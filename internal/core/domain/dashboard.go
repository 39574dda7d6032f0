package domain

import "time"

// OwnerSelf is the owner marker returned when the requester owns the dashboard.
const OwnerSelf = "self"

// Dashboard is a user-owned layout of widgets. Name is unique per owner,
// Views never goes negative and NextID never decreases.
type Dashboard struct {
	ID     string         `json:"id"`
	Owner  string         `json:"owner"`
	Name   string         `json:"name"`
	Layout []any          `json:"layout"`
	Items  map[string]any `json:"items"`
	NextID int            `json:"nextId"`
	// PasswordHash is empty when the dashboard is not password protected.
	PasswordHash string    `json:"-"`
	Shared       bool      `json:"shared"`
	Views        int64     `json:"views"`
	CreatedAt    time.Time `json:"createdAt"`
}

// HasPassword reports whether viewers must pass a password challenge.
func (d *Dashboard) HasPassword() bool {
	return d.PasswordHash != ""
}

// OwnedBy reports whether accountID is the dashboard owner. An empty id never matches.
func (d *Dashboard) OwnedBy(accountID string) bool {
	return accountID != "" && d.Owner == accountID
}

// RecordView bumps the view counter in memory; callers persist the result.
func (d *Dashboard) RecordView() {
	d.Views++
}

// NewDashboard returns an empty dashboard for owner with default layout values.
func NewDashboard(owner, name string, now time.Time) *Dashboard {
	return &Dashboard{
		Owner:     owner,
		Name:      name,
		Layout:    []any{},
		Items:     map[string]any{},
		NextID:    1,
		CreatedAt: now,
	}
}

// LayoutUpdate carries the fields replaced by a dashboard save.
type LayoutUpdate struct {
	Layout []any
	Items  map[string]any
	NextID int
}
