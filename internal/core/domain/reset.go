package domain

import (
	"strings"
	"time"
)

// ResetToken is the live password-reset record for an account. At most one
// record per username is kept by deleting before inserting.
type ResetToken struct {
	Username string    `json:"username"`
	Token    string    `json:"-"`
	ExpireAt time.Time `json:"expireAt"`
}

// Expired reports whether the record is past its validity window.
func (r *ResetToken) Expired(now time.Time) bool {
	return !now.Before(r.ExpireAt)
}

// ResetKey is the stored form of a username on reset records.
func ResetKey(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// Statistics aggregates platform-wide totals.
type Statistics struct {
	Users      int64 `json:"users"`
	Dashboards int64 `json:"dashboards"`
	Views      int64 `json:"views"`
	Sources    int64 `json:"sources"`
}
