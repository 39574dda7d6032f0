package domain

import "errors"

var (
	ErrUserExists       = errors.New("user already exists")
	ErrUserNotFound     = errors.New("user not found")
	ErrPasswordMismatch = errors.New("password does not match")
	ErrResetExpired     = errors.New("reset token has expired")

	ErrDashboardNotFound = errors.New("dashboard not found")
	ErrDashboardExists   = errors.New("dashboard already exists")
	ErrInvalidNextID     = errors.New("nextId must not decrease")

	ErrSourceNotFound = errors.New("source not found")
	ErrSourceExists   = errors.New("source already exists")
)
