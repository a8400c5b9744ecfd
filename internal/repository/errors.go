// Package repository defines sentinel errors shared by the repositories so
// handlers can map failure scenarios onto HTTP statuses without inspecting
// driver error strings. ErrForbidden covers ownership violations, ErrInUse
// covers referential guards on delete, and the *NotFound values cover
// missing rows per entity.
package repository

import "errors"

// ErrForbidden is returned when the caller attempts an operation on a
// resource owned by someone else. Handlers translate it to HTTP 403.
var ErrForbidden = errors.New("forbidden")

// ErrInUse is returned when a delete cannot proceed because other rows
// still reference the target entity. Handlers translate it to HTTP 400.
var ErrInUse = errors.New("in use")

// ErrUsernameTaken is returned when a registration collides with an
// existing username in either identity space.
var ErrUsernameTaken = errors.New("username already taken")

// Per-entity not-found sentinels.
var (
	ErrCarNotFound         = errors.New("car not found")
	ErrBranchNotFound      = errors.New("branch not found")
	ErrPackageNotFound     = errors.New("insurance package not found")
	ErrReservationNotFound = errors.New("reservation not found")
)
