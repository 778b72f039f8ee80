// Package repositories implements the persistence layer on top of GORM.
// Sentinel errors let handlers translate storage outcomes into distinct
// HTTP responses without inspecting driver errors.
package repositories

import "errors"

// ErrNotFound is returned when the requested entity does not exist.
// Handlers translate this into a 404 response.
var ErrNotFound = errors.New("not found")

// ErrForbidden is returned when the caller attempts a mutation on a
// resource owned by someone else. Handlers translate this into a 403.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when an insert violates a unique constraint,
// such as signing up with an email that is already registered.
var ErrConflict = errors.New("conflict")
