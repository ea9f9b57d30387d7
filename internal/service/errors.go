// Package service orchestrates repositories and policy into the
// operations the HTTP layer exposes. Failures fall into a small
// taxonomy: the repositories' not-found and conflict sentinels pass
// through untouched, and the service adds the two failures only it can
// decide.
package service

import "errors"

// ErrForbidden is returned when policy denies the actor the operation.
// Handlers translate it into HTTP 403, distinct from not found.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidInput is returned when a request is structurally valid but
// its values are not (missing required fields, unknown enum values).
var ErrInvalidInput = errors.New("invalid input")
