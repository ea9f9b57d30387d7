// Package repository contains the data access layer. Sentinel values
// defined here let higher layers distinguish failure scenarios without
// inspecting driver errors: "not found" sentinels become HTTP 404,
// ErrEmailExists and ErrAlreadyApplied become HTTP 409.
package repository

import "errors"

// ErrUserNotFound is returned when no user row matches a lookup.
var ErrUserNotFound = errors.New("user not found")

// ErrVacancyNotFound is returned when a vacancy is absent, including
// update and delete calls that affect zero rows.
var ErrVacancyNotFound = errors.New("vacancy not found")

// ErrApplicationNotFound is returned when an application is absent.
var ErrApplicationNotFound = errors.New("application not found")

// ErrEmailExists is returned when an insert hits the unique email key.
var ErrEmailExists = errors.New("email already exists")

// ErrAlreadyApplied is returned when an insert hits the unique
// (vacancy_id, applicant_id) key. The key, not the preceding existence
// check, is what guarantees at most one application per pair under
// concurrent submissions.
var ErrAlreadyApplied = errors.New("already applied to this vacancy")
