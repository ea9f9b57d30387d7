// Package policy holds the pure authorization decisions of the job
// board. Functions here take an actor and the owning side of a resource
// and return a Decision; they perform no I/O and never consult the
// database, which keeps "who may do this" testable in isolation and
// separate from "does this exist" (the repositories' concern). Callers
// translate Deny into HTTP 403 and an absent resource into 404, so the
// two remain distinct failures.
package policy

import "github.com/careerfinder/career-finder/internal/model"

// Decision is the outcome of a policy check.
type Decision int

const (
	Deny Decision = iota
	Allow
)

// Allowed reports whether the decision permits the action.
func (d Decision) Allowed() bool { return d == Allow }

// CanCreateApplication permits only applicants to submit applications.
// Admins are deliberately not granted this: applying is an
// applicant-specific capability, not a moderation one.
func CanCreateApplication(actor model.Actor) Decision {
	if actor.Role == model.RoleApplicant {
		return Allow
	}
	return Deny
}

// CanViewVacancyApplications permits admins, and the employer who owns
// the vacancy.
func CanViewVacancyApplications(actor model.Actor, vacancyEmployerID uint64) Decision {
	return ownerOrAdmin(actor, vacancyEmployerID)
}

// CanUpdateApplicationStatus permits admins, and the employer who owns
// the vacancy the application was submitted to.
func CanUpdateApplicationStatus(actor model.Actor, vacancyEmployerID uint64) Decision {
	return ownerOrAdmin(actor, vacancyEmployerID)
}

// CanMutateVacancy permits admins, and the employer who owns the
// vacancy, to update or delete it.
func CanMutateVacancy(actor model.Actor, vacancyEmployerID uint64) Decision {
	return ownerOrAdmin(actor, vacancyEmployerID)
}

func ownerOrAdmin(actor model.Actor, ownerID uint64) Decision {
	if actor.Role == model.RoleAdmin {
		return Allow
	}
	if actor.Role == model.RoleEmployer && actor.ID == ownerID {
		return Allow
	}
	return Deny
}
