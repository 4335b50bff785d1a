// Package policy is the capability predicate set. Every role or verification
// check made by a service goes through one of these functions, evaluated once
// per operation, so the authorization rules live and are tested in one place.
package policy

import (
	"casebook/internal/identity/models"
	id "casebook/pkg/domain"
)

// CanPostCase: verified organizations only.
func CanPostCase(u *models.User) bool {
	return u != nil && u.Role == models.RoleOrganization && u.OrganizationVerified
}

// CanHire: the same actors that may post cases may send hiring requests.
func CanHire(u *models.User) bool {
	return CanPostCase(u)
}

// CanBeHired: solvers that opted in to hiring.
func CanBeHired(u *models.User) bool {
	return u != nil && u.Role == models.RoleSolver && u.AvailableForHire
}

// CanJoinCase: solvers and organizations may hold participations.
func CanJoinCase(u *models.User) bool {
	return u != nil && (u.Role == models.RoleSolver || u.Role == models.RoleOrganization)
}

// CanSolve is the role half of the solve check; the caller also needs an
// ACTIVE participation on the case.
func CanSolve(u *models.User) bool {
	return u != nil && u.Role == models.RoleSolver
}

// CanBeAssigned: only solvers can be primary or assigned solvers.
func CanBeAssigned(u *models.User) bool {
	return CanSolve(u)
}

// CanRate: recruiters and organizations.
func CanRate(u *models.User) bool {
	return u != nil && (u.Role == models.RoleRecruiter || u.Role == models.RoleOrganization)
}

// CanAwardBadge: recruiters and organizations may award badges manually.
func CanAwardBadge(u *models.User) bool {
	return CanRate(u)
}

// CanEarnBadge: automatic awards go to solvers only.
func CanEarnBadge(u *models.User) bool {
	return u != nil && u.Role == models.RoleSolver
}

// CanManageCatalog: the badge catalog is admin-managed.
func CanManageCatalog(u *models.User) bool {
	return u != nil && u.Role == models.RoleAdmin
}

// CanVerifyOrganization: admins flip the verification flag.
func CanVerifyOrganization(u *models.User) bool {
	return CanManageCatalog(u)
}

// CanRevokeAward: the original awarder or any organization.
func CanRevokeAward(u *models.User, awardedBy *id.UserID) bool {
	if u == nil {
		return false
	}
	if awardedBy != nil && *awardedBy == u.ID {
		return true
	}
	return u.Role == models.RoleOrganization
}

// CanDeleteRating: the original rater or any organization.
func CanDeleteRating(u *models.User, raterID id.UserID) bool {
	if u == nil {
		return false
	}
	return u.ID == raterID || u.Role == models.RoleOrganization
}

// CanManageCase covers lifecycle flips and solver assignment: the posting
// organization or an admin.
func CanManageCase(u *models.User, postedBy id.UserID) bool {
	if u == nil {
		return false
	}
	return u.ID == postedBy || u.Role == models.RoleAdmin
}

// CanDeleteCase: same actors as CanManageCase.
func CanDeleteCase(u *models.User, postedBy id.UserID) bool {
	return CanManageCase(u, postedBy)
}

// CanPostJob: job board posts come from recruiters.
func CanPostJob(u *models.User) bool {
	return u != nil && u.Role == models.RoleRecruiter
}

// CanApplyToJob: solvers answer job posts.
func CanApplyToJob(u *models.User) bool {
	return CanSolve(u)
}

// CanManageJobPost covers closing and deleting a post: its recruiter or an
// admin.
func CanManageJobPost(u *models.User, recruiterID id.UserID) bool {
	return CanManageCase(u, recruiterID)
}
