package models

// Role is the authorization role carried on every user record.
type Role string

const (
	RoleAdmin        Role = "ADMIN"
	RoleOrganization Role = "ORGANIZATION"
	RoleSolver       Role = "SOLVER"
	RoleRecruiter    Role = "RECRUITER"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleOrganization, RoleSolver, RoleRecruiter:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
