package domain

// Role is the kind of authenticated actor.
type Role string

const (
	RoleBrand      Role = "brand"
	RoleInfluencer Role = "influencer"
	RoleAdmin      Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleBrand, RoleInfluencer, RoleAdmin:
		return true
	}
	return false
}

// Actor describes the caller of an operation as supplied by the identity
// collaborator. The HTTP layer builds it from the bearer token and passes it
// into the use cases.
type Actor struct {
	ID   string
	Role Role
}

// IsAdmin reports whether the actor has administrative rights.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
