package entity

// Role is the coarse authorization tag assigned at signup.
// There is no role-change operation; a role is fixed for the
// lifetime of the account.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleAdmin
}
