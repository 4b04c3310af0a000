package domain

// Role decides which dashboard is mounted for a user
type Role string

const (
	RoleCustomer        Role = "CUSTOMER"
	RoleServiceProvider Role = "SERVICE_PROVIDER"
)

// IsValid returns true for known roles
func (r Role) IsValid() bool {
	return r == RoleCustomer || r == RoleServiceProvider
}

// User is the identity supplied by the session layer
type User struct {
	Name  string
	Email string
	Role  Role
}
