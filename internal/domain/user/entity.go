package user

import "time"

type Role string

const (
	RoleEmployee Role = "EMPLOYEE" // Regular employee, sees only their own data
	RoleAdmin    Role = "ADMIN"    // HR administrator
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleEmployee || r == RoleAdmin
}

type User struct {
	ID              int64
	Name            string
	Email           string
	PasswordHash    *string
	Role            Role
	DepartmentID    *int64
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Join
	DepartmentName *string
}

// IsAdmin checks if user is an administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasDepartment checks if user is assigned to a department
func (u *User) HasDepartment() bool {
	return u.DepartmentID != nil
}
