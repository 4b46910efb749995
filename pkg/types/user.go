package types

import "time"

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleUser       Role = "user"
	RoleSuperAdmin Role = "super_admin"
)

// User is the profile document paired with an identity-provider
// account. Credentials live only in the identity provider; no password
// is ever persisted here.
type User struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Role      Role      `db:"role"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
}

type UserDraft struct {
	Name     string `form:"name"`
	Email    string `form:"email"`
	Password string `form:"password"`
	Role     string `form:"role"`
}

// Session is the resolved identity handed to handlers that stamp
// createdBy/updatedBy or gate a view.
type Session struct {
	Email string
	Role  Role
}
