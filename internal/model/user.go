// File: internal/model/user.go
package model

import "time"

// AuthProvider values for User.AuthProvider.
const (
	AuthProviderLocal    = "local"
	AuthProviderExternal = "external"
)

// User is an account record. PasswordHash is nil for accounts provisioned
// through an external identity provider.
type User struct {
	ID           int       `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	FullName     string    `db:"full_name" json:"full_name"`
	PasswordHash *string   `db:"password_hash" json:"-"`
	IsAdmin      bool      `db:"is_admin" json:"is_admin"`
	AuthProvider string    `db:"auth_provider" json:"auth_provider"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
