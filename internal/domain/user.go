package domain

import "time"

const (
	RoleAdministrator = "Administrator"
	RoleEditor        = "Editor"
)

type User struct {
	ID           int64      `db:"id" json:"id"`
	Username     string     `db:"username" json:"username"`
	PasswordHash string     `db:"password_hash" json:"-"`
	Email        string     `db:"email" json:"email"`
	Role         string     `db:"role" json:"role"`
	LastLogin    *time.Time `db:"last_login" json:"lastLogin"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdministrator }

// Token is an opaque bearer credential. A token is valid strictly before
// its expiry; at expires_at it is already rejected.
type Token struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Token     string    `db:"token"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}
