package models

import "time"

// User is the row shape of a user account.
type User struct {
	UserID       string `db:"user_id"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	DisplayName  string `db:"display_name"`
	Email        string `db:"email"`
	Role         string `db:"role"`
	AvatarURL    string `db:"avatar_url"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
