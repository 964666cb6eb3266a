package domain

import "time"

// UserRole is the coarse access level of a user.
type UserRole string

const (
	RoleAdmin  UserRole = "ADMIN"
	RoleViewer UserRole = "VIEWER"
)

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleViewer
}

// GoogleUserInfo holds the subset of the Google userinfo payload the login
// flow cares about.
type GoogleUserInfo struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// User represents a user of the application.
type User struct {
	UserID       string   `json:"userID"`
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"`
	DisplayName  string   `json:"displayName"`
	Email        string   `json:"email"`
	Role         UserRole `json:"role"`
	AvatarURL    string   `json:"avatarURL"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
