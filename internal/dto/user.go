package dto

import (
	"time"

	"github.com/construtech/backoffice/internal/core/domain"
)

// RegisterUserRequest is the payload for creating a user account.
type RegisterUserRequest struct {
	Username    string          `json:"username" binding:"required,min=3"`
	Password    string          `json:"password" binding:"required,min=8"`
	DisplayName string          `json:"displayName"`
	Email       string          `json:"email" binding:"omitempty,email"`
	Role        domain.UserRole `json:"role"`
}

// UpdateUserRequest carries optional field updates for a user.
type UpdateUserRequest struct {
	DisplayName *string          `json:"displayName,omitempty"`
	Email       *string          `json:"email,omitempty" binding:"omitempty,email"`
	Role        *domain.UserRole `json:"role,omitempty"`
	AvatarURL   *string          `json:"avatarURL,omitempty"`
	Password    *string          `json:"password,omitempty" binding:"omitempty,min=8"`
}

// LoginRequest is the payload for username/password login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// GoogleLoginRequest carries the authorization code from the Google OAuth
// redirect.
type GoogleLoginRequest struct {
	Code string `json:"code" binding:"required"`
}

// GoogleIDTokenRequest carries an ID token obtained client-side via the
// Google Identity SDK.
type GoogleIDTokenRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// GoogleLoginURLResponse carries the URL to redirect the user to for the
// server-side OAuth flow.
type GoogleLoginURLResponse struct {
	URL string `json:"url"`
}

// LoginResponse carries the signed token and the authenticated user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse is the wire shape of a user account. The password hash never
// leaves the service layer.
type UserResponse struct {
	UserID      string              `json:"userID"`
	Username    string              `json:"username"`
	DisplayName string              `json:"displayName,omitempty"`
	Email       string              `json:"email,omitempty"`
	Role        string              `json:"role"`
	AvatarURL   string              `json:"avatarURL,omitempty"`
	Permissions PermissionsResponse `json:"permissions"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// PermissionsResponse mirrors the derived write capabilities for a role.
type PermissionsResponse struct {
	CanCreate bool `json:"canCreate"`
	CanEdit   bool `json:"canEdit"`
	CanDelete bool `json:"canDelete"`
}

// ToUserResponse converts a domain user to its wire shape, deriving the
// permission flags from the role.
func ToUserResponse(u *domain.User) UserResponse {
	perms := domain.DerivePermissions(u.Role)
	return UserResponse{
		UserID:      u.UserID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		Role:        string(u.Role),
		AvatarURL:   u.AvatarURL,
		Permissions: PermissionsResponse{
			CanCreate: perms.CanCreate,
			CanEdit:   perms.CanEdit,
			CanDelete: perms.CanDelete,
		},
		CreatedAt: u.CreatedAt,
	}
}

// ToUserResponses converts a slice of domain users.
func ToUserResponses(users []domain.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return out
}
