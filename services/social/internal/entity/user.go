package entity

import "time"

type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusBanned    UserStatus = "banned"
)

const (
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"

	PermissionViewContent = "view_content"
)

type User struct {
	ID            int64      `json:"id"`
	Username      string     `json:"username"`
	Password      string     `json:"-"`
	Email         string     `json:"email"`
	DisplayName   *string    `json:"display_name"`
	Bio           *string    `json:"bio"`
	AvatarURL     *string    `json:"avatar_url"`
	CoverImageURL *string    `json:"cover_image_url"`
	Location      *string    `json:"location"`
	Website       *string    `json:"website"`
	GoogleID      *string    `json:"google_id"`
	IsAdmin       bool       `json:"is_admin"`
	IsVerified    bool       `json:"is_verified"`
	Role          string     `json:"role"`
	Permissions   []string   `json:"permissions"`
	Status        UserStatus `json:"status"`
	LastLoginAt   *time.Time `json:"last_login_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// NewUser is the registration payload. Empty Role and nil Permissions fall back
// to the defaults.
type NewUser struct {
	Username    string
	Password    string
	Email       string
	DisplayName *string
	AvatarURL   *string
	GoogleID    *string
	Role        string
	Permissions []string
	IsAdmin     bool
}

// ProfileUpdate is the self-service patch; nil fields stay unchanged.
type ProfileUpdate struct {
	DisplayName   *string
	Bio           *string
	AvatarURL     *string
	CoverImageURL *string
	Location      *string
	Website       *string
}

// UserUpdate is the administrative patch; nil fields stay unchanged.
type UserUpdate struct {
	Role        *string
	Permissions []string
	Status      *UserStatus
	IsVerified  *bool
	IsAdmin     *bool
	LastLoginAt *time.Time
}

func ValidUserStatus(s UserStatus) bool {
	switch s {
	case UserStatusActive, UserStatusSuspended, UserStatusBanned:
		return true
	}
	return false
}
