package models

import "time"

// Role is the permission tier assigned to a user at creation.
type Role string

const (
	RoleMember  Role = "member"
	RolePremium Role = "premium"
	RoleAdmin   Role = "admin"
)

// User represents a registered chat identity.
type User struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"displayName"`
	Role        Role      `json:"role"`
	Banned      bool      `json:"-"` // moderation state, never exposed to the client
	LastSeenAt  time.Time `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Identity is the public slice of a User returned by login.
type Identity struct {
	ID          string `json:"userId"`
	DisplayName string `json:"displayName"`
	Role        Role   `json:"role"`
}

// Identity returns the login-visible projection of the user.
func (u User) Identity() Identity {
	return Identity{ID: u.ID, DisplayName: u.DisplayName, Role: u.Role}
}

// CanEdit reports whether the user may edit a message authored by authorID.
// Premium users may edit their own messages; admins may edit any message.
func (u User) CanEdit(authorID string) bool {
	if u.Role == RoleAdmin {
		return true
	}
	return u.ID == authorID && u.Role == RolePremium
}

// CanDelete reports whether the user may delete messages. Admin only.
func (u User) CanDelete() bool {
	return u.Role == RoleAdmin
}
