package models

import "time"

// Roles gate API groups server-side (see app.RoleRequired), not only in the UI.
const (
	RoleUser          = "User"
	RoleManager       = "Manager"
	RoleAdministrator = "Administrator"
)

func ValidRole(r string) bool {
	return r == RoleUser || r == RoleManager || r == RoleAdministrator
}

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;size:255;not null" json:"username"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Email        string `gorm:"size:255" json:"email"`
	Role         string `gorm:"size:32;not null;default:'User'" json:"role"`
	FullName     string `gorm:"size:255" json:"full_name"`

	LastSeenAt *time.Time `gorm:"index" json:"last_seen_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
