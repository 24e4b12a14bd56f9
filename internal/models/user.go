// Package models contains data structures for the application's domain models.
package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// User roles. Role assignment happens at registration (member) or via the
// seeder; the core never promotes users itself.
const (
	RoleMember    = "member"
	RoleStreamer  = "streamer"
	RoleModerator = "moderator"
)

// User represents a registered account in the StreamEvents application.
// Email is stored lowercase and compared case-insensitively; the unique
// index on it is the real duplicate-email enforcement, the service-level
// pre-check only exists for a friendlier error message.
type User struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Username    string         `gorm:"size:150;unique;not null" json:"username"`
	Email       string         `gorm:"size:254;unique;not null" json:"email"`
	Password    string         `gorm:"not null" json:"-"`
	FirstName   string         `gorm:"size:150" json:"first_name"`
	LastName    string         `gorm:"size:150" json:"last_name"`
	DisplayName string         `gorm:"size:150" json:"display_name"`
	Bio         string         `gorm:"type:text" json:"bio"`
	Avatar      string         `gorm:"size:500" json:"avatar"`
	Role        string         `gorm:"size:50;default:member" json:"role"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Events      []Event        `gorm:"foreignKey:CreatorID" json:"events,omitempty"`
}

// Name returns the display name, falling back to "First Last" and finally
// the username.
func (u *User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	full := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if full != "" {
		return full
	}
	return u.Username
}
