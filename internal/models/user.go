package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles known to the service. The role gates which moderation and
// escalation operations a caller may perform.
const (
	RoleStudent   = "student"
	RoleCounselor = "counselor"
	RoleAdmin     = "admin"
)

// AnonymousAuthor is the sentinel author reference used when a
// submission is made without a stable identity.
const AnonymousAuthor = "anonymous"

// User represents an identity known to the service. Students are
// anonymous UUIDs minted on first contact; counselors and admins are
// provisioned through the admin CLI.
type User struct {
	// ID is the anonymous UUID identifying the user.
	ID string `gorm:"primaryKey" json:"id"`
	// Role is one of RoleStudent, RoleCounselor, RoleAdmin.
	Role string `gorm:"type:text;not null;default:student" json:"role"`
	// Language is the user's preferred language code (en, hi, ur).
	Language  string    `gorm:"type:text;default:en" json:"language"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate is a GORM hook called before a record is created.
// It generates a new UUID for the user if no ID is set yet.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}
