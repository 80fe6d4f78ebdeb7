package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered account.
type User struct {
	gorm.Model
	UUID         string `gorm:"size:36;uniqueIndex;not null"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	Username     string `gorm:"size:50;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	// Verification and reset fields are carried in the schema but no
	// endpoint uses them yet.
	EmailVerified            bool
	EmailVerificationToken   string `gorm:"size:100"`
	EmailVerificationExpires *time.Time
	PasswordResetToken       string `gorm:"size:100"`
	PasswordResetExpires     *time.Time

	IsActive  bool
	IsBanned  bool
	BanReason string `gorm:"type:text"`
	LastLogin *time.Time
}

// BeforeCreate assigns the external identifier.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.UUID == "" {
		u.UUID = uuid.NewString()
	}
	return nil
}
