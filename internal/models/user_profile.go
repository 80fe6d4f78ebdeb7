package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Profile defaults applied when a profile is first created.
const (
	DefaultSkillLevel        = "beginner"
	DefaultProfileVisibility = "public"
)

// UserProfile holds the optional display and preference data for a user.
// At most one profile exists per user; it is created lazily on the first
// update, not on registration.
type UserProfile struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null"`

	FirstName       *string `gorm:"size:100"`
	LastName        *string `gorm:"size:100"`
	DateOfBirth     *time.Time
	AvatarURL       *string `gorm:"size:500"`
	Bio             *string `gorm:"type:text"`
	Location        *string `gorm:"size:100"`
	Timezone        *string `gorm:"size:50"`
	DiscordUsername *string `gorm:"size:100"`
	SteamID         *string `gorm:"size:100"`
	TwitchUsername  *string `gorm:"size:100"`

	PreferredGameModes   datatypes.JSON
	PreferredPlaytime    datatypes.JSON
	AvailabilitySchedule datatypes.JSON

	SkillLevel          string  `gorm:"size:20;not null"`
	LookingFor          *string `gorm:"size:50"`
	IsAvailableNow      bool
	ProfileVisibility   string `gorm:"size:20;not null"`
	ShowStats           bool
	AllowFriendRequests bool

	User User `gorm:"foreignKey:UserID"`
}

// NewUserProfile returns a profile for the given user with the declared
// defaults; the caller applies any supplied fields on top.
func NewUserProfile(userID uint) UserProfile {
	return UserProfile{
		UserID:              userID,
		SkillLevel:          DefaultSkillLevel,
		ProfileVisibility:   DefaultProfileVisibility,
		ShowStats:           true,
		AllowFriendRequests: true,
	}
}
