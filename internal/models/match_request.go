package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MatchRequestStatusActive is the status a request carries from creation
// until an external process expires it.
const MatchRequestStatusActive = "active"

// MatchRequest is a user's standing solicitation for opponents or teammates,
// scoped to a game and a time window.
type MatchRequest struct {
	gorm.Model
	UserID uint `gorm:"not null;index"`
	GameID uint `gorm:"not null;index"`

	RequestType          string `gorm:"size:20"`
	PreferredSkillLevels datatypes.JSON
	PreferredGameModes   datatypes.JSON
	PreferredRoles       datatypes.JSON
	MinPlayers           int `gorm:"not null;default:1"`
	MaxPlayers           int `gorm:"not null;default:5"`

	// Stored as provided; available_from < available_until is not enforced.
	AvailableFrom  time.Time `gorm:"not null"`
	AvailableUntil time.Time `gorm:"not null"`

	Status string `gorm:"size:20;not null;default:'active'"`

	User User `gorm:"foreignKey:UserID"`
	Game Game `gorm:"foreignKey:GameID"`
}
