package models

import (
	"time"

	"gorm.io/gorm"
)

// MatchStatus is the lifecycle state of a proposed pairing.
type MatchStatus string

const (
	MatchStatusPending  MatchStatus = "pending"
	MatchStatusAccepted MatchStatus = "accepted"
	MatchStatusDeclined MatchStatus = "declined"
	MatchStatusExpired  MatchStatus = "expired"
)

// Match pairs a match request with another user. Rows are produced by an
// external matching process; no endpoint in this service creates them, and
// they are visible only to the matched user.
type Match struct {
	gorm.Model
	MatchRequestID uint `gorm:"not null;index"`
	MatchedUserID  uint `gorm:"not null;index"`
	GameID         uint `gorm:"not null"`

	CompatibilityScore float64     `gorm:"type:decimal(3,2)"`
	SuggestedGameMode  string      `gorm:"size:50"`
	SuggestedRole      string      `gorm:"size:50"`
	Status             MatchStatus `gorm:"size:20;not null;default:'pending'"`
	ExpiresAt          time.Time   `gorm:"not null"`

	MatchRequest MatchRequest `gorm:"foreignKey:MatchRequestID"`
	MatchedUser  User         `gorm:"foreignKey:MatchedUserID"`
	Game         Game         `gorm:"foreignKey:GameID"`
}
