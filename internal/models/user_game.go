package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserGame is a per-user per-game skill and stats record. The composite
// unique index guarantees one row per (user, game) pair.
type UserGame struct {
	gorm.Model
	UserID uint `gorm:"not null;uniqueIndex:idx_user_game"`
	GameID uint `gorm:"not null;uniqueIndex:idx_user_game"`

	SkillLevel   string `gorm:"size:20;not null;default:'bronze'"`
	CurrentRank  string `gorm:"size:100"`
	PeakRank     string `gorm:"size:100"`
	HoursPlayed  int    `gorm:"not null;default:0"`
	IsMainGame   bool
	GameUsername string `gorm:"size:100"`
	Stats        datatypes.JSON

	User User `gorm:"foreignKey:UserID"`
	Game Game `gorm:"foreignKey:GameID"`
}
