package models

import "gorm.io/gorm"

// Game represents a catalog entry. The catalog is seeded out of band and is
// read-only through the API.
type Game struct {
	gorm.Model
	Name          string `gorm:"size:100;not null"`
	Slug          string `gorm:"size:100;uniqueIndex;not null"`
	APIIdentifier string `gorm:"size:100"`
	Category      string `gorm:"size:50"`
	IsActive      bool
	IconURL       string `gorm:"size:500"`
	BannerURL     string `gorm:"size:500"`
	Description   string `gorm:"type:text"`
	MinPlayers    int    `gorm:"not null;default:1"`
	MaxPlayers    int    `gorm:"not null;default:10"`
}
