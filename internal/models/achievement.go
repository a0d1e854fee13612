package models

import "gorm.io/gorm"

// Achievement belongs to exactly one game.
type Achievement struct {
	gorm.Model
	Name        string `gorm:"size:255;not null"`
	Description string
	GID         uint  `gorm:"column:gid;not null;index"`
	Game        *Game `gorm:"foreignKey:GID;constraint:OnDelete:CASCADE;"`
}
