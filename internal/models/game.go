package models

import "gorm.io/gorm"

// Game represents a game in the catalog.
type Game struct {
	gorm.Model
	Name        string `gorm:"size:255;not null"`
	Description string
	Pegi        int    `gorm:"not null;default:0"`
	ImageURL    string `gorm:"size:1024"`

	Consoles     []Console     `gorm:"many2many:gameconsoles;joinForeignKey:gid;joinReferences:cid"`
	Achievements []Achievement `gorm:"foreignKey:GID"`
}

// GameConsole links a game to a console it is released on.
// The composite primary key keeps one row per (game, console) pair.
type GameConsole struct {
	GID uint `gorm:"primaryKey;column:gid"`
	CID uint `gorm:"primaryKey;column:cid"`
}

func (GameConsole) TableName() string { return "gameconsoles" }
