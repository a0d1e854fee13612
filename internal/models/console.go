package models

import "gorm.io/gorm"

// Console represents a gaming platform.
type Console struct {
	gorm.Model
	Name        string `gorm:"size:255;not null"`
	Brand       string `gorm:"size:255;not null"`
	ReleaseYear int    `gorm:"index"`
	Description string
	ImageURL    string `gorm:"size:1024"`
}
