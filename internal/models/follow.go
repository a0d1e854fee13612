package models

import "time"

// UserGame marks a game followed by a user.
type UserGame struct {
	UID       string `gorm:"primaryKey;column:uid;size:36"`
	GID       uint   `gorm:"primaryKey;column:gid"`
	CreatedAt time.Time
}

func (UserGame) TableName() string { return "usergame" }

// UserAchievement marks an achievement unlocked by a user.
type UserAchievement struct {
	UID       string `gorm:"primaryKey;column:uid;size:36"`
	AID       uint   `gorm:"primaryKey;column:aid"`
	CreatedAt time.Time
}

func (UserAchievement) TableName() string { return "userachievement" }
