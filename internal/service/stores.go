package service

import (
	"context"
	"time"

	"trackr/backend/internal/models"
	"trackr/backend/internal/repository"
)

// GameStore is the game persistence used by the services.
type GameStore interface {
	FetchAllWithConsoles(ctx context.Context) ([]models.Game, error)
	FetchByID(ctx context.Context, id uint) (*models.Game, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, fields repository.GameFields, consoleIDs []uint) (*models.Game, error)
	Update(ctx context.Context, id uint, fields repository.GameFields, consoleIDs []uint) (*models.Game, error)
	Delete(ctx context.Context, id uint) (bool, error)
	SelectOptions(ctx context.Context) ([]repository.Option, error)
	FollowedBy(ctx context.Context, uid string) ([]models.Game, error)
	MostFollowed(ctx context.Context, limit int) ([]repository.RankedGame, error)
}

type ConsoleStore interface {
	FetchAll(ctx context.Context) ([]models.Console, error)
	FetchByID(ctx context.Context, id uint) (*models.Console, error)
	LatestReleased(ctx context.Context, limit int) ([]models.Console, error)
	Create(ctx context.Context, fields repository.ConsoleFields) (*models.Console, error)
	Update(ctx context.Context, id uint, fields repository.ConsoleFields) (*models.Console, error)
	Delete(ctx context.Context, id uint) (bool, error)
	SelectOptions(ctx context.Context) ([]repository.Option, error)
}

type AchievementStore interface {
	FetchAll(ctx context.Context) ([]models.Achievement, error)
	FetchByID(ctx context.Context, id uint) (*models.Achievement, error)
	FetchForGame(ctx context.Context, gid uint) ([]models.Achievement, error)
	FetchForGames(ctx context.Context, gids []uint) ([]models.Achievement, error)
	Create(ctx context.Context, fields repository.AchievementFields) (*models.Achievement, error)
	Update(ctx context.Context, id uint, fields repository.AchievementFields) (*models.Achievement, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type ProfileStore interface {
	FetchStats(ctx context.Context, uid string) (*repository.PlayerStats, error)
	FetchAll(ctx context.Context) ([]repository.PlayerStats, error)
	Search(ctx context.Context, query string) ([]repository.PlayerStats, error)
	TopByFollowedAchievements(ctx context.Context, limit int) ([]repository.PlayerStats, error)
	UpdateNickname(ctx context.Context, uid, nickname string) (bool, error)
}

type FollowStore interface {
	FollowGame(ctx context.Context, uid string, gid uint) error
	UnfollowGame(ctx context.Context, uid string, gid uint) error
	IsFollowingGame(ctx context.Context, uid string, gid uint) (bool, error)
	FollowedGameIDs(ctx context.Context, uid string) ([]uint, error)
	UnlockAchievement(ctx context.Context, uid string, aid uint) error
	LockAchievement(ctx context.Context, uid string, aid uint) error
	IsAchievementUnlocked(ctx context.Context, uid string, aid uint) (bool, error)
	UnlockedAchievementIDs(ctx context.Context, uid string) ([]uint, error)
}

type AccountStore interface {
	FetchByID(ctx context.Context, uid string) (*models.Account, error)
	FetchByEmail(ctx context.Context, email string) (*models.Account, error)
	UpdatePassword(ctx context.Context, uid, hash string) error
	SetPendingEmail(ctx context.Context, uid, email, token string) error
	ConfirmEmail(ctx context.Context, token string, now time.Time) (*models.Account, error)
	Delete(ctx context.Context, uid string) (bool, error)
}
