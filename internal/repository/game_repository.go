package repository

import (
	"context"
	"errors"
	"fmt"

	"trackr/backend/internal/models"

	"gorm.io/gorm"
)

// GameFields are the scalar columns written by create and update.
type GameFields struct {
	Name        string
	Description string
	Pegi        int
	ImageURL    string
}

// RankedGame is a game together with its follower count.
type RankedGame struct {
	Game      models.Game
	Followers int64
}

// Option is an id/label pair used to fill select controls.
type Option struct {
	ID    uint   `json:"value"`
	Label string `json:"label"`
}

type GameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{db: db}
}

// FetchAll returns every game without relations.
func (r *GameRepository) FetchAll(ctx context.Context) ([]models.Game, error) {
	var games []models.Game
	if err := r.db.WithContext(ctx).Order("name").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

// FetchAllWithConsoles returns every game with its consoles preloaded.
// Games without consoles carry an empty, non-nil slice.
func (r *GameRepository) FetchAllWithConsoles(ctx context.Context) ([]models.Game, error) {
	var games []models.Game
	if err := r.db.WithContext(ctx).Preload("Consoles").Order("name").Find(&games).Error; err != nil {
		return nil, err
	}
	for i := range games {
		if games[i].Consoles == nil {
			games[i].Consoles = []models.Console{}
		}
	}
	return games, nil
}

// FetchByID returns nil, nil when no game has the given id.
func (r *GameRepository) FetchByID(ctx context.Context, id uint) (*models.Game, error) {
	var game models.Game
	err := r.db.WithContext(ctx).Preload("Consoles").First(&game, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if game.Consoles == nil {
		game.Consoles = []models.Console{}
	}
	return &game, nil
}

// Exists reports whether a game with the given id exists.
func (r *GameRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Game{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// Create inserts the game and its console links in one transaction.
func (r *GameRepository) Create(ctx context.Context, fields GameFields, consoleIDs []uint) (*models.Game, error) {
	game := models.Game{
		Name:        fields.Name,
		Description: fields.Description,
		Pegi:        fields.Pegi,
		ImageURL:    fields.ImageURL,
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Consoles", "Achievements").Create(&game).Error; err != nil {
			return err
		}
		return replaceConsoles(tx, game.ID, consoleIDs)
	})
	if err != nil {
		return nil, err
	}
	return r.FetchByID(ctx, game.ID)
}

// Update overwrites the scalar columns and, when consoleIDs is non-nil,
// replaces the console links. Both happen in one transaction. It returns
// nil, nil when the game does not exist.
func (r *GameRepository) Update(ctx context.Context, id uint, fields GameFields, consoleIDs []uint) (*models.Game, error) {
	found := true
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Game{}).Where("id = ?", id).Updates(map[string]any{
			"name":        fields.Name,
			"description": fields.Description,
			"pegi":        fields.Pegi,
			"image_url":   fields.ImageURL,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			found = false
			return nil
		}
		if consoleIDs == nil {
			return nil
		}
		return replaceConsoles(tx, id, consoleIDs)
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return r.FetchByID(ctx, id)
}

// ReplaceConsoles sets the exact set of consoles linked to a game. The old
// links are only dropped if the new ones can be written.
func (r *GameRepository) ReplaceConsoles(ctx context.Context, gid uint, consoleIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return replaceConsoles(tx, gid, consoleIDs)
	})
}

func replaceConsoles(tx *gorm.DB, gid uint, consoleIDs []uint) error {
	ids := uniqueIDs(consoleIDs)
	if len(ids) > 0 {
		var n int64
		if err := tx.Model(&models.Console{}).Where("id IN ?", ids).Count(&n).Error; err != nil {
			return err
		}
		if n != int64(len(ids)) {
			return ErrUnknownConsole
		}
	}

	if err := tx.Where("gid = ?", gid).Delete(&models.GameConsole{}).Error; err != nil {
		return fmt.Errorf("delete console links: %w", err)
	}
	if len(ids) == 0 {
		return nil
	}

	links := make([]models.GameConsole, 0, len(ids))
	for _, cid := range ids {
		links = append(links, models.GameConsole{GID: gid, CID: cid})
	}
	if err := tx.Create(&links).Error; err != nil {
		return fmt.Errorf("insert console links: %w", err)
	}
	return nil
}

// Delete removes the game, its console links, its achievements and every
// follow row pointing at them. It reports false when nothing was deleted.
func (r *GameRepository) Delete(ctx context.Context, id uint) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		achievementIDs := tx.Model(&models.Achievement{}).Select("id").Where("gid = ?", id)
		if err := tx.Where("aid IN (?)", achievementIDs).Delete(&models.UserAchievement{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("gid = ?", id).Delete(&models.Achievement{}).Error; err != nil {
			return err
		}
		if err := tx.Where("gid = ?", id).Delete(&models.UserGame{}).Error; err != nil {
			return err
		}
		if err := tx.Where("gid = ?", id).Delete(&models.GameConsole{}).Error; err != nil {
			return err
		}
		res := tx.Unscoped().Delete(&models.Game{}, id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}

// SelectOptions lists games as id/name pairs.
func (r *GameRepository) SelectOptions(ctx context.Context) ([]Option, error) {
	var options []Option
	err := r.db.WithContext(ctx).Model(&models.Game{}).
		Select("id, name AS label").
		Order("name").
		Scan(&options).Error
	if err != nil {
		return nil, err
	}
	return options, nil
}

// FollowedBy returns the games followed by a user.
func (r *GameRepository) FollowedBy(ctx context.Context, uid string) ([]models.Game, error) {
	var games []models.Game
	err := r.db.WithContext(ctx).
		Joins("JOIN usergame ON usergame.gid = games.id").
		Where("usergame.uid = ?", uid).
		Order("games.name").
		Find(&games).Error
	if err != nil {
		return nil, err
	}
	return games, nil
}

// MostFollowed returns up to limit games ordered by follower count.
func (r *GameRepository) MostFollowed(ctx context.Context, limit int) ([]RankedGame, error) {
	var counts []struct {
		GID       uint  `gorm:"column:gid"`
		Followers int64 `gorm:"column:followers"`
	}
	err := r.db.WithContext(ctx).Table("games").
		Select("games.id AS gid, COUNT(usergame.uid) AS followers").
		Joins("LEFT JOIN usergame ON usergame.gid = games.id").
		Where("games.deleted_at IS NULL").
		Group("games.id").
		Order("followers DESC").
		Order("games.id").
		Limit(limit).
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	if len(counts) == 0 {
		return []RankedGame{}, nil
	}

	ids := make([]uint, len(counts))
	for i, c := range counts {
		ids[i] = c.GID
	}
	var games []models.Game
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&games).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Game, len(games))
	for _, g := range games {
		byID[g.ID] = g
	}

	ranked := make([]RankedGame, 0, len(counts))
	for _, c := range counts {
		if g, ok := byID[c.GID]; ok {
			ranked = append(ranked, RankedGame{Game: g, Followers: c.Followers})
		}
	}
	return ranked, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
