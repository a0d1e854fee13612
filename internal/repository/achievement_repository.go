package repository

import (
	"context"
	"errors"

	"trackr/backend/internal/models"

	"gorm.io/gorm"
)

// AchievementFields are the columns written by create and update.
type AchievementFields struct {
	Name        string
	Description string
	GID         uint
}

type AchievementRepository struct {
	db *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{db: db}
}

// FetchAll returns every achievement with its game.
func (r *AchievementRepository) FetchAll(ctx context.Context) ([]models.Achievement, error) {
	var achievements []models.Achievement
	err := r.db.WithContext(ctx).Preload("Game").Order("gid").Order("name").Find(&achievements).Error
	if err != nil {
		return nil, err
	}
	return achievements, nil
}

// FetchByID returns nil, nil when no achievement has the given id.
func (r *AchievementRepository) FetchByID(ctx context.Context, id uint) (*models.Achievement, error) {
	var achievement models.Achievement
	err := r.db.WithContext(ctx).Preload("Game").First(&achievement, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &achievement, nil
}

func (r *AchievementRepository) FetchForGame(ctx context.Context, gid uint) ([]models.Achievement, error) {
	var achievements []models.Achievement
	if err := r.db.WithContext(ctx).Where("gid = ?", gid).Order("name").Find(&achievements).Error; err != nil {
		return nil, err
	}
	return achievements, nil
}

func (r *AchievementRepository) FetchForGames(ctx context.Context, gids []uint) ([]models.Achievement, error) {
	if len(gids) == 0 {
		return []models.Achievement{}, nil
	}
	var achievements []models.Achievement
	if err := r.db.WithContext(ctx).Where("gid IN ?", gids).Order("name").Find(&achievements).Error; err != nil {
		return nil, err
	}
	return achievements, nil
}

func (r *AchievementRepository) Create(ctx context.Context, fields AchievementFields) (*models.Achievement, error) {
	achievement := models.Achievement{
		Name:        fields.Name,
		Description: fields.Description,
		GID:         fields.GID,
	}
	if err := r.db.WithContext(ctx).Omit("Game").Create(&achievement).Error; err != nil {
		return nil, err
	}
	return r.FetchByID(ctx, achievement.ID)
}

// Update returns nil, nil when the achievement does not exist.
func (r *AchievementRepository) Update(ctx context.Context, id uint, fields AchievementFields) (*models.Achievement, error) {
	res := r.db.WithContext(ctx).Model(&models.Achievement{}).Where("id = ?", id).Updates(map[string]any{
		"name":        fields.Name,
		"description": fields.Description,
		"gid":         fields.GID,
	})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.FetchByID(ctx, id)
}

// Delete removes the achievement and the unlock rows pointing at it.
func (r *AchievementRepository) Delete(ctx context.Context, id uint) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("aid = ?", id).Delete(&models.UserAchievement{}).Error; err != nil {
			return err
		}
		res := tx.Unscoped().Delete(&models.Achievement{}, id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}
