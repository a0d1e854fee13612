package repository

import (
	"context"
	"errors"

	"trackr/backend/internal/models"

	"gorm.io/gorm"
)

// ConsoleFields are the columns written by create and update.
type ConsoleFields struct {
	Name        string
	Brand       string
	ReleaseYear int
	Description string
	ImageURL    string
}

type ConsoleRepository struct {
	db *gorm.DB
}

func NewConsoleRepository(db *gorm.DB) *ConsoleRepository {
	return &ConsoleRepository{db: db}
}

func (r *ConsoleRepository) FetchAll(ctx context.Context) ([]models.Console, error) {
	var consoles []models.Console
	if err := r.db.WithContext(ctx).Order("name").Find(&consoles).Error; err != nil {
		return nil, err
	}
	return consoles, nil
}

// FetchByID returns nil, nil when no console has the given id.
func (r *ConsoleRepository) FetchByID(ctx context.Context, id uint) (*models.Console, error) {
	var console models.Console
	err := r.db.WithContext(ctx).First(&console, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &console, nil
}

// LatestReleased returns up to limit consoles, most recent release first.
func (r *ConsoleRepository) LatestReleased(ctx context.Context, limit int) ([]models.Console, error) {
	var consoles []models.Console
	err := r.db.WithContext(ctx).
		Order("release_year DESC").
		Order("id DESC").
		Limit(limit).
		Find(&consoles).Error
	if err != nil {
		return nil, err
	}
	return consoles, nil
}

func (r *ConsoleRepository) Create(ctx context.Context, fields ConsoleFields) (*models.Console, error) {
	console := models.Console{
		Name:        fields.Name,
		Brand:       fields.Brand,
		ReleaseYear: fields.ReleaseYear,
		Description: fields.Description,
		ImageURL:    fields.ImageURL,
	}
	if err := r.db.WithContext(ctx).Create(&console).Error; err != nil {
		return nil, err
	}
	return &console, nil
}

// Update returns nil, nil when the console does not exist.
func (r *ConsoleRepository) Update(ctx context.Context, id uint, fields ConsoleFields) (*models.Console, error) {
	res := r.db.WithContext(ctx).Model(&models.Console{}).Where("id = ?", id).Updates(map[string]any{
		"name":         fields.Name,
		"brand":        fields.Brand,
		"release_year": fields.ReleaseYear,
		"description":  fields.Description,
		"image_url":    fields.ImageURL,
	})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.FetchByID(ctx, id)
}

// Delete removes the console together with its game links so that no game
// keeps a reference to it. It reports false when nothing was deleted.
func (r *ConsoleRepository) Delete(ctx context.Context, id uint) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cid = ?", id).Delete(&models.GameConsole{}).Error; err != nil {
			return err
		}
		res := tx.Unscoped().Delete(&models.Console{}, id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}

// SelectOptions lists consoles as id/name pairs.
func (r *ConsoleRepository) SelectOptions(ctx context.Context) ([]Option, error) {
	var options []Option
	err := r.db.WithContext(ctx).Model(&models.Console{}).
		Select("id, name AS label").
		Order("name").
		Scan(&options).Error
	if err != nil {
		return nil, err
	}
	return options, nil
}
