package repository

import (
	"context"

	"trackr/backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowRepository maintains the usergame and userachievement join rows.
type FollowRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) *FollowRepository {
	return &FollowRepository{db: db}
}

// FollowGame is idempotent.
func (r *FollowRepository) FollowGame(ctx context.Context, uid string, gid uint) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.UserGame{UID: uid, GID: gid}).Error
}

func (r *FollowRepository) UnfollowGame(ctx context.Context, uid string, gid uint) error {
	return r.db.WithContext(ctx).Where("uid = ? AND gid = ?", uid, gid).Delete(&models.UserGame{}).Error
}

func (r *FollowRepository) IsFollowingGame(ctx context.Context, uid string, gid uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.UserGame{}).Where("uid = ? AND gid = ?", uid, gid).Count(&n).Error
	return n > 0, err
}

func (r *FollowRepository) FollowedGameIDs(ctx context.Context, uid string) ([]uint, error) {
	ids := []uint{}
	err := r.db.WithContext(ctx).Model(&models.UserGame{}).Where("uid = ?", uid).Order("gid").Pluck("gid", &ids).Error
	return ids, err
}

// UnlockAchievement is idempotent.
func (r *FollowRepository) UnlockAchievement(ctx context.Context, uid string, aid uint) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.UserAchievement{UID: uid, AID: aid}).Error
}

func (r *FollowRepository) LockAchievement(ctx context.Context, uid string, aid uint) error {
	return r.db.WithContext(ctx).Where("uid = ? AND aid = ?", uid, aid).Delete(&models.UserAchievement{}).Error
}

func (r *FollowRepository) IsAchievementUnlocked(ctx context.Context, uid string, aid uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.UserAchievement{}).Where("uid = ? AND aid = ?", uid, aid).Count(&n).Error
	return n > 0, err
}

func (r *FollowRepository) UnlockedAchievementIDs(ctx context.Context, uid string) ([]uint, error) {
	ids := []uint{}
	err := r.db.WithContext(ctx).Model(&models.UserAchievement{}).Where("uid = ?", uid).Order("aid").Pluck("aid", &ids).Error
	return ids, err
}
