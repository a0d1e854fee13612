package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"trackr/backend/internal/models"

	"gorm.io/gorm"
)

// PlayerStats is a profile with its derived follow counts.
type PlayerStats struct {
	UID                  string    `gorm:"column:uid" json:"id"`
	Email                string    `gorm:"column:email" json:"email"`
	Nickname             string    `gorm:"column:nickname" json:"nickname"`
	Rid                  int       `gorm:"column:rid" json:"rid"`
	CreatedAt            time.Time `gorm:"column:created_at" json:"created_at"`
	FollowedGames        int64     `gorm:"column:followed_games" json:"count_followed_games"`
	FollowedAchievements int64     `gorm:"column:followed_achievements" json:"count_followed_achievements"`
}

const playerStatsColumns = `profiles.uid, profiles.email, profiles.nickname, profiles.rid, profiles.created_at,
	(SELECT COUNT(*) FROM usergame WHERE usergame.uid = profiles.uid) AS followed_games,
	(SELECT COUNT(*) FROM userachievement WHERE userachievement.uid = profiles.uid) AS followed_achievements`

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) stats(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Profile{}).Select(playerStatsColumns)
}

// FetchByID returns nil, nil when the user has no profile row.
func (r *ProfileRepository) FetchByID(ctx context.Context, uid string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).Where("uid = ?", uid).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// FetchStats returns nil, nil when the user has no profile row.
func (r *ProfileRepository) FetchStats(ctx context.Context, uid string) (*PlayerStats, error) {
	var rows []PlayerStats
	if err := r.stats(ctx).Where("profiles.uid = ?", uid).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// FetchAll returns every profile with follow counts, unsorted.
func (r *ProfileRepository) FetchAll(ctx context.Context) ([]PlayerStats, error) {
	var rows []PlayerStats
	if err := r.stats(ctx).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search matches nicknames case-insensitively anywhere in the string.
// Wildcards typed by the user match literally.
func (r *ProfileRepository) Search(ctx context.Context, query string) ([]PlayerStats, error) {
	var rows []PlayerStats
	pattern := "%" + likeEscaper.Replace(query) + "%"
	if err := r.stats(ctx).Where(`profiles.nickname ILIKE ? ESCAPE '\'`, pattern).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// TopByFollowedAchievements returns the limit players with the most
// unlocked achievements.
func (r *ProfileRepository) TopByFollowedAchievements(ctx context.Context, limit int) ([]PlayerStats, error) {
	var rows []PlayerStats
	err := r.stats(ctx).
		Order("followed_achievements DESC").
		Order("profiles.nickname").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateNickname reports false when the profile does not exist.
func (r *ProfileRepository) UpdateNickname(ctx context.Context, uid, nickname string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.Profile{}).Where("uid = ?", uid).Update("nickname", nickname)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
