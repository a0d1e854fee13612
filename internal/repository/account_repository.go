package repository

import (
	"context"
	"errors"
	"time"

	"trackr/backend/internal/models"

	"gorm.io/gorm"
)

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create inserts the account and its profile in one transaction.
func (r *AccountRepository) Create(ctx context.Context, account *models.Account, profile *models.Profile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrEmailInUse
			}
			return err
		}
		profile.UID = account.ID
		return tx.Omit("Account").Create(profile).Error
	})
}

// FetchByEmail returns nil, nil when no account uses the email.
func (r *AccountRepository) FetchByEmail(ctx context.Context, email string) (*models.Account, error) {
	return r.first(ctx, "LOWER(email) = LOWER(?)", email)
}

// FetchByID returns nil, nil when the account does not exist.
func (r *AccountRepository) FetchByID(ctx context.Context, uid string) (*models.Account, error) {
	return r.first(ctx, "id = ?", uid)
}

func (r *AccountRepository) first(ctx context.Context, query string, args ...any) (*models.Account, error) {
	var account models.Account
	err := r.db.WithContext(ctx).Where(query, args...).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) UpdatePassword(ctx context.Context, uid, hash string) error {
	return r.db.WithContext(ctx).Model(&models.Account{}).Where("id = ?", uid).Update("password_hash", hash).Error
}

// SetPendingEmail stores the requested address until the token is confirmed.
func (r *AccountRepository) SetPendingEmail(ctx context.Context, uid, email, token string) error {
	return r.db.WithContext(ctx).Model(&models.Account{}).Where("id = ?", uid).Updates(map[string]any{
		"pending_email": email,
		"email_token":   token,
	}).Error
}

// ConfirmEmail consumes the token. A pending address replaces the account
// and profile email; otherwise the current address is marked confirmed.
// It returns nil, nil for an unknown token.
func (r *AccountRepository) ConfirmEmail(ctx context.Context, token string, now time.Time) (*models.Account, error) {
	var confirmed *models.Account
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var account models.Account
		err := tx.Where("email_token = ?", token).First(&account).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		if account.PendingEmail != "" {
			account.Email = account.PendingEmail
			if err := tx.Model(&models.Profile{}).Where("uid = ?", account.ID).Update("email", account.Email).Error; err != nil {
				return err
			}
		}
		account.PendingEmail = ""
		account.EmailToken = nil
		account.EmailConfirmedAt = &now
		if err := tx.Save(&account).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrEmailInUse
			}
			return err
		}
		confirmed = &account
		return nil
	})
	if err != nil {
		return nil, err
	}
	return confirmed, nil
}

// Delete removes every row owned by the user. It reports false when the
// account did not exist.
func (r *AccountRepository) Delete(ctx context.Context, uid string) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("uid = ?", uid).Delete(&models.UserGame{}).Error; err != nil {
			return err
		}
		if err := tx.Where("uid = ?", uid).Delete(&models.UserAchievement{}).Error; err != nil {
			return err
		}
		if err := tx.Where("uid = ?", uid).Delete(&models.Profile{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", uid).Delete(&models.Account{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}
