package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"trackr/backend/internal/mailer"
	"trackr/backend/internal/models"
	"trackr/backend/internal/session"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DeletePhrase must be typed to delete an account.
const DeletePhrase = "SUPPRIMER MON COMPTE"

// SessionControl is the part of the session manager used by settings.
type SessionControl interface {
	SignOut(ctx context.Context, token string) error
	Notify(uid string, payload any)
}

type SettingsService struct {
	accounts AccountStore
	profiles ProfileStore
	sessions SessionControl
	mailer   mailer.Mailer
	validate *validator.Validate
	cost     int
	now      func() time.Time
}

func NewSettingsService(accounts AccountStore, profiles ProfileStore, sessions SessionControl, m mailer.Mailer, bcryptCost int) *SettingsService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &SettingsService{
		accounts: accounts,
		profiles: profiles,
		sessions: sessions,
		mailer:   m,
		validate: validator.New(),
		cost:     bcryptCost,
		now:      time.Now,
	}
}

func (s *SettingsService) UpdateNickname(ctx context.Context, uid, nickname string) error {
	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		return fmt.Errorf("%w: nickname", ErrRequired)
	}
	ok, err := s.profiles.UpdateNickname(ctx, uid, nickname)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	s.sessions.Notify(uid, map[string]string{"nickname": nickname})
	return nil
}

// RequestEmailChange stores the new address as pending and sends the
// confirmation link. The address changes once the link is followed.
func (s *SettingsService) RequestEmailChange(ctx context.Context, uid, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("%w: email", ErrRequired)
	}
	if err := s.validate.Var(email, "email"); err != nil {
		return session.ErrInvalidEmail
	}
	existing, err := s.accounts.FetchByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return session.ErrEmailTaken
	}
	token := uuid.NewString()
	if err := s.accounts.SetPendingEmail(ctx, uid, email, token); err != nil {
		return err
	}
	return s.mailer.SendConfirmation(ctx, email, token)
}

// ConfirmEmail applies the pending address (or confirms the current one).
func (s *SettingsService) ConfirmEmail(ctx context.Context, token string) (*models.Account, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrInvalidToken
	}
	account, err := s.accounts.ConfirmEmail(ctx, token, s.now())
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrInvalidToken
	}
	s.sessions.Notify(account.ID, map[string]string{"email": account.Email})
	return account, nil
}

func (s *SettingsService) ChangePassword(ctx context.Context, uid, password string) error {
	if len(password) < session.MinPasswordLength {
		return session.ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.accounts.UpdatePassword(ctx, uid, string(hash))
}

// DeleteAccount removes the account and its data, then revokes the token.
func (s *SettingsService) DeleteAccount(ctx context.Context, uid, token, phrase string) error {
	if phrase != DeletePhrase {
		return ErrDeleteConfirmation
	}
	deleted, err := s.accounts.Delete(ctx, uid)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return s.sessions.SignOut(ctx, token)
}
