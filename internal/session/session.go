// Package session implements sign-up, sign-in and token lifecycle for
// Track-R accounts, and pushes session changes to subscribers.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"trackr/backend/internal/hub"
	"trackr/backend/internal/mailer"
	"trackr/backend/internal/models"
	"trackr/backend/internal/repository"
	"trackr/backend/pkg/jwt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 8

type State string

const (
	StateLoading       State = "loading"
	StateAuthenticated State = "authenticated"
	StateAnonymous     State = "anonymous"
)

// Session is the resolved auth state of a request.
type Session struct {
	State               State           `json:"state"`
	UserID              string          `json:"user_id,omitempty"`
	Token               string          `json:"token,omitempty"`
	ExpiresAt           *time.Time      `json:"expires_at,omitempty"`
	Profile             *models.Profile `json:"profile,omitempty"`
	ConfirmationPending bool            `json:"confirmation_pending,omitempty"`
}

var anonymous = Session{State: StateAnonymous}

func (s Session) Authenticated() bool { return s.State == StateAuthenticated }

// IsAdmin requires a loaded profile.
func (s Session) IsAdmin() bool { return s.Profile != nil && s.Profile.IsAdmin() }

// Accounts is the account storage used by the manager.
type Accounts interface {
	Create(ctx context.Context, account *models.Account, profile *models.Profile) error
	FetchByEmail(ctx context.Context, email string) (*models.Account, error)
}

type Profiles interface {
	FetchByID(ctx context.Context, uid string) (*models.Profile, error)
}

// Tokens issues and validates bearer tokens.
type Tokens interface {
	GenerateToken(userID string) (string, jwt.Claims, error)
	ValidateToken(token string) (jwt.Claims, error)
}

// Deps holds the manager's collaborators.
type Deps struct {
	Accounts                 Accounts
	Profiles                 Profiles
	Tokens                   Tokens
	Revocations              RevocationStore
	Hub                      *hub.Hub
	Limiter                  *Limiter
	Mailer                   mailer.Mailer
	RequireEmailConfirmation bool
	BcryptCost               int
	Log                      zerolog.Logger
}

// Manager owns the session lifecycle. It is safe for concurrent use.
type Manager struct {
	accounts    Accounts
	profiles    Profiles
	tokens      Tokens
	revocations RevocationStore
	hub         *hub.Hub
	limiter     *Limiter
	mailer      mailer.Mailer
	confirm     bool
	cost        int
	validate    *validator.Validate
	log         zerolog.Logger
}

func NewManager(d Deps) *Manager {
	m := &Manager{
		accounts:    d.Accounts,
		profiles:    d.Profiles,
		tokens:      d.Tokens,
		revocations: d.Revocations,
		hub:         d.Hub,
		limiter:     d.Limiter,
		mailer:      d.Mailer,
		confirm:     d.RequireEmailConfirmation,
		cost:        d.BcryptCost,
		validate:    validator.New(),
		log:         d.Log,
	}
	if m.revocations == nil {
		m.revocations = NewMemoryRevocations()
	}
	if m.hub == nil {
		m.hub = hub.NewHub(d.Log)
	}
	if m.limiter == nil {
		m.limiter = NewLimiter(0)
	}
	if m.cost == 0 {
		m.cost = bcrypt.DefaultCost
	}
	return m
}

// Current resolves a bearer token. Invalid, expired or revoked tokens
// yield an anonymous session. The profile is loaded best-effort.
func (m *Manager) Current(ctx context.Context, token string) Session {
	claims, err := m.verify(ctx, token)
	if err != nil {
		return anonymous
	}
	return m.authenticated(ctx, token, claims)
}

func (m *Manager) verify(ctx context.Context, token string) (jwt.Claims, error) {
	if token == "" {
		return jwt.Claims{}, ErrNotAuthenticated
	}
	claims, err := m.tokens.ValidateToken(token)
	if err != nil {
		return jwt.Claims{}, ErrNotAuthenticated
	}
	revoked, err := m.revocations.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		m.log.Error().Err(err).Msg("session: revocation lookup failed")
		return jwt.Claims{}, ErrNotAuthenticated
	}
	if revoked {
		return jwt.Claims{}, ErrNotAuthenticated
	}
	return claims, nil
}

func (m *Manager) authenticated(ctx context.Context, token string, claims jwt.Claims) Session {
	exp := claims.ExpiresAt
	s := Session{
		State:     StateAuthenticated,
		UserID:    claims.UserID,
		Token:     token,
		ExpiresAt: &exp,
	}
	profile, err := m.profiles.FetchByID(ctx, claims.UserID)
	if err != nil {
		m.log.Warn().Err(err).Str("user_id", claims.UserID).Msg("session: profile load failed")
		return s
	}
	s.Profile = profile
	return s
}

// SignUp creates the account and its member profile. The email format is
// checked before any storage call. When confirmation is required the
// returned session is anonymous with ConfirmationPending set.
func (m *Manager) SignUp(ctx context.Context, nickname, email, password string) (Session, error) {
	nickname = strings.TrimSpace(nickname)
	email = strings.TrimSpace(email)
	if nickname == "" || email == "" || password == "" {
		return anonymous, ErrMissingFields
	}
	if err := m.validate.Var(email, "email"); err != nil {
		return anonymous, ErrInvalidEmail
	}
	if len(password) < MinPasswordLength {
		return anonymous, ErrWeakPassword
	}

	existing, err := m.accounts.FetchByEmail(ctx, email)
	if err != nil {
		return anonymous, fmt.Errorf("sign up: %w", err)
	}
	if existing != nil {
		return anonymous, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), m.cost)
	if err != nil {
		return anonymous, fmt.Errorf("hash password: %w", err)
	}

	account := &models.Account{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if m.confirm {
		token := uuid.NewString()
		account.EmailToken = &token
	}
	profile := &models.Profile{
		Email:    email,
		Nickname: nickname,
		Rid:      models.RoleMember,
	}
	if err := m.accounts.Create(ctx, account, profile); err != nil {
		if errors.Is(err, repository.ErrEmailInUse) {
			return anonymous, ErrEmailTaken
		}
		return anonymous, fmt.Errorf("sign up: %w", err)
	}

	if m.confirm {
		if m.mailer != nil {
			if err := m.mailer.SendConfirmation(ctx, email, *account.EmailToken); err != nil {
				m.log.Error().Err(err).Str("user_id", account.ID).Msg("session: confirmation email failed")
			}
		}
		return Session{State: StateAnonymous, ConfirmationPending: true}, nil
	}
	return m.issue(ctx, account.ID, hub.EventSignedIn)
}

// SignIn checks credentials and issues a new token.
func (m *Manager) SignIn(ctx context.Context, email, password string) (Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return anonymous, ErrMissingFields
	}
	if !m.limiter.Allow(strings.ToLower(email)) {
		return anonymous, ErrRateLimited
	}

	account, err := m.accounts.FetchByEmail(ctx, email)
	if err != nil {
		return anonymous, fmt.Errorf("sign in: %w", err)
	}
	if account == nil {
		return anonymous, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return anonymous, ErrInvalidCredentials
	}
	if m.confirm && account.EmailConfirmedAt == nil {
		return anonymous, ErrEmailNotConfirmed
	}
	return m.issue(ctx, account.ID, hub.EventSignedIn)
}

// SignOut revokes the token until it expires.
func (m *Manager) SignOut(ctx context.Context, token string) error {
	claims, err := m.verify(ctx, token)
	if err != nil {
		return err
	}
	if err := m.revocations.Revoke(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	m.hub.Broadcast(claims.UserID, hub.Event{Type: hub.EventSignedOut})
	return nil
}

// Refresh exchanges a valid token for a new one and revokes the old one.
func (m *Manager) Refresh(ctx context.Context, token string) (Session, error) {
	claims, err := m.verify(ctx, token)
	if err != nil {
		return anonymous, err
	}
	s, err := m.issue(ctx, claims.UserID, hub.EventTokenRefreshed)
	if err != nil {
		return anonymous, err
	}
	if err := m.revocations.Revoke(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
		return anonymous, fmt.Errorf("refresh: %w", err)
	}
	return s, nil
}

// Notify pushes a USER_UPDATED event carrying payload.
func (m *Manager) Notify(uid string, payload any) {
	m.hub.Broadcast(uid, hub.Event{Type: hub.EventUserUpdated, Payload: payload})
}

func (m *Manager) issue(ctx context.Context, uid, event string) (Session, error) {
	token, claims, err := m.tokens.GenerateToken(uid)
	if err != nil {
		return anonymous, fmt.Errorf("issue token: %w", err)
	}
	s := m.authenticated(ctx, token, claims)
	m.hub.Broadcast(uid, hub.Event{Type: event, Payload: s.Profile})
	return s, nil
}
