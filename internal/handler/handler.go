package handler

import (
	"context"
	"strconv"
	"time"

	"trackr/backend/internal/layout"
	"trackr/backend/internal/metrics"
	"trackr/backend/internal/models"
	"trackr/backend/internal/repository"
	"trackr/backend/internal/service"
	"trackr/backend/internal/session"
	"trackr/backend/internal/storage"
	"trackr/backend/internal/theme"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Sessions is the session manager as seen by the handlers.
type Sessions interface {
	Current(ctx context.Context, token string) session.Session
	SignUp(ctx context.Context, nickname, email, password string) (session.Session, error)
	SignIn(ctx context.Context, email, password string) (session.Session, error)
	SignOut(ctx context.Context, token string) error
	Refresh(ctx context.Context, token string) (session.Session, error)
	Watch(uid string) *session.Subscription
}

type Catalog interface {
	ListGames(ctx context.Context) ([]models.Game, error)
	GetGame(ctx context.Context, id uint) (*models.Game, error)
	CreateGame(ctx context.Context, actor *models.Profile, in service.GameInput) (*models.Game, error)
	UpdateGame(ctx context.Context, actor *models.Profile, id uint, in service.GameInput) (*models.Game, error)
	DeleteGame(ctx context.Context, actor *models.Profile, id uint) error
	ListConsoles(ctx context.Context) ([]models.Console, error)
	GetConsole(ctx context.Context, id uint) (*models.Console, error)
	CreateConsole(ctx context.Context, actor *models.Profile, in service.ConsoleInput) (*models.Console, error)
	UpdateConsole(ctx context.Context, actor *models.Profile, id uint, in service.ConsoleInput) (*models.Console, error)
	DeleteConsole(ctx context.Context, actor *models.Profile, id uint) error
	ListAchievements(ctx context.Context) ([]models.Achievement, error)
	GetAchievement(ctx context.Context, id uint) (*models.Achievement, error)
	CreateAchievement(ctx context.Context, actor *models.Profile, in service.AchievementInput) (*models.Achievement, error)
	UpdateAchievement(ctx context.Context, actor *models.Profile, id uint, in service.AchievementInput) (*models.Achievement, error)
	DeleteAchievement(ctx context.Context, actor *models.Profile, id uint) error
	Options(ctx context.Context, table string) ([]repository.Option, error)
}

type Tracker interface {
	Dashboard(ctx context.Context, uid string) (service.DashboardView, error)
	GameDetail(ctx context.Context, uid string, gid uint) (*service.GameDetailView, error)
	ToggleGame(ctx context.Context, uid string, gid uint) (bool, error)
	ToggleAchievement(ctx context.Context, uid string, aid uint) (bool, error)
}

type Players interface {
	List(ctx context.Context, query string, order service.SortOrder) (service.PlayersView, error)
	Get(ctx context.Context, uid string) (*repository.PlayerStats, error)
}

type Home interface {
	Load(ctx context.Context) service.HomeView
}

type Settings interface {
	UpdateNickname(ctx context.Context, uid, nickname string) error
	RequestEmailChange(ctx context.Context, uid, email string) error
	ConfirmEmail(ctx context.Context, token string) (*models.Account, error)
	ChangePassword(ctx context.Context, uid, password string) error
	DeleteAccount(ctx context.Context, uid, token, phrase string) error
}

// Deps are the collaborators of the HTTP handlers.
type Deps struct {
	Sessions Sessions
	Catalog  Catalog
	Tracker  Tracker
	Players  Players
	Home     Home
	Settings Settings
	Store    storage.Store
	Metrics  *metrics.Metrics
	Log      zerolog.Logger
	// Heartbeat is the keep-alive interval of event streams.
	Heartbeat time.Duration
}

// Handler serves the Track-R HTTP API.
type Handler struct {
	Deps
	forms formRegistry
}

func New(d Deps) *Handler {
	if d.Metrics == nil {
		d.Metrics = metrics.New()
	}
	if d.Heartbeat == 0 {
		d.Heartbeat = 25 * time.Second
	}
	return &Handler{Deps: d}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// shell builds the layout for the caller, reading the theme from the
// ?theme= override and the persisted cookie.
func shell(c *gin.Context, s session.Session) layout.Shell {
	persisted, _ := c.Cookie(theme.StorageKey)
	mode := theme.Resolve(c.Query("theme"), persisted)
	var summary *layout.ProfileSummary
	if s.Authenticated() {
		summary = &layout.ProfileSummary{ID: s.UserID}
		if s.Profile != nil {
			summary.Nickname = s.Profile.Nickname
			summary.IsAdmin = s.Profile.IsAdmin()
		}
	}
	return layout.Build(mode, summary)
}
