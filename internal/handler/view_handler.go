package handler

import (
	"net/http"

	"trackr/backend/internal/auth"
	"trackr/backend/internal/i18n"
	"trackr/backend/internal/layout"
	"trackr/backend/internal/repository"
	"trackr/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// Views rendered by the page endpoints.
const (
	ViewHome          = "home"
	ViewLogin         = "login"
	ViewRegister      = "register"
	ViewDashboard     = "dashboard"
	ViewSettings      = "settings"
	ViewLoginRequired = "login_required"
	ViewNotFound      = "not_found"
)

// PageResponse is a page with its shell. Data depends on the view.
type PageResponse struct {
	View    string       `json:"view" example:"home"`
	Shell   layout.Shell `json:"shell"`
	Message string       `json:"message,omitempty"`
	Data    any          `json:"data,omitempty"`
}

type RankedGameResponse struct {
	Game      GameResponse `json:"game"`
	Followers int64        `json:"followers"`
}

type HomeResponse struct {
	TopPlayers     []repository.PlayerStats `json:"top_players"`
	PopularGames   []RankedGameResponse     `json:"popular_games"`
	LatestConsoles []ConsoleResponse        `json:"latest_consoles"`
}

func newHomeResponse(v service.HomeView) HomeResponse {
	games := make([]RankedGameResponse, 0, len(v.PopularGames))
	for _, g := range v.PopularGames {
		games = append(games, RankedGameResponse{Game: newGameResponse(g.Game), Followers: g.Followers})
	}
	players := v.TopPlayers
	if players == nil {
		players = []repository.PlayerStats{}
	}
	return HomeResponse{
		TopPlayers:     players,
		PopularGames:   games,
		LatestConsoles: newConsoleResponses(v.LatestConsoles),
	}
}

type GameProgressResponse struct {
	Game         GameResponse          `json:"game"`
	Achievements []AchievementResponse `json:"achievements"`
	Unlocked     int                   `json:"unlocked"`
	Percentage   int                   `json:"percentage" example:"50"`
}

type DashboardResponse struct {
	Games       []GameProgressResponse `json:"games"`
	UnlockedIDs []uint                 `json:"unlocked_ids"`
}

func newDashboardResponse(v service.DashboardView) DashboardResponse {
	games := make([]GameProgressResponse, 0, len(v.Games))
	for _, g := range v.Games {
		games = append(games, GameProgressResponse{
			Game:         newGameResponse(g.Game),
			Achievements: newAchievementResponses(g.Achievements),
			Unlocked:     g.Unlocked,
			Percentage:   g.Percentage,
		})
	}
	ids := v.UnlockedIDs
	if ids == nil {
		ids = []uint{}
	}
	return DashboardResponse{Games: games, UnlockedIDs: ids}
}

// loginRequired answers anonymous callers of a members-only view.
func (h *Handler) loginRequired(c *gin.Context) {
	s := auth.GetSession(c)
	c.JSON(http.StatusOK, PageResponse{
		View:    ViewLoginRequired,
		Shell:   shell(c, s),
		Message: i18n.Text(c.GetHeader("Accept-Language"), i18n.KeyLoginRequired),
	})
}

// HomePage godoc
// @Summary      Landing page
// @Description  Top players, most followed games and latest released consoles. A section that fails to load is empty.
// @Tags         views
// @Produce      json
// @Success      200 {object} PageResponse{data=HomeResponse}
// @Router       /home [get]
func (h *Handler) HomePage(c *gin.Context) {
	view := h.Home.Load(c.Request.Context())
	c.JSON(http.StatusOK, PageResponse{
		View:  ViewHome,
		Shell: shell(c, auth.GetSession(c)),
		Data:  newHomeResponse(view),
	})
}

// DashboardPage godoc
// @Summary      Dashboard
// @Description  Followed games with per-game completion. Anonymous callers get the login_required view.
// @Tags         views
// @Produce      json
// @Success      200 {object} PageResponse{data=DashboardResponse}
// @Router       /dashboard [get]
func (h *Handler) DashboardPage(c *gin.Context) {
	s := auth.GetSession(c)
	if !s.Authenticated() {
		h.loginRequired(c)
		return
	}
	view, err := h.Tracker.Dashboard(c.Request.Context(), s.UserID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, PageResponse{
		View:  ViewDashboard,
		Shell: shell(c, s),
		Data:  newDashboardResponse(view),
	})
}

// SettingsPage godoc
// @Summary      Settings page
// @Description  The caller's profile. Anonymous callers get the login_required view.
// @Tags         views
// @Produce      json
// @Success      200 {object} PageResponse
// @Router       /settings [get]
func (h *Handler) SettingsPage(c *gin.Context) {
	s := auth.GetSession(c)
	if !s.Authenticated() {
		h.loginRequired(c)
		return
	}
	c.JSON(http.StatusOK, PageResponse{View: ViewSettings, Shell: shell(c, s), Data: s.Profile})
}

// AuthPage serves the login and register screens.
func (h *Handler) AuthPage(view string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, PageResponse{View: view, Shell: shell(c, auth.GetSession(c))})
	}
}

// NotFound is the catch-all view.
func (h *Handler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, PageResponse{
		View:    ViewNotFound,
		Shell:   shell(c, auth.GetSession(c)),
		Message: i18n.Text(c.GetHeader("Accept-Language"), i18n.KeyNotFound),
	})
}

// GetLayout godoc
// @Summary      Layout shell
// @Description  Theme tokens, navigation and signed-in profile for the current caller.
// @Tags         views
// @Produce      json
// @Param        theme query string false "Mode override" Enums(dark, light)
// @Success      200 {object} layout.Shell
// @Router       /layout [get]
func (h *Handler) GetLayout(c *gin.Context) {
	c.JSON(http.StatusOK, shell(c, auth.GetSession(c)))
}
