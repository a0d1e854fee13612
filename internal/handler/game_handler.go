package handler

import (
	"net/http"

	"trackr/backend/internal/auth"
	"trackr/backend/internal/models"
	"trackr/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

type GameInput struct {
	Name        string `json:"name" binding:"required" example:"Chrono Quest"`
	Description string `json:"description"`
	Pegi        int    `json:"pegi" example:"12"`
	ImageURL    string `json:"image_url"`
	// ConsoleIDs replaces the linked consoles. Omit it to keep them on update.
	ConsoleIDs []uint `json:"console_ids"`
}

type GameResponse struct {
	ID          uint              `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Pegi        int               `json:"pegi"`
	ImageURL    string            `json:"image_url"`
	Consoles    []ConsoleResponse `json:"consoles"`
	Followers   *int64            `json:"followers,omitempty"`
}

func newGameResponse(game models.Game) GameResponse {
	consoles := make([]ConsoleResponse, 0, len(game.Consoles))
	for _, c := range game.Consoles {
		consoles = append(consoles, newConsoleResponse(c))
	}
	return GameResponse{
		ID:          game.ID,
		Name:        game.Name,
		Description: game.Description,
		Pegi:        game.Pegi,
		ImageURL:    game.ImageURL,
		Consoles:    consoles,
	}
}

func newGameResponses(games []models.Game) []GameResponse {
	out := make([]GameResponse, 0, len(games))
	for _, g := range games {
		out = append(out, newGameResponse(g))
	}
	return out
}

// GameDetailResponse is a game page with the caller's progress.
type GameDetailResponse struct {
	Game         GameResponse          `json:"game"`
	Achievements []AchievementResponse `json:"achievements"`
	UnlockedIDs  []uint                `json:"unlocked_ids"`
	Percentage   int                   `json:"percentage" example:"67"`
	Following    bool                  `json:"following"`
}

func (in GameInput) toService() service.GameInput {
	return service.GameInput{
		Name:        in.Name,
		Description: in.Description,
		Pegi:        in.Pegi,
		ImageURL:    in.ImageURL,
		ConsoleIDs:  in.ConsoleIDs,
	}
}

// endregion

// region --- Admin Handlers ---

// CreateGame godoc
// @Summary      Create a new game
// @Description  Creates a game and links it to the given consoles.
// @Tags         admin-games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body GameInput true "Game Info"
// @Success      201  {object}  GameResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Router       /admin/games [post]
func (h *Handler) CreateGame(c *gin.Context) {
	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := h.Catalog.CreateGame(c.Request.Context(), auth.GetSession(c).Profile, input.toService())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newGameResponse(*game))
}

// UpdateGame godoc
// @Summary      Update a game
// @Description  Updates a game's details and, when console_ids is present, replaces its consoles.
// @Tags         admin-games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int       true  "Game ID"
// @Param        input body      GameInput true  "New Game Info"
// @Success      200   {object}  GameResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse "Admin access required"
// @Failure      404   {object}  ErrorResponse "Game not found"
// @Router       /admin/games/{id} [put]
func (h *Handler) UpdateGame(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}
	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := h.Catalog.UpdateGame(c.Request.Context(), auth.GetSession(c).Profile, id, input.toService())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newGameResponse(*game))
}

// DeleteGame godoc
// @Summary      Delete a game
// @Description  Deletes a game with its achievements, console links and follows.
// @Tags         admin-games
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200 {object} map[string]string "{"message": "Game deleted"}"
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /admin/games/{id} [delete]
func (h *Handler) DeleteGame(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}
	if err := h.Catalog.DeleteGame(c.Request.Context(), auth.GetSession(c).Profile, id); err != nil {
		h.respondError(c, err)
		return
	}
	h.forms.drop(formKey("game", id))
	c.JSON(http.StatusOK, gin.H{"message": "Game deleted"})
}

// endregion

// region --- Public Handlers ---

// GetGames godoc
// @Summary      List games
// @Description  Lists every game with its consoles.
// @Tags         games
// @Produce      json
// @Success      200 {array} GameResponse
// @Failure      500 {object} ErrorResponse
// @Router       /games [get]
func (h *Handler) GetGames(c *gin.Context) {
	games, err := h.Catalog.ListGames(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newGameResponses(games))
}

// GetGameByID godoc
// @Summary      Get a single game by ID
// @Tags         games
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200 {object} GameResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [get]
func (h *Handler) GetGameByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}
	game, err := h.Catalog.GetGame(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if game == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}
	c.JSON(http.StatusOK, newGameResponse(*game))
}

// GetGameProgress godoc
// @Summary      Get a game with the caller's progress
// @Description  Returns the game's achievements, the ones the caller unlocked, the completion percentage and the follow state.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200 {object} GameDetailResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id}/progress [get]
func (h *Handler) GetGameProgress(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}
	view, err := h.Tracker.GameDetail(c.Request.Context(), auth.GetSession(c).UserID, id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if view == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}
	c.JSON(http.StatusOK, GameDetailResponse{
		Game:         newGameResponse(view.Game),
		Achievements: newAchievementResponses(view.Achievements),
		UnlockedIDs:  view.UnlockedIDs,
		Percentage:   view.Percentage,
		Following:    view.Following,
	})
}

// ToggleFollowGame godoc
// @Summary      Toggle a followed game
// @Description  Follows the game, or unfollows it when already followed.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200 {object} map[string]bool "{"following": true}"
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Failure      500 {object} ErrorResponse
// @Router       /games/{id}/follow [post]
func (h *Handler) ToggleFollowGame(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}
	following, err := h.Tracker.ToggleGame(c.Request.Context(), auth.GetSession(c).UserID, id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.Metrics.FollowToggled("game", following)
	c.JSON(http.StatusOK, gin.H{"following": following})
}

// endregion
