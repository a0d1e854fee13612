package handler

import (
	"net/http"

	"trackr/backend/internal/auth"
	"trackr/backend/internal/models"
	"trackr/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

type AchievementInput struct {
	Name        string `json:"name" binding:"required" example:"First Steps"`
	Description string `json:"description"`
	GID         uint   `json:"gid" binding:"required" example:"1"`
}

type GameSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type AchievementResponse struct {
	ID          uint         `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	GID         uint         `json:"gid"`
	Game        *GameSummary `json:"game,omitempty"`
}

func newAchievementResponse(a models.Achievement) AchievementResponse {
	resp := AchievementResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		GID:         a.GID,
	}
	if a.Game != nil {
		resp.Game = &GameSummary{ID: a.Game.ID, Name: a.Game.Name}
	}
	return resp
}

func newAchievementResponses(list []models.Achievement) []AchievementResponse {
	out := make([]AchievementResponse, 0, len(list))
	for _, a := range list {
		out = append(out, newAchievementResponse(a))
	}
	return out
}

func (in AchievementInput) toService() service.AchievementInput {
	return service.AchievementInput{Name: in.Name, Description: in.Description, GID: in.GID}
}

// endregion

// CreateAchievement godoc
// @Summary      Create an achievement
// @Description  Creates an achievement for an existing game.
// @Tags         admin-achievements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body AchievementInput true "Achievement Info"
// @Success      201  {object}  AchievementResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Router       /admin/achievements [post]
func (h *Handler) CreateAchievement(c *gin.Context) {
	var input AchievementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a, err := h.Catalog.CreateAchievement(c.Request.Context(), auth.GetSession(c).Profile, input.toService())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newAchievementResponse(*a))
}

// UpdateAchievement godoc
// @Summary      Update an achievement
// @Tags         admin-achievements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int              true  "Achievement ID"
// @Param        input body      AchievementInput true  "New Achievement Info"
// @Success      200   {object}  AchievementResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse "Admin access required"
// @Failure      404   {object}  ErrorResponse "Achievement not found"
// @Router       /admin/achievements/{id} [put]
func (h *Handler) UpdateAchievement(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid achievement ID"})
		return
	}
	var input AchievementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a, err := h.Catalog.UpdateAchievement(c.Request.Context(), auth.GetSession(c).Profile, id, input.toService())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newAchievementResponse(*a))
}

// DeleteAchievement godoc
// @Summary      Delete an achievement
// @Tags         admin-achievements
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Achievement ID"
// @Success      200 {object} map[string]string "{"message": "Achievement deleted"}"
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Failure      404 {object} ErrorResponse "Achievement not found"
// @Router       /admin/achievements/{id} [delete]
func (h *Handler) DeleteAchievement(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid achievement ID"})
		return
	}
	if err := h.Catalog.DeleteAchievement(c.Request.Context(), auth.GetSession(c).Profile, id); err != nil {
		h.respondError(c, err)
		return
	}
	h.forms.drop(formKey("achievement", id))
	c.JSON(http.StatusOK, gin.H{"message": "Achievement deleted"})
}

// GetAchievements godoc
// @Summary      List achievements
// @Tags         achievements
// @Produce      json
// @Success      200 {array} AchievementResponse
// @Router       /achievements [get]
func (h *Handler) GetAchievements(c *gin.Context) {
	list, err := h.Catalog.ListAchievements(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newAchievementResponses(list))
}

// GetAchievementByID godoc
// @Summary      Get an achievement
// @Tags         achievements
// @Produce      json
// @Param        id path int true "Achievement ID"
// @Success      200 {object} AchievementResponse
// @Failure      404 {object} ErrorResponse "Achievement not found"
// @Router       /achievements/{id} [get]
func (h *Handler) GetAchievementByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid achievement ID"})
		return
	}
	a, err := h.Catalog.GetAchievement(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if a == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Achievement not found"})
		return
	}
	c.JSON(http.StatusOK, newAchievementResponse(*a))
}

// ToggleUnlockAchievement godoc
// @Summary      Toggle an unlocked achievement
// @Description  Marks the achievement as unlocked for the caller, or locks it again.
// @Tags         achievements
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Achievement ID"
// @Success      200 {object} map[string]bool "{"unlocked": true}"
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Achievement not found"
// @Router       /achievements/{id}/unlock [post]
func (h *Handler) ToggleUnlockAchievement(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid achievement ID"})
		return
	}
	unlocked, err := h.Tracker.ToggleAchievement(c.Request.Context(), auth.GetSession(c).UserID, id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.Metrics.FollowToggled("achievement", unlocked)
	c.JSON(http.StatusOK, gin.H{"unlocked": unlocked})
}
