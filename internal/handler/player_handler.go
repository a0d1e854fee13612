package handler

import (
	"net/http"
	"strconv"

	"trackr/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GetPlayers godoc
// @Summary      List players
// @Description  Lists players with their follow counts. A non-empty q filters by nickname. order: 0 none, 1 alphabetical, 2 followed games, 3 unlocked achievements (adds the podium).
// @Tags         players
// @Produce      json
// @Param        q     query string false "Nickname search"
// @Param        order query int    false "Sort order" Enums(0, 1, 2, 3)
// @Success      200 {object} service.PlayersView
// @Failure      400 {object} ErrorResponse
// @Router       /players [get]
func (h *Handler) GetPlayers(c *gin.Context) {
	order, err := strconv.Atoi(c.DefaultQuery("order", "0"))
	if err != nil || order < 0 || order > int(service.SortByAchievements) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sort order"})
		return
	}
	view, err := h.Players.List(c.Request.Context(), c.Query("q"), service.SortOrder(order))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetPlayerByID godoc
// @Summary      Get a player
// @Tags         players
// @Produce      json
// @Param        id path string true "Player ID"
// @Success      200 {object} repository.PlayerStats
// @Failure      404 {object} ErrorResponse "Player not found"
// @Router       /players/{id} [get]
func (h *Handler) GetPlayerByID(c *gin.Context) {
	player, err := h.Players.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if player == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
		return
	}
	c.JSON(http.StatusOK, player)
}
