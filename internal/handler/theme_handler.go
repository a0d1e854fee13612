package handler

import (
	"net/http"

	"trackr/backend/internal/theme"

	"github.com/gin-gonic/gin"
)

const themeCookieMaxAge = 365 * 24 * 60 * 60

type ThemeInput struct {
	Mode string `json:"mode" binding:"required" example:"light"`
}

type ThemeResponse struct {
	Mode   theme.Mode   `json:"mode" example:"dark"`
	Tokens theme.Tokens `json:"tokens"`
}

// GetTheme godoc
// @Summary      Current theme
// @Description  Resolves the mode from ?theme=, then the trackr-theme cookie, then dark.
// @Tags         theme
// @Produce      json
// @Param        theme query string false "Mode override" Enums(dark, light)
// @Success      200 {object} ThemeResponse
// @Router       /theme [get]
func (h *Handler) GetTheme(c *gin.Context) {
	persisted, _ := c.Cookie(theme.StorageKey)
	mode := theme.Resolve(c.Query("theme"), persisted)
	c.JSON(http.StatusOK, ThemeResponse{Mode: mode, Tokens: theme.For(mode)})
}

// SetTheme godoc
// @Summary      Persist the theme
// @Tags         theme
// @Accept       json
// @Produce      json
// @Param        input body ThemeInput true "dark or light"
// @Success      200 {object} ThemeResponse
// @Failure      400 {object} ErrorResponse
// @Router       /theme [put]
func (h *Handler) SetTheme(c *gin.Context) {
	var input ThemeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	mode, ok := theme.ParseMode(input.Mode)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown theme mode"})
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(theme.StorageKey, string(mode), themeCookieMaxAge, "/", "", false, false)
	c.JSON(http.StatusOK, ThemeResponse{Mode: mode, Tokens: theme.For(mode)})
}
