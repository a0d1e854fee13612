package handler

import (
	"net/http"

	"trackr/backend/internal/auth"
	"trackr/backend/internal/models"
	"trackr/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

type ConsoleInput struct {
	Name        string `json:"name" binding:"required" example:"Switch"`
	Brand       string `json:"brand" binding:"required" example:"Nintendo"`
	ReleaseYear int    `json:"release_year" example:"2017"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type ConsoleResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Brand       string `json:"brand"`
	ReleaseYear int    `json:"release_year"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

func newConsoleResponse(c models.Console) ConsoleResponse {
	return ConsoleResponse{
		ID:          c.ID,
		Name:        c.Name,
		Brand:       c.Brand,
		ReleaseYear: c.ReleaseYear,
		Description: c.Description,
		ImageURL:    c.ImageURL,
	}
}

func newConsoleResponses(consoles []models.Console) []ConsoleResponse {
	out := make([]ConsoleResponse, 0, len(consoles))
	for _, c := range consoles {
		out = append(out, newConsoleResponse(c))
	}
	return out
}

func (in ConsoleInput) toService() service.ConsoleInput {
	return service.ConsoleInput{
		Name:        in.Name,
		Brand:       in.Brand,
		ReleaseYear: in.ReleaseYear,
		Description: in.Description,
		ImageURL:    in.ImageURL,
	}
}

// endregion

// CreateConsole godoc
// @Summary      Create a console
// @Tags         admin-consoles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body ConsoleInput true "Console Info"
// @Success      201  {object}  ConsoleResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Router       /admin/consoles [post]
func (h *Handler) CreateConsole(c *gin.Context) {
	var input ConsoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	console, err := h.Catalog.CreateConsole(c.Request.Context(), auth.GetSession(c).Profile, input.toService())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newConsoleResponse(*console))
}

// UpdateConsole godoc
// @Summary      Update a console
// @Tags         admin-consoles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int          true  "Console ID"
// @Param        input body      ConsoleInput true  "New Console Info"
// @Success      200   {object}  ConsoleResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse "Admin access required"
// @Failure      404   {object}  ErrorResponse "Console not found"
// @Router       /admin/consoles/{id} [put]
func (h *Handler) UpdateConsole(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid console ID"})
		return
	}
	var input ConsoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	console, err := h.Catalog.UpdateConsole(c.Request.Context(), auth.GetSession(c).Profile, id, input.toService())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newConsoleResponse(*console))
}

// DeleteConsole godoc
// @Summary      Delete a console
// @Description  Deletes a console and unlinks it from every game.
// @Tags         admin-consoles
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Console ID"
// @Success      200 {object} map[string]string "{"message": "Console deleted"}"
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Failure      404 {object} ErrorResponse "Console not found"
// @Router       /admin/consoles/{id} [delete]
func (h *Handler) DeleteConsole(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid console ID"})
		return
	}
	if err := h.Catalog.DeleteConsole(c.Request.Context(), auth.GetSession(c).Profile, id); err != nil {
		h.respondError(c, err)
		return
	}
	h.forms.drop(formKey("console", id))
	c.JSON(http.StatusOK, gin.H{"message": "Console deleted"})
}

// GetConsoles godoc
// @Summary      List consoles
// @Tags         consoles
// @Produce      json
// @Success      200 {array} ConsoleResponse
// @Router       /consoles [get]
func (h *Handler) GetConsoles(c *gin.Context) {
	consoles, err := h.Catalog.ListConsoles(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newConsoleResponses(consoles))
}

// GetConsoleByID godoc
// @Summary      Get a console
// @Tags         consoles
// @Produce      json
// @Param        id path int true "Console ID"
// @Success      200 {object} ConsoleResponse
// @Failure      404 {object} ErrorResponse "Console not found"
// @Router       /consoles/{id} [get]
func (h *Handler) GetConsoleByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid console ID"})
		return
	}
	console, err := h.Catalog.GetConsole(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if console == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Console not found"})
		return
	}
	c.JSON(http.StatusOK, newConsoleResponse(*console))
}
