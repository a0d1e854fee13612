package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"trackr/backend/internal/auth"
	"trackr/backend/internal/form"
	"trackr/backend/internal/models"
	"trackr/backend/internal/service"

	"github.com/gin-gonic/gin"
)

const maxFormMemory = 32 << 20

// formRegistry keeps one form per entity and record so that concurrent
// submissions of the same form are rejected.
type formRegistry struct {
	mu    sync.Mutex
	forms map[string]*form.Form
}

func (r *formRegistry) get(key string, build func() *form.Form) *form.Form {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forms == nil {
		r.forms = map[string]*form.Form{}
	}
	f, ok := r.forms[key]
	if !ok {
		f = build()
		r.forms[key] = f
	}
	return f
}

// release forgets f once it is idle. A form picked up again by a newer
// request stays registered.
func (r *formRegistry) release(key string, f *form.Form) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forms[key] == f && !f.Busy() {
		delete(r.forms, key)
	}
}

// drop forgets the form of a deleted record.
func (r *formRegistry) drop(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.forms, key)
}

func (r *formRegistry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.forms)
}

func formKey(entity string, id uint) string {
	return entity + ":" + strconv.FormatUint(uint64(id), 10)
}

// FormView is a rendered admin form.
type FormView struct {
	Entity   string         `json:"entity" example:"game"`
	ID       uint           `json:"id,omitempty"`
	Busy     bool           `json:"busy"`
	Controls []form.Control `json:"controls"`
}

func (h *Handler) form(entity string, id uint) (*form.Form, bool) {
	fields, ok := form.Schema(entity)
	if !ok {
		return nil, false
	}
	f := h.forms.get(formKey(entity, id), func() *form.Form {
		return form.New(fields, h.Store, func(payload form.Record) {
			h.Log.Debug().Str("entity", entity).Uint("id", id).Msg("form saved")
		})
	})
	return f, true
}

// initialRecord loads the record being edited. id 0 means a new record.
func (h *Handler) initialRecord(ctx context.Context, entity string, id uint) (form.Record, error) {
	if id == 0 {
		return nil, nil
	}
	switch entity {
	case "game":
		g, err := h.Catalog.GetGame(ctx, id)
		if err != nil || g == nil {
			return nil, notFoundIfNil(g == nil, err)
		}
		return gameRecord(*g), nil
	case "console":
		c, err := h.Catalog.GetConsole(ctx, id)
		if err != nil || c == nil {
			return nil, notFoundIfNil(c == nil, err)
		}
		return consoleRecord(*c), nil
	case "achievement":
		a, err := h.Catalog.GetAchievement(ctx, id)
		if err != nil || a == nil {
			return nil, notFoundIfNil(a == nil, err)
		}
		return achievementRecord(*a), nil
	}
	return nil, service.ErrNotFound
}

func notFoundIfNil(missing bool, err error) error {
	if err != nil {
		return err
	}
	if missing {
		return service.ErrNotFound
	}
	return nil
}

func gameRecord(g models.Game) form.Record {
	consoles := make([]any, 0, len(g.Consoles))
	for _, c := range g.Consoles {
		consoles = append(consoles, map[string]any{"id": c.ID, "name": c.Name})
	}
	return form.Record{
		"id":          g.ID,
		"name":        g.Name,
		"description": g.Description,
		"pegi":        g.Pegi,
		"image_url":   g.ImageURL,
		"consoles":    consoles,
	}
}

func consoleRecord(c models.Console) form.Record {
	return form.Record{
		"id":           c.ID,
		"name":         c.Name,
		"brand":        c.Brand,
		"description":  c.Description,
		"release_year": c.ReleaseYear,
		"image_url":    c.ImageURL,
	}
}

func achievementRecord(a models.Achievement) form.Record {
	game := map[string]any{"id": a.GID}
	if a.Game != nil {
		game["name"] = a.Game.Name
	}
	return form.Record{
		"id":          a.ID,
		"name":        a.Name,
		"description": a.Description,
		"game":        game,
	}
}

// formID reads the record id from the path, or from ?id= on GET.
func formID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	if raw == "" {
		raw = c.Query("id")
	}
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: id", form.ErrInvalidValue)
	}
	return uint(id), nil
}

// GetForm godoc
// @Summary      Render an admin form
// @Description  Returns the controls of the game, console or achievement form with their starting values and select options. Pass id to edit an existing record.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        entity path string true "game, console or achievement"
// @Param        id query int false "Record ID"
// @Success      200 {object} FormView
// @Failure      404 {object} ErrorResponse
// @Router       /admin/forms/{entity} [get]
func (h *Handler) GetForm(c *gin.Context) {
	entity := c.Param("entity")
	id, err := formID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	f, ok := h.form(entity, id)
	if !ok {
		h.respondError(c, service.ErrNotFound)
		return
	}
	if id != 0 {
		defer h.forms.release(formKey(entity, id), f)
	}
	fields := f.Fields()
	ctx := c.Request.Context()
	initial, err := h.initialRecord(ctx, entity, id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	controls, err := form.Render(ctx, fields, initial, h.Catalog)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, FormView{Entity: entity, ID: id, Busy: f.Busy(), Controls: controls})
}

// SubmitForm godoc
// @Summary      Submit an admin form
// @Description  Creates (no id) or updates a record from form values. Image fields accept a file upload; the stored file's public URL replaces the field value. A second submission of the same form while one is running is rejected.
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        entity path string true "game, console or achievement"
// @Param        id path int false "Record ID"
// @Success      200 {object} map[string]interface{}
// @Success      201 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse "Submission in progress"
// @Failure      500 {object} ErrorResponse
// @Router       /admin/forms/{entity} [post]
// @Router       /admin/forms/{entity}/{id} [post]
func (h *Handler) SubmitForm(c *gin.Context) {
	entity := c.Param("entity")
	id, err := formID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	f, ok := h.form(entity, id)
	if !ok {
		h.respondError(c, service.ErrNotFound)
		return
	}
	fields := f.Fields()
	if err := c.Request.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	values, err := form.Decode(fields, c.Request.PostForm)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if id != 0 {
		initial, err := h.initialRecord(ctx, entity, id)
		if err != nil {
			h.respondError(c, err)
			return
		}
		keepUnsubmitted(fields, initial, values)
	}

	files := map[string]form.File{}
	for _, field := range fields {
		if field.Kind != form.KindImage {
			continue
		}
		header, err := c.FormFile(field.Name)
		if err != nil {
			continue
		}
		file, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		defer file.Close()
		files[field.Name] = form.File{Filename: header.Filename, Content: file}
	}

	actor := auth.GetSession(c).Profile
	var saved any
	if id != 0 {
		defer h.forms.release(formKey(entity, id), f)
	}
	_, err = f.Submit(ctx, values, files, func(ctx context.Context, payload form.Record) error {
		var err error
		saved, err = h.saveRecord(ctx, actor, entity, id, payload)
		return err
	})
	if err != nil {
		h.Metrics.FormSubmitted(entity, formOutcome(err))
		h.respondError(c, err)
		return
	}
	h.Metrics.FormSubmitted(entity, "success")
	for _, field := range fields {
		if _, ok := files[field.Name]; ok {
			h.Metrics.Uploaded(field.Bucket)
		}
	}

	status := http.StatusOK
	if id == 0 {
		status = http.StatusCreated
	}
	c.JSON(status, saved)
}

func formOutcome(err error) string {
	switch {
	case errors.Is(err, form.ErrBusy):
		return "busy"
	case errors.Is(err, form.ErrRequired):
		return "invalid"
	}
	return "error"
}

// keepUnsubmitted fills scalar fields missing from values with the stored
// value. Multiselects stay absent so their links are kept.
func keepUnsubmitted(fields []form.Field, initial, values form.Record) {
	for _, field := range fields {
		if field.Kind == form.KindMultiselect || values.Has(field.Name) {
			continue
		}
		path := field.Name
		if field.ValueFrom != "" {
			path = field.ValueFrom
		}
		if v := form.Lookup(initial, path); v != nil {
			values[field.Name] = v
		}
	}
}

func (h *Handler) saveRecord(ctx context.Context, actor *models.Profile, entity string, id uint, p form.Record) (any, error) {
	switch entity {
	case "game":
		in := service.GameInput{
			Name:        p.String("name"),
			Description: p.String("description"),
			Pegi:        p.Int("pegi"),
			ImageURL:    p.String("image_url"),
			ConsoleIDs:  p.IDs("consoles"),
		}
		var g *models.Game
		var err error
		if id == 0 {
			g, err = h.Catalog.CreateGame(ctx, actor, in)
		} else {
			g, err = h.Catalog.UpdateGame(ctx, actor, id, in)
		}
		if err != nil {
			return nil, err
		}
		return newGameResponse(*g), nil
	case "console":
		in := service.ConsoleInput{
			Name:        p.String("name"),
			Brand:       p.String("brand"),
			Description: p.String("description"),
			ReleaseYear: p.Int("release_year"),
			ImageURL:    p.String("image_url"),
		}
		var cons *models.Console
		var err error
		if id == 0 {
			cons, err = h.Catalog.CreateConsole(ctx, actor, in)
		} else {
			cons, err = h.Catalog.UpdateConsole(ctx, actor, id, in)
		}
		if err != nil {
			return nil, err
		}
		return newConsoleResponse(*cons), nil
	case "achievement":
		in := service.AchievementInput{
			Name:        p.String("name"),
			Description: p.String("description"),
			GID:         p.ID("gid"),
		}
		var a *models.Achievement
		var err error
		if id == 0 {
			a, err = h.Catalog.CreateAchievement(ctx, actor, in)
		} else {
			a, err = h.Catalog.UpdateAchievement(ctx, actor, id, in)
		}
		if err != nil {
			return nil, err
		}
		return newAchievementResponse(*a), nil
	}
	return nil, service.ErrNotFound
}
