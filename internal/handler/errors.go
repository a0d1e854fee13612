package handler

import (
	"context"
	"errors"
	"net/http"

	"trackr/backend/internal/form"
	"trackr/backend/internal/i18n"
	"trackr/backend/internal/repository"
	"trackr/backend/internal/service"
	"trackr/backend/internal/session"
	"trackr/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// statusClientClosed is logged when the caller went away mid-request.
const statusClientClosed = 499

type errorMapping struct {
	err    error
	status int
	key    string
}

// Auth errors carry a translated message; the others echo err.Error().
var errorMappings = []errorMapping{
	{session.ErrMissingFields, http.StatusBadRequest, i18n.KeyMissingFields},
	{session.ErrInvalidEmail, http.StatusBadRequest, i18n.KeyInvalidEmail},
	{session.ErrWeakPassword, http.StatusBadRequest, i18n.KeyWeakPassword},
	{session.ErrInvalidCredentials, http.StatusUnauthorized, i18n.KeyInvalidCredentials},
	{session.ErrNotAuthenticated, http.StatusUnauthorized, i18n.KeyLoginRequired},
	{session.ErrEmailNotConfirmed, http.StatusForbidden, i18n.KeyEmailNotConfirmed},
	{session.ErrRateLimited, http.StatusTooManyRequests, i18n.KeyRateLimited},
	{session.ErrEmailTaken, http.StatusConflict, i18n.KeyEmailTaken},
	{repository.ErrEmailInUse, http.StatusConflict, i18n.KeyEmailTaken},
	{service.ErrDeleteConfirmation, http.StatusBadRequest, i18n.KeyDeleteConfirmation},
	{service.ErrForbidden, http.StatusForbidden, ""},
	{service.ErrNotFound, http.StatusNotFound, ""},
	{service.ErrRequired, http.StatusBadRequest, ""},
	{service.ErrInvalidToken, http.StatusBadRequest, ""},
	{form.ErrRequired, http.StatusBadRequest, ""},
	{form.ErrInvalidValue, http.StatusBadRequest, ""},
	{form.ErrBusy, http.StatusConflict, ""},
	{repository.ErrUnknownConsole, http.StatusBadRequest, ""},
	{repository.ErrUnknownGame, http.StatusBadRequest, ""},
	{storage.ErrUnknownBucket, http.StatusNotFound, ""},
	{form.ErrSubmitFailed, http.StatusInternalServerError, i18n.KeySaveFailed},
}

// respondError maps err to a status and an ErrorResponse body. Unknown
// errors are logged and answered with a generic message.
func (h *Handler) respondError(c *gin.Context, err error) {
	if errors.Is(err, context.Canceled) {
		c.AbortWithStatus(statusClientClosed)
		return
	}
	lang := c.GetHeader("Accept-Language")
	for _, m := range errorMappings {
		if !errors.Is(err, m.err) {
			continue
		}
		msg := err.Error()
		if m.key != "" {
			msg = i18n.Text(lang, m.key)
		}
		if m.status >= http.StatusInternalServerError {
			h.Log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		}
		c.AbortWithStatusJSON(m.status, ErrorResponse{Error: msg})
		return
	}
	h.Log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: i18n.Text(lang, i18n.KeyGenericAuth)})
}
