package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"trackr/backend/internal/auth"
	"trackr/backend/internal/hub"
	"trackr/backend/internal/session"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// RegisterInput is validated by the session manager, not by binding tags,
// so malformed emails get the translated message.
type RegisterInput struct {
	Nickname string `json:"nickname" example:"testuser"`
	Email    string `json:"email" example:"test@example.com"`
	Password string `json:"password" example:"password123"`
}

type LoginInput struct {
	Email    string `json:"email" example:"test@example.com"`
	Password string `json:"password" example:"password123"`
}

type NicknameInput struct {
	Nickname string `json:"nickname" binding:"required" example:"neo"`
}

type EmailInput struct {
	Email string `json:"email" binding:"required" example:"new@example.com"`
}

type PasswordInput struct {
	Password string `json:"password" binding:"required" example:"password123"`
}

type DeleteAccountInput struct {
	Confirmation string `json:"confirmation" binding:"required" example:"SUPPRIMER MON COMPTE"`
}

// endregion

// region --- Auth Handlers ---

// RegisterUser godoc
// @Summary      Register a new user
// @Description  Creates an account and its member profile. Returns a session, or a pending-confirmation session when email confirmation is required.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body RegisterInput true "Registration Info"
// @Success      201  {object}  session.Session
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/register [post]
func (h *Handler) RegisterUser(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s, err := h.Sessions.SignUp(c.Request.Context(), input.Nickname, input.Email, input.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

// LoginUser godoc
// @Summary      Log in a user
// @Description  Authenticates with email and password and returns a new token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Info"
// @Success      200  {object}  session.Session
// @Failure      400  {object}  ErrorResponse "Invalid input"
// @Failure      401  {object}  ErrorResponse "Invalid credentials"
// @Failure      403  {object}  ErrorResponse "Email not confirmed"
// @Failure      429  {object}  ErrorResponse "Too many attempts"
// @Router       /auth/login [post]
func (h *Handler) LoginUser(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s, err := h.Sessions.SignIn(c.Request.Context(), input.Email, input.Password)
	h.Metrics.SignIn(signInOutcome(err))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func signInOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, session.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, session.ErrEmailNotConfirmed):
		return "unconfirmed"
	case errors.Is(err, session.ErrRateLimited):
		return "rate_limited"
	}
	return "error"
}

// LogoutUser godoc
// @Summary      Log out
// @Description  Revokes the bearer token.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]string "{"message": "Logged out"}"
// @Failure      401 {object} ErrorResponse
// @Router       /auth/logout [post]
func (h *Handler) LogoutUser(c *gin.Context) {
	if err := h.Sessions.SignOut(c.Request.Context(), auth.BearerToken(c)); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// RefreshToken godoc
// @Summary      Refresh the token
// @Description  Issues a new token and revokes the current one.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} session.Session
// @Failure      401 {object} ErrorResponse
// @Router       /auth/refresh [post]
func (h *Handler) RefreshToken(c *gin.Context) {
	s, err := h.Sessions.Refresh(c.Request.Context(), auth.BearerToken(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// GetMe godoc
// @Summary      Get the current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} session.Session
// @Router       /auth/me [get]
func (h *Handler) GetMe(c *gin.Context) {
	c.JSON(http.StatusOK, auth.GetSession(c))
}

// ConfirmEmail godoc
// @Summary      Confirm an email address
// @Description  Consumes the token sent by email and applies the pending address.
// @Tags         auth
// @Produce      json
// @Param        token query string true "Confirmation token"
// @Success      200 {object} map[string]string "{"email": "..."}"
// @Failure      400 {object} ErrorResponse
// @Router       /auth/confirm-email [get]
func (h *Handler) ConfirmEmail(c *gin.Context) {
	account, err := h.Settings.ConfirmEmail(c.Request.Context(), c.Query("token"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"email": account.Email})
}

// SessionEvents godoc
// @Summary      Stream session events
// @Description  Server-sent events for the caller's session: SIGNED_IN, SIGNED_OUT, TOKEN_REFRESHED, USER_UPDATED. The stream ends when the client disconnects.
// @Tags         auth
// @Produce      text/event-stream
// @Security     BearerAuth
// @Param        access_token query string false "Token, for clients that cannot set headers"
// @Success      200 {object} hub.Event
// @Failure      401 {object} ErrorResponse
// @Router       /auth/events [get]
func (h *Handler) SessionEvents(c *gin.Context) {
	sub := h.Sessions.Watch(auth.GetSession(c).UserID)
	defer sub.Cancel()

	heartbeat := time.NewTicker(h.Heartbeat)
	defer heartbeat.Stop()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.SSEvent("ready", gin.H{"type": "READY"})
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case msg, ok := <-sub.Events:
			if !ok {
				return false
			}
			c.SSEvent("session", string(msg))
			return true
		case <-heartbeat.C:
			c.SSEvent("ping", hub.Event{Type: "PING"})
			return true
		}
	})
}

// endregion

// region --- Settings Handlers ---

// UpdateNickname godoc
// @Summary      Change nickname
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body NicknameInput true "New nickname"
// @Success      200 {object} map[string]string "{"nickname": "..."}"
// @Failure      400 {object} ErrorResponse
// @Router       /settings/nickname [put]
func (h *Handler) UpdateNickname(c *gin.Context) {
	var input NicknameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Settings.UpdateNickname(c.Request.Context(), auth.GetSession(c).UserID, input.Nickname); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"nickname": input.Nickname})
}

// RequestEmailChange godoc
// @Summary      Change email
// @Description  Stores the new address as pending and sends a confirmation link to it.
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body EmailInput true "New email"
// @Success      202 {object} map[string]string "{"message": "..."}"
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /settings/email [put]
func (h *Handler) RequestEmailChange(c *gin.Context) {
	var input EmailInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Settings.RequestEmailChange(c.Request.Context(), auth.GetSession(c).UserID, input.Email); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "Confirmation email sent"})
}

// ChangePassword godoc
// @Summary      Change password
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body PasswordInput true "New password (min 8 characters)"
// @Success      200 {object} map[string]string "{"message": "Password updated"}"
// @Failure      400 {object} ErrorResponse
// @Router       /settings/password [put]
func (h *Handler) ChangePassword(c *gin.Context) {
	var input PasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Settings.ChangePassword(c.Request.Context(), auth.GetSession(c).UserID, input.Password); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

// DeleteAccount godoc
// @Summary      Delete the account
// @Description  Deletes the account and everything it owns. The confirmation must be the exact phrase SUPPRIMER MON COMPTE.
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body DeleteAccountInput true "Confirmation phrase"
// @Success      200 {object} map[string]string "{"message": "Account deleted"}"
// @Failure      400 {object} ErrorResponse
// @Router       /settings/account [delete]
func (h *Handler) DeleteAccount(c *gin.Context) {
	var input DeleteAccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s := auth.GetSession(c)
	if err := h.Settings.DeleteAccount(c.Request.Context(), s.UserID, s.Token, input.Confirmation); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}

// endregion
