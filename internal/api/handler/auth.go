package handler

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gigfinder/gigfinder/internal/api/models"
	"github.com/gigfinder/gigfinder/internal/engine"
	"github.com/gigfinder/gigfinder/internal/session"
	"github.com/gigfinder/gigfinder/internal/web/pages"
	"github.com/gin-gonic/gin"
)

func (h *Handler) LoginForm(c *gin.Context) {
	render(c, http.StatusOK, pages.Login(page(c), "", ""))
}

func (h *Handler) Login(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBind(&creds); err != nil {
		log.Debug("Failed to bind login form", "error", err)
	}

	_, err := h.engine.Login(c.Request.Context(), session.Default(c), creds.Username, creds.Password)
	if err != nil {
		if errors.Is(err, engine.ErrInvalidCredentials) {
			render(c, http.StatusOK, pages.Login(page(c), creds.Username, engine.MsgInvalidCredentials))
			return
		}
		log.Error("Login failed", "error", err)
		render(c, http.StatusInternalServerError, pages.Login(page(c), creds.Username, "Something went wrong."))
		return
	}

	c.Redirect(http.StatusFound, "/gigs")
}

func (h *Handler) SignupForm(c *gin.Context) {
	render(c, http.StatusOK, pages.Signup(page(c), "", ""))
}

func (h *Handler) Signup(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBind(&creds); err != nil {
		log.Debug("Failed to bind signup form", "error", err)
	}

	_, err := h.engine.Signup(c.Request.Context(), session.Default(c), creds.Username, creds.Password)
	if err != nil {
		var verr *engine.ValidationError
		switch {
		case errors.As(err, &verr):
			render(c, http.StatusOK, pages.Signup(page(c), creds.Username, verr.Error()))
		case errors.Is(err, engine.ErrUsernameTaken):
			render(c, http.StatusOK, pages.Signup(page(c), creds.Username, engine.MsgUsernameTaken))
		case errors.Is(err, engine.ErrSessionNotSaved):
			render(c, http.StatusOK, pages.Login(page(c), creds.Username, engine.MsgAccountCreated))
		default:
			log.Error("Signup failed", "error", err)
			render(c, http.StatusInternalServerError, pages.Signup(page(c), creds.Username, "Something went wrong."))
		}
		return
	}

	c.Redirect(http.StatusFound, "/gigs")
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.engine.Logout(session.Default(c)); err != nil {
		log.Error("Failed to log out", "error", err)
	}
	c.Redirect(http.StatusFound, "/")
}
