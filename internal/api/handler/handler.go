package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/ccoveille/go-safecast"
	"github.com/charmbracelet/log"
	"github.com/gigfinder/gigfinder/internal/api/auth"
	"github.com/gigfinder/gigfinder/internal/api/models"
	"github.com/gigfinder/gigfinder/internal/engine"
	"github.com/gigfinder/gigfinder/internal/session"
	"github.com/gigfinder/gigfinder/internal/web/pages"
	"github.com/gin-gonic/gin"
)

// homeGigCount is the number of upcoming gigs shown on the landing page.
const homeGigCount = 5

type Handler struct {
	engine *engine.Engine
}

func New(eng *engine.Engine) *Handler {
	return &Handler{
		engine: eng,
	}
}

// page collects the data every view needs. It consumes the pending flash message.
func page(c *gin.Context) pages.Page {
	sess := session.Default(c)
	flash, _ := sess.TakeFlash()
	return pages.Page{
		User:  sess.User(),
		Flash: flash,
	}
}

func render(c *gin.Context, status int, component templ.Component) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := component.Render(c.Request.Context(), c.Writer); err != nil {
		log.Error("Failed to render page", "path", c.FullPath(), "error", err)
	}
}

// redirectWithFlash stores msg for the next page and redirects to location.
func redirectWithFlash(c *gin.Context, status int, location, msg string) {
	if err := session.Default(c).SetFlash(msg); err != nil {
		log.Error("Failed to save flash message", "error", err)
	}
	c.Redirect(status, location)
}

func parseUintParam(param string) (uint, error) {
	id, err := strconv.ParseUint(param, 10, 64)
	if err != nil {
		return 0, err
	}
	return safecast.ToUint(id)
}

// gigID parses the :id path parameter. Ids that cannot exist are answered with 404.
func gigID(c *gin.Context) (uint, bool) {
	id, err := parseUintParam(c.Param("id"))
	if err != nil || id == 0 {
		c.String(http.StatusNotFound, "Gig not found.")
		return 0, false
	}
	return id, true
}

// handleError answers the request for errors the workflows return.
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, engine.ErrNotFound):
		c.String(http.StatusNotFound, "Gig not found.")
	case errors.Is(err, engine.ErrForbidden):
		c.String(http.StatusForbidden, "Access denied.")
	default:
		log.Error("Request failed", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
		c.String(http.StatusInternalServerError, "Something went wrong.")
	}
}

func (h *Handler) Home(c *gin.Context) {
	p := page(c)

	gigs, err := h.engine.ListUpcomingGigs(c.Request.Context(), homeGigCount)
	if err != nil {
		// the landing page still works without the teaser list
		log.Error("Failed to get upcoming gigs", "error", err)
	}

	render(c, http.StatusOK, pages.Home(p, models.ToGigs(gigs, p.User)))
}

// currentUser returns the user set by the auth middleware.
func currentUser(c *gin.Context) *models.User {
	return c.MustGet(auth.UserKey).(*models.User)
}
