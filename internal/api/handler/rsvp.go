package handler

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gigfinder/gigfinder/internal/api/models"
	"github.com/gigfinder/gigfinder/internal/web/pages"
	"github.com/gin-gonic/gin"
)

// RSVP records the attendance of the current user. Every failure ends in the same flash message.
func (h *Handler) RSVP(c *gin.Context) {
	user := currentUser(c)

	id, err := parseUintParam(c.Param("id"))
	if err == nil {
		err = h.engine.AddRSVP(c.Request.Context(), user.ID, id)
	}
	if err != nil {
		log.Warn("RSVP failed", "user_id", user.ID, "gig", c.Param("id"), "error", err)
		redirectWithFlash(c, http.StatusFound, "/gigs", "RSVP failed or already exists.")
		return
	}

	redirectWithFlash(c, http.StatusFound, "/gigs", "RSVP confirmed!")
}

func (h *Handler) MyRSVPs(c *gin.Context) {
	user := currentUser(c)

	gigs, err := h.engine.ListRSVPs(c.Request.Context(), user.ID)
	if err != nil {
		handleError(c, err)
		return
	}

	render(c, http.StatusOK, pages.MyRSVPs(page(c), models.ToGigs(gigs, user)))
}
