package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gigfinder/gigfinder/internal/api/models"
	"github.com/gigfinder/gigfinder/internal/engine"
	"github.com/gigfinder/gigfinder/internal/session"
	"github.com/gigfinder/gigfinder/internal/web/pages"
	"github.com/gin-gonic/gin"
)

func (h *Handler) AdminDashboard(c *gin.Context) {
	user := currentUser(c)

	d, err := h.engine.LoadDashboard(c.Request.Context())
	if err != nil {
		log.Error("Failed to load admin dashboard", "error", err)
		c.String(http.StatusInternalServerError, "Something went wrong.")
		return
	}

	render(c, http.StatusOK, pages.Admin(page(c), models.ToUserSummaries(d.Users), models.ToGigs(d.Gigs, user)))
}

// AdminDeleteUser removes a user with their gigs and RSVPs.
// It answers DELETE requests and their form-friendly POST alias with a 303 to the dashboard.
func (h *Handler) AdminDeleteUser(c *gin.Context) {
	id, err := parseUintParam(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid user ID.")
		return
	}

	if err := h.engine.DeleteUser(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}

	redirectWithFlash(c, http.StatusSeeOther, "/admin", fmt.Sprintf("User %d deleted.", id))
}

// AdminDeleteGig removes any gig regardless of its owner.
func (h *Handler) AdminDeleteGig(c *gin.Context) {
	id, err := parseUintParam(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid gig ID.")
		return
	}

	if err := h.engine.AdminDeleteGig(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}

	redirectWithFlash(c, http.StatusSeeOther, "/admin", fmt.Sprintf("Gig %d deleted.", id))
}

func (h *Handler) AdminSetRole(c *gin.Context) {
	id, err := parseUintParam(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid user ID.")
		return
	}

	err = h.engine.SetUserRole(c.Request.Context(), session.Default(c), id, c.PostForm("role"))
	if err != nil {
		var verr *engine.ValidationError
		switch {
		case errors.As(err, &verr):
			c.String(http.StatusBadRequest, engine.MsgInvalidRole)
		case errors.Is(err, engine.ErrNotFound):
			c.String(http.StatusNotFound, "User not found.")
		default:
			handleError(c, err)
		}
		return
	}

	redirectWithFlash(c, http.StatusFound, "/admin", fmt.Sprintf("Role updated successfully for user ID %d.", id))
}
