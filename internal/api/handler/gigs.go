package handler

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gigfinder/gigfinder/internal/api/models"
	"github.com/gigfinder/gigfinder/internal/engine"
	"github.com/gigfinder/gigfinder/internal/web/pages"
	"github.com/gin-gonic/gin"
)

// Gigs lists all gigs, narrowed by the search, startDate and endDate query parameters.
func (h *Handler) Gigs(c *gin.Context) {
	var query models.SearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		log.Debug("Failed to bind gig search query", "error", err)
	}

	gigs, err := h.engine.ListGigs(c.Request.Context(), engine.FilterFromQuery(query))
	if err != nil {
		handleError(c, err)
		return
	}

	p := page(c)
	render(c, http.StatusOK, pages.Gigs(p, models.ToGigs(gigs, p.User), query))
}

func (h *Handler) AddGigForm(c *gin.Context) {
	render(c, http.StatusOK, pages.AddGig(page(c), models.GigForm{}, nil))
}

func (h *Handler) AddGig(c *gin.Context) {
	user := currentUser(c)

	var form models.GigForm
	if err := c.ShouldBind(&form); err != nil {
		log.Debug("Failed to bind gig form", "error", err)
	}

	_, err := h.engine.CreateGig(c.Request.Context(), user.ID, engine.GigInputFromForm(form))
	if err != nil {
		var verr *engine.ValidationError
		if errors.As(err, &verr) {
			render(c, http.StatusOK, pages.AddGig(page(c), form, verr.Problems))
			return
		}
		handleError(c, err)
		return
	}

	redirectWithFlash(c, http.StatusFound, "/gigs", "Gig added successfully!")
}

func (h *Handler) EditGigForm(c *gin.Context) {
	user := currentUser(c)
	id, ok := gigID(c)
	if !ok {
		return
	}

	gig, err := h.engine.GetOwnedGig(c.Request.Context(), user, id)
	if err != nil {
		handleError(c, err)
		return
	}

	render(c, http.StatusOK, pages.EditGig(page(c), id, models.ToGigForm(gig), nil))
}

func (h *Handler) EditGig(c *gin.Context) {
	user := currentUser(c)
	id, ok := gigID(c)
	if !ok {
		return
	}

	var form models.GigForm
	if err := c.ShouldBind(&form); err != nil {
		log.Debug("Failed to bind gig form", "error", err)
	}

	err := h.engine.UpdateGig(c.Request.Context(), user, id, engine.GigInputFromForm(form))
	if err != nil {
		var verr *engine.ValidationError
		if errors.As(err, &verr) {
			render(c, http.StatusOK, pages.EditGig(page(c), id, form, verr.Problems))
			return
		}
		handleError(c, err)
		return
	}

	redirectWithFlash(c, http.StatusFound, "/gigs", "Gig updated successfully!")
}

func (h *Handler) DeleteGig(c *gin.Context) {
	user := currentUser(c)
	id, ok := gigID(c)
	if !ok {
		return
	}

	if err := h.engine.DeleteGig(c.Request.Context(), user, id); err != nil {
		handleError(c, err)
		return
	}

	redirectWithFlash(c, http.StatusFound, "/gigs", "Gig deleted successfully!")
}

func (h *Handler) MyGigs(c *gin.Context) {
	user := currentUser(c)

	gigs, err := h.engine.ListOwnGigs(c.Request.Context(), user.ID)
	if err != nil {
		handleError(c, err)
		return
	}

	render(c, http.StatusOK, pages.MyGigs(page(c), models.ToGigs(gigs, user)))
}
