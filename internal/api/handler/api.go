package handler

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gigfinder/gigfinder/internal/api/models"
	"github.com/gigfinder/gigfinder/internal/database"
	"github.com/gigfinder/gigfinder/internal/engine"
	"github.com/gin-gonic/gin"
)

// jsonError answers JSON routes for errors the workflows return.
func jsonError(c *gin.Context, err error) {
	var verr *engine.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"errors": verr.Problems})
	case errors.Is(err, engine.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Gig not found"})
	case errors.Is(err, engine.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	case errors.Is(err, engine.ErrUsernameTaken):
		c.JSON(http.StatusConflict, gin.H{"error": engine.MsgUsernameTaken})
	default:
		log.Error("API request failed", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
	}
}

// jsonGigID parses the :id path parameter of JSON routes.
func jsonGigID(c *gin.Context) (uint, bool) {
	id, err := parseUintParam(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Gig not found"})
		return 0, false
	}
	return id, true
}

// APIListGigs returns the gigs matching the listing query parameters.
func (h *Handler) APIListGigs(c *gin.Context) {
	var query models.SearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		log.Debug("Failed to bind gig search query", "error", err)
	}

	gigs, err := h.engine.ListGigs(c.Request.Context(), engine.FilterFromQuery(query))
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ToGigs(gigs, nil))
}

func (h *Handler) APIGetGig(c *gin.Context) {
	id, ok := jsonGigID(c)
	if !ok {
		return
	}

	gig, err := h.engine.GetGig(c.Request.Context(), id)
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ToGig(*gig, nil))
}

// APICreateGig creates a gig owned by the current user from a JSON body.
func (h *Handler) APICreateGig(c *gin.Context) {
	user := currentUser(c)

	var body struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Date        string `json:"date"`
		Location    string `json:"location"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	id, err := h.engine.CreateGig(c.Request.Context(), user.ID, engine.GigInput{
		Title:       body.Title,
		Description: body.Description,
		Date:        body.Date,
		Location:    body.Location,
	})
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":      id,
		"message": "Gig added successfully",
	})
}

func (h *Handler) APIDeleteGig(c *gin.Context) {
	user := currentUser(c)
	id, ok := jsonGigID(c)
	if !ok {
		return
	}

	if err := h.engine.DeleteGig(c.Request.Context(), user, id); err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Gig deleted successfully"})
}

// APIMe returns the logged in user.
func (h *Handler) APIMe(c *gin.Context) {
	c.JSON(http.StatusOK, currentUser(c))
}

// APIListUsers returns every user without credentials.
func (h *Handler) APIListUsers(c *gin.Context) {
	users, err := h.engine.ListUsers(c.Request.Context())
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ToUserSummaries(users))
}

// APICreateUser creates a user from a JSON body. The role defaults to user.
func (h *Handler) APICreateUser(c *gin.Context) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if body.Role == "" {
		body.Role = string(database.RoleUser)
	}

	user, err := h.engine.CreateUser(c.Request.Context(), body.Username, body.Password, body.Role)
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":      user.ID,
		"message": "User created successfully",
	})
}

func (h *Handler) APIDeleteUser(c *gin.Context) {
	id, err := parseUintParam(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := h.engine.DeleteUser(c.Request.Context(), id); err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
