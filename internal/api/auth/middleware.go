package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gigfinder/gigfinder/internal/api/models"
	"github.com/gigfinder/gigfinder/internal/database"
	"github.com/gigfinder/gigfinder/internal/engine"
	"github.com/gigfinder/gigfinder/internal/policy"
	"github.com/gigfinder/gigfinder/internal/session"
	"github.com/gin-gonic/gin"
)

// UserKey is the gin context key holding the *models.User set by RequireAuth.
const UserKey = "user"

// UserSource loads the stored state of a user. It returns engine.ErrNotFound for deleted users.
type UserSource interface {
	CurrentUser(ctx context.Context, id uint) (*models.User, error)
}

// RequireAuth redirects to the login page unless the session holds a user.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := session.Default(c).User()
		if user == nil {
			redirectToLogin(c)
			return
		}
		c.Set(UserKey, user)
		c.Next()
	}
}

// RequireAPIAuth is RequireAuth for JSON routes; it answers 401 instead of redirecting.
func RequireAPIAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := session.Default(c).User()
		if user == nil {
			loginRequired(c)
			return
		}
		c.Set(UserKey, user)
		c.Next()
	}
}

// RefreshUser reloads the user set by RequireAuth. A deleted user is logged out and
// redirected to the login page, a changed role is written back to the session.
func RefreshUser(users UserSource) gin.HandlerFunc {
	return refresh(users, redirectToLogin)
}

// RefreshAPIUser is RefreshUser for JSON routes.
func RefreshAPIUser(users UserSource) gin.HandlerFunc {
	return refresh(users, loginRequired)
}

func refresh(users UserSource, deny gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot := CurrentUser(c)
		if snapshot == nil {
			deny(c)
			return
		}

		user, err := users.CurrentUser(c.Request.Context(), snapshot.ID)
		switch {
		case errors.Is(err, engine.ErrNotFound):
			log.Info("Session user no longer exists, logging out", "user_id", snapshot.ID)
			if err := session.Default(c).Destroy(); err != nil {
				log.Error("Failed to destroy session", "error", err)
			}
			deny(c)
			return
		case err != nil:
			log.Error("Failed to refresh session user", "user_id", snapshot.ID, "error", err)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		if user.Role != snapshot.Role {
			log.Debug("Session role is stale", "user_id", user.ID, "session_role", snapshot.Role, "role", user.Role)
			if err := session.Default(c).SetRole(user.Role); err != nil {
				log.Error("Failed to save session", "error", err)
			}
		}
		c.Set(UserKey, user)
		c.Next()
	}
}

// RequireRole answers 403 unless the user set by RequireAuth holds one of roles.
func RequireRole(roles ...database.Role) gin.HandlerFunc {
	msg := "Access denied."
	if len(roles) == 1 && roles[0] == database.RoleAdmin {
		msg = "Access denied. Admins only."
	}
	return func(c *gin.Context) {
		if !policy.AuthorizeRole(CurrentUser(c), roles...).Allowed() {
			c.String(http.StatusForbidden, msg)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin is RequireRole for the admin role.
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(database.RoleAdmin)
}

// RequireAPIAdmin is RequireAdmin for JSON routes.
func RequireAPIAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !policy.AuthorizeRole(CurrentUser(c), database.RoleAdmin).Allowed() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admins only"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user set by RequireAuth, or nil on unguarded routes.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(UserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login")
	c.Abort()
}

func loginRequired(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
}
