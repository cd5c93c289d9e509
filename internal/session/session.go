// Package session carries the logged in user and the pending flash message between requests.
package session

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gigfinder/gigfinder/internal/api/models"
	"github.com/gigfinder/gigfinder/internal/config"
	"github.com/gigfinder/gigfinder/internal/database"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-contrib/sessions/memstore"
	"github.com/gin-gonic/gin"
)

// CookieName is the name of the session cookie.
const CookieName = "gigfinder_session"

const (
	keyUserID   = "user_id"
	keyUsername = "user_username"
	keyRole     = "user_role"
)

// NewStore creates the session store selected in the config.
// The memory store keeps all values on the server; the cookie only holds the session id.
func NewStore(cfg *config.Config) sessions.Store {
	var store sessions.Store
	switch cfg.SessionStore {
	case config.SessionStoreCookie:
		store = cookie.NewStore([]byte(cfg.SessionKey))
	default:
		store = memstore.NewStore([]byte(cfg.SessionKey))
	}
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   cfg.SessionMaxAge,
		HttpOnly: true,
		Secure:   cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	return store
}

// Middleware attaches the session store to every request.
func Middleware(store sessions.Store) gin.HandlerFunc {
	return sessions.Sessions(CookieName, store)
}

// Carrier wraps the session of a single request.
type Carrier struct {
	s sessions.Session
}

// Default returns the carrier for the request. The session middleware must run first.
func Default(c *gin.Context) *Carrier {
	return &Carrier{s: sessions.Default(c)}
}

// User returns the user snapshot stored in the session, or nil if nobody is logged in.
func (c *Carrier) User() *models.User {
	id, ok := c.s.Get(keyUserID).(uint)
	if !ok || id == 0 {
		return nil
	}
	username, _ := c.s.Get(keyUsername).(string)
	role, _ := c.s.Get(keyRole).(string)
	return &models.User{
		ID:       id,
		Username: username,
		Role:     database.Role(role),
	}
}

// SetUser stores the user snapshot and saves the session.
func (c *Carrier) SetUser(u *models.User) error {
	c.s.Set(keyUserID, u.ID)
	c.s.Set(keyUsername, u.Username)
	c.s.Set(keyRole, string(u.Role))
	return c.s.Save()
}

// SetRole rewrites the role of the stored user snapshot.
func (c *Carrier) SetRole(role database.Role) error {
	c.s.Set(keyRole, string(role))
	return c.s.Save()
}

// Destroy removes every value from the session and expires the cookie.
func (c *Carrier) Destroy() error {
	c.s.Clear()
	c.s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	return c.s.Save()
}

// SetFlash replaces the pending flash message.
func (c *Carrier) SetFlash(msg string) error {
	_ = c.s.Flashes()
	c.s.AddFlash(msg)
	return c.s.Save()
}

// TakeFlash returns the pending flash message and clears it.
func (c *Carrier) TakeFlash() (string, bool) {
	flashes := c.s.Flashes()
	if len(flashes) == 0 {
		return "", false
	}
	if err := c.s.Save(); err != nil {
		log.Error("failed to save session after reading flash", "error", err)
	}
	msg, ok := flashes[len(flashes)-1].(string)
	return msg, ok
}
