package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gigfinder/gigfinder/internal/api/auth"
	"github.com/gigfinder/gigfinder/internal/api/handler"
	"github.com/gigfinder/gigfinder/internal/config"
	"github.com/gigfinder/gigfinder/internal/database"
	"github.com/gigfinder/gigfinder/internal/engine"
	"github.com/gigfinder/gigfinder/internal/session"
	"github.com/gigfinder/gigfinder/internal/static"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	cfg       *config.Config
	ginEngine *gin.Engine
	engine    *engine.Engine
}

// New creates the HTTP server and registers all routes.
func New(cfg *config.Config, e *engine.Engine) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if e == nil {
		return nil, fmt.Errorf("engine is required")
	}

	s := &Server{
		cfg:       cfg,
		ginEngine: gin.New(),
		engine:    e,
	}
	// Only listed proxies may set the client IP the rate limiter keys on.
	if err := s.ginEngine.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}
	s.ginEngine.Use(gin.Recovery(), requestLogger(), gzip.Gzip(gzip.DefaultCompression))
	s.setupSession()
	if err := s.setupRoutes(); err != nil {
		return nil, err
	}
	s.setupAdminRoutes()
	return s, nil
}

func (s *Server) setupSession() {
	s.ginEngine.Use(session.Middleware(session.NewStore(s.cfg)))
}

func (s *Server) setupRoutes() error {
	h := handler.New(s.engine)

	credentialLimit, err := newRateLimiter(s.cfg.RateLimit)
	if err != nil {
		return fmt.Errorf("failed to create rate limiter: %w", err)
	}

	s.ginEngine.StaticFS("/static", static.FileSystem())

	s.ginEngine.GET("/", h.Home)
	s.ginEngine.GET("/gigs", h.Gigs)
	s.ginEngine.GET("/login", h.LoginForm)
	s.ginEngine.POST("/login", credentialLimit, h.Login)
	s.ginEngine.GET("/signup", h.SignupForm)
	s.ginEngine.POST("/signup", credentialLimit, h.Signup)
	s.ginEngine.GET("/logout", h.Logout)

	protected := s.ginEngine.Group("/")
	protected.Use(auth.RequireAuth(), auth.RefreshUser(s.engine))

	contributors := protected.Group("/")
	contributors.Use(auth.RequireRole(database.RoleUser, database.RoleAdmin))
	contributors.GET("/add-gig", h.AddGigForm)
	contributors.POST("/add-gig", h.AddGig)

	protected.GET("/edit-gig/:id", h.EditGigForm)
	protected.POST("/edit-gig/:id", h.EditGig)
	protected.POST("/delete-gig/:id", h.DeleteGig)
	protected.POST("/gigs/:id/rsvp", h.RSVP)
	protected.GET("/my-gigs", h.MyGigs)
	protected.GET("/my-rsvps", h.MyRSVPs)

	// JSON routes
	api := s.ginEngine.Group("/api")
	api.GET("/gigs", h.APIListGigs)
	api.GET("/gigs/:id", h.APIGetGig)

	apiProtected := api.Group("/")
	apiProtected.Use(auth.RequireAPIAuth(), auth.RefreshAPIUser(s.engine))
	apiProtected.POST("/gigs", h.APICreateGig)
	apiProtected.DELETE("/gigs/:id", h.APIDeleteGig)
	apiProtected.GET("/me", h.APIMe)

	apiAdmin := apiProtected.Group("/users")
	apiAdmin.Use(auth.RequireAPIAdmin())
	apiAdmin.GET("", h.APIListUsers)
	apiAdmin.POST("", h.APICreateUser)
	apiAdmin.DELETE("/:id", h.APIDeleteUser)

	return nil
}

func (s *Server) setupAdminRoutes() {
	h := handler.New(s.engine)

	adminGroup := s.ginEngine.Group("/admin")
	adminGroup.Use(auth.RequireAuth(), auth.RefreshUser(s.engine), auth.RequireAdmin())

	adminGroup.GET("", h.AdminDashboard)
	adminGroup.DELETE("/users/:id", h.AdminDeleteUser)
	adminGroup.POST("/users/:id/delete", h.AdminDeleteUser)
	adminGroup.POST("/users/:id/role", h.AdminSetRole)
	adminGroup.DELETE("/gigs/:id", h.AdminDeleteGig)
	adminGroup.POST("/gigs/:id/delete", h.AdminDeleteGig)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.ginEngine
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s.ginEngine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting web server", "listen", s.cfg.Listen)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down web server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down web server: %w", err)
	}
	return nil
}
