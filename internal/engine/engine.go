package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/gigfinder/gigfinder/internal/api/models"
	"github.com/gigfinder/gigfinder/internal/config"
	"github.com/gigfinder/gigfinder/internal/database"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Session is the per-request session state the auth and admin workflows update.
type Session interface {
	User() *models.User
	SetUser(*models.User) error
	SetRole(database.Role) error
	Destroy() error
}

// Engine implements the gig, RSVP, auth and admin workflows on top of the database.
type Engine struct {
	cfg      *config.Config
	db       database.DB
	validate *validator.Validate
	hashCost int
	now      func() time.Time
}

// New creates a new Engine instance.
func New(cfg *config.Config, db database.DB) (*Engine, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if db == nil {
		return nil, errors.New("database is required")
	}

	hashCost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost != 0 {
		hashCost = cfg.Auth.BcryptCost
	}

	e := &Engine{
		cfg:      cfg,
		db:       db,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		hashCost: hashCost,
		now:      time.Now,
	}
	if err := e.registerValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}
	return e, nil
}

// today returns the current local calendar day as midnight UTC, the way gig dates are stored.
func (e *Engine) today() time.Time {
	n := e.now()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}

// notFound maps gorm.ErrRecordNotFound to ErrNotFound and wraps every other error.
func notFound(err error, format string, args ...any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
