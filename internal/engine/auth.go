package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gigfinder/gigfinder/internal/api/models"
	"github.com/gigfinder/gigfinder/internal/database"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// createUser hashes the password and stores a new user with role.
func (e *Engine) createUser(ctx context.Context, username, password string, role database.Role) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, newValidationError(MsgAllFieldsRequired)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), e.hashCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, newValidationError(MsgPasswordTooLong)
		}
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	dbUser, err := e.db.CreateUser(ctx, username, string(hash), role)
	if err != nil {
		log.Warn("failed to create user", "username", username, "error", err)
		return nil, ErrUsernameTaken
	}
	return models.ToUser(dbUser), nil
}

// Signup creates a user with the user role and logs them in.
// If the session cannot be saved the account still exists and ErrSessionNotSaved is returned.
func (e *Engine) Signup(ctx context.Context, sess Session, username, password string) (*models.User, error) {
	user, err := e.createUser(ctx, username, password, database.RoleUser)
	if err != nil {
		return nil, err
	}

	if err := sess.SetUser(user); err != nil {
		log.Error("user signed up but the session could not be saved, they have to log in",
			"user_id", user.ID, "username", user.Username, "error", err)
		return user, fmt.Errorf("%w: %w", ErrSessionNotSaved, err)
	}
	log.Info("user signed up", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// CreateUser stores a user with the given role on behalf of an admin. The session is left alone.
func (e *Engine) CreateUser(ctx context.Context, username, password, role string) (*models.User, error) {
	r, ok := database.ParseRole(role)
	if !ok {
		return nil, newValidationError(MsgInvalidRole)
	}
	user, err := e.createUser(ctx, username, password, r)
	if err != nil {
		return nil, err
	}
	log.Info("user created by admin", "user_id", user.ID, "username", user.Username, "role", user.Role)
	return user, nil
}

// Login checks the credentials and stores the user in the session.
// An unknown username and a wrong password both yield ErrInvalidCredentials.
func (e *Engine) Login(ctx context.Context, sess Session, username, password string) (*models.User, error) {
	dbUser, err := e.db.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(dbUser.PasswordHash), []byte(password)); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			log.Error("failed to compare password hash", "user_id", dbUser.ID, "error", err)
		}
		return nil, ErrInvalidCredentials
	}

	user := models.ToUser(dbUser)
	if err := sess.SetUser(user); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	log.Debug("user logged in", "user_id", user.ID)
	return user, nil
}

// CurrentUser returns the stored state of user id, or ErrNotFound once the user is deleted.
func (e *Engine) CurrentUser(ctx context.Context, id uint) (*models.User, error) {
	dbUser, err := e.db.GetUserByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "failed to get user %d", id)
	}
	return models.ToUser(dbUser), nil
}

// Logout destroys the session.
func (e *Engine) Logout(sess Session) error {
	if err := sess.Destroy(); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}
