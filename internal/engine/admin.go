package engine

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gigfinder/gigfinder/internal/database"
	"golang.org/x/sync/errgroup"
)

// Dashboard holds everything the admin page lists.
type Dashboard struct {
	Users []database.User
	Gigs  []database.Gig
}

// ListUsers returns every user ordered by id.
func (e *Engine) ListUsers(ctx context.Context) ([]database.User, error) {
	users, err := e.db.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// ListAllGigs returns every gig regardless of owner.
func (e *Engine) ListAllGigs(ctx context.Context) ([]database.Gig, error) {
	return e.ListGigs(ctx, database.GigFilter{})
}

// LoadDashboard fetches users and gigs concurrently.
func (e *Engine) LoadDashboard(ctx context.Context) (*Dashboard, error) {
	var d Dashboard
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		users, err := e.ListUsers(ctx)
		d.Users = users
		return err
	})
	g.Go(func() error {
		gigs, err := e.ListAllGigs(ctx)
		d.Gigs = gigs
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &d, nil
}

// DeleteUser removes a user, their gigs and every RSVP referencing either.
// Deleting a user that does not exist is not an error.
func (e *Engine) DeleteUser(ctx context.Context, id uint) error {
	if err := e.db.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	log.Info("user deleted by admin", "user_id", id)
	return nil
}

// AdminDeleteGig removes any gig regardless of owner.
func (e *Engine) AdminDeleteGig(ctx context.Context, id uint) error {
	if err := e.db.DeleteGig(ctx, id); err != nil {
		return fmt.Errorf("failed to delete gig %d: %w", id, err)
	}
	log.Info("gig deleted by admin", "gig_id", id)
	return nil
}

// SetUserRole changes the role of user id. If id is the user held by sess,
// the session is updated too so the next guard check sees the new role.
func (e *Engine) SetUserRole(ctx context.Context, sess Session, id uint, role string) error {
	r, ok := database.ParseRole(role)
	if !ok {
		return newValidationError(MsgInvalidRole)
	}

	if err := e.db.UpdateUserRole(ctx, id, r); err != nil {
		return notFound(err, "failed to update role of user %d", id)
	}

	if sess != nil {
		if actor := sess.User(); actor != nil && actor.ID == id {
			if err := sess.SetRole(r); err != nil {
				return fmt.Errorf("failed to save session: %w", err)
			}
		}
	}
	log.Info("user role updated", "user_id", id, "role", r)
	return nil
}

// SetUserRoleByName changes the role of the named user. It backs the set-role command.
func (e *Engine) SetUserRoleByName(ctx context.Context, username, role string) (*database.User, error) {
	user, err := e.db.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, notFound(err, "failed to get user %q", username)
	}
	if err := e.SetUserRole(ctx, nil, user.ID, role); err != nil {
		return nil, err
	}
	user.Role = database.Role(role)
	return user, nil
}
