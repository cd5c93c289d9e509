package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gigfinder/gigfinder/internal/api/models"
	"github.com/gigfinder/gigfinder/internal/database"
	"github.com/gigfinder/gigfinder/internal/policy"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// FilterFromQuery builds a gig filter from listing query parameters.
// Blank or unparseable dates add no predicate.
func FilterFromQuery(q models.SearchQuery) database.GigFilter {
	return database.GigFilter{
		SearchText: strings.TrimSpace(q.Search),
		StartDate:  parseQueryDate("startDate", q.StartDate),
		EndDate:    parseQueryDate("endDate", q.EndDate),
	}
}

func parseQueryDate(name, value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	d, err := time.Parse(models.DateLayout, value)
	if err != nil {
		log.Debug("ignoring invalid date filter", "param", name, "value", value)
		return nil
	}
	return &d
}

// ListGigs returns the gigs matching filter ordered by date, then id.
func (e *Engine) ListGigs(ctx context.Context, filter database.GigFilter) ([]database.Gig, error) {
	gigs, err := e.db.GetGigs(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list gigs: %w", err)
	}
	return gigs, nil
}

// ListOwnGigs returns the gigs created by userID.
func (e *Engine) ListOwnGigs(ctx context.Context, userID uint) ([]database.Gig, error) {
	return e.ListGigs(ctx, database.GigFilter{OwnerID: &userID})
}

// ListUpcomingGigs returns at most limit gigs dated today or later.
func (e *Engine) ListUpcomingGigs(ctx context.Context, limit int) ([]database.Gig, error) {
	today := e.today()
	gigs, err := e.ListGigs(ctx, database.GigFilter{StartDate: &today})
	if err != nil {
		return nil, err
	}
	return lo.Slice(gigs, 0, limit), nil
}

// GetGig returns a single gig or ErrNotFound.
func (e *Engine) GetGig(ctx context.Context, id uint) (*database.Gig, error) {
	gig, err := e.db.GetGigByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "failed to get gig %d", id)
	}
	return gig, nil
}

// GetOwnedGig returns the gig if it exists and actor, holding a contributor role, owns it.
// Existence is checked before ownership.
func (e *Engine) GetOwnedGig(ctx context.Context, actor *models.User, id uint) (*database.Gig, error) {
	gig, err := e.GetGig(ctx, id)
	if err != nil {
		return nil, err
	}
	decision := policy.All(
		policy.AuthorizeRole(actor, database.RoleUser, database.RoleAdmin),
		policy.AuthorizeOwner(actor, gig.OwnerID),
	)
	if !decision.Allowed() {
		return nil, ErrForbidden
	}
	return gig, nil
}

// CreateGig validates in and stores a new gig owned by ownerID.
func (e *Engine) CreateGig(ctx context.Context, ownerID uint, in GigInput) (uint, error) {
	date, err := e.validateGig(&in)
	if err != nil {
		return 0, err
	}

	gig := &database.Gig{
		Title:       in.Title,
		Description: in.Description,
		Date:        date,
		Location:    in.Location,
		OwnerID:     ownerID,
	}
	if err := e.db.CreateGig(ctx, gig); err != nil {
		return 0, fmt.Errorf("failed to create gig: %w", err)
	}
	log.Info("gig created", "gig_id", gig.ID, "owner_id", ownerID)
	return gig.ID, nil
}

// UpdateGig overwrites the fields of a gig owned by actor.
func (e *Engine) UpdateGig(ctx context.Context, actor *models.User, id uint, in GigInput) error {
	if _, err := e.GetOwnedGig(ctx, actor, id); err != nil {
		return err
	}

	date, err := e.validateGig(&in)
	if err != nil {
		return err
	}

	err = e.db.UpdateGig(ctx, &database.Gig{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		Date:        date,
		Location:    in.Location,
	})
	if err != nil {
		return notFound(err, "failed to update gig %d", id)
	}
	log.Info("gig updated", "gig_id", id, "user_id", actor.ID)
	return nil
}

// DeleteGig removes a gig owned by actor together with its RSVPs.
func (e *Engine) DeleteGig(ctx context.Context, actor *models.User, id uint) error {
	if _, err := e.GetOwnedGig(ctx, actor, id); err != nil {
		return err
	}
	if err := e.db.DeleteGig(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete gig %d: %w", id, err)
	}
	log.Info("gig deleted", "gig_id", id, "user_id", actor.ID)
	return nil
}
