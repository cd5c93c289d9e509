package engine

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gigfinder/gigfinder/internal/database"
)

// AddRSVP records that userID attends gigID. Repeating it is a no-op.
func (e *Engine) AddRSVP(ctx context.Context, userID, gigID uint) error {
	if _, err := e.GetGig(ctx, gigID); err != nil {
		return err
	}

	created, err := e.db.CreateRSVP(ctx, userID, gigID)
	if err != nil {
		return fmt.Errorf("failed to create rsvp: %w", err)
	}
	if !created {
		log.Debug("rsvp already exists", "user_id", userID, "gig_id", gigID)
	}
	return nil
}

// ListRSVPs returns the gigs userID has RSVP'd to.
func (e *Engine) ListRSVPs(ctx context.Context, userID uint) ([]database.Gig, error) {
	gigs, err := e.db.GetRSVPGigs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rsvps: %w", err)
	}
	return gigs, nil
}
