package database

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// Stats provides row counts for the db-stats command.
type Stats struct {
	Users        int64
	Admins       int64
	Gigs         int64
	UpcomingGigs int64
	RSVPs        int64
}

// GetStats counts the rows of every table. Gigs dated today or later count as upcoming.
func (c *Client) GetStats(ctx context.Context) (*Stats, error) {
	var stats Stats
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.db.WithContext(ctx).Model(&User{}).Count(&stats.Users).Error
	})
	g.Go(func() error {
		return c.db.WithContext(ctx).Model(&User{}).Where("role = ?", RoleAdmin).Count(&stats.Admins).Error
	})
	g.Go(func() error {
		return c.db.WithContext(ctx).Model(&Gig{}).Count(&stats.Gigs).Error
	})
	g.Go(func() error {
		return c.db.WithContext(ctx).Model(&Gig{}).Where("date >= ?", today).Count(&stats.UpcomingGigs).Error
	})
	g.Go(func() error {
		return c.db.WithContext(ctx).Model(&RSVP{}).Count(&stats.RSVPs).Error
	})

	if err := g.Wait(); err != nil {
		log.Error("failed to get database stats", "error", err)
		return nil, err
	}
	return &stats, nil
}
