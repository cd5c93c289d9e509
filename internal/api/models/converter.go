package models

import (
	"github.com/gigfinder/gigfinder/internal/database"
	"github.com/samber/lo"
)

// DateLayout is the calendar date format used by forms and query parameters.
const DateLayout = "2006-01-02"

// ToUser builds the session snapshot of a stored user.
func ToUser(u *database.User) *User {
	return &User{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
	}
}

// ToGig converts a database.Gig for display. viewer may be nil.
func ToGig(g database.Gig, viewer *User) Gig {
	return Gig{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		Date:        g.Date,
		Location:    g.Location,
		OwnerID:     g.OwnerID,
		MusicianID:  g.MusicianID,
		VenueID:     g.VenueID,
		CanEdit:     viewer != nil && viewer.ID == g.OwnerID,
	}
}

// ToGigs converts a slice of database.Gig for display.
func ToGigs(gigs []database.Gig, viewer *User) []Gig {
	return lo.Map(gigs, func(g database.Gig, _ int) Gig {
		return ToGig(g, viewer)
	})
}

// ToUserSummaries converts users for the admin dashboard. Password hashes are dropped.
func ToUserSummaries(users []database.User) []UserSummary {
	return lo.Map(users, func(u database.User, _ int) UserSummary {
		return UserSummary{
			ID:        u.ID,
			Username:  u.Username,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		}
	})
}

// ToGigForm fills a form with the stored values of a gig.
func ToGigForm(g *database.Gig) GigForm {
	return GigForm{
		Title:       g.Title,
		Description: g.Description,
		Date:        g.Date.Format(DateLayout),
		Location:    g.Location,
	}
}
