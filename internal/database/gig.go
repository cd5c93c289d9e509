package database

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

// Gig represents a concert listing.
type Gig struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"not null"`
	Description string
	// Date is the calendar day of the gig, stored as midnight UTC.
	Date     time.Time `gorm:"not null;index"`
	Location string    `gorm:"not null"`
	OwnerID  uint      `gorm:"not null;index"`
	// MusicianID and VenueID are optional references kept from the first schema.
	MusicianID *uint
	VenueID    *uint
	RSVPs      []RSVP `gorm:"constraint:OnDelete:CASCADE;"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// GigFilter narrows a gig listing. Zero value fields add no predicate.
type GigFilter struct {
	// SearchText matches title or location as a substring.
	SearchText string
	// StartDate and EndDate bound the gig date inclusively.
	StartDate *time.Time
	EndDate   *time.Time
	// OwnerID restricts the listing to gigs created by that user.
	OwnerID *uint
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// apply adds the filter predicates and the listing order to tx.
func (f GigFilter) apply(tx *gorm.DB) *gorm.DB {
	if f.SearchText != "" {
		pattern := "%" + likeEscaper.Replace(f.SearchText) + "%"
		tx = tx.Where(`(gigs.title LIKE ? ESCAPE '\' OR gigs.location LIKE ? ESCAPE '\')`, pattern, pattern)
	}
	if f.StartDate != nil {
		tx = tx.Where("gigs.date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		tx = tx.Where("gigs.date <= ?", *f.EndDate)
	}
	if f.OwnerID != nil {
		tx = tx.Where("gigs.owner_id = ?", *f.OwnerID)
	}
	return tx.Order("gigs.date ASC").Order("gigs.id ASC")
}

func (c *Client) CreateGig(ctx context.Context, gig *Gig) error {
	if err := c.db.WithContext(ctx).Create(gig).Error; err != nil {
		log.Error("failed to create gig", "error", err)
		return err
	}
	return nil
}

func (c *Client) GetGigByID(ctx context.Context, id uint) (*Gig, error) {
	var gig Gig
	if err := c.db.WithContext(ctx).First(&gig, id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error("failed to get gig by ID", "error", err)
		}
		return nil, err
	}
	return &gig, nil
}

// GetGigs returns all gigs matching the filter ordered by date, then id.
func (c *Client) GetGigs(ctx context.Context, filter GigFilter) ([]Gig, error) {
	gigs := []Gig{}
	if err := filter.apply(c.db.WithContext(ctx).Model(&Gig{})).Find(&gigs).Error; err != nil {
		log.Error("failed to get gigs", "error", err)
		return nil, err
	}
	return gigs, nil
}

// UpdateGig overwrites the editable fields of the gig. Owner and id are never changed.
func (c *Client) UpdateGig(ctx context.Context, gig *Gig) error {
	result := c.db.WithContext(ctx).Model(&Gig{}).
		Where("id = ?", gig.ID).
		Select("title", "description", "date", "location").
		Updates(Gig{
			Title:       gig.Title,
			Description: gig.Description,
			Date:        gig.Date,
			Location:    gig.Location,
		})
	if result.Error != nil {
		log.Error("failed to update gig", "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteGig removes a gig and its RSVPs.
func (c *Client) DeleteGig(ctx context.Context, id uint) error {
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("gig_id = ?", id).Delete(&RSVP{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Gig{}, id).Error
	})
	if err != nil {
		log.Error("failed to delete gig", "error", err)
		return err
	}
	return nil
}
