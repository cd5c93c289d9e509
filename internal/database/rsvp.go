package database

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"gorm.io/gorm/clause"
)

// RSVP records that a user intends to attend a gig. The (UserID, GigID) pair is unique.
type RSVP struct {
	UserID    uint `gorm:"primaryKey;autoIncrement:false"`
	GigID     uint `gorm:"primaryKey;autoIncrement:false;index"`
	CreatedAt time.Time
}

func (RSVP) TableName() string {
	return "rsvps"
}

// CreateRSVP inserts the pair. An existing pair is left untouched and reported as not created.
func (c *Client) CreateRSVP(ctx context.Context, userID, gigID uint) (bool, error) {
	result := c.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "gig_id"}},
		DoNothing: true,
	}).Create(&RSVP{UserID: userID, GigID: gigID})
	if result.Error != nil {
		log.Error("failed to create rsvp", "error", result.Error)
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// GetRSVPGigs returns the gigs the user has RSVP'd to, ordered by date, then id.
func (c *Client) GetRSVPGigs(ctx context.Context, userID uint) ([]Gig, error) {
	gigs := []Gig{}
	err := GigFilter{}.apply(
		c.db.WithContext(ctx).
			Model(&Gig{}).
			Joins("JOIN rsvps ON rsvps.gig_id = gigs.id").
			Where("rsvps.user_id = ?", userID),
	).Find(&gigs).Error
	if err != nil {
		log.Error("failed to get rsvp gigs", "error", err)
		return nil, err
	}
	return gigs, nil
}
