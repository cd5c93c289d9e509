package models

import (
	"time"

	"github.com/gigfinder/gigfinder/internal/database"
)

// User is the session snapshot of the logged in user.
type User struct {
	ID       uint          `json:"id"`
	Username string        `json:"username"`
	Role     database.Role `json:"role"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == database.RoleAdmin
}

// Gig is a gig as shown in listings and returned by the JSON API.
type Gig struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	OwnerID     uint      `json:"owner_id"`
	MusicianID  *uint     `json:"musician_id,omitempty"`
	VenueID     *uint     `json:"venue_id,omitempty"`
	// CanEdit is set when the viewing user owns the gig.
	CanEdit bool `json:"-"`
}

// UserSummary is a row of the admin user table.
type UserSummary struct {
	ID        uint          `json:"id"`
	Username  string        `json:"username"`
	Role      database.Role `json:"role"`
	CreatedAt time.Time     `json:"created_at"`
}

// GigForm carries the raw form values back into a re-rendered gig form.
type GigForm struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Date        string `form:"date"`
	Location    string `form:"location"`
}

// Credentials are the fields posted by the login and signup forms.
type Credentials struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// SearchQuery holds the optional query parameters of a gig listing.
type SearchQuery struct {
	Search    string `form:"search"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}
