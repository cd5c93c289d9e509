package database

import "context"

// DB is the persistence interface used by the engine.
type DB interface {
	UserDB
	GigDB
	RSVPDB

	GetStats(ctx context.Context) (*Stats, error)
	Close() error
}

// UserDB defines the user related database operations.
type UserDB interface {
	CreateUser(ctx context.Context, username, passwordHash string, role Role) (*User, error)
	GetUserByID(ctx context.Context, id uint) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	GetAllUsers(ctx context.Context) ([]User, error)
	UpdateUserRole(ctx context.Context, id uint, role Role) error
	DeleteUser(ctx context.Context, id uint) error
}

// GigDB defines the gig related database operations.
type GigDB interface {
	CreateGig(ctx context.Context, gig *Gig) error
	GetGigByID(ctx context.Context, id uint) (*Gig, error)
	GetGigs(ctx context.Context, filter GigFilter) ([]Gig, error)
	UpdateGig(ctx context.Context, gig *Gig) error
	DeleteGig(ctx context.Context, id uint) error
}

// RSVPDB defines the rsvp related database operations.
type RSVPDB interface {
	// CreateRSVP stores the pair and reports whether a new row was written.
	CreateRSVP(ctx context.Context, userID, gigID uint) (bool, error)
	GetRSVPGigs(ctx context.Context, userID uint) ([]Gig, error)
}
