package database

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

// Role is the authorization tier of a user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// ParseRole converts s into a Role, reporting false for anything but "user" or "admin".
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.Valid()
}

// User represents a registered user.
// Deleting a user removes the gigs they own and all of their RSVPs.
type User struct {
	ID           uint      `gorm:"primaryKey"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         Role      `gorm:"not null;default:'user'"`
	Gigs         []Gig     `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE;"`
	RSVPs        []RSVP    `gorm:"constraint:OnDelete:CASCADE;"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (c *Client) CreateUser(ctx context.Context, username, passwordHash string, role Role) (*User, error) {
	user := User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
	}
	if err := c.db.WithContext(ctx).Create(&user).Error; err != nil {
		log.Error("failed to create user", "error", err)
		return nil, err
	}
	return &user, nil
}

func (c *Client) GetUserByID(ctx context.Context, id uint) (*User, error) {
	var user User
	if err := c.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error("failed to get user by ID", "error", err)
		}
		return nil, err
	}
	return &user, nil
}

func (c *Client) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	if err := c.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error("failed to get user by username", "error", err)
		}
		return nil, err
	}
	return &user, nil
}

func (c *Client) GetAllUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		log.Error("failed to get all users", "error", err)
		return nil, err
	}
	return users, nil
}

// UpdateUserRole sets the role of a user. It returns gorm.ErrRecordNotFound if no such user exists.
func (c *Client) UpdateUserRole(ctx context.Context, id uint, role Role) error {
	result := c.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Update("role", role)
	if result.Error != nil {
		log.Error("failed to update user role", "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteUser removes a user together with their gigs and every RSVP that
// references the user or one of those gigs.
func (c *Client) DeleteUser(ctx context.Context, id uint) error {
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ownedGigs := tx.Model(&Gig{}).Select("id").Where("owner_id = ?", id)
		if err := tx.Where("user_id = ? OR gig_id IN (?)", id, ownedGigs).Delete(&RSVP{}).Error; err != nil {
			return err
		}
		if err := tx.Where("owner_id = ?", id).Delete(&Gig{}).Error; err != nil {
			return err
		}
		return tx.Delete(&User{}, id).Error
	})
	if err != nil {
		log.Error("failed to delete user", "error", err)
		return err
	}
	return nil
}
