package mock

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/gigfinder/gigfinder/internal/database"
	"gorm.io/gorm"
)

// MockDB is a mock implementation of database.DB for testing.
type MockDB struct {
	mu sync.RWMutex

	// User storage
	users      map[uint]*database.User
	nextUserID uint

	// Gig storage
	gigs      map[uint]*database.Gig
	nextGigID uint

	// RSVP storage, keyed by user then gig
	rsvps map[uint]map[uint]time.Time

	// Error simulation
	CreateUserError        error
	GetUserByIDError       error
	GetUserByUsernameError error
	GetAllUsersError       error
	UpdateUserRoleError    error
	DeleteUserError        error
	CreateGigError         error
	GetGigByIDError        error
	GetGigsError           error
	UpdateGigError         error
	DeleteGigError         error
	CreateRSVPError        error
	GetRSVPGigsError       error
	GetStatsError          error
}

var _ database.DB = (*MockDB)(nil)

// NewMockDB creates a new MockDB instance.
func NewMockDB() *MockDB {
	m := &MockDB{}
	m.Reset()
	return m
}

// Reset clears all data and errors from the mock database.
func (m *MockDB) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.users = make(map[uint]*database.User)
	m.nextUserID = 1
	m.gigs = make(map[uint]*database.Gig)
	m.nextGigID = 1
	m.rsvps = make(map[uint]map[uint]time.Time)

	m.CreateUserError = nil
	m.GetUserByIDError = nil
	m.GetUserByUsernameError = nil
	m.GetAllUsersError = nil
	m.UpdateUserRoleError = nil
	m.DeleteUserError = nil
	m.CreateGigError = nil
	m.GetGigByIDError = nil
	m.GetGigsError = nil
	m.UpdateGigError = nil
	m.DeleteGigError = nil
	m.CreateRSVPError = nil
	m.GetRSVPGigsError = nil
	m.GetStatsError = nil
}

// User operations

func (m *MockDB) CreateUser(ctx context.Context, username, passwordHash string, role database.Role) (*database.User, error) {
	if m.CreateUserError != nil {
		return nil, m.CreateUserError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == username {
			return nil, gorm.ErrDuplicatedKey
		}
	}

	now := time.Now()
	user := &database.User{
		ID:           m.nextUserID,
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.users[user.ID] = user
	m.nextUserID++

	copied := *user
	return &copied, nil
}

func (m *MockDB) GetUserByID(ctx context.Context, id uint) (*database.User, error) {
	if m.GetUserByIDError != nil {
		return nil, m.GetUserByIDError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *MockDB) GetUserByUsername(ctx context.Context, username string) (*database.User, error) {
	if m.GetUserByUsernameError != nil {
		return nil, m.GetUserByUsernameError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, user := range m.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockDB) GetAllUsers(ctx context.Context) ([]database.User, error) {
	if m.GetAllUsersError != nil {
		return nil, m.GetAllUsersError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make([]database.User, 0, len(m.users))
	for _, user := range m.users {
		users = append(users, *user)
	}
	slices.SortFunc(users, func(a, b database.User) int {
		return int(a.ID) - int(b.ID)
	})
	return users, nil
}

func (m *MockDB) UpdateUserRole(ctx context.Context, id uint, role database.Role) error {
	if m.UpdateUserRoleError != nil {
		return m.UpdateUserRoleError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.Role = role
	user.UpdatedAt = time.Now()
	return nil
}

func (m *MockDB) DeleteUser(ctx context.Context, id uint) error {
	if m.DeleteUserError != nil {
		return m.DeleteUserError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for gigID, gig := range m.gigs {
		if gig.OwnerID == id {
			m.deleteGigLocked(gigID)
		}
	}
	delete(m.rsvps, id)
	delete(m.users, id)
	return nil
}

// Gig operations

func (m *MockDB) CreateGig(ctx context.Context, gig *database.Gig) error {
	if m.CreateGigError != nil {
		return m.CreateGigError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	gig.ID = m.nextGigID
	gig.CreatedAt = now
	gig.UpdatedAt = now
	m.nextGigID++

	copied := *gig
	m.gigs[gig.ID] = &copied
	return nil
}

func (m *MockDB) GetGigByID(ctx context.Context, id uint) (*database.Gig, error) {
	if m.GetGigByIDError != nil {
		return nil, m.GetGigByIDError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	gig, ok := m.gigs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *gig
	return &copied, nil
}

func (m *MockDB) GetGigs(ctx context.Context, filter database.GigFilter) ([]database.Gig, error) {
	if m.GetGigsError != nil {
		return nil, m.GetGigsError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	gigs := []database.Gig{}
	for _, gig := range m.gigs {
		if matches(filter, gig) {
			gigs = append(gigs, *gig)
		}
	}
	sortGigs(gigs)
	return gigs, nil
}

func (m *MockDB) UpdateGig(ctx context.Context, gig *database.Gig) error {
	if m.UpdateGigError != nil {
		return m.UpdateGigError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.gigs[gig.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Title = gig.Title
	stored.Description = gig.Description
	stored.Date = gig.Date
	stored.Location = gig.Location
	stored.UpdatedAt = time.Now()
	return nil
}

func (m *MockDB) DeleteGig(ctx context.Context, id uint) error {
	if m.DeleteGigError != nil {
		return m.DeleteGigError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.deleteGigLocked(id)
	return nil
}

func (m *MockDB) deleteGigLocked(id uint) {
	for _, gigs := range m.rsvps {
		delete(gigs, id)
	}
	delete(m.gigs, id)
}

// RSVP operations

func (m *MockDB) CreateRSVP(ctx context.Context, userID, gigID uint) (bool, error) {
	if m.CreateRSVPError != nil {
		return false, m.CreateRSVPError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[userID]; !ok {
		return false, errors.New("FOREIGN KEY constraint failed")
	}
	if _, ok := m.gigs[gigID]; !ok {
		return false, errors.New("FOREIGN KEY constraint failed")
	}

	gigs, ok := m.rsvps[userID]
	if !ok {
		gigs = make(map[uint]time.Time)
		m.rsvps[userID] = gigs
	}
	if _, exists := gigs[gigID]; exists {
		return false, nil
	}
	gigs[gigID] = time.Now()
	return true, nil
}

func (m *MockDB) GetRSVPGigs(ctx context.Context, userID uint) ([]database.Gig, error) {
	if m.GetRSVPGigsError != nil {
		return nil, m.GetRSVPGigsError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	gigs := []database.Gig{}
	for gigID := range m.rsvps[userID] {
		if gig, ok := m.gigs[gigID]; ok {
			gigs = append(gigs, *gig)
		}
	}
	sortGigs(gigs)
	return gigs, nil
}

// Maintenance operations

func (m *MockDB) GetStats(ctx context.Context) (*database.Stats, error) {
	if m.GetStatsError != nil {
		return nil, m.GetStatsError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var stats database.Stats
	stats.Users = int64(len(m.users))
	for _, u := range m.users {
		if u.Role == database.RoleAdmin {
			stats.Admins++
		}
	}
	stats.Gigs = int64(len(m.gigs))
	for _, g := range m.gigs {
		if !g.Date.Before(today) {
			stats.UpcomingGigs++
		}
	}
	for _, gigs := range m.rsvps {
		stats.RSVPs += int64(len(gigs))
	}
	return &stats, nil
}

func (m *MockDB) Close() error {
	return nil
}

func matches(f database.GigFilter, gig *database.Gig) bool {
	if f.SearchText != "" {
		needle := strings.ToLower(f.SearchText)
		if !strings.Contains(strings.ToLower(gig.Title), needle) &&
			!strings.Contains(strings.ToLower(gig.Location), needle) {
			return false
		}
	}
	if f.StartDate != nil && gig.Date.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && gig.Date.After(*f.EndDate) {
		return false
	}
	if f.OwnerID != nil && gig.OwnerID != *f.OwnerID {
		return false
	}
	return true
}

func sortGigs(gigs []database.Gig) {
	slices.SortFunc(gigs, func(a, b database.Gig) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return int(a.ID) - int(b.ID)
	})
}
