package testutil

import (
	"context"
	"sort"
	"time"

	"github.com/dourado/shopdash-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// MockProfileRepository is a mock implementation of domain.ProfileRepository
type MockProfileRepository struct {
	Profiles map[int32]*domain.Profile
	NextID   int32
}

// NewMockProfileRepository creates a new MockProfileRepository
func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{
		Profiles: make(map[int32]*domain.Profile),
		NextID:   1,
	}
}

// Create registers a new profile, enforcing name uniqueness across
// active and inactive profiles like the real table does.
func (m *MockProfileRepository) Create(profile *domain.Profile) (*domain.Profile, error) {
	for _, p := range m.Profiles {
		if p.Name == profile.Name {
			return nil, domain.ErrAlreadyExists
		}
	}
	now := time.Now()
	created := &domain.Profile{
		ID:        m.NextID,
		Name:      profile.Name,
		Color:     profile.Color,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.Profiles[created.ID] = created
	m.NextID++
	return created, nil
}

// GetByID retrieves a profile by ID
func (m *MockProfileRepository) GetByID(id int32) (*domain.Profile, error) {
	if p, ok := m.Profiles[id]; ok {
		return p, nil
	}
	return nil, domain.ErrProfileNotFound
}

// GetAll retrieves profiles ordered by name
func (m *MockProfileRepository) GetAll(activeOnly bool) ([]*domain.Profile, error) {
	var out []*domain.Profile
	for _, p := range m.Profiles {
		if activeOnly && !p.Active {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Update renames a profile and changes its color
func (m *MockProfileRepository) Update(id int32, name, color string) (*domain.Profile, error) {
	p, ok := m.Profiles[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	for otherID, other := range m.Profiles {
		if otherID != id && other.Name == name {
			return nil, domain.ErrAlreadyExists
		}
	}
	p.Name = name
	p.Color = color
	p.UpdatedAt = time.Now()
	return p, nil
}

// Deactivate soft-deletes a profile; a miss is a no-op
func (m *MockProfileRepository) Deactivate(id int32) error {
	if p, ok := m.Profiles[id]; ok {
		p.Active = false
		p.UpdatedAt = time.Now()
	}
	return nil
}

// AddProfile adds a profile to the mock repository (helper for tests)
func (m *MockProfileRepository) AddProfile(p *domain.Profile) {
	m.Profiles[p.ID] = p
	if p.ID >= m.NextID {
		m.NextID = p.ID + 1
	}
}

// MockSaleRepository is a mock implementation of domain.SaleRepository.
// It shares a MockProfileRepository so joined fields and the active-only
// ranking behave like the real queries.
type MockSaleRepository struct {
	Sales    map[int32]*domain.Sale
	Profiles *MockProfileRepository
	NextID   int32
}

// NewMockSaleRepository creates a new MockSaleRepository
func NewMockSaleRepository(profiles *MockProfileRepository) *MockSaleRepository {
	return &MockSaleRepository{
		Sales:    make(map[int32]*domain.Sale),
		Profiles: profiles,
		NextID:   1,
	}
}

// Upsert inserts or overwrites the row for (date, profileID)
func (m *MockSaleRepository) Upsert(date time.Time, profileID int32, amount decimal.Decimal, notes *string) (*domain.Sale, error) {
	profile, ok := m.Profiles.Profiles[profileID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}

	now := time.Now()
	for _, s := range m.Sales {
		if s.ProfileID == profileID && sameDay(s.SaleDate, date) {
			s.Amount = amount
			s.Notes = notes
			s.UpdatedAt = now
			return s, nil
		}
	}

	sale := &domain.Sale{
		ID:           m.NextID,
		SaleDate:     date,
		ProfileID:    profileID,
		ProfileName:  profile.Name,
		ProfileColor: profile.Color,
		Amount:       amount,
		Notes:        notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.Sales[sale.ID] = sale
	m.NextID++
	return sale, nil
}

// Delete removes a sale by ID; a miss is a no-op
func (m *MockSaleRepository) Delete(id int32) error {
	delete(m.Sales, id)
	return nil
}

// GetByDateRange retrieves sales within an inclusive range
func (m *MockSaleRepository) GetByDateRange(start, end time.Time, filters *domain.SaleFilters) ([]*domain.Sale, error) {
	var out []*domain.Sale
	for _, s := range m.Sales {
		if s.SaleDate.Before(start) || s.SaleDate.After(end) {
			continue
		}
		if filters != nil && filters.ProfileID != nil && s.ProfileID != *filters.ProfileID {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].SaleDate.Equal(out[j].SaleDate) {
			return out[i].SaleDate.Before(out[j].SaleDate)
		}
		return out[i].ProfileName < out[j].ProfileName
	})
	return out, nil
}

// GetByDate retrieves all sales on a single date
func (m *MockSaleRepository) GetByDate(date time.Time) ([]*domain.Sale, error) {
	return m.GetByDateRange(date, date, nil)
}

// SumAmount totals sales over an optional inclusive range, including
// rows belonging to inactive profiles
func (m *MockSaleRepository) SumAmount(start, end *time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, s := range m.Sales {
		if !inRange(s.SaleDate, start, end) {
			continue
		}
		total = total.Add(s.Amount)
	}
	return total, nil
}

// SumByProfile totals per active profile, ordered by total descending
// then name ascending; profiles without sales appear with a zero total
func (m *MockSaleRepository) SumByProfile(start, end *time.Time) ([]*domain.ProfileTotal, error) {
	var out []*domain.ProfileTotal
	for _, p := range m.Profiles.Profiles {
		if !p.Active {
			continue
		}
		total := decimal.Zero
		for _, s := range m.Sales {
			if s.ProfileID != p.ID || !inRange(s.SaleDate, start, end) {
				continue
			}
			total = total.Add(s.Amount)
		}
		out = append(out, &domain.ProfileTotal{
			ProfileID: p.ID,
			Name:      p.Name,
			Color:     p.Color,
			Total:     total,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		cmp := out[i].Total.Cmp(out[j].Total)
		if cmp != 0 {
			return cmp > 0
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func inRange(date time.Time, start, end *time.Time) bool {
	if start != nil && date.Before(*start) {
		return false
	}
	if end != nil && date.After(*end) {
		return false
	}
	return true
}

// MockSettingRepository is a mock implementation of domain.SettingRepository
type MockSettingRepository struct {
	Settings map[string]*domain.Setting
	GetErr   error
}

// NewMockSettingRepository creates a new MockSettingRepository
func NewMockSettingRepository() *MockSettingRepository {
	return &MockSettingRepository{Settings: make(map[string]*domain.Setting)}
}

// Get retrieves a setting by key
func (m *MockSettingRepository) Get(key string) (*domain.Setting, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if s, ok := m.Settings[key]; ok {
		return s, nil
	}
	return nil, domain.ErrSettingNotFound
}

// Set stores a setting, last write wins
func (m *MockSettingRepository) Set(key, value string) error {
	m.Settings[key] = &domain.Setting{Key: key, Value: value, UpdatedAt: time.Now()}
	return nil
}

// MockUserRepository is a mock implementation of domain.UserRepository
type MockUserRepository struct {
	Users map[string]*domain.User
}

// NewMockUserRepository creates a new MockUserRepository
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{Users: make(map[string]*domain.User)}
}

// GetByUsername retrieves a user by username
func (m *MockUserRepository) GetByUsername(username string) (*domain.User, error) {
	if u, ok := m.Users[username]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

// UpdatePassword stores a new password hash for the user
func (m *MockUserRepository) UpdatePassword(username, passwordHash string) error {
	u, ok := m.Users[username]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now()
	return nil
}

// AddUser adds a user to the mock repository (helper for tests)
func (m *MockUserRepository) AddUser(u *domain.User) {
	m.Users[u.Username] = u
}

// MockSnapshotRepository is a mock implementation of domain.SnapshotRepository
type MockSnapshotRepository struct {
	SnapshotResult *domain.BackupSnapshot
	SnapshotErr    error
}

// Snapshot returns the configured snapshot
func (m *MockSnapshotRepository) Snapshot() (*domain.BackupSnapshot, error) {
	if m.SnapshotErr != nil {
		return nil, m.SnapshotErr
	}
	if m.SnapshotResult != nil {
		return m.SnapshotResult, nil
	}
	return &domain.BackupSnapshot{CreatedAt: time.Now()}, nil
}

// MockArchiveStore records stored archives in memory
type MockArchiveStore struct {
	Stored   map[string][]byte
	StoreErr error
}

// NewMockArchiveStore creates a new MockArchiveStore
func NewMockArchiveStore() *MockArchiveStore {
	return &MockArchiveStore{Stored: make(map[string][]byte)}
}

// Store records the archive in memory
func (m *MockArchiveStore) Store(_ context.Context, name string, data []byte) error {
	if m.StoreErr != nil {
		return m.StoreErr
	}
	m.Stored[name] = append([]byte(nil), data...)
	return nil
}
