package testutil

import (
	"context"
	"fmt"
	"sort"

	"github.com/vengeful-vineyard/backend/internal/domain"
)

// MockUserRepository is a mock implementation of domain.UserRepository
type MockUserRepository struct {
	Users       map[domain.OWUserID]*domain.User
	ByID        map[domain.UserID]*domain.User
	Punishments map[domain.UserID][]domain.LeaderboardPunishment
	NextID      domain.UserID

	InsertFn         func(user domain.UserCreate) (domain.UserID, error)
	InsertMultipleFn func(users []domain.UserCreate) (map[domain.OWUserID]domain.UserID, error)
}

// NewMockUserRepository creates a new MockUserRepository
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users:       make(map[domain.OWUserID]*domain.User),
		ByID:        make(map[domain.UserID]*domain.User),
		Punishments: make(map[domain.UserID][]domain.LeaderboardPunishment),
		NextID:      1,
	}
}

// Count returns the number of stored users
func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.ByID)), nil
}

// GetByID retrieves a user by internal id
func (m *MockUserRepository) GetByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	if user, ok := m.ByID[id]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// GetByExternalID retrieves a user by external id
func (m *MockUserRepository) GetByExternalID(ctx context.Context, owUserID domain.OWUserID) (*domain.User, error) {
	if user, ok := m.Users[owUserID]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// ListByExternalIDs returns the stored users matching the given external ids
func (m *MockUserRepository) ListByExternalIDs(ctx context.Context, owUserIDs []domain.OWUserID) ([]domain.User, error) {
	var users []domain.User
	for _, id := range owUserIDs {
		if user, ok := m.Users[id]; ok {
			users = append(users, *user)
		}
	}
	return users, nil
}

// Insert creates a new user
func (m *MockUserRepository) Insert(ctx context.Context, user domain.UserCreate) (domain.UserID, error) {
	if m.InsertFn != nil {
		return m.InsertFn(user)
	}
	if _, exists := m.Users[user.OWUserID]; exists {
		return 0, fmt.Errorf("%w: ow_user_id %d", domain.ErrUserExists, user.OWUserID)
	}
	created := &domain.User{
		UserID:    m.NextID,
		OWUserID:  user.OWUserID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
	m.NextID++
	m.Users[created.OWUserID] = created
	m.ByID[created.UserID] = created
	return created.UserID, nil
}

// Update overwrites the user's fields by internal id; absent ids are a no-op
func (m *MockUserRepository) Update(ctx context.Context, user domain.UserUpdate) error {
	existing, ok := m.ByID[user.UserID]
	if !ok {
		return nil
	}
	existing.FirstName = user.FirstName
	existing.LastName = user.LastName
	existing.Email = user.Email
	return nil
}

// UpdateMultiple applies all updates by internal id
func (m *MockUserRepository) UpdateMultiple(ctx context.Context, users []domain.UserUpdate) error {
	for _, u := range users {
		if err := m.Update(ctx, u); err != nil {
			return err
		}
	}
	return nil
}

// UpdateByExternalID overwrites the user's fields by external id
func (m *MockUserRepository) UpdateByExternalID(ctx context.Context, user domain.UserCreate) (domain.UserID, error) {
	existing, ok := m.Users[user.OWUserID]
	if !ok {
		return 0, fmt.Errorf("%w: ow_user_id %d", domain.ErrUserNotFound, user.OWUserID)
	}
	existing.FirstName = user.FirstName
	existing.LastName = user.LastName
	existing.Email = user.Email
	return existing.UserID, nil
}

// InsertMultiple inserts all users, failing the whole batch on a duplicate
func (m *MockUserRepository) InsertMultiple(ctx context.Context, users []domain.UserCreate) (map[domain.OWUserID]domain.UserID, error) {
	if m.InsertMultipleFn != nil {
		return m.InsertMultipleFn(users)
	}
	result := make(map[domain.OWUserID]domain.UserID, len(users))
	for _, u := range users {
		id, err := m.Insert(ctx, u)
		if err != nil {
			return nil, err
		}
		result[u.OWUserID] = id
	}
	return result, nil
}

// UpdateMultipleByExternalID updates all matching users; absent external ids
// are left out of the result
func (m *MockUserRepository) UpdateMultipleByExternalID(ctx context.Context, users []domain.UserCreate) (map[domain.OWUserID]domain.UserID, error) {
	result := make(map[domain.OWUserID]domain.UserID, len(users))
	for _, u := range users {
		id, err := m.UpdateByExternalID(ctx, u)
		if err != nil {
			continue
		}
		result[u.OWUserID] = id
	}
	return result, nil
}

// Leaderboard mirrors the aggregate query: every user scored by the sum of
// amount * value over their punishments, ordered by total descending with
// internal id ascending as the tie-break, then paginated.
func (m *MockUserRepository) Leaderboard(ctx context.Context, offset, limit int) ([]domain.LeaderboardUser, error) {
	entries := make([]domain.LeaderboardUser, 0, len(m.ByID))
	for id, user := range m.ByID {
		punishments := m.Punishments[id]
		if punishments == nil {
			punishments = []domain.LeaderboardPunishment{}
		}
		var total int64
		for _, p := range punishments {
			total += p.Amount * p.PunishmentType.Value
		}
		entries = append(entries, domain.LeaderboardUser{
			User:        *user,
			Punishments: punishments,
			TotalValue:  total,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalValue != entries[j].TotalValue {
			return entries[i].TotalValue > entries[j].TotalValue
		}
		return entries[i].UserID < entries[j].UserID
	})

	if offset >= len(entries) {
		return []domain.LeaderboardUser{}, nil
	}
	end := offset + limit
	if end > len(entries) {
		end = len(entries)
	}
	return entries[offset:end], nil
}

// AddUser adds a user to the mock repository (helper for tests)
func (m *MockUserRepository) AddUser(user *domain.User) {
	m.Users[user.OWUserID] = user
	m.ByID[user.UserID] = user
	if user.UserID >= m.NextID {
		m.NextID = user.UserID + 1
	}
}

// AddPunishment attaches a punishment to a user (helper for tests)
func (m *MockUserRepository) AddPunishment(userID domain.UserID, p domain.LeaderboardPunishment) {
	p.UserID = userID
	m.Punishments[userID] = append(m.Punishments[userID], p)
}

// MockGroupRepository is a mock implementation of domain.GroupRepository
type MockGroupRepository struct {
	Groups    map[domain.GroupID]*domain.Group
	Members   map[domain.UserID][]domain.GroupID
	OWMembers map[domain.OWUserID][]domain.GroupID
}

// NewMockGroupRepository creates a new MockGroupRepository
func NewMockGroupRepository() *MockGroupRepository {
	return &MockGroupRepository{
		Groups:    make(map[domain.GroupID]*domain.Group),
		Members:   make(map[domain.UserID][]domain.GroupID),
		OWMembers: make(map[domain.OWUserID][]domain.GroupID),
	}
}

// GetByID retrieves a group by id
func (m *MockGroupRepository) GetByID(ctx context.Context, id domain.GroupID) (*domain.Group, error) {
	if group, ok := m.Groups[id]; ok {
		return group, nil
	}
	return nil, domain.ErrGroupNotFound
}

// ListForUser returns the user's groups by internal id
func (m *MockGroupRepository) ListForUser(ctx context.Context, userID domain.UserID) ([]domain.Group, error) {
	return m.collect(m.Members[userID]), nil
}

// ListForExternalUser returns the user's groups by external id
func (m *MockGroupRepository) ListForExternalUser(ctx context.Context, owUserID domain.OWUserID) ([]domain.Group, error) {
	return m.collect(m.OWMembers[owUserID]), nil
}

func (m *MockGroupRepository) collect(ids []domain.GroupID) []domain.Group {
	var groups []domain.Group
	for _, id := range ids {
		if g, ok := m.Groups[id]; ok {
			groups = append(groups, *g)
		}
	}
	return groups
}

// AddGroup adds a group to the mock repository (helper for tests)
func (m *MockGroupRepository) AddGroup(group *domain.Group) {
	m.Groups[group.GroupID] = group
}

// AddMember records the user's membership under both id spaces (helper for tests)
func (m *MockGroupRepository) AddMember(userID domain.UserID, owUserID domain.OWUserID, groupID domain.GroupID) {
	m.Members[userID] = append(m.Members[userID], groupID)
	m.OWMembers[owUserID] = append(m.OWMembers[owUserID], groupID)
}
