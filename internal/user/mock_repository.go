package user

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sebuszqo/FinanceTracker/internal/models"
)

// MockRepository is an in-memory Repository that enforces email uniqueness
// the way the database index does.
type MockRepository struct {
	mu    sync.Mutex
	Users map[string]*models.User
	Calls int

	// Err, when set, is returned by every call.
	Err error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{Users: make(map[string]*models.User)}
}

func (m *MockRepository) begin() error {
	m.mu.Lock()
	m.Calls++
	return m.Err
}

func (m *MockRepository) emailTaken(email, exceptID string) bool {
	for id, u := range m.Users {
		if u.Email == email && id != exceptID {
			return true
		}
	}
	return false
}

func (m *MockRepository) List(_ context.Context) ([]models.User, error) {
	err := m.begin()
	defer m.mu.Unlock()
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(m.Users))
	for _, u := range m.Users {
		public := *u
		public.Password = ""
		users = append(users, public)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })
	return users, nil
}

func (m *MockRepository) FindByID(_ context.Context, id string) (*models.User, error) {
	err := m.begin()
	defer m.mu.Unlock()
	if err != nil {
		return nil, err
	}

	u, ok := m.Users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	found := *u
	return &found, nil
}

func (m *MockRepository) FindWithRelations(ctx context.Context, id string) (*models.User, error) {
	return m.FindByID(ctx, id)
}

func (m *MockRepository) Create(_ context.Context, user *models.User) error {
	err := m.begin()
	defer m.mu.Unlock()
	if err != nil {
		return err
	}

	if m.emailTaken(user.Email, "") {
		return ErrEmailAlreadyExists
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	// strictly increasing so ordering by creation time is deterministic
	user.CreatedAt = time.Now().Add(time.Duration(len(m.Users)) * time.Millisecond)
	stored := *user
	m.Users[user.ID] = &stored
	return nil
}

func (m *MockRepository) Update(_ context.Context, user *models.User) error {
	err := m.begin()
	defer m.mu.Unlock()
	if err != nil {
		return err
	}

	if _, ok := m.Users[user.ID]; !ok {
		return ErrUserNotFound
	}
	if m.emailTaken(user.Email, user.ID) {
		return ErrEmailInUse
	}
	stored := *user
	m.Users[user.ID] = &stored
	return nil
}

func (m *MockRepository) UpdatePassword(_ context.Context, id, passwordHash string) error {
	err := m.begin()
	defer m.mu.Unlock()
	if err != nil {
		return err
	}

	u, ok := m.Users[id]
	if !ok {
		return ErrUserNotFound
	}
	u.Password = passwordHash
	return nil
}

func (m *MockRepository) Delete(_ context.Context, id string) error {
	err := m.begin()
	defer m.mu.Unlock()
	if err != nil {
		return err
	}

	if _, ok := m.Users[id]; !ok {
		return ErrUserNotFound
	}
	delete(m.Users, id)
	return nil
}
