package repositories

import (
	"strings"
	"sync"

	"github.com/chronominerals/minerals-insight/models"
)

// MemoryUserRepository keeps accounts in process memory. It backs tests
// and serves as the fallback store when no database is configured; a
// mutex serializes writers so concurrent registrations of the same
// username cannot both succeed.
type MemoryUserRepository struct {
	mu    sync.Mutex
	users []models.User
}

// NewMemoryUserRepository creates an empty in-memory user repository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{}
}

// FindByUsername retrieves an account by username, case-insensitively.
func (r *MemoryUserRepository) FindByUsername(username string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

// FindAll retrieves every account in insertion order.
func (r *MemoryUserRepository) FindAll() ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

// Create inserts a new account, rejecting case-insensitive duplicates.
func (r *MemoryUserRepository) Create(user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Username, user.Username) {
			return models.User{}, ErrDuplicateUsername
		}
	}
	r.users = append(r.users, user)
	return user, nil
}

// Count returns the number of stored accounts.
func (r *MemoryUserRepository) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}
