package repositories

import (
	"errors"

	"github.com/chronominerals/minerals-insight/models"
)

var (
	// ErrUserNotFound is returned when no account matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUsername is returned when a create would collide with
	// an existing username (compared case-insensitively).
	ErrDuplicateUsername = errors.New("username already exists")
)

// UserRepository handles persistence of platform accounts. Username
// lookups are case-insensitive; Create must reject duplicates even under
// concurrent registration.
type UserRepository interface {
	FindByUsername(username string) (models.User, error)
	FindAll() ([]models.User, error)
	Create(user models.User) (models.User, error)
	Count() (int64, error)
}
