package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/chronominerals/minerals-insight/models"
)

// GormUserRepository persists accounts in the relational database.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new user repository over a database handle.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// FindByUsername retrieves an account by username, case-insensitively.
func (r *GormUserRepository) FindByUsername(username string) (models.User, error) {
	var user models.User
	result := r.db.Where("LOWER(username) = LOWER(?)", username).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, result.Error
	}
	return user, nil
}

// FindAll retrieves every account.
func (r *GormUserRepository) FindAll() ([]models.User, error) {
	var users []models.User
	result := r.db.Order("created_at ASC").Find(&users)
	return users, result.Error
}

// Create inserts a new account. The duplicate check and insert run in one
// transaction so two simultaneous registrations of the same username
// cannot both succeed.
func (r *GormUserRepository) Create(user models.User) (models.User, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).
			Where("LOWER(username) = LOWER(?)", user.Username).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateUsername
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Count returns the number of stored accounts.
func (r *GormUserRepository) Count() (int64, error) {
	var count int64
	result := r.db.Model(&models.User{}).Count(&count)
	return count, result.Error
}
