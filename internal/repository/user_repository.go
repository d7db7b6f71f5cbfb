package repository

import (
	"errors"
	"fmt"

	"github.com/harukik/secondhand-market-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

var (
	// ErrCreateUser is returned when creating the user row fails inside the signup transaction.
	ErrCreateUser = errors.New("user repository: create user failed")
	// ErrCreatePhone is returned when creating a phone row fails inside the signup transaction.
	ErrCreatePhone = errors.New("user repository: create phone failed")
)

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// CreateWithPhones creates the user and their phone numbers atomically.
func (r *GormUserRepository) CreateWithPhones(user *models.User, phoneNumbers []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			// Keep the driver error in the chain so callers can detect
			// gorm.ErrDuplicatedKey.
			return fmt.Errorf("%w: %w", ErrCreateUser, err)
		}

		for _, number := range phoneNumbers {
			phone := models.Phone{UserID: user.ID, PhoneNumber: number}
			if err := tx.Create(&phone).Error; err != nil {
				return fmt.Errorf("%w: %v", ErrCreatePhone, err)
			}
			user.Phones = append(user.Phones, phone)
		}

		return nil
	})
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.Preload("Phones").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername finds a user by username
func (r *GormUserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Update persists changes to a user
func (r *GormUserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}
