package store

import (
	"errors"
	"fmt"

	"charm-shop/internal/models"
	"charm-shop/internal/util"

	"gorm.io/gorm"
)

// AccountStore owns the accounts table. Usernames are unique with
// case-sensitive exact matching; accounts are never updated or deleted.
type AccountStore struct {
	db         *gorm.DB
	bcryptCost int
}

func NewAccountStore(db *gorm.DB, bcryptCost int) *AccountStore {
	return &AccountStore{db: db, bcryptCost: bcryptCost}
}

// Register creates an account. The raw password is bcrypt-hashed before
// it touches storage and is never logged.
func (s *AccountStore) Register(username, email, password, confirm string) (*models.User, error) {
	if password != confirm {
		return nil, ErrPasswordMismatch
	}

	var count int64
	if err := s.db.Model(&models.User{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	hash, err := util.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}

// Authenticate checks username/password. Unknown user and wrong password
// are the same ErrInvalidCredentials, so callers cannot probe for
// existing usernames.
func (s *AccountStore) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !util.CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// FindByUsername loads an account for session resolution.
func (s *AccountStore) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
