package persistent

import (
	"errors"

	"ynaut/pkg/database"
	"ynaut/pkg/models"
	"ynaut/services/auth/internal/entity"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user with this username or email already exists")
)

type UserRepository interface {
	Create(username, email, passwordHash, displayName string, startingBalance int) (*entity.User, error)
	GetByID(userID string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, string, error)
	UpdateProfile(userID string, displayName, bio, avatarURL *string) (*entity.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(username, email, passwordHash, displayName string, startingBalance int) (*entity.User, error) {
	userModel := &models.User{
		Username:          username,
		Email:             email,
		PasswordHash:      passwordHash,
		DisplayName:       displayName,
		YnBalance:         startingBalance,
		VerificationColor: "none",
	}

	if err := r.db.Create(userModel).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	return ToUserEntity(userModel), nil
}

func (r *userRepository) GetByID(userID string) (*entity.User, error) {
	var userModel models.User
	if err := r.db.Where("id = ?", userID).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

// GetByUsername also returns the stored password hash for credential checks;
// the hash never leaves the usecase.
func (r *userRepository) GetByUsername(username string) (*entity.User, string, error) {
	var userModel models.User
	if err := r.db.Where("username = ?", username).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}
	return ToUserEntity(&userModel), userModel.PasswordHash, nil
}

func (r *userRepository) UpdateProfile(userID string, displayName, bio, avatarURL *string) (*entity.User, error) {
	updates := map[string]interface{}{}
	if displayName != nil {
		updates["display_name"] = *displayName
	}
	if bio != nil {
		updates["bio"] = *bio
	}
	if avatarURL != nil {
		updates["avatar_url"] = *avatarURL
	}

	if len(updates) > 0 {
		res := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, ErrUserNotFound
		}
	}

	return r.GetByID(userID)
}
