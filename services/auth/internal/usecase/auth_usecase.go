package usecase

import (
	"errors"
	"fmt"
	"strings"

	"ynaut/pkg/jwt"
	"ynaut/pkg/logger"
	"ynaut/pkg/models"
	"ynaut/pkg/s3"
	"ynaut/services/auth/internal/entity"
	"ynaut/services/auth/internal/repo/persistent"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserExists         = persistent.ErrUserExists
	ErrUserNotFound       = persistent.ErrUserNotFound
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type AuthUseCase interface {
	Register(username, email, password, displayName string) (*entity.User, string, error)
	Login(username, password string) (*entity.User, string, error)
	GetProfile(userID string) (*entity.User, error)
	UpdateProfile(userID string, displayName, bio *string, avatarData, avatarType string) (*entity.User, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	s3Client   *s3.Client
	logger     *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	s3Client *s3.Client,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		s3Client:   s3Client,
		logger:     logger,
	}
}

func (uc *authUseCase) Register(username, email, password, displayName string) (*entity.User, string, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		displayName = username
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process registration")
	}

	user, err := uc.userRepo.Create(username, email, string(hashedPassword), displayName, models.StartingBalance)
	if err != nil {
		if errors.Is(err, persistent.ErrUserExists) {
			return nil, "", ErrUserExists
		}
		uc.logger.Error("Failed to create user: %v", err)
		return nil, "", fmt.Errorf("failed to create user")
	}

	token, err := uc.jwtService.GenerateToken(user.ID, "user")
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	return user, token, nil
}

func (uc *authUseCase) Login(username, password string) (*entity.User, string, error) {
	user, passwordHash, err := uc.userRepo.GetByUsername(strings.TrimSpace(username))
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateToken(user.ID, "user")
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	return user, token, nil
}

func (uc *authUseCase) GetProfile(userID string) (*entity.User, error) {
	return uc.userRepo.GetByID(userID)
}

// UpdateProfile stores profile fields and, when avatar bytes are supplied,
// uploads them first. A failed avatar upload degrades to keeping the old
// avatar rather than failing the update.
func (uc *authUseCase) UpdateProfile(userID string, displayName, bio *string, avatarData, avatarType string) (*entity.User, error) {
	var avatarURL *string
	if avatarData != "" {
		if avatarType == "" {
			avatarType = "image/jpeg"
		}
		key := s3.MediaKey("avatars", userID, avatarType)
		url, err := uc.s3Client.UploadBase64(key, avatarData, avatarType)
		if err != nil {
			uc.logger.Warn("Avatar upload failed for user %s: %v", userID, err)
		} else {
			avatarURL = &url
		}
	}

	return uc.userRepo.UpdateProfile(userID, displayName, bio, avatarURL)
}
