package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "investwelth/internal/errors"
	"investwelth/internal/models"
)

// userService handles user-related business logic.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// CreateUser registers a new user
func (s *userService) CreateUser(ctx context.Context, input RegisterInput) (*models.User, error) {
	email := normalizeEmail(input.Email)
	if strings.TrimSpace(input.Name) == "" || email == "" || input.Password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name, email and password are required")
	}
	db := s.db.WithContext(ctx)

	taken, err := s.emailTaken(db, email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	riskProfile := input.RiskProfile
	if riskProfile == "" {
		riskProfile = models.RiskProfileModerate
	}
	user := &models.User{
		Name:        strings.TrimSpace(input.Name),
		Email:       email,
		Password:    string(hashedPassword),
		Phone:       input.Phone,
		RiskProfile: riskProfile,
	}
	if err := db.Create(user).Error; err != nil {
		return nil, apperrors.Upstream("Failed to create user", err)
	}
	return user, nil
}

// AttemptLogin verifies credentials. Unknown emails and wrong passwords both
// yield ErrInvalidCredentials.
func (s *userService) AttemptLogin(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Upstream("Failed to fetch user", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Upstream("Failed to fetch user profile", err)
	}
	return &user, nil
}

// UpdateProfile changes name, email, and optionally phone and risk profile.
func (s *userService) UpdateProfile(ctx context.Context, id uint, input ProfileInput) (*models.User, error) {
	email := normalizeEmail(input.Email)
	if strings.TrimSpace(input.Name) == "" || email == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name and email are required")
	}

	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	db := s.db.WithContext(ctx)

	if email != user.Email {
		taken, err := s.emailTaken(db, email, user.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.ErrDuplicateEmail
		}
	}

	updates := map[string]interface{}{
		"name":  strings.TrimSpace(input.Name),
		"email": email,
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.RiskProfile != nil {
		updates["risk_profile"] = *input.RiskProfile
	}
	if err := db.Model(user).Updates(updates).Error; err != nil {
		return nil, apperrors.Upstream("Failed to update user profile", err)
	}
	return s.GetUserByID(ctx, id)
}

func (s *userService) emailTaken(db *gorm.DB, email string, exceptID uint) (bool, error) {
	var count int64
	q := db.Model(&models.User{}).Where("email = ?", email)
	if exceptID != 0 {
		q = q.Where("user_id <> ?", exceptID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, apperrors.Upstream("Failed to check email", err)
	}
	return count > 0, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
