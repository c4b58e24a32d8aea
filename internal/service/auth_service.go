package service

import (
	"errors"
	"fmt"

	"github.com/festpix/festpix-backend/internal/models"
	"github.com/festpix/festpix-backend/internal/repository"
	"github.com/festpix/festpix-backend/pkg/bcrypt"
	jwtPkg "github.com/festpix/festpix-backend/pkg/jwt"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EmailSender is what the auth flow needs from the mail stack.
type EmailSender interface {
	SendWelcomeEmail(to, username string) error
}

type AuthService struct {
	userRepo *repository.UserRepository
	email    EmailSender
	logger   *zap.Logger
}

func NewAuthService(userRepo *repository.UserRepository, email EmailSender, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		email:    email,
		logger:   logger,
	}
}

func (s *AuthService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	exists, err := s.userRepo.EmailExists(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	exists, err = s.userRepo.UsernameExists(req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleEventOrganizer
	}
	rateLimit := models.DefaultUploadRateLimit
	if req.UploadRateLimit != nil {
		rateLimit = *req.UploadRateLimit
	}

	user := &models.User{
		Username:           req.Username,
		Email:              req.Email,
		Password:           hashedPassword,
		Role:               role,
		SubscriptionStatus: req.SubscriptionStatus,
		IsActive:           true,
		UploadRateLimit:    rateLimit,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	go func() {
		if err := s.email.SendWelcomeEmail(user.Email, user.Username); err != nil {
			s.logger.Warn("welcome email not sent", zap.String("email", user.Email), zap.Error(err))
		}
	}()

	token, err := jwtPkg.GenerateToken(user.Email, user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("token generation failed: %w", err)
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *AuthService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrAccountInactive
	}

	if err := bcrypt.ComparePassword(user.Password, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := jwtPkg.GenerateToken(user.Email, user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("token generation failed: %w", err)
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}
