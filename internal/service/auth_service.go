package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/vibrantyoga/api/internal/models"
	"github.com/vibrantyoga/api/internal/repository"
	"github.com/vibrantyoga/api/internal/token"
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidRole        = errors.New("invalid role")
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	SetRole(ctx context.Context, id uuid.UUID, role string) error
}

type authService struct {
	users  repository.UserRepository
	tokens *token.Service
}

func NewAuthService(users repository.UserRepository, tokens *token.Service) AuthService {
	return &authService{users: users, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, "", ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Name:           name,
		Email:          email,
		PasswordHash:   string(hash),
		Role:           models.RoleUser,
		Status:         models.StatusActive,
		Preferences:    datatypes.JSONMap{},
		BookingSummary: datatypes.JSONMap{},
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	signed, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}
	return user, signed, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}
	return user, signed, nil
}

func (s *authService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.FindAll(ctx)
}

func (s *authService) SetRole(ctx context.Context, id uuid.UUID, role string) error {
	if !models.ValidRole(role) {
		return ErrInvalidRole
	}

	affected, err := s.users.UpdateRole(ctx, id, role)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}
