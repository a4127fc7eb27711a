package user

import (
	"context"
	"errors"
	"strings"

	"SmartServe-Backend/domain"
	"SmartServe-Backend/entities"
	"SmartServe-Backend/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterUserRequest) (*domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginUserRequest) (*domain.AuthResponse, error)
		Me(ctx context.Context, userID uint) (*domain.UserResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Role:         user.Role,
		Organization: user.Organization,
		Phone:        user.Phone,
		Location:     user.Location,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterUserRequest) (*domain.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyRegistered
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Password:     string(hashed),
		Role:         req.Role,
		Organization: req.Organization,
		Phone:        req.Phone,
		Location:     req.Location,
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return &domain.AuthResponse{
		Token: s.jwtService.GenerateTokenUser(user.ID, user.Role),
		User:  toUserResponse(user),
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginUserRequest) (*domain.AuthResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return &domain.AuthResponse{
		Token: s.jwtService.GenerateTokenUser(user.ID, user.Role),
		User:  toUserResponse(user),
	}, nil
}

func (s *userService) Me(ctx context.Context, userID uint) (*domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}
