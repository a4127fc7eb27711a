package domain

import (
	"net/http"
)

var (
	MessageUserRegistered = "User registered successfully"

	ErrInvalidUserID          = BadRequest("INVALID_USER_ID", "Valid user ID is required")
	ErrUserNotFound           = NotFound("USER_NOT_FOUND", "User not found")
	ErrEmailAlreadyRegistered = BadRequest("EMAIL_ALREADY_REGISTERED", "Email is already registered")
	ErrInvalidCredentials     = NewRequestError(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
)

type (
	RegisterUserRequest struct {
		Name         string  `json:"name" validate:"required"`
		Email        string  `json:"email" validate:"required,email"`
		Password     string  `json:"password" validate:"required,min=8"`
		Role         string  `json:"role" validate:"required,oneof=donor ngo shelter logistics volunteer admin"`
		Organization *string `json:"organization"`
		Phone        *string `json:"phone"`
		Location     *string `json:"location"`
	}

	LoginUserRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	UserResponse struct {
		ID           uint    `json:"id"`
		Name         string  `json:"name"`
		Email        string  `json:"email"`
		Role         string  `json:"role"`
		Organization *string `json:"organization,omitempty"`
		Phone        *string `json:"phone,omitempty"`
		Location     *string `json:"location,omitempty"`
	}

	AuthResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}
)
