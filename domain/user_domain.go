package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister        = "user registered successfully"
	MessageSuccessLogin           = "login successful"
	MessageSuccessGetProfile      = "profile retrieved successfully"
	MessageSuccessUpdateUser      = "profile updated successfully"
	MessageSuccessSaveListing     = "listing saved successfully"
	MessageSuccessUnsaveListing   = "listing removed from saved"
	MessageSuccessGetSavedListing = "saved listings retrieved successfully"

	MessageFailedRegister        = "failed to register user"
	MessageFailedLogin           = "failed to login"
	MessageFailedGetProfile      = "failed to retrieve profile"
	MessageFailedUpdateUser      = "failed to update profile"
	MessageFailedSaveListing     = "failed to save listing"
	MessageFailedUnsaveListing   = "failed to remove saved listing"
	MessageFailedGetSavedListing = "failed to retrieve saved listings"

	ErrEmailAlreadyExists  = errors.New("email already registered")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrListingAlreadySaved = errors.New("listing already saved")
	ErrSavedListingMissing = errors.New("listing is not in saved list")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	RegisterResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UpdateUserRequest struct {
		Name string `json:"name" validate:"omitempty"`
	}

	UserResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		PhotoURL  string    `json:"photo_url,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}
)
