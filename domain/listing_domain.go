package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessCreateListing     = "listing created successfully"
	MessageSuccessUpdateListing     = "listing updated successfully"
	MessageSuccessDeleteListing     = "listing deleted successfully"
	MessageSuccessGetListings       = "listings retrieved successfully"
	MessageSuccessUploadImage       = "listing image uploaded successfully"
	MessageSuccessReserveListing    = "listing reserved successfully"
	MessageSuccessCancelReservation = "reservation cancelled successfully"
	MessageSuccessRateListing       = "listing rated successfully"

	MessageFailedCreateListing     = "failed to create listing"
	MessageFailedUpdateListing     = "failed to update listing"
	MessageFailedDeleteListing     = "failed to delete listing"
	MessageFailedGetListings       = "failed to retrieve listings"
	MessageFailedUploadImage       = "failed to upload listing image"
	MessageFailedReserveListing    = "failed to reserve listing"
	MessageFailedCancelReservation = "failed to cancel reservation"
	MessageFailedRateListing       = "failed to rate listing"

	ErrListingNotFound     = errors.New("listing not found")
	ErrListingUnavailable  = errors.New("listing is no longer available")
	ErrReserveOwnListing   = errors.New("cannot reserve your own listing")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidExpiryDate   = errors.New("invalid expiry date")
	ErrInvalidPickupSlot   = errors.New("invalid pickup slot")
	ErrInvalidCoordinates  = errors.New("invalid coordinates")
	ErrInvalidRating       = errors.New("rating must be between 1.0 and 5.0")
)

type (
	PickupSlotRequest struct {
		Weekday     int `json:"weekday" validate:"min=0,max=6"`
		StartMinute int `json:"start_minute" validate:"min=0,max=1439"`
		EndMinute   int `json:"end_minute" validate:"min=1,max=1440"`
	}

	CreateListingRequest struct {
		Title       string              `json:"title" validate:"required"`
		Description string              `json:"description"`
		CategoryID  string              `json:"category_id" validate:"required,uuid"`
		Latitude    *float64            `json:"latitude" validate:"required,latitude"`
		Longitude   *float64            `json:"longitude" validate:"required,longitude"`
		Address     string              `json:"address"`
		ExpiresAt   string              `json:"expires_at" validate:"omitempty"`
		PickupSlots []PickupSlotRequest `json:"pickup_slots" validate:"omitempty,dive"`
	}

	UpdateListingRequest struct {
		Title       string              `json:"title" validate:"omitempty"`
		Description string              `json:"description" validate:"omitempty"`
		Address     string              `json:"address" validate:"omitempty"`
		ExpiresAt   string              `json:"expires_at" validate:"omitempty"`
		PickupSlots []PickupSlotRequest `json:"pickup_slots" validate:"omitempty,dive"`
	}

	UploadListingImageRequest struct {
		ListingID string                `json:"listing_id" form:"listing_id" validate:"required,uuid"`
		Image     *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	RateListingRequest struct {
		Stars   float64 `json:"stars" validate:"required,min=1,max=5"`
		Comment string  `json:"comment" validate:"omitempty"`
	}

	PickupSlotResponse struct {
		Weekday     int `json:"weekday"`
		StartMinute int `json:"start_minute"`
		EndMinute   int `json:"end_minute"`
	}

	ListingResponse struct {
		ID            string               `json:"id"`
		UserID        string               `json:"user_id"`
		Title         string               `json:"title"`
		Description   string               `json:"description,omitempty"`
		CategoryID    string               `json:"category_id"`
		CategoryName  string               `json:"category_name"`
		Latitude      float64              `json:"latitude"`
		Longitude     float64              `json:"longitude"`
		Address       string               `json:"address,omitempty"`
		ExpiresAt     *time.Time           `json:"expires_at,omitempty"`
		IsAvailable   bool                 `json:"is_available"`
		ImageURL      string               `json:"image_url,omitempty"`
		PickupSlots   []PickupSlotResponse `json:"pickup_slots,omitempty"`
		AverageRating *float64             `json:"average_rating,omitempty"`
		PickupStatus  string               `json:"pickup_status"`
		DistanceKm    *float64             `json:"distance_km,omitempty"`
		CreatedAt     time.Time            `json:"created_at"`
	}

	ReservationResponse struct {
		ID        string    `json:"id"`
		ListingID string    `json:"listing_id"`
		Status    string    `json:"status"`
		CreatedAt time.Time `json:"created_at"`
	}
)
