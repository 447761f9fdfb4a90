package user

import (
	"FoodShare-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		UpdateUser(ctx context.Context, user *entities.User) error

		SaveListing(ctx context.Context, saved *entities.SavedListing) error
		DeleteSavedListing(ctx context.Context, userID, listingID string) error
		GetSavedListing(ctx context.Context, userID, listingID string) (*entities.SavedListing, error)
		GetSavedListings(ctx context.Context, userID string) ([]*entities.SavedListing, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) SaveListing(ctx context.Context, saved *entities.SavedListing) error {
	return r.db.WithContext(ctx).Create(saved).Error
}

func (r *userRepository) DeleteSavedListing(ctx context.Context, userID, listingID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND listing_id = ?", userID, listingID).
		Delete(&entities.SavedListing{}).Error
}

func (r *userRepository) GetSavedListing(ctx context.Context, userID, listingID string) (*entities.SavedListing, error) {
	var saved entities.SavedListing
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND listing_id = ?", userID, listingID).
		First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *userRepository) GetSavedListings(ctx context.Context, userID string) ([]*entities.SavedListing, error) {
	var saved []*entities.SavedListing
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Listing").
		Preload("Listing.PickupSlots").
		Order("created_at desc").
		Find(&saved).Error; err != nil {
		return nil, err
	}
	return saved, nil
}
