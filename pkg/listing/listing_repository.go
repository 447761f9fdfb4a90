package listing

import (
	"FoodShare-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	ListingRepository interface {
		CreateListing(ctx context.Context, listing *entities.Listing) error
		GetListingByID(ctx context.Context, id string) (*entities.Listing, error)
		UpdateListing(ctx context.Context, listing *entities.Listing) error
		DeleteListing(ctx context.Context, id string) error
		GetAvailableListings(ctx context.Context) ([]*entities.Listing, error)
		GetUserListings(ctx context.Context, userID string, page, limit int) ([]*entities.Listing, int64, error)
		SetAvailability(ctx context.Context, id string, available bool) error
		MarkUnavailable(ctx context.Context, id string) error
		ReplacePickupSlots(ctx context.Context, listingID string, slots []*entities.PickupSlot) error
		AddRating(ctx context.Context, rating *entities.Rating) error

		CreateReservation(ctx context.Context, reservation *entities.Reservation) error
		GetActiveReservation(ctx context.Context, listingID string) (*entities.Reservation, error)
		UpdateReservation(ctx context.Context, reservation *entities.Reservation) error
	}

	listingRepository struct {
		db *gorm.DB
	}
)

func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) CreateListing(ctx context.Context, listing *entities.Listing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

func (r *listingRepository) GetListingByID(ctx context.Context, id string) (*entities.Listing, error) {
	var listing entities.Listing
	if err := r.db.WithContext(ctx).
		Preload("PickupSlots").
		Preload("Ratings").
		Where("id = ?", id).
		First(&listing).Error; err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepository) UpdateListing(ctx context.Context, listing *entities.Listing) error {
	return r.db.WithContext(ctx).Omit("PickupSlots", "Ratings").Save(listing).Error
}

func (r *listingRepository) DeleteListing(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("listing_id = ?", id).Delete(&entities.PickupSlot{}).Error; err != nil {
			return err
		}
		if err := tx.Where("listing_id = ?", id).Delete(&entities.Rating{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Listing{}).Error
	})
}

func (r *listingRepository) GetAvailableListings(ctx context.Context) ([]*entities.Listing, error) {
	var listings []*entities.Listing
	if err := r.db.WithContext(ctx).
		Preload("PickupSlots").
		Preload("Ratings").
		Where("is_available = ?", true).
		Order("created_at desc").
		Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *listingRepository) GetUserListings(ctx context.Context, userID string, page, limit int) ([]*entities.Listing, int64, error) {
	var listings []*entities.Listing
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if err := query.Model(&entities.Listing{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("PickupSlots").
		Preload("Ratings").
		Offset(offset).Limit(limit).
		Order("created_at desc").
		Find(&listings).Error; err != nil {
		return nil, 0, err
	}

	return listings, count, nil
}

func (r *listingRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	return r.db.WithContext(ctx).Model(&entities.Listing{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_available": available}).Error
}

// MarkUnavailable flips is_available to false only when it is still true,
// so concurrent reservers cannot both claim the listing. gorm.ErrRecordNotFound
// signals the listing was already taken.
func (r *listingRepository) MarkUnavailable(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Model(&entities.Listing{}).
		Where("id = ? AND is_available = ?", id, true).
		Update("is_available", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *listingRepository) ReplacePickupSlots(ctx context.Context, listingID string, slots []*entities.PickupSlot) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("listing_id = ?", listingID).Delete(&entities.PickupSlot{}).Error; err != nil {
			return err
		}
		if len(slots) == 0 {
			return nil
		}
		return tx.Create(slots).Error
	})
}

func (r *listingRepository) AddRating(ctx context.Context, rating *entities.Rating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

func (r *listingRepository) CreateReservation(ctx context.Context, reservation *entities.Reservation) error {
	return r.db.WithContext(ctx).Create(reservation).Error
}

func (r *listingRepository) GetActiveReservation(ctx context.Context, listingID string) (*entities.Reservation, error) {
	var reservation entities.Reservation
	if err := r.db.WithContext(ctx).
		Where("listing_id = ? AND status = ?", listingID, "Active").
		First(&reservation).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *listingRepository) UpdateReservation(ctx context.Context, reservation *entities.Reservation) error {
	return r.db.WithContext(ctx).Save(reservation).Error
}
