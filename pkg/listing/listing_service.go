package listing

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"FoodShare-Backend/internal/utils/mailing"
	"FoodShare-Backend/internal/utils/storage"
	"FoodShare-Backend/pkg/category"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	PickupStatusToday    = "Available today"
	PickupStatusThisWeek = "Available this week"
	PickupStatusNoWindow = "No pickup window"
)

type (
	ListingService interface {
		CreateListing(ctx context.Context, req domain.CreateListingRequest, userID string) (domain.ListingResponse, error)
		UpdateListing(ctx context.Context, id string, req domain.UpdateListingRequest, userID string) error
		DeleteListing(ctx context.Context, id string, userID string) error
		GetListingByID(ctx context.Context, id string) (domain.ListingResponse, error)
		GetUserListings(ctx context.Context, userID string, page, limit int) ([]domain.ListingResponse, int64, error)
		UploadListingImage(ctx context.Context, req domain.UploadListingImageRequest, userID string) error
		ReserveListing(ctx context.Context, listingID string, reserverID string) (domain.ReservationResponse, error)
		CancelReservation(ctx context.Context, listingID string, userID string) error
		RateListing(ctx context.Context, listingID string, req domain.RateListingRequest, userID string) error
	}

	listingService struct {
		listingRepository  ListingRepository
		categoryRepository category.CategoryRepository
		userRepository     UserLookup
		s3                 storage.AwsS3
	}

	// UserLookup is the slice of the user repository the listing service
	// needs for reservation notices.
	UserLookup interface {
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
	}
)

func NewListingService(
	listingRepository ListingRepository,
	categoryRepository category.CategoryRepository,
	userRepository UserLookup,
	s3 storage.AwsS3,
) ListingService {
	return &listingService{
		listingRepository:  listingRepository,
		categoryRepository: categoryRepository,
		userRepository:     userRepository,
		s3:                 s3,
	}
}

func (s *listingService) CreateListing(ctx context.Context, req domain.CreateListingRequest, userID string) (domain.ListingResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ListingResponse{}, domain.ErrParseUUID
	}

	cat, err := s.categoryRepository.GetCategoryByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ListingResponse{}, domain.ErrCategoryNotFound
		}
		return domain.ListingResponse{}, err
	}

	var expiresAt *time.Time
	if req.ExpiresAt != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpiresAt)
		if err != nil {
			return domain.ListingResponse{}, domain.ErrInvalidExpiryDate
		}
		expiresAt = &parsed
	}

	listingID := uuid.New()
	slots, err := buildPickupSlots(listingID, req.PickupSlots)
	if err != nil {
		return domain.ListingResponse{}, err
	}

	listing := &entities.Listing{
		ID:           listingID,
		UserID:       userUUID,
		Title:        req.Title,
		Description:  req.Description,
		CategoryID:   cat.ID,
		CategoryName: cat.Name,
		Latitude:     *req.Latitude,
		Longitude:    *req.Longitude,
		Address:      req.Address,
		ExpiresAt:    expiresAt,
		IsAvailable:  true,
		PickupSlots:  slots,
	}

	if err := s.listingRepository.CreateListing(ctx, listing); err != nil {
		return domain.ListingResponse{}, err
	}

	return ToListingResponse(listing), nil
}

func (s *listingService) UpdateListing(ctx context.Context, id string, req domain.UpdateListingRequest, userID string) error {
	listing, err := s.listingRepository.GetListingByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrListingNotFound
		}
		return err
	}

	if listing.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	if req.Title != "" {
		listing.Title = req.Title
	}
	if req.Description != "" {
		listing.Description = req.Description
	}
	if req.Address != "" {
		listing.Address = req.Address
	}
	if req.ExpiresAt != "" {
		expiresAt, err := time.Parse("2006-01-02", req.ExpiresAt)
		if err != nil {
			return domain.ErrInvalidExpiryDate
		}
		listing.ExpiresAt = &expiresAt
	}

	if req.PickupSlots != nil {
		slots, err := buildPickupSlots(listing.ID, req.PickupSlots)
		if err != nil {
			return err
		}
		if err := s.listingRepository.ReplacePickupSlots(ctx, id, slots); err != nil {
			return err
		}
	}

	return s.listingRepository.UpdateListing(ctx, listing)
}

func (s *listingService) DeleteListing(ctx context.Context, id string, userID string) error {
	listing, err := s.listingRepository.GetListingByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrListingNotFound
		}
		return err
	}

	if listing.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	if listing.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(listing.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.listingRepository.DeleteListing(ctx, id)
}

func (s *listingService) GetListingByID(ctx context.Context, id string) (domain.ListingResponse, error) {
	listing, err := s.listingRepository.GetListingByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ListingResponse{}, domain.ErrListingNotFound
		}
		return domain.ListingResponse{}, err
	}

	return ToListingResponse(listing), nil
}

func (s *listingService) GetUserListings(ctx context.Context, userID string, page, limit int) ([]domain.ListingResponse, int64, error) {
	listings, count, err := s.listingRepository.GetUserListings(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.ListingResponse, 0, len(listings))
	for _, l := range listings {
		response = append(response, ToListingResponse(l))
	}

	return response, count, nil
}

func (s *listingService) UploadListingImage(ctx context.Context, req domain.UploadListingImageRequest, userID string) error {
	listing, err := s.listingRepository.GetListingByID(ctx, req.ListingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrListingNotFound
		}
		return err
	}

	if listing.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	fileName := fmt.Sprintf("listing-%s", listing.ID.String())
	var objectKey string
	var uploadErr error

	if listing.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(listing.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "listings", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "listings", storage.AllowImage...)
	}

	if uploadErr != nil {
		return uploadErr
	}

	listing.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	return s.listingRepository.UpdateListing(ctx, listing)
}

func (s *listingService) ReserveListing(ctx context.Context, listingID string, reserverID string) (domain.ReservationResponse, error) {
	listing, err := s.listingRepository.GetListingByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReservationResponse{}, domain.ErrListingNotFound
		}
		return domain.ReservationResponse{}, err
	}

	if listing.UserID.String() == reserverID {
		return domain.ReservationResponse{}, domain.ErrReserveOwnListing
	}

	reserverUUID, err := uuid.Parse(reserverID)
	if err != nil {
		return domain.ReservationResponse{}, domain.ErrParseUUID
	}

	// The availability flip is the claim; whoever flips it gets the
	// reservation, everyone else loses the race.
	if err := s.listingRepository.MarkUnavailable(ctx, listingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReservationResponse{}, domain.ErrListingUnavailable
		}
		return domain.ReservationResponse{}, err
	}

	reservation := &entities.Reservation{
		ID:         uuid.New(),
		ListingID:  listing.ID,
		ReserverID: reserverUUID,
		Status:     "Active",
	}

	if err := s.listingRepository.CreateReservation(ctx, reservation); err != nil {
		return domain.ReservationResponse{}, err
	}

	s.notifyOwner(ctx, listing, reserverID)

	return domain.ReservationResponse{
		ID:        reservation.ID.String(),
		ListingID: listing.ID.String(),
		Status:    reservation.Status,
		CreatedAt: reservation.CreatedAt,
	}, nil
}

func (s *listingService) CancelReservation(ctx context.Context, listingID string, userID string) error {
	listing, err := s.listingRepository.GetListingByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrListingNotFound
		}
		return err
	}

	reservation, err := s.listingRepository.GetActiveReservation(ctx, listingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReservationNotFound
		}
		return err
	}

	if reservation.ReserverID.String() != userID && listing.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	now := time.Now()
	reservation.Status = "Cancelled"
	reservation.CancelledAt = &now

	if err := s.listingRepository.UpdateReservation(ctx, reservation); err != nil {
		return err
	}

	if err := s.listingRepository.SetAvailability(ctx, listingID, true); err != nil {
		return err
	}

	if reservation.ReserverID.String() == userID {
		if owner, err := s.userRepository.GetUserByID(ctx, listing.UserID.String()); err == nil {
			if err := mailing.SendReservationCancelledNotice(owner.Email, owner.Name, listing.Title); err != nil {
				logrus.WithError(err).Warn("failed to send cancellation notice")
			}
		}
	}

	return nil
}

func (s *listingService) RateListing(ctx context.Context, listingID string, req domain.RateListingRequest, userID string) error {
	if req.Stars < 1.0 || req.Stars > 5.0 {
		return domain.ErrInvalidRating
	}

	listing, err := s.listingRepository.GetListingByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrListingNotFound
		}
		return err
	}

	raterUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	rating := &entities.Rating{
		ID:        uuid.New(),
		ListingID: listing.ID,
		RaterID:   raterUUID,
		Stars:     req.Stars,
		Comment:   req.Comment,
	}

	return s.listingRepository.AddRating(ctx, rating)
}

// notifyOwner is best effort; a lost mail never fails a reservation.
func (s *listingService) notifyOwner(ctx context.Context, listing *entities.Listing, reserverID string) {
	owner, err := s.userRepository.GetUserByID(ctx, listing.UserID.String())
	if err != nil {
		logrus.WithError(err).Warn("failed to load listing owner for notice")
		return
	}

	reserverName := "Someone"
	if reserver, err := s.userRepository.GetUserByID(ctx, reserverID); err == nil {
		reserverName = reserver.Name
	}

	if err := mailing.SendReservationNotice(owner.Email, owner.Name, listing.Title, reserverName); err != nil {
		logrus.WithError(err).Warn("failed to send reservation notice")
	}
}

func buildPickupSlots(listingID uuid.UUID, reqs []domain.PickupSlotRequest) ([]*entities.PickupSlot, error) {
	slots := make([]*entities.PickupSlot, 0, len(reqs))
	for _, slot := range reqs {
		if slot.Weekday < 0 || slot.Weekday > 6 {
			return nil, domain.ErrInvalidPickupSlot
		}
		if slot.StartMinute < 0 || slot.EndMinute > 24*60 || slot.StartMinute >= slot.EndMinute {
			return nil, domain.ErrInvalidPickupSlot
		}
		slots = append(slots, &entities.PickupSlot{
			ID:          uuid.New(),
			ListingID:   listingID,
			Weekday:     slot.Weekday,
			StartMinute: slot.StartMinute,
			EndMinute:   slot.EndMinute,
		})
	}
	return slots, nil
}

// AverageRating is computed on read, never stored. Nil when unrated.
func AverageRating(ratings []*entities.Rating) *float64 {
	if len(ratings) == 0 {
		return nil
	}
	var sum float64
	for _, r := range ratings {
		sum += r.Stars
	}
	avg := sum / float64(len(ratings))
	return &avg
}

func PickupStatus(slots []*entities.PickupSlot, now time.Time) string {
	if len(slots) == 0 {
		return PickupStatusNoWindow
	}
	today := int(now.Weekday())
	for _, slot := range slots {
		if slot.Weekday == today {
			return PickupStatusToday
		}
	}
	return PickupStatusThisWeek
}

func ToListingResponse(l *entities.Listing) domain.ListingResponse {
	slots := make([]domain.PickupSlotResponse, 0, len(l.PickupSlots))
	for _, slot := range l.PickupSlots {
		slots = append(slots, domain.PickupSlotResponse{
			Weekday:     slot.Weekday,
			StartMinute: slot.StartMinute,
			EndMinute:   slot.EndMinute,
		})
	}

	return domain.ListingResponse{
		ID:            l.ID.String(),
		UserID:        l.UserID.String(),
		Title:         l.Title,
		Description:   l.Description,
		CategoryID:    l.CategoryID.String(),
		CategoryName:  l.CategoryName,
		Latitude:      l.Latitude,
		Longitude:     l.Longitude,
		Address:       l.Address,
		ExpiresAt:     l.ExpiresAt,
		IsAvailable:   l.IsAvailable,
		ImageURL:      l.ImageURL,
		PickupSlots:   slots,
		AverageRating: AverageRating(l.Ratings),
		PickupStatus:  PickupStatus(l.PickupSlots, time.Now()),
		CreatedAt:     l.CreatedAt,
	}
}
