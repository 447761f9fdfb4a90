package user

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"FoodShare-Backend/pkg/jwt"
	"FoodShare-Backend/pkg/listing"
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) error
		SaveListing(ctx context.Context, userID, listingID string) error
		UnsaveListing(ctx context.Context, userID, listingID string) error
		GetSavedListings(ctx context.Context, userID string) ([]domain.ListingResponse, error)
	}

	userService struct {
		userRepository    UserRepository
		listingRepository listing.ListingRepository
		jwtService        jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, listingRepository listing.ListingRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository:    userRepository,
		listingRepository: listingRepository,
		jwtService:        jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     domain.RoleUser,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.RegisterResponse{}, err
	}

	return domain.RegisterResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)

	return domain.LoginResponse{
		Token: token,
		Role:  user.Role,
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	return domain.UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		PhotoURL:  user.PhotoURL,
		CreatedAt: user.CreatedAt,
	}, nil
}

func (s *userService) UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if req.Name != "" {
		user.Name = req.Name
	}

	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) SaveListing(ctx context.Context, userID, listingID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	listingUUID, err := uuid.Parse(listingID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if _, err := s.listingRepository.GetListingByID(ctx, listingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrListingNotFound
		}
		return err
	}

	if _, err := s.userRepository.GetSavedListing(ctx, userID, listingID); err == nil {
		return domain.ErrListingAlreadySaved
	}

	saved := &entities.SavedListing{
		ID:        uuid.New(),
		UserID:    userUUID,
		ListingID: listingUUID,
	}

	return s.userRepository.SaveListing(ctx, saved)
}

func (s *userService) UnsaveListing(ctx context.Context, userID, listingID string) error {
	if _, err := s.userRepository.GetSavedListing(ctx, userID, listingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrSavedListingMissing
		}
		return err
	}

	return s.userRepository.DeleteSavedListing(ctx, userID, listingID)
}

func (s *userService) GetSavedListings(ctx context.Context, userID string) ([]domain.ListingResponse, error) {
	saved, err := s.userRepository.GetSavedListings(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ListingResponse, 0, len(saved))
	for _, item := range saved {
		if item.Listing == nil {
			continue
		}
		response = append(response, listing.ToListingResponse(item.Listing))
	}

	return response, nil
}
