package config

import (
	"FoodShare-Backend/internal/api/handlers"
	"FoodShare-Backend/internal/api/routes"
	"FoodShare-Backend/internal/middleware"
	"FoodShare-Backend/internal/utils"
	"FoodShare-Backend/internal/utils/storage"
	"FoodShare-Backend/pkg/category"
	"FoodShare-Backend/pkg/feed"
	"FoodShare-Backend/pkg/jwt"
	"FoodShare-Backend/pkg/listing"
	"FoodShare-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	redisClient := ConnectRedis()

	// Repository
	userRepository := user.NewUserRepository(db)
	categoryRepository := category.NewCategoryRepository(db)
	listingRepository := listing.NewListingRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	categoryService := category.NewCategoryService(categoryRepository, redisClient)
	listingService := listing.NewListingService(listingRepository, categoryRepository, userRepository, s3)
	userService := user.NewUserService(userRepository, listingRepository, jwtService)
	feedService := feed.NewFeedService(listingRepository, categoryService)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	listingHandler := handlers.NewListingHandler(listingService, validator)
	feedHandler := handlers.NewFeedHandler(feedService)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		CategoryHandler: categoryHandler,
		ListingHandler:  listingHandler,
		FeedHandler:     feedHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
