package routes

import (
	"FoodShare-Backend/internal/api/handlers"
	"FoodShare-Backend/internal/middleware"
	"FoodShare-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	CategoryHandler handlers.CategoryHandler
	ListingHandler  handlers.ListingHandler
	FeedHandler     handlers.FeedHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Categories()
	c.Listings()
	c.Feed()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/saved/:listingId", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.SaveListing)
		user.Delete("/saved/:listingId", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UnsaveListing)
		user.Get("/saved", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.GetSavedListings)
	}
}

func (c *Config) Categories() {
	c.App.Get("/api/v1/categories", c.CategoryHandler.GetCategories)
}

func (c *Config) Listings() {
	listings := c.App.Group("/api/v1/listings", c.Middleware.AuthMiddleware(c.JWTService))

	// Basic CRUD operations
	listings.Post("", c.ListingHandler.CreateListing)
	listings.Get("/mine", c.ListingHandler.GetMyListings)
	listings.Get("/:id", c.ListingHandler.GetListingDetails)
	listings.Put("/:id", c.ListingHandler.UpdateListing)
	listings.Delete("/:id", c.ListingHandler.DeleteListing)

	// Special operations
	listings.Post("/image", c.ListingHandler.UploadListingImage)
	listings.Post("/:id/reserve", c.ListingHandler.ReserveListing)
	listings.Post("/:id/cancel-reservation", c.ListingHandler.CancelReservation)
	listings.Post("/:id/ratings", c.ListingHandler.RateListing)
}

func (c *Config) Feed() {
	feed := c.App.Group("/api/v1/feed", c.Middleware.AuthMiddleware(c.JWTService))
	feed.Get("", c.FeedHandler.GetNearbyFeed)
	feed.Get("/recommended", c.FeedHandler.GetRecommendedFeed)
	feed.Get("/search", c.FeedHandler.SearchListings)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
