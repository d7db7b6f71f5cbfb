package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/harukik/secondhand-market-api/internal/auth"
	"github.com/harukik/secondhand-market-api/internal/config"
	"github.com/harukik/secondhand-market-api/internal/database"
	"github.com/harukik/secondhand-market-api/internal/handlers"
	"github.com/harukik/secondhand-market-api/internal/middleware"
	"github.com/harukik/secondhand-market-api/internal/repository"
	"github.com/harukik/secondhand-market-api/internal/services"
	"github.com/harukik/secondhand-market-api/internal/storage"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Image blob store
	blobs, err := storage.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	// Token issuer holds the signing secret; nothing else reads it.
	tokens := auth.NewTokenIssuer(cfg.SecretKey, cfg.TokenLifetime)

	// Repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, tokens)
	itemService := services.NewItemService(itemRepo, blobs)
	transactionService := services.NewTransactionService(transactionRepo, itemRepo)
	wishlistService := services.NewWishlistService(wishlistRepo, itemRepo)
	messageService := services.NewMessageService(messageRepo, userRepo, itemRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	itemHandler := handlers.NewItemHandler(itemService)
	imageHandler := handlers.NewImageHandler(blobs)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)
	messageHandler := handlers.NewMessageHandler(messageService)

	// Initialize Gin router
	r := gin.Default()

	requireAuth := middleware.RequireAuth(tokens)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Secondhand Market API is running",
		})
	})

	// Stored item images
	r.GET("/images/:filename", imageHandler.GetImage)

	// API routes
	api := r.Group("/api")
	{
		// Public routes
		api.POST("/users", authHandler.Signup)
		api.GET("/users/:id", authHandler.GetUser)
		api.POST("/login", authHandler.Login)

		auth := api.Group("/auth")
		{
			auth.GET("/me", requireAuth, authHandler.GetCurrentUser)
		}

		api.PUT("/users/:id", requireAuth, authHandler.UpdateUser)

		// Item routes
		items := api.Group("/items")
		{
			items.GET("", itemHandler.ListItems)
			items.GET("/:id", itemHandler.GetItem)
			items.POST("", requireAuth, itemHandler.CreateItem)
			items.PUT("/:id", requireAuth, itemHandler.UpdateItem)
			items.DELETE("/:id", requireAuth, itemHandler.DeleteItem)
		}

		// Wishlist routes (protected)
		wishlist := api.Group("/wishlist")
		wishlist.Use(requireAuth)
		{
			wishlist.POST("", wishlistHandler.AddToWishlist)
			wishlist.GET("", wishlistHandler.GetWishlist)
			wishlist.DELETE("/:item_id", wishlistHandler.RemoveFromWishlist)
		}

		// Transaction routes (protected)
		transactions := api.Group("/transactions")
		transactions.Use(requireAuth)
		{
			transactions.POST("", transactionHandler.CreateTransaction)
			transactions.GET("", transactionHandler.ListTransactions)
			transactions.PUT("/:id/status", transactionHandler.UpdateTransactionStatus)
		}

		// Message routes (protected)
		messages := api.Group("/messages")
		messages.Use(requireAuth)
		{
			messages.POST("", messageHandler.SendMessage)
			messages.GET("/:peer_id", messageHandler.GetConversation)
		}
	}

	// Start server
	log.Println("Server starting on :8080")
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
