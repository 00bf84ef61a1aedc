package routes

import (
	"time"

	"truebond/handlers"
	"truebond/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups everything the router mounts. Built in main so the stores
// behind each handler share the one database handle.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Users     *handlers.UserHandler
	Biodatas  *handlers.BiodataHandler
	Favorites *handlers.FavoriteHandler
	Payments  *handlers.PaymentHandler
	Reviews   *handlers.ReviewHandler
	Stats     *handlers.StatsHandler
}

func SetupRouter(jwtSecret string, adminLookup middleware.RoleLookup, h Handlers) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Public routes (no auth required)
	auth := router.Group("/api/auth")
	auth.Use(middleware.RateLimitMiddleware(20, time.Minute))
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/token", h.Auth.Token)

	router.GET("/api/reviews", h.Reviews.ListReviews)
	router.GET("/api/success-stories", h.Reviews.ListSuccessStories)
	router.GET("/api/counter-section", h.Stats.CounterSection)

	// Protected routes group
	protected := router.Group("/api")
	protected.Use(middleware.JWTAuthMiddleware(jwtSecret))

	// Premium listing
	protected.GET("/premium-profiles", h.Users.PremiumProfiles)

	// Accounts
	protected.GET("/user/:email", h.Users.GetUser)

	// Biodatas
	protected.GET("/biodatas", h.Biodatas.List)
	protected.PUT("/biodatas", h.Biodatas.Upsert)
	protected.GET("/biodatas/:id", h.Biodatas.GetByID)
	protected.GET("/similar-biodatas/:type", h.Biodatas.Similar)
	protected.GET("/my-biodata/:contactEmail", h.Biodatas.MyBiodata)

	// Favorites
	protected.GET("/favorites/:email", h.Favorites.ListFavorites)
	protected.POST("/favorites", h.Favorites.AddFavorite)
	protected.DELETE("/favorites/:id", h.Favorites.DeleteFavorite)

	// Payments
	protected.POST("/create-payment-intent", h.Payments.CreatePaymentIntent)
	protected.POST("/payments", h.Payments.CreatePayment)
	protected.GET("/payments/:email", h.Payments.PaymentsByEmail)

	// Success stories
	protected.POST("/success-stories", h.Reviews.CreateSuccessStory)

	// Admin routes group
	admin := router.Group("/api")
	admin.Use(middleware.JWTAuthMiddleware(jwtSecret), middleware.RequireAdmin(adminLookup))

	admin.GET("/users", h.Users.ListUsers)
	admin.GET("/users/search", h.Users.SearchUsers)
	admin.GET("/users/premium", h.Users.PremiumUsers)
	admin.GET("/users/requested-premium", h.Users.RequestedPremium)
	admin.PATCH("/users/admin/:id", h.Users.MakeAdmin)
	admin.PATCH("/users/premium/:id", h.Users.MakePremium)

	admin.GET("/payments", h.Payments.ListPayments)
	admin.PATCH("/payments/:id/approve", h.Payments.ApprovePayment)
	admin.DELETE("/payments/:id", h.Payments.DeletePayment)

	admin.GET("/admin-stats", h.Stats.AdminStats)

	// Catch-all for undefined API routes
	router.NoRoute(func(c *gin.Context) {
		if len(c.Request.URL.Path) >= 4 && c.Request.URL.Path[:4] == "/api" {
			c.JSON(404, gin.H{
				"error": "Endpoint not found",
				"path":  c.Request.URL.Path,
			})
			return
		}
		c.Next()
	})

	return router
}
