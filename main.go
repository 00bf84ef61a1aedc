package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"truebond/database"
	"truebond/handlers"
	"truebond/routes"
	"truebond/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	log.Println("Starting TrueBond server...")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	mongoURI := os.Getenv("MONGODB_URI")
	if jwtSecret == "" || mongoURI == "" {
		log.Fatal("JWT_SECRET and MONGODB_URI must be set")
	}

	dbName := os.Getenv("MONGODB_DB")
	if dbName == "" {
		dbName = "truebond"
	}

	// Connect to MongoDB with retry
	var db *database.DB
	var dbErr error
	for i := 1; i <= 3; i++ {
		db, dbErr = database.Connect(mongoURI, dbName)
		if dbErr == nil {
			break
		}
		log.Printf("MongoDB connection attempt %d failed: %v", i, dbErr)
		time.Sleep(2 * time.Second)
	}
	if dbErr != nil {
		log.Fatal("Failed to connect to MongoDB:", dbErr)
	}
	defer func() {
		if err := db.Disconnect(); err != nil {
			log.Println("MongoDB disconnect failed:", err)
		}
	}()

	handlers.InitStripe(os.Getenv("STRIPE_SECRET_KEY"))

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	users := store.NewUserStore(db)
	biodatas := store.NewBiodataStore(db)
	favorites := store.NewFavoriteStore(db)
	payments := store.NewPaymentStore(db)
	reviews := store.NewReviewStore(db)
	stories := store.NewSuccessStoryStore(db)

	router := routes.SetupRouter(jwtSecret, users, routes.Handlers{
		Auth:      handlers.NewAuthHandler(users, jwtSecret),
		Users:     handlers.NewUserHandler(users),
		Biodatas:  handlers.NewBiodataHandler(biodatas),
		Favorites: handlers.NewFavoriteHandler(favorites, biodatas),
		Payments:  handlers.NewPaymentHandler(payments),
		Reviews:   handlers.NewReviewHandler(reviews, stories),
		Stats:     handlers.NewStatsHandler(users, biodatas, payments, stories),
	})

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "TrueBond server is running"})
	})
	router.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("TrueBond server is running on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("Forced shutdown:", err)
	}

	log.Println("Server stopped gracefully")
}
