package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"truebond/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserHandler struct {
	users UserStore
}

func NewUserHandler(users UserStore) *UserHandler {
	return &UserHandler{users: users}
}

// GetUser returns the account for the email, or an empty body when none
// exists; absence on the keyed lookup is not an error.
func (h *UserHandler) GetUser(c *gin.Context) {
	email := c.Param("email")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	user, err := h.users.FindByEmail(ctx, email)
	if err != nil {
		log.Printf("[GetUser] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}
	if user == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	users, err := h.users.All(ctx)
	if err != nil {
		log.Printf("[ListUsers] find failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) SearchUsers(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username query parameter is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	users, err := h.users.Search(ctx, username)
	if err != nil {
		log.Printf("[SearchUsers] find failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) PremiumUsers(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	users, err := h.users.Premium(ctx)
	if err != nil {
		log.Printf("[PremiumUsers] find failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching premium users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// PremiumProfiles serves the premium listing view: premium accounts joined
// with their biodata, sorted by age. sortOrder=descending flips the order;
// anything else sorts ascending.
func (h *UserHandler) PremiumProfiles(c *gin.Context) {
	descending := c.Query("sortOrder") == "descending"

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	profiles, err := h.users.PremiumProfiles(ctx, descending)
	if err != nil {
		log.Printf("[PremiumProfiles] aggregate failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching premium profiles"})
		return
	}

	c.JSON(http.StatusOK, profiles)
}

// RequestedPremium serves the upgrade queue for the admin dashboard. Join
// misses are preserved: a requester with no biodata still shows up.
func (h *UserHandler) RequestedPremium(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	rows, err := h.users.RequestedPremium(ctx)
	if err != nil {
		log.Printf("[RequestedPremium] aggregate failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching requested premium users"})
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (h *UserHandler) MakeAdmin(c *gin.Context) {
	h.setRole(c, models.RoleAdmin)
}

func (h *UserHandler) MakePremium(c *gin.Context) {
	h.setRole(c, models.RolePremium)
}

func (h *UserHandler) setRole(c *gin.Context, role string) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	err = h.users.SetRole(ctx, id, role)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		log.Printf("[SetRole] update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update role"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Role updated", "role": role})
}
