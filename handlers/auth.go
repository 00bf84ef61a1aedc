package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"truebond/middleware"
	"truebond/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	users  UserStore
	secret string
}

func NewAuthHandler(users UserStore, secret string) *AuthHandler {
	return &AuthHandler{users: users, secret: secret}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	PhotoURL string `json:"photoURL"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenRequest is the sign-in event for clients authenticated elsewhere: the
// account is upserted by email and a credential is issued. A body carrying
// status "Requested for Premium" updates only the status of an existing
// account; any other repeat sign-in leaves the stored record untouched.
type TokenRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
	Status   string `json:"status"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	existing, err := h.users.FindByEmail(ctx, req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already in use"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}
	hashed := string(hashedPassword)

	now := time.Now().Unix()
	user := models.User{
		Email:        req.Email,
		Name:         req.Name,
		PhotoURL:     req.PhotoURL,
		Role:         models.RoleBasic,
		PasswordHash: &hashed,
		CreatedAt:    now,
		LastLoginAt:  now,
	}

	if err := h.users.Insert(ctx, &user); err != nil {
		log.Printf("[Register] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	tokenString, err := middleware.IssueToken(h.secret, user.Email, user.Role, tokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"token":   tokenString,
		"email":   user.Email,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	user, err := h.users.FindByEmail(ctx, req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if user == nil || user.PasswordHash == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if err := h.users.UpdateLastLogin(ctx, user.Email, time.Now().Unix()); err != nil {
		log.Printf("[Login] lastLoginAt update failed: %v", err)
	}

	tokenString, err := middleware.IssueToken(h.secret, user.Email, user.Role, tokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   tokenString,
		"email":   user.Email,
		"message": "Login successful",
	})
}

func (h *AuthHandler) Token(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User email is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	user, err := h.users.FindByEmail(ctx, req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	now := time.Now().Unix()
	if user == nil {
		user = &models.User{
			Email:       req.Email,
			Name:        req.Name,
			PhotoURL:    req.PhotoURL,
			Role:        models.RoleBasic,
			CreatedAt:   now,
			LastLoginAt: now,
		}
		if err := h.users.Insert(ctx, user); err != nil {
			log.Printf("[Token] insert failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save user"})
			return
		}
	} else {
		if req.Status == models.StatusRequestedPremium && user.Status != models.StatusRequestedPremium {
			if err := h.users.UpdateStatus(ctx, user.Email, req.Status); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
				return
			}
			user.Status = req.Status
		}
		if err := h.users.UpdateLastLogin(ctx, user.Email, now); err != nil {
			log.Printf("[Token] lastLoginAt update failed: %v", err)
		}
	}

	tokenString, err := middleware.IssueToken(h.secret, user.Email, user.Role, tokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":  tokenString,
		"email":  user.Email,
		"role":   user.Role,
		"status": user.Status,
	})
}
