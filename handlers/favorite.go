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

type FavoriteHandler struct {
	favorites FavoriteStore
	biodatas  BiodataStore
}

func NewFavoriteHandler(favorites FavoriteStore, biodatas BiodataStore) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites, biodatas: biodatas}
}

type AddFavoriteRequest struct {
	BiodataID int64 `json:"biodataId" binding:"required,gt=0"`
}

// AddFavorite bookmarks a biodata for the caller. Display fields are copied
// from the biodata so the favorites list renders without a join.
func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Biodata ID is required"})
		return
	}

	ownerEmail := c.GetString("email")
	if ownerEmail == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	exists, err := h.favorites.Exists(ctx, ownerEmail, req.BiodataID)
	if err != nil {
		log.Printf("[AddFavorite] exists check failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding to favorites"})
		return
	}
	if exists {
		c.JSON(http.StatusConflict, gin.H{"error": "Biodata is already in favorites"})
		return
	}

	biodata, err := h.biodatas.FindByBiodataID(ctx, req.BiodataID)
	if err != nil {
		log.Printf("[AddFavorite] biodata lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding to favorites"})
		return
	}
	if biodata == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Biodata not found"})
		return
	}

	fav := models.Favorite{
		BiodataID:         biodata.BiodataID,
		OwnerEmail:        ownerEmail,
		Name:              biodata.Name,
		PermanentDivision: biodata.PermanentDivision,
		Occupation:        biodata.Occupation,
		CreatedAt:         time.Now().Unix(),
	}

	if err := h.favorites.Insert(ctx, &fav); err != nil {
		log.Printf("[AddFavorite] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding to favorites"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Favorite added", "id": fav.ID.Hex()})
}

func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	email := c.Param("email")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	favorites, err := h.favorites.ByOwner(ctx, email)
	if err != nil {
		log.Printf("[ListFavorites] find failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching favorites"})
		return
	}

	c.JSON(http.StatusOK, favorites)
}

func (h *FavoriteHandler) DeleteFavorite(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid favorite ID"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	err = h.favorites.Delete(ctx, id)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
		return
	}
	if err != nil {
		log.Printf("[DeleteFavorite] delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting favorite"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Favorite removed"})
}
