package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"truebond/models"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviews ReviewStore
	stories SuccessStoryStore
}

func NewReviewHandler(reviews ReviewStore, stories SuccessStoryStore) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, stories: stories}
}

type SuccessStoryRequest struct {
	SelfBiodataID    int64  `json:"selfBiodataId" binding:"required,gt=0"`
	PartnerBiodataID int64  `json:"partnerBiodataId" binding:"required,gt=0"`
	CoupleImageURL   string `json:"coupleImageUrl"`
	MarriageDate     string `json:"marriageDate" binding:"required"`
	ReviewStar       int    `json:"reviewStar" binding:"required,min=1,max=5"`
	SuccessStoryText string `json:"successStoryText" binding:"required"`
}

func (h *ReviewHandler) ListReviews(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	reviews, err := h.reviews.All(ctx)
	if err != nil {
		log.Printf("[ListReviews] find failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) ListSuccessStories(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	stories, err := h.stories.All(ctx)
	if err != nil {
		log.Printf("[ListSuccessStories] find failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch success stories"})
		return
	}

	c.JSON(http.StatusOK, stories)
}

func (h *ReviewHandler) CreateSuccessStory(c *gin.Context) {
	var req SuccessStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	story := models.SuccessStory{
		SelfBiodataID:    req.SelfBiodataID,
		PartnerBiodataID: req.PartnerBiodataID,
		CoupleImageURL:   req.CoupleImageURL,
		MarriageDate:     req.MarriageDate,
		ReviewStar:       req.ReviewStar,
		SuccessStoryText: req.SuccessStoryText,
		CreatedAt:        time.Now().Unix(),
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if err := h.stories.Insert(ctx, &story); err != nil {
		log.Printf("[CreateSuccessStory] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save success story"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Success story saved", "id": story.ID.Hex()})
}
