package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"truebond/models"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	users    UserStore
	biodatas BiodataStore
	payments PaymentStore
	stories  SuccessStoryStore
}

func NewStatsHandler(users UserStore, biodatas BiodataStore, payments PaymentStore, stories SuccessStoryStore) *StatsHandler {
	return &StatsHandler{users: users, biodatas: biodatas, payments: payments, stories: stories}
}

// CounterSection backs the public landing-page counters.
func (h *StatsHandler) CounterSection(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	total, err := h.biodatas.TotalCount(ctx)
	if err != nil {
		log.Printf("[CounterSection] total count failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching biodata stats"})
		return
	}

	male, err := h.biodatas.CountByType(ctx, models.BiodataTypeMale)
	if err != nil {
		log.Printf("[CounterSection] male count failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching biodata stats"})
		return
	}

	female, err := h.biodatas.CountByType(ctx, models.BiodataTypeFemale)
	if err != nil {
		log.Printf("[CounterSection] female count failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching biodata stats"})
		return
	}

	married, err := h.stories.Count(ctx)
	if err != nil {
		log.Printf("[CounterSection] married count failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching biodata stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalBiodata":       total,
		"maleBiodataCount":   male,
		"femaleBiodataCount": female,
		"marriedCount":       married,
	})
}

// AdminStats extends the public counters with premium and revenue numbers.
func (h *StatsHandler) AdminStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	total, err := h.biodatas.TotalCount(ctx)
	if err != nil {
		log.Printf("[AdminStats] total count failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching biodata stats"})
		return
	}

	male, err := h.biodatas.CountByType(ctx, models.BiodataTypeMale)
	if err != nil {
		log.Printf("[AdminStats] male count failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching biodata stats"})
		return
	}

	female, err := h.biodatas.CountByType(ctx, models.BiodataTypeFemale)
	if err != nil {
		log.Printf("[AdminStats] female count failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching biodata stats"})
		return
	}

	premium, err := h.users.CountPremium(ctx)
	if err != nil {
		log.Printf("[AdminStats] premium count failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching biodata stats"})
		return
	}

	revenue, err := h.payments.Revenue(ctx)
	if err != nil {
		log.Printf("[AdminStats] revenue sum failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching biodata stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalBiodata":        total,
		"maleBiodataCount":    male,
		"femaleBiodataCount":  female,
		"premiumBiodataCount": premium,
		"totalRevenue":        revenue,
	})
}
