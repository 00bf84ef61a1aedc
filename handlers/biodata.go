package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"truebond/models"
	"truebond/store"

	"github.com/gin-gonic/gin"
)

const similarLimit = 3

type BiodataHandler struct {
	biodatas BiodataStore
}

func NewBiodataHandler(biodatas BiodataStore) *BiodataHandler {
	return &BiodataHandler{biodatas: biodatas}
}

// BiodataRequest is the typed upsert payload. contactEmail keys the upsert;
// biodataId is never accepted from the client.
type BiodataRequest struct {
	BiodataType           string `json:"biodataType" binding:"required,oneof=Male Female"`
	Name                  string `json:"name" binding:"required"`
	ProfileImageURL       string `json:"profileImageUrl"`
	DateOfBirth           string `json:"dateOfBirth"`
	Height                string `json:"height"`
	Weight                string `json:"weight"`
	Age                   int    `json:"age" binding:"required,gt=0"`
	Occupation            string `json:"occupation"`
	Race                  string `json:"race"`
	FathersName           string `json:"fathersName"`
	MothersName           string `json:"mothersName"`
	PermanentDivision     string `json:"permanentDivision"`
	PresentDivision       string `json:"presentDivision"`
	ExpectedPartnerAge    string `json:"expectedPartnerAge"`
	ExpectedPartnerHeight string `json:"expectedPartnerHeight"`
	ExpectedPartnerWeight string `json:"expectedPartnerWeight"`
	ContactEmail          string `json:"contactEmail" binding:"required,email"`
	MobileNumber          string `json:"mobileNumber"`
}

func (r BiodataRequest) toModel() models.Biodata {
	return models.Biodata{
		BiodataType:           r.BiodataType,
		Name:                  r.Name,
		ProfileImageURL:       r.ProfileImageURL,
		DateOfBirth:           r.DateOfBirth,
		Height:                r.Height,
		Weight:                r.Weight,
		Age:                   r.Age,
		Occupation:            r.Occupation,
		Race:                  r.Race,
		FathersName:           r.FathersName,
		MothersName:           r.MothersName,
		PermanentDivision:     r.PermanentDivision,
		PresentDivision:       r.PresentDivision,
		ExpectedPartnerAge:    r.ExpectedPartnerAge,
		ExpectedPartnerHeight: r.ExpectedPartnerHeight,
		ExpectedPartnerWeight: r.ExpectedPartnerWeight,
		ContactEmail:          r.ContactEmail,
		MobileNumber:          r.MobileNumber,
	}
}

// Upsert creates or updates the caller's biodata, keyed by contact email.
// A first-time insert gets the next sequential biodata id; a repeat upsert
// merges fields and keeps the id it was assigned at creation.
func (h *BiodataHandler) Upsert(c *gin.Context) {
	var req BiodataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	existing, err := h.biodatas.FindByContactEmail(ctx, req.ContactEmail)
	if err != nil {
		log.Printf("[UpsertBiodata] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error inserting/updating biodata"})
		return
	}

	biodata := req.toModel()
	now := time.Now().Unix()
	biodata.UpdatedAt = now

	if existing != nil {
		biodata.BiodataID = existing.BiodataID
		if err := h.biodatas.Update(ctx, &biodata); err != nil {
			log.Printf("[UpsertBiodata] update failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error inserting/updating biodata"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"biodataId": biodata.BiodataID,
			"message":   "Biodata updated",
		})
		return
	}

	newID, err := h.biodatas.NextID(ctx)
	if err != nil {
		log.Printf("[UpsertBiodata] id allocation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error inserting/updating biodata"})
		return
	}

	biodata.BiodataID = newID
	biodata.CreatedAt = now
	if err := h.biodatas.Insert(ctx, &biodata); err != nil {
		log.Printf("[UpsertBiodata] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error inserting/updating biodata"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"biodataId": newID,
		"message":   "Biodata created",
	})
}

func (h *BiodataHandler) List(c *gin.Context) {
	filter := store.Filter{
		BiodataType: c.Query("biodataType"),
		Division:    c.Query("division"),
	}
	if v := c.Query("minAge"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filter.MinAge = n
		}
	}
	if v := c.Query("maxAge"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filter.MaxAge = n
		}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	biodatas, err := h.biodatas.All(ctx, filter)
	if err != nil {
		log.Printf("[ListBiodatas] find failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch biodatas"})
		return
	}

	c.JSON(http.StatusOK, biodatas)
}

func (h *BiodataHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid biodata ID"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	biodata, err := h.biodatas.FindByBiodataID(ctx, id)
	if err != nil {
		log.Printf("[GetBiodata] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch biodata"})
		return
	}
	if biodata == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Biodata not found"})
		return
	}

	c.JSON(http.StatusOK, biodata)
}

// MyBiodata returns the caller's own biodata, or an empty body when none
// exists yet; an absent record is not an error here.
func (h *BiodataHandler) MyBiodata(c *gin.Context) {
	email := c.Param("contactEmail")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	biodata, err := h.biodatas.FindByContactEmail(ctx, email)
	if err != nil {
		log.Printf("[MyBiodata] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch biodata"})
		return
	}
	if biodata == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	c.JSON(http.StatusOK, biodata)
}

// Similar lists recent biodatas of the given type for the "similar profiles"
// rail. The excludeId query keeps the viewed profile out of its own rail.
func (h *BiodataHandler) Similar(c *gin.Context) {
	biodataType := c.Param("type")
	if biodataType != models.BiodataTypeMale && biodataType != models.BiodataTypeFemale {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid biodata type"})
		return
	}

	var excludeID int64
	if v := c.Query("excludeId"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			excludeID = n
		}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	biodatas, err := h.biodatas.Similar(ctx, biodataType, excludeID, similarLimit)
	if err != nil {
		log.Printf("[SimilarBiodatas] find failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch biodatas"})
		return
	}

	c.JSON(http.StatusOK, biodatas)
}
