package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/learnify-dev/learnify/internal/models"
	"github.com/learnify-dev/learnify/internal/store"
	"github.com/learnify-dev/learnify/internal/utils"
	"gorm.io/gorm"
)

type TutorialStore interface {
	ListTutorials(ctx context.Context, query store.TutorialQuery) ([]models.Tutorial, error)
	GetTutorial(ctx context.Context, id uint) (*models.Tutorial, error)
	TutorialsByOwner(ctx context.Context, uid string) ([]models.Tutorial, error)
	CreateTutorial(ctx context.Context, tutorial *models.Tutorial) error
	SaveTutorial(ctx context.Context, tutorial *models.Tutorial) error
	DeleteTutorialCascade(ctx context.Context, id uint) (deletedTutorials, deletedBookings int64, err error)
	IncrementReviewCount(ctx context.Context, id uint) (*models.Tutorial, error)
}

type TutorialHandler struct {
	store TutorialStore
}

func NewTutorialHandler(store TutorialStore) *TutorialHandler {
	return &TutorialHandler{store: store}
}

type CreateTutorialRequest struct {
	Image       string  `json:"image" binding:"required"`
	Language    string  `json:"language" binding:"required"`
	Price       float64 `json:"price" binding:"gte=0"`
	Description string  `json:"description" binding:"required"`
}

// UpdateTutorialRequest carries only the client-editable fields. Owner
// identity, review count and creation timestamp are never accepted from the
// client.
type UpdateTutorialRequest struct {
	Image       *string  `json:"image"`
	Language    *string  `json:"language"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
}

type TutorialResponse struct {
	ID            uint      `json:"id"`
	TutorUID      string    `json:"tutorUid"`
	TutorEmail    string    `json:"tutorEmail"`
	TutorName     string    `json:"tutorName"`
	TutorPhotoURL string    `json:"tutorPhotoURL"`
	Image         string    `json:"image"`
	Language      string    `json:"language"`
	Price         float64   `json:"price"`
	Description   string    `json:"description"`
	ReviewCount   int       `json:"reviewCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func newTutorialResponse(tutorial models.Tutorial) TutorialResponse {
	return TutorialResponse{
		ID:            tutorial.ID,
		TutorUID:      tutorial.TutorUID,
		TutorEmail:    tutorial.TutorEmail,
		TutorName:     tutorial.TutorName,
		TutorPhotoURL: tutorial.TutorPhotoURL,
		Image:         tutorial.Image,
		Language:      tutorial.Language,
		Price:         tutorial.Price,
		Description:   tutorial.Description,
		ReviewCount:   tutorial.ReviewCount,
		CreatedAt:     tutorial.CreatedAt,
		UpdatedAt:     tutorial.UpdatedAt,
	}
}

func newTutorialListResponse(tutorials []models.Tutorial) []TutorialResponse {
	response := make([]TutorialResponse, 0, len(tutorials))

	for _, tutorial := range tutorials {
		response = append(response, newTutorialResponse(tutorial))
	}

	return response
}

func (h *TutorialHandler) ListTutorials(ctx *gin.Context) {
	query := store.TutorialQuery{
		Search:   ctx.Query("search"),
		Language: ctx.Query("language"),
		Category: ctx.Query("category"),
	}

	tutorials, err := h.store.ListTutorials(ctx.Request.Context(), query)

	if err != nil {
		log.Printf("Failed to list tutorials: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch tutorials."})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "tutorials": newTutorialListResponse(tutorials)})
}

func (h *TutorialHandler) GetTutorial(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Tutorial not found."})
		return
	}

	tutorial, err := h.store.GetTutorial(ctx.Request.Context(), id)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Tutorial not found."})
		} else {
			log.Printf("Failed to fetch tutorial %d: %v", id, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch tutorial details."})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "tutorial": newTutorialResponse(*tutorial)})
}

func (h *TutorialHandler) MyTutorials(ctx *gin.Context) {
	ident, err := utils.GetCurrentIdentity(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated."})
		return
	}

	tutorials, err := h.store.TutorialsByOwner(ctx.Request.Context(), ident.UID)

	if err != nil {
		log.Printf("Failed to fetch tutorials for %s: %v", ident.UID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch your tutorials."})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "tutorials": newTutorialListResponse(tutorials)})
}

func (h *TutorialHandler) CreateTutorial(ctx *gin.Context) {
	ident, err := utils.GetCurrentIdentity(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated."})
		return
	}

	var body CreateTutorialRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing required tutorial fields or invalid price."})
		return
	}

	tutorName := ident.Name
	if tutorName == "" {
		tutorName = "Tutor"
	}

	tutorial := models.Tutorial{
		TutorUID:      ident.UID,
		TutorEmail:    ident.Email,
		TutorName:     tutorName,
		TutorPhotoURL: ident.Picture,
		Image:         body.Image,
		Language:      body.Language,
		Price:         body.Price,
		Description:   body.Description,
		ReviewCount:   0,
	}

	if err := h.store.CreateTutorial(ctx.Request.Context(), &tutorial); err != nil {
		log.Printf("Failed to create tutorial: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to add tutorial."})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"success": true, "message": "Tutorial added!", "tutorial": newTutorialResponse(tutorial)})
}

func (h *TutorialHandler) UpdateTutorial(ctx *gin.Context) {
	ident, err := utils.GetCurrentIdentity(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated."})
		return
	}

	id, err := utils.GetIDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Tutorial not found."})
		return
	}

	var body UpdateTutorialRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request."})
		return
	}

	tutorial, err := h.store.GetTutorial(ctx.Request.Context(), id)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Tutorial not found."})
		} else {
			log.Printf("Failed to fetch tutorial %d: %v", id, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update tutorial."})
		}
		return
	}

	if !tutorial.OwnedBy(ident.UID) {
		ctx.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Forbidden: You can only update your own tutorials."})
		return
	}

	if body.Image != nil {
		if strings.TrimSpace(*body.Image) == "" {
			ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Image cannot be empty."})
			return
		}
		tutorial.Image = *body.Image
	}

	if body.Language != nil {
		if strings.TrimSpace(*body.Language) == "" {
			ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Language cannot be empty."})
			return
		}
		tutorial.Language = *body.Language
	}

	if body.Description != nil {
		if strings.TrimSpace(*body.Description) == "" {
			ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Description cannot be empty."})
			return
		}
		tutorial.Description = *body.Description
	}

	if body.Price != nil {
		if *body.Price < 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Price cannot be negative."})
			return
		}
		tutorial.Price = *body.Price
	}

	if err := h.store.SaveTutorial(ctx.Request.Context(), tutorial); err != nil {
		log.Printf("Failed to update tutorial %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update tutorial."})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Tutorial updated successfully.", "tutorial": newTutorialResponse(*tutorial)})
}

func (h *TutorialHandler) DeleteTutorial(ctx *gin.Context) {
	ident, err := utils.GetCurrentIdentity(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated."})
		return
	}

	id, err := utils.GetIDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Tutorial not found."})
		return
	}

	tutorial, err := h.store.GetTutorial(ctx.Request.Context(), id)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Tutorial not found."})
		} else {
			log.Printf("Failed to fetch tutorial %d: %v", id, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete the tutorial and its related data."})
		}
		return
	}

	if !tutorial.OwnedBy(ident.UID) {
		ctx.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Forbidden: You can only delete your own tutorials."})
		return
	}

	deletedTutorials, deletedBookings, err := h.store.DeleteTutorialCascade(ctx.Request.Context(), id)

	if err != nil {
		log.Printf("Failed to delete tutorial %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete the tutorial and its related data."})
		return
	}

	log.Printf("Tutorial %d deleted. Associated bookings deleted: %d", id, deletedBookings)

	ctx.JSON(http.StatusOK, gin.H{
		"success":               true,
		"message":               "Tutorial and all associated bookings were deleted successfully.",
		"deletedTutorialsCount": deletedTutorials,
		"deletedBookingsCount":  deletedBookings,
	})
}

// IncrementReview bumps the denormalized counter. Any authenticated caller
// may do this, not only the booking student; no review text or rating is
// persisted.
func (h *TutorialHandler) IncrementReview(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Tutorial to review not found."})
		return
	}

	tutorial, err := h.store.IncrementReviewCount(ctx.Request.Context(), id)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Tutorial to review not found."})
		} else {
			log.Printf("Failed to increment review count for tutorial %d: %v", id, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update review count."})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Review count updated successfully.", "tutorial": newTutorialResponse(*tutorial)})
}
