package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/learnify-dev/learnify/internal/models"
	"github.com/learnify-dev/learnify/internal/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BookingStore interface {
	GetTutorial(ctx context.Context, id uint) (*models.Tutorial, error)
	CreateBooking(ctx context.Context, booking *models.Booking) error
	BookingsByStudent(ctx context.Context, uid string) ([]models.Booking, error)
	TutorialsByIDs(ctx context.Context, ids []uint) (map[uint]models.Tutorial, error)
}

type BookingHandler struct {
	store BookingStore
}

func NewBookingHandler(store BookingStore) *BookingHandler {
	return &BookingHandler{store: store}
}

type CreateBookingRequest struct {
	TutorialID uint `json:"tutorialId" binding:"required"`
}

type BookingResponse struct {
	ID           uint      `json:"id"`
	TutorialID   uint      `json:"tutorialId"`
	StudentUID   string    `json:"studentUid"`
	StudentEmail string    `json:"studentEmail"`
	TutorUID     string    `json:"tutorUid"`
	TutorEmail   string    `json:"tutorEmail"`
	Image        string    `json:"image"`
	Language     string    `json:"language"`
	Price        float64   `json:"price"`
	BookingDate  time.Time `json:"bookingDate"`
	Status       string    `json:"status"`

	// Joined from the tutorial at read time, absent when it no longer
	// exists.
	TutorName   *string `json:"tutorName,omitempty"`
	Description *string `json:"description,omitempty"`
}

func newBookingResponse(booking models.Booking) BookingResponse {
	var snapshot models.BookingSnapshot

	if err := json.Unmarshal(booking.Snapshot, &snapshot); err != nil {
		log.Printf("Failed to decode snapshot for booking %d: %v", booking.ID, err)
	}

	return BookingResponse{
		ID:           booking.ID,
		TutorialID:   booking.TutorialID,
		StudentUID:   booking.StudentUID,
		StudentEmail: booking.StudentEmail,
		TutorUID:     booking.TutorUID,
		TutorEmail:   booking.TutorEmail,
		Image:        snapshot.Image,
		Language:     snapshot.Language,
		Price:        snapshot.Price,
		BookingDate:  booking.BookingDate,
		Status:       booking.Status,
	}
}

func (h *BookingHandler) CreateBooking(ctx *gin.Context) {
	ident, err := utils.GetCurrentIdentity(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated."})
		return
	}

	var body CreateBookingRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Valid tutorialId is required."})
		return
	}

	tutorial, err := h.store.GetTutorial(ctx.Request.Context(), body.TutorialID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Cannot book a tutorial that does not exist."})
		} else {
			log.Printf("Failed to fetch tutorial %d: %v", body.TutorialID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create booking."})
		}
		return
	}

	// Price, image and language are frozen at booking time from the
	// tutorial record, not taken from the client.
	snapshot, err := json.Marshal(models.BookingSnapshot{
		Image:    tutorial.Image,
		Language: tutorial.Language,
		Price:    tutorial.Price,
	})

	if err != nil {
		log.Printf("Failed to encode snapshot for tutorial %d: %v", tutorial.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create booking."})
		return
	}

	booking := models.Booking{
		TutorialID:   tutorial.ID,
		StudentUID:   ident.UID,
		StudentEmail: ident.Email,
		TutorUID:     tutorial.TutorUID,
		TutorEmail:   tutorial.TutorEmail,
		Snapshot:     datatypes.JSON(snapshot),
		BookingDate:  time.Now(),
		Status:       models.BookingStatus,
	}

	if err := h.store.CreateBooking(ctx.Request.Context(), &booking); err != nil {
		log.Printf("Failed to create booking: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create booking."})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"success": true, "message": "Booking successful!", "booking": newBookingResponse(booking)})
}

func (h *BookingHandler) MyBookings(ctx *gin.Context) {
	ident, err := utils.GetCurrentIdentity(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated."})
		return
	}

	bookings, err := h.store.BookingsByStudent(ctx.Request.Context(), ident.UID)

	if err != nil {
		log.Printf("Failed to fetch bookings for %s: %v", ident.UID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch your booked tutorials."})
		return
	}

	ids := make([]uint, 0, len(bookings))

	for _, booking := range bookings {
		ids = append(ids, booking.TutorialID)
	}

	tutorials, err := h.store.TutorialsByIDs(ctx.Request.Context(), ids)

	if err != nil {
		log.Printf("Failed to fetch tutorials for bookings of %s: %v", ident.UID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch your booked tutorials."})
		return
	}

	response := make([]BookingResponse, 0, len(bookings))

	for _, booking := range bookings {
		item := newBookingResponse(booking)

		// Best-effort join: a deleted tutorial leaves the display fields
		// absent rather than failing the listing.
		if tutorial, ok := tutorials[booking.TutorialID]; ok {
			item.TutorName = &tutorial.TutorName
			item.Description = &tutorial.Description
		}

		response = append(response, item)
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "bookings": response})
}
