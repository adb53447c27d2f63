package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/learnify-dev/learnify/internal/models"
)

type CategoryStore interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
}

type CategoryHandler struct {
	store CategoryStore
}

func NewCategoryHandler(store CategoryStore) *CategoryHandler {
	return &CategoryHandler{store: store}
}

type CategoryResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Logo        string `json:"logo"`
	Description string `json:"description"`
}

func (h *CategoryHandler) ListCategories(ctx *gin.Context) {
	categories, err := h.store.ListCategories(ctx.Request.Context())

	if err != nil {
		log.Printf("Failed to list categories: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch language categories."})
		return
	}

	response := make([]CategoryResponse, 0, len(categories))

	for _, category := range categories {
		response = append(response, CategoryResponse{
			ID:          category.ID,
			Name:        category.Name,
			Logo:        category.Logo,
			Description: category.Description,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "categories": response})
}
