package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/learnify-dev/learnify/internal/store"
)

type StatsStore interface {
	GetPlatformStats(ctx context.Context) (store.PlatformStats, error)
}

type StatsHandler struct {
	store StatsStore
}

func NewStatsHandler(store StatsStore) *StatsHandler {
	return &StatsHandler{store: store}
}

// GetStats recomputes the platform counters on every call; the data volume
// is small and the read is not latency-critical.
func (h *StatsHandler) GetStats(ctx *gin.Context) {
	stats, err := h.store.GetPlatformStats(ctx.Request.Context())

	if err != nil {
		log.Printf("Failed to compute platform stats: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch platform statistics."})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}
