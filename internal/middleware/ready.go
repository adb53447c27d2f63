package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ReadyChecker reports whether the data store behind the API was connected.
type ReadyChecker interface {
	Ready() bool
}

// RequireStore answers 503 for every data route until the store is
// connected, instead of letting handlers fail on a nil handle.
func RequireStore(checker ReadyChecker) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if checker == nil || !checker.Ready() {
			ctx.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Database services not ready."})
			return
		}
		ctx.Next()
	}
}
