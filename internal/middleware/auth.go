package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/learnify-dev/learnify/internal/auth"
	"github.com/learnify-dev/learnify/internal/types"
)

// UserSyncer lazily creates or refreshes the local profile for a verified
// identity.
type UserSyncer interface {
	SyncUser(ctx context.Context, ident auth.Identity) error
}

// AuthMiddleware verifies the bearer credential and makes the decoded
// identity available to the downstream handler. The check is single-pass:
// an expired token is never refreshed server-side, the client has to
// re-authenticate and resend.
func AuthMiddleware(users UserSyncer) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized: No token or incorrect format."})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)

		if len(parts) != 2 || parts[0] != "Bearer" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized: No token or incorrect format."})
			return
		}

		ident, err := auth.VerifyToken(parts[1])

		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized: Token has expired."})
				return
			}
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "Unauthorized: Invalid token."})
			return
		}

		// The profile is created or touched on every authenticated request;
		// a sync failure is logged but never blocks the request.
		if users != nil {
			if err := users.SyncUser(ctx.Request.Context(), ident); err != nil {
				log.Printf("Failed to sync user profile for %s: %v", ident.Email, err)
			}
		}

		ctx.Set(types.ContextIdentityKey, ident)
		ctx.Next()
	}
}
