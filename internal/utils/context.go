package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/learnify-dev/learnify/internal/auth"
	"github.com/learnify-dev/learnify/internal/types"
)

func GetCurrentIdentity(ctx *gin.Context) (auth.Identity, error) {
	value, exists := ctx.Get(types.ContextIdentityKey)

	if !exists {
		return auth.Identity{}, fmt.Errorf("user not authenticated")
	}

	ident, ok := value.(auth.Identity)

	if !ok {
		return auth.Identity{}, fmt.Errorf("invalid identity type in context")
	}

	return ident, nil
}
