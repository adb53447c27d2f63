package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/learnify-dev/learnify/internal/auth"
	"github.com/learnify-dev/learnify/internal/models"
	"github.com/learnify-dev/learnify/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AccountStore interface {
	CreateAccount(ctx context.Context, account *models.Account) error
	AccountByEmail(ctx context.Context, email string) (*models.Account, error)
}

// AuthHandler is the identity-provider surface. Registering only provisions
// an account and issues a token; the local User profile is synchronized
// lazily by the auth middleware on subsequent requests.
type AuthHandler struct {
	store AccountStore
}

func NewAuthHandler(store AccountStore) *AuthHandler {
	return &AuthHandler{store: store}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	PhotoURL string `json:"photoURL"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type AccountResponse struct {
	UID      string `json:"uid"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoURL"`
}

func (h *AuthHandler) Register(ctx *gin.Context) {
	var body RegisterRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request."})
		return
	}

	body.Email = strings.ToLower(strings.TrimSpace(body.Email))

	_, err := h.store.AccountByEmail(ctx.Request.Context(), body.Email)

	if err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email already exists."})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Database error when checking existing account: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error."})
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)

	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error."})
		return
	}

	account := models.Account{
		UID:          uuid.NewString(),
		Email:        body.Email,
		Name:         body.Name,
		PhotoURL:     body.PhotoURL,
		PasswordHash: string(passwordHash),
	}

	if err := h.store.CreateAccount(ctx.Request.Context(), &account); err != nil {
		log.Printf("Failed to create account: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error."})
		return
	}

	token, err := auth.GenerateToken(auth.Identity{
		UID:     account.UID,
		Email:   account.Email,
		Name:    account.Name,
		Picture: account.PhotoURL,
	})

	if err != nil {
		log.Printf("Failed to generate token: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error."})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"token":   token,
		"account": AccountResponse{
			UID:      account.UID,
			Name:     account.Name,
			Email:    account.Email,
			PhotoURL: account.PhotoURL,
		},
	})
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var body LoginRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request."})
		return
	}

	body.Email = strings.ToLower(strings.TrimSpace(body.Email))

	account, err := h.store.AccountByEmail(ctx.Request.Context(), body.Email)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid email or password."})
			return
		}
		log.Printf("Database error when fetching account: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error."})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(body.Password)); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid email or password."})
		return
	}

	token, err := auth.GenerateToken(auth.Identity{
		UID:     account.UID,
		Email:   account.Email,
		Name:    account.Name,
		Picture: account.PhotoURL,
	})

	if err != nil {
		log.Printf("Failed to generate token: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error."})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"account": AccountResponse{
			UID:      account.UID,
			Name:     account.Name,
			Email:    account.Email,
			PhotoURL: account.PhotoURL,
		},
	})
}

func (h *AuthHandler) Me(ctx *gin.Context) {
	ident, err := utils.GetCurrentIdentity(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated."})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": AccountResponse{
			UID:      ident.UID,
			Name:     ident.Name,
			Email:    ident.Email,
			PhotoURL: ident.Picture,
		},
	})
}
