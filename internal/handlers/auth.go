package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/VersaceXcodes/eco5/db"
	"github.com/VersaceXcodes/eco5/internal/auth"
	"github.com/VersaceXcodes/eco5/internal/models"
	"github.com/VersaceXcodes/eco5/internal/types"
	"github.com/VersaceXcodes/eco5/internal/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func userResponse(user models.User) types.UserResponse {
	return types.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// Register creates the user and provisions their zeroed dashboard in a
// single transaction, then issues a bearer token.
func Register(ctx *gin.Context) {
	var body RegisterRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondValidationError(ctx, err)
		return
	}

	body.Email = strings.ToLower(strings.TrimSpace(body.Email))

	var existingUser models.User

	err := db.DB.Where("email = ?", body.Email).First(&existingUser).Error

	if err == nil {
		respondError(ctx, http.StatusBadRequest, types.CodeUserAlreadyExists, "Email already exists")
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Database error when checking existing user: %v", err)
		respondInternalError(ctx)
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)

	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		respondInternalError(ctx)
		return
	}

	newUser := models.User{
		Name:         body.Name,
		Email:        body.Email,
		PasswordHash: string(passwordHash),
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newUser).Error; err != nil {
			return err
		}

		dashboard := models.Dashboard{UserID: newUser.ID, CarbonFootprint: 0}
		return tx.Create(&dashboard).Error
	})

	if err != nil {
		log.Printf("Failed to create user: %v", err)
		respondInternalError(ctx)
		return
	}

	token, err := auth.GenerateJWT(newUser.ID, newUser.Email)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		respondInternalError(ctx)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"user":       userResponse(newUser),
		"auth_token": token,
	})
}

// Login rejects unknown emails and wrong passwords with the same
// response shape.
func Login(ctx *gin.Context) {
	var body LoginRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondValidationError(ctx, err)
		return
	}

	body.Email = strings.ToLower(strings.TrimSpace(body.Email))

	var existingUser models.User

	err := db.DB.Where("email = ?", body.Email).First(&existingUser).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(ctx, http.StatusUnauthorized, types.CodeInvalidCreds, "Invalid email or password")
			return
		}
		log.Printf("Database error when fetching user: %v", err)
		respondInternalError(ctx)
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(existingUser.PasswordHash), []byte(body.Password))

	if err != nil {
		respondError(ctx, http.StatusUnauthorized, types.CodeInvalidCreds, "Invalid email or password")
		return
	}

	token, err := auth.GenerateJWT(existingUser.ID, existingUser.Email)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		respondInternalError(ctx)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"auth_token": token,
		"user_id":    existingUser.ID,
	})
}

func Me(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user": types.UserResponse{
			ID:    currentUser.ID,
			Name:  currentUser.Name,
			Email: currentUser.Email,
		},
	})
}
