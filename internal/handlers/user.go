package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/VersaceXcodes/eco5/db"
	"github.com/VersaceXcodes/eco5/internal/models"
	"github.com/VersaceXcodes/eco5/internal/types"
	"github.com/VersaceXcodes/eco5/internal/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UpdateUserRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email" binding:"omitempty,email"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password" binding:"omitempty,min=8"`
}

var userSortFields = map[string]string{
	"name":       "name",
	"email":      "email",
	"created_at": "created_at",
}

func GetUser(ctx *gin.Context) {
	var user models.User

	if err := db.DB.Where("id = ?", ctx.Param("id")).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(ctx, "User not found")
		} else {
			log.Printf("Failed to fetch user: %v", err)
			respondInternalError(ctx)
		}
		return
	}

	ctx.JSON(http.StatusOK, userResponse(user))
}

// SearchUsers matches a case-insensitive substring against name and email.
// Defaults: limit=10, offset=0, newest first.
func SearchUsers(ctx *gin.Context) {
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}

	offset, err := strconv.Atoi(ctx.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	sortBy, ok := userSortFields[ctx.DefaultQuery("sort_by", "created_at")]
	if !ok {
		sortBy = "created_at"
	}

	sortOrder := ctx.DefaultQuery("sort_order", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	query := db.DB.Model(&models.User{})

	if q := strings.TrimSpace(ctx.Query("query")); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern)
	}

	var users []models.User

	if err := query.Order(sortBy + " " + sortOrder).Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		log.Printf("Failed to search users: %v", err)
		respondInternalError(ctx)
		return
	}

	response := make([]types.UserResponse, 0, len(users))

	for _, user := range users {
		response = append(response, userResponse(user))
	}

	ctx.JSON(http.StatusOK, response)
}

// UpdateUser applies a partial profile update. A user may only update
// their own profile.
func UpdateUser(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)
	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	if ctx.Param("id") != currentUser.ID {
		respondError(ctx, http.StatusForbidden, types.CodeForbidden, "Cannot update another user's profile")
		return
	}

	var dbUser models.User
	if err := db.DB.Where("id = ?", currentUser.ID).First(&dbUser).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(ctx, "User not found")
		} else {
			log.Printf("Failed to fetch user: %v", err)
			respondInternalError(ctx)
		}
		return
	}

	var body UpdateUserRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondValidationError(ctx, err)
		return
	}

	updates := make(map[string]interface{})

	if body.Name != "" {
		updates["name"] = strings.TrimSpace(body.Name)
	}

	if body.Email != "" {
		newEmail := strings.ToLower(strings.TrimSpace(body.Email))

		if newEmail != dbUser.Email {
			var existingUser models.User
			err := db.DB.Where("email = ? AND id != ?", newEmail, dbUser.ID).First(&existingUser).Error
			if err == nil {
				respondError(ctx, http.StatusBadRequest, types.CodeUserAlreadyExists, "Email already exists")
				return
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("Database error when checking existing email: %v", err)
				respondInternalError(ctx)
				return
			}
		}

		updates["email"] = newEmail
	}

	if body.NewPassword != "" {
		if body.CurrentPassword == "" {
			respondError(ctx, http.StatusBadRequest, types.CodeValidationError, "Current password is required to change password")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(dbUser.PasswordHash), []byte(body.CurrentPassword)); err != nil {
			respondError(ctx, http.StatusBadRequest, types.CodeInvalidCreds, "Current password is incorrect")
			return
		}

		passwordHash, err := bcrypt.GenerateFromPassword([]byte(body.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Failed to hash new password: %v", err)
			respondInternalError(ctx)
			return
		}

		updates["password_hash"] = string(passwordHash)
	}

	if len(updates) == 0 {
		respondError(ctx, http.StatusBadRequest, types.CodeNoUpdateFields, "No valid fields to update")
		return
	}

	if err := db.DB.Model(&dbUser).Updates(updates).Error; err != nil {
		log.Printf("Failed to update user: %v", err)
		respondInternalError(ctx)
		return
	}

	if err := db.DB.Where("id = ?", dbUser.ID).First(&dbUser).Error; err != nil {
		log.Printf("Failed to refresh user data: %v", err)
		respondInternalError(ctx)
		return
	}

	ctx.JSON(http.StatusOK, userResponse(dbUser))
}

// DeleteUser removes the authenticated user's account after confirming
// their password. Owned rows cascade.
func DeleteUser(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)
	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	if ctx.Param("id") != currentUser.ID {
		respondError(ctx, http.StatusForbidden, types.CodeForbidden, "Cannot delete another user's account")
		return
	}

	var dbUser models.User
	if err := db.DB.Where("id = ?", currentUser.ID).First(&dbUser).Error; err != nil {
		log.Printf("Failed to fetch user: %v", err)
		respondInternalError(ctx)
		return
	}

	var body struct {
		Password string `json:"password" binding:"required"`
	}

	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondError(ctx, http.StatusBadRequest, types.CodeValidationError, "Password is required for account deletion")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(dbUser.PasswordHash), []byte(body.Password)); err != nil {
		respondError(ctx, http.StatusBadRequest, types.CodeInvalidCreds, "Incorrect password")
		return
	}

	if err := db.DB.Select("Dashboard", "ImpactCalculators", "ForumThreads", "Events", "Resources", "Alerts").Delete(&dbUser).Error; err != nil {
		log.Printf("Failed to delete user: %v", err)
		respondInternalError(ctx)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Account deleted successfully"})
}
