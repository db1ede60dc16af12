package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/VersaceXcodes/eco5/db"
	"github.com/VersaceXcodes/eco5/internal/models"
	"github.com/VersaceXcodes/eco5/internal/types"
	"github.com/VersaceXcodes/eco5/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateAlertRequest struct {
	UserID    string     `json:"user_id"`
	AlertType string     `json:"alert_type" binding:"required"`
	Message   string     `json:"message" binding:"required"`
	CreatedAt *time.Time `json:"created_at"`
}

type UpdateAlertRequest struct {
	AlertType *string `json:"alert_type"`
	Message   *string `json:"message"`
}

// ListAlerts returns a user's alerts, newest first.
func ListAlerts(ctx *gin.Context) {
	limit, offset := listParams(ctx)

	alerts := make([]models.Alert, 0)

	err := db.DB.Where("user_id = ?", ctx.Param("user_id")).
		Order("created_at desc").Limit(limit).Offset(offset).Find(&alerts).Error

	if err != nil {
		log.Printf("Failed to list alerts: %v", err)
		respondInternalError(ctx)
		return
	}

	ctx.JSON(http.StatusOK, alerts)
}

// CreateAlert persists the alert and pushes it to the user's live
// websocket stream, if connected.
func CreateAlert(ctx *gin.Context) {
	var body CreateAlertRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondValidationError(ctx, err)
		return
	}

	if body.UserID == "" {
		userID, err := utils.GetCurrentUserID(ctx)
		if err != nil {
			respondUnauthenticated(ctx)
			return
		}
		body.UserID = userID
	}

	alert := models.Alert{
		UserID:    body.UserID,
		AlertType: body.AlertType,
		Message:   body.Message,
	}

	if body.CreatedAt != nil {
		alert.CreatedAt = *body.CreatedAt
	}

	if err := db.DB.Create(&alert).Error; err != nil {
		log.Printf("Failed to create alert: %v", err)
		respondInternalError(ctx)
		return
	}

	BroadcastAlert(alert)

	ctx.JSON(http.StatusCreated, alert)
}

func UpdateAlert(ctx *gin.Context) {
	var alert models.Alert

	if err := db.DB.Where("id = ?", ctx.Param("id")).First(&alert).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(ctx, "Alert not found")
		} else {
			log.Printf("Failed to fetch alert: %v", err)
			respondInternalError(ctx)
		}
		return
	}

	var body UpdateAlertRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondValidationError(ctx, err)
		return
	}

	updates := make(map[string]interface{})

	if body.AlertType != nil && *body.AlertType != "" {
		updates["alert_type"] = *body.AlertType
	}
	if body.Message != nil && *body.Message != "" {
		updates["message"] = *body.Message
	}

	if len(updates) == 0 {
		respondError(ctx, http.StatusBadRequest, types.CodeNoUpdateFields, "No valid fields to update")
		return
	}

	if err := db.DB.Model(&alert).Updates(updates).Error; err != nil {
		log.Printf("Failed to update alert: %v", err)
		respondInternalError(ctx)
		return
	}

	if err := db.DB.Where("id = ?", alert.ID).First(&alert).Error; err != nil {
		log.Printf("Failed to refresh alert: %v", err)
		respondInternalError(ctx)
		return
	}

	ctx.JSON(http.StatusOK, alert)
}
