package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/VersaceXcodes/eco5/db"
	"github.com/VersaceXcodes/eco5/internal/models"
	"github.com/VersaceXcodes/eco5/internal/types"
	"github.com/VersaceXcodes/eco5/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateEventRequest struct {
	EventName string  `json:"event_name" binding:"required"`
	EventDate string  `json:"event_date" binding:"required"`
	Location  *string `json:"location"`
}

type UpdateEventRequest struct {
	EventName *string `json:"event_name"`
	EventDate *string `json:"event_date"`
	Location  *string `json:"location"`
}

func ListEvents(ctx *gin.Context) {
	limit, offset := listParams(ctx)

	query := db.DB.Model(&models.Event{})

	if organizerID := ctx.Query("organizer_id"); organizerID != "" {
		query = query.Where("organizer_id = ?", organizerID)
	}

	events := make([]models.Event, 0)

	if err := query.Order("created_at desc").Limit(limit).Offset(offset).Find(&events).Error; err != nil {
		log.Printf("Failed to list events: %v", err)
		respondInternalError(ctx)
		return
	}

	ctx.JSON(http.StatusOK, events)
}

func CreateEvent(ctx *gin.Context) {
	var body CreateEventRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondValidationError(ctx, err)
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	event := models.Event{
		EventName:   body.EventName,
		EventDate:   body.EventDate,
		Location:    body.Location,
		OrganizerID: userID,
	}

	if err := db.DB.Create(&event).Error; err != nil {
		log.Printf("Failed to create event: %v", err)
		respondInternalError(ctx)
		return
	}

	ctx.JSON(http.StatusCreated, event)
}

func GetEvent(ctx *gin.Context) {
	var event models.Event

	if err := db.DB.Where("id = ?", ctx.Param("id")).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(ctx, "Event not found")
		} else {
			log.Printf("Failed to fetch event: %v", err)
			respondInternalError(ctx)
		}
		return
	}

	ctx.JSON(http.StatusOK, event)
}

func UpdateEvent(ctx *gin.Context) {
	var event models.Event

	if err := db.DB.Where("id = ?", ctx.Param("id")).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(ctx, "Event not found")
		} else {
			log.Printf("Failed to fetch event: %v", err)
			respondInternalError(ctx)
		}
		return
	}

	var body UpdateEventRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondValidationError(ctx, err)
		return
	}

	updates := make(map[string]interface{})

	if body.EventName != nil && *body.EventName != "" {
		updates["event_name"] = *body.EventName
	}
	if body.EventDate != nil && *body.EventDate != "" {
		updates["event_date"] = *body.EventDate
	}
	if body.Location != nil {
		updates["location"] = *body.Location
	}

	if len(updates) == 0 {
		respondError(ctx, http.StatusBadRequest, types.CodeNoUpdateFields, "No valid fields to update")
		return
	}

	if err := db.DB.Model(&event).Updates(updates).Error; err != nil {
		log.Printf("Failed to update event: %v", err)
		respondInternalError(ctx)
		return
	}

	if err := db.DB.Where("id = ?", event.ID).First(&event).Error; err != nil {
		log.Printf("Failed to refresh event: %v", err)
		respondInternalError(ctx)
		return
	}

	ctx.JSON(http.StatusOK, event)
}

func DeleteEvent(ctx *gin.Context) {
	var event models.Event

	if err := db.DB.Where("id = ?", ctx.Param("id")).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(ctx, "Event not found")
		} else {
			log.Printf("Failed to fetch event: %v", err)
			respondInternalError(ctx)
		}
		return
	}

	if err := db.DB.Delete(&event).Error; err != nil {
		log.Printf("Failed to delete event: %v", err)
		respondInternalError(ctx)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Event deleted successfully"})
}
