package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/VersaceXcodes/eco5/db"
	"github.com/VersaceXcodes/eco5/internal/models"
	"github.com/VersaceXcodes/eco5/internal/types"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UpdateCalculatorRequest struct {
	TravelHabits      *string                `json:"travel_habits"`
	EnergyConsumption *string                `json:"energy_consumption"`
	WasteManagement   *string                `json:"waste_management"`
	Details           map[string]interface{} `json:"details"`
}

// GetImpactCalculator returns the user's calculator, creating an empty
// one on first read rather than returning 404.
func GetImpactCalculator(ctx *gin.Context) {
	userID := ctx.Param("user_id")

	var user models.User

	if err := db.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(ctx, "User not found")
		} else {
			log.Printf("Failed to fetch user: %v", err)
			respondInternalError(ctx)
		}
		return
	}

	var calculator models.ImpactCalculator

	err := db.DB.Where("user_id = ?", userID).First(&calculator).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		calculator = models.ImpactCalculator{UserID: userID}
		if err := db.DB.Create(&calculator).Error; err != nil {
			log.Printf("Failed to create impact calculator: %v", err)
			respondInternalError(ctx)
			return
		}
		ctx.JSON(http.StatusOK, calculator)
		return
	}

	if err != nil {
		log.Printf("Failed to fetch impact calculator: %v", err)
		respondInternalError(ctx)
		return
	}

	ctx.JSON(http.StatusOK, calculator)
}

func UpdateImpactCalculator(ctx *gin.Context) {
	var calculator models.ImpactCalculator
	userID := ctx.Param("user_id")

	if err := db.DB.Where("user_id = ?", userID).First(&calculator).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(ctx, "Impact calculator not found")
		} else {
			log.Printf("Failed to fetch impact calculator: %v", err)
			respondInternalError(ctx)
		}
		return
	}

	var body UpdateCalculatorRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondValidationError(ctx, err)
		return
	}

	updates := make(map[string]interface{})

	if body.TravelHabits != nil {
		updates["travel_habits"] = *body.TravelHabits
	}
	if body.EnergyConsumption != nil {
		updates["energy_consumption"] = *body.EnergyConsumption
	}
	if body.WasteManagement != nil {
		updates["waste_management"] = *body.WasteManagement
	}
	if body.Details != nil {
		raw, err := json.Marshal(body.Details)
		if err != nil {
			respondValidationError(ctx, err)
			return
		}
		updates["details"] = datatypes.JSON(raw)
	}

	if len(updates) == 0 {
		respondError(ctx, http.StatusBadRequest, types.CodeNoUpdateFields, "No valid fields to update")
		return
	}

	if err := db.DB.Model(&calculator).Updates(updates).Error; err != nil {
		log.Printf("Failed to update impact calculator: %v", err)
		respondInternalError(ctx)
		return
	}

	if err := db.DB.Where("user_id = ?", userID).First(&calculator).Error; err != nil {
		log.Printf("Failed to refresh impact calculator: %v", err)
		respondInternalError(ctx)
		return
	}

	ctx.JSON(http.StatusOK, calculator)
}
