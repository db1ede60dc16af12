package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/VersaceXcodes/eco5/db"
	"github.com/VersaceXcodes/eco5/internal/models"
	"github.com/VersaceXcodes/eco5/internal/types"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateDashboardRequest struct {
	CarbonFootprint *float64 `json:"carbon_footprint"`
	HistoricalData  *string  `json:"historical_data"`
	DailyTips       *string  `json:"daily_tips"`
	Challenges      *string  `json:"challenges"`
}

func GetDashboard(ctx *gin.Context) {
	var dashboard models.Dashboard

	if err := db.DB.Where("user_id = ?", ctx.Param("user_id")).First(&dashboard).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(ctx, "Dashboard not found")
		} else {
			log.Printf("Failed to fetch dashboard: %v", err)
			respondInternalError(ctx)
		}
		return
	}

	ctx.JSON(http.StatusOK, dashboard)
}

// UpdateDashboard applies a partial update touching only supplied fields.
func UpdateDashboard(ctx *gin.Context) {
	var dashboard models.Dashboard
	userID := ctx.Param("user_id")

	if err := db.DB.Where("user_id = ?", userID).First(&dashboard).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(ctx, "Dashboard not found")
		} else {
			log.Printf("Failed to fetch dashboard: %v", err)
			respondInternalError(ctx)
		}
		return
	}

	var body UpdateDashboardRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondValidationError(ctx, err)
		return
	}

	updates := make(map[string]interface{})

	if body.CarbonFootprint != nil {
		updates["carbon_footprint"] = *body.CarbonFootprint
	}
	if body.HistoricalData != nil {
		updates["historical_data"] = *body.HistoricalData
	}
	if body.DailyTips != nil {
		updates["daily_tips"] = *body.DailyTips
	}
	if body.Challenges != nil {
		updates["challenges"] = *body.Challenges
	}

	if len(updates) == 0 {
		respondError(ctx, http.StatusBadRequest, types.CodeNoUpdateFields, "No valid fields to update")
		return
	}

	if err := db.DB.Model(&dashboard).Updates(updates).Error; err != nil {
		log.Printf("Failed to update dashboard: %v", err)
		respondInternalError(ctx)
		return
	}

	if err := db.DB.Where("user_id = ?", userID).First(&dashboard).Error; err != nil {
		log.Printf("Failed to refresh dashboard: %v", err)
		respondInternalError(ctx)
		return
	}

	ctx.JSON(http.StatusOK, dashboard)
}
