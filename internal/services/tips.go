package services

import (
	"log"

	"github.com/VersaceXcodes/eco5/db"
	"github.com/VersaceXcodes/eco5/internal/models"
)

// Rotating catalog shown on dashboards and pushed as daily_tip alerts.
var dailyTips = []string{
	"Swap one car trip for a walk, bike ride or public transport today.",
	"Unplug chargers and appliances you are not using.",
	"Wash clothes cold and line-dry when you can.",
	"Plan your meals to cut food waste this week.",
	"Carry a reusable bottle and skip single-use plastic.",
	"Lower your thermostat by one degree tonight.",
	"Batch your errands into a single trip.",
}

// TipOfTheDay rotates through the catalog by day index.
func TipOfTheDay(day int) string {
	if day < 0 {
		day = -day
	}
	return dailyTips[day%len(dailyTips)]
}

// RefreshDailyTips writes the day's tip onto every dashboard and records
// a daily_tip alert per user, returning the alerts it created.
func RefreshDailyTips(day int) ([]models.Alert, error) {
	tip := TipOfTheDay(day)

	var users []models.User

	if err := db.DB.Find(&users).Error; err != nil {
		return nil, err
	}

	created := make([]models.Alert, 0, len(users))

	for _, user := range users {
		err := db.DB.Model(&models.Dashboard{}).
			Where("user_id = ?", user.ID).
			Update("daily_tips", tip).Error

		if err != nil {
			log.Printf("Failed to refresh daily tip for user %s: %v", user.ID, err)
			continue
		}

		alert := models.Alert{
			UserID:    user.ID,
			AlertType: "daily_tip",
			Message:   tip,
		}

		if err := db.DB.Create(&alert).Error; err != nil {
			log.Printf("Failed to create daily tip alert for user %s: %v", user.ID, err)
			continue
		}

		created = append(created, alert)
	}

	return created, nil
}
