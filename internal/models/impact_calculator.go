package models

import (
	"gorm.io/datatypes"
)

// ImpactCalculator is created lazily with null fields the first time a
// user's calculator is read.
type ImpactCalculator struct {
	BaseModel

	UserID            string         `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	TravelHabits      *string        `json:"travel_habits"`
	EnergyConsumption *string        `json:"energy_consumption"`
	WasteManagement   *string        `json:"waste_management"`
	Details           datatypes.JSON `gorm:"type:jsonb" json:"details,omitempty"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
