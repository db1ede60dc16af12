package models

import "time"

// Dashboard is provisioned zeroed for every user at registration and shares
// the user's identifier as its primary key.
type Dashboard struct {
	UserID          string    `gorm:"type:uuid;primaryKey" json:"user_id"`
	CarbonFootprint float64   `gorm:"not null;default:0" json:"carbon_footprint"`
	HistoricalData  *string   `json:"historical_data"`
	DailyTips       *string   `json:"daily_tips"`
	Challenges      *string   `json:"challenges"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Relationships
	User *User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
