package models

type Alert struct {
	BaseModel

	UserID    string `gorm:"type:uuid;not null;index" json:"user_id"`
	AlertType string `gorm:"not null" json:"alert_type"`
	Message   string `gorm:"not null" json:"message"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
